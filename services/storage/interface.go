package storage

import (
	"context"

	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// ImageStore keeps offering and review images.
type ImageStore interface {
	UploadImage(ctx context.Context, data []byte, filename string) (*UploadResult, error)
	DeleteImage(ctx context.Context, publicID string) error
}

// UploadResult is what clients store on the offering.
type UploadResult struct {
	URL      string `json:"url"`
	PublicID string `json:"publicId"`
	MimeType string `json:"mimeType"`
	Bytes    int    `json:"bytes"`
}

// assetAPI is the part of the Cloudinary uploader the store calls.
type assetAPI interface {
	Upload(ctx context.Context, file interface{}, params uploader.UploadParams) (*uploader.UploadResult, error)
	Destroy(ctx context.Context, params uploader.DestroyParams) (*uploader.DestroyResult, error)
}

// CloudinaryStore implements ImageStore on Cloudinary.
type CloudinaryStore struct {
	api    assetAPI
	folder string
}
