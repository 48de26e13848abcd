package storage

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"cabtour/utils"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gabriel-vasile/mimetype"
	"go.uber.org/zap"
)

// MaxImageBytes is the largest accepted upload.
const MaxImageBytes = 5 << 20

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

// NewCloudinaryStore builds a store that uploads into folder.
func NewCloudinaryStore(cloudName, apiKey, apiSecret, folder string) (*CloudinaryStore, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to initialise cloudinary: %w", err)
	}
	return &CloudinaryStore{api: &cld.Upload, folder: folder}, nil
}

// CheckImage sniffs the content type of data and enforces the upload limits.
func CheckImage(data []byte) (string, error) {
	if len(data) == 0 {
		return "", utils.Validation("image", "image is empty")
	}
	if len(data) > MaxImageBytes {
		return "", utils.Validation("image", "image must be at most 5 MB")
	}
	mt := mimetype.Detect(data)
	if !allowedImageTypes[mt.String()] {
		return "", utils.Validation("image", "image must be a JPEG, PNG or WebP file, got "+mt.String())
	}
	return mt.String(), nil
}

// UploadImage validates data and uploads it. The returned URL is the https one.
func (s *CloudinaryStore) UploadImage(ctx context.Context, data []byte, filename string) (*UploadResult, error) {
	mime, err := CheckImage(data)
	if err != nil {
		return nil, err
	}

	res, err := s.api.Upload(ctx, bytes.NewReader(data), uploader.UploadParams{Folder: s.folder})
	if err != nil {
		utils.GetLogger().Error("Image upload failed", zap.String("file", filename), zap.Error(err))
		return nil, utils.Dependency("failed to upload image", err)
	}
	if res.Error.Message != "" {
		return nil, utils.Dependency("failed to upload image", fmt.Errorf("cloudinary: %s", res.Error.Message))
	}
	if res.PublicID == "" {
		return nil, utils.Dependency("failed to upload image", fmt.Errorf("cloudinary returned no public ID"))
	}

	utils.GetLogger().Info("Image uploaded", zap.String("publicId", res.PublicID), zap.Int("bytes", len(data)))
	return &UploadResult{URL: res.SecureURL, PublicID: res.PublicID, MimeType: mime, Bytes: len(data)}, nil
}

// DeleteImage removes an uploaded image. Deleting a missing image is not an error.
func (s *CloudinaryStore) DeleteImage(ctx context.Context, publicID string) error {
	if strings.TrimSpace(publicID) == "" {
		return utils.Validation("publicId", "publicId is required")
	}
	res, err := s.api.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return utils.Dependency("failed to delete image", err)
	}
	if res.Error.Message != "" {
		return utils.Dependency("failed to delete image", fmt.Errorf("cloudinary: %s", res.Error.Message))
	}
	return nil
}
