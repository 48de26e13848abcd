package handlers

import (
	"io"
	"net/http"

	"cabtour/services/storage"
	"cabtour/utils"

	"github.com/gin-gonic/gin"
)

// UploadHandler handles admin image uploads for catalogue entries.
type UploadHandler struct {
	Images storage.ImageStore
}

func NewUploadHandler(store storage.ImageStore) *UploadHandler {
	return &UploadHandler{Images: store}
}

// UploadImageHandler handles POST /api/admin/upload with a multipart "image" field.
func (h *UploadHandler) UploadImageHandler(c *gin.Context) {
	// Leave headroom for the multipart envelope around the file itself.
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, storage.MaxImageBytes+1<<20)

	fileHeader, err := c.FormFile("image")
	if err != nil {
		utils.RespondError(c, utils.Validation("image", "image file not provided"))
		return
	}
	if fileHeader.Size > storage.MaxImageBytes {
		utils.RespondError(c, utils.Validation("image", "image must be at most 5 MB"))
		return
	}
	f, err := fileHeader.Open()
	if err != nil {
		utils.RespondError(c, utils.Validation("image", "could not read uploaded file"))
		return
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, storage.MaxImageBytes+1))
	if err != nil {
		utils.RespondError(c, utils.Validation("image", "could not read uploaded file"))
		return
	}

	res, err := h.Images.UploadImage(c.Request.Context(), data, fileHeader.Filename)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message":  "Image uploaded",
		"url":      res.URL,
		"publicId": res.PublicID,
		"mimeType": res.MimeType,
		"bytes":    res.Bytes,
	})
}

// DeleteImageHandler handles DELETE /api/admin/upload?publicId=.
func (h *UploadHandler) DeleteImageHandler(c *gin.Context) {
	if err := h.Images.DeleteImage(c.Request.Context(), c.Query("publicId")); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Image deleted"})
}
