package handler

import (
	"fmt"
	"net/http"
	"strings"

	"collably/internal/middleware"
	"collably/pkg/cloudinary"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const maxUploadBytes = 50 << 20

type UploadHandler struct {
	media cloudinary.Client
}

func NewUploadHandler(media cloudinary.Client) *UploadHandler {
	return &UploadHandler{media: media}
}

// Upload pushes a media file to the CDN and returns its URLs. Deliverable
// submissions reference the returned URL.
func (h *UploadHandler) Upload(c *gin.Context) {
	if h.media == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "media uploads not configured"})
		return
	}
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}
	if fileHeader.Size > maxUploadBytes {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file too large"})
		return
	}
	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read file"})
		return
	}
	defer f.Close()

	userID := middleware.GetUserID(c)
	folder := fmt.Sprintf("collably/user_%d", userID)
	publicID := uuid.NewString()

	contentType := fileHeader.Header.Get("Content-Type")
	var url, thumbURL string
	if strings.HasPrefix(contentType, "video/") {
		url, thumbURL, err = h.media.UploadVideo(c.Request.Context(), f, folder, publicID)
	} else {
		url, thumbURL, err = h.media.UploadImage(c.Request.Context(), f, folder, publicID)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "upload failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url, "thumbnail_url": thumbURL})
}
