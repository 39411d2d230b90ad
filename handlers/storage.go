package handlers

import (
	"net/http"
	"os"
	"path/filepath"

	storageSvc "servana/services/storage"

	"github.com/gin-gonic/gin"
)

// StorageHandler serves media uploads for business covers, logos and
// service images.
type StorageHandler struct {
	Svc storageSvc.StorageService
}

var uploadFolders = map[string]string{
	"cover":   storageSvc.FolderBusinessCovers,
	"logo":    storageSvc.FolderBusinessLogos,
	"service": storageSvc.FolderServiceImages,
}

// Upload accepts a multipart file and a kind {cover, logo, service}, stores
// it in Cloudinary and returns the public ID and delivery URL.
func (h *StorageHandler) Upload(c *gin.Context) {
	if h.Svc == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "media storage is not configured"})
		return
	}

	folder, ok := uploadFolders[c.PostForm("kind")]
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "kind must be one of: cover, logo, service"})
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}

	// Stage the upload in a temp file; the Cloudinary SDK uploads by path.
	tmpPath := filepath.Join(os.TempDir(), filepath.Base(file.Filename))
	if err := c.SaveUploadedFile(file, tmpPath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to stage upload"})
		return
	}
	defer os.Remove(tmpPath)

	publicID, err := h.Svc.UploadFile(c.Request.Context(), tmpPath, folder)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "upload failed"})
		return
	}

	url, err := h.Svc.GetDownloadURL("image", publicID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build download URL"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"publicId": publicID, "url": url})
}
