package storage

import (
	"context"
	"fmt"

	"servana/config"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// Folders used for marketplace media uploads.
const (
	FolderBusinessCovers = "servana/business/covers"
	FolderBusinessLogos  = "servana/business/logos"
	FolderServiceImages  = "servana/services"
)

// NewStorageService builds the Cloudinary-backed storage service from the
// CLOUDINARY_URL in config.
func NewStorageService() (StorageService, error) {
	if config.AppConfig.CloudinaryURL == "" {
		return nil, fmt.Errorf("cloudinary credentials not set in configuration")
	}
	cld, err := cloudinary.NewFromURL(config.AppConfig.CloudinaryURL)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Cloudinary: %w", err)
	}
	return &CloudinaryStorageService{
		cld:       cld,
		cloudName: cld.Config.Cloud.CloudName,
	}, nil
}

// UploadFile uploads a file into the given folder and returns its public ID.
func (s *CloudinaryStorageService) UploadFile(ctx context.Context, localFilePath, destFolder string) (string, error) {
	result, err := s.cld.Upload.Upload(ctx, localFilePath, uploader.UploadParams{
		Folder: destFolder,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload file: %w", err)
	}
	if result.PublicID == "" {
		return "", fmt.Errorf("upload returned no public ID")
	}
	return result.PublicID, nil
}

// DeleteFile removes a file given its public ID.
func (s *CloudinaryStorageService) DeleteFile(ctx context.Context, publicID string) error {
	if _, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID}); err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

// GetDownloadURL constructs the public delivery URL for an asset.
func (s *CloudinaryStorageService) GetDownloadURL(resourceType, publicID string) (string, error) {
	switch resourceType {
	case "image", "video", "raw":
	default:
		resourceType = "image"
	}
	return fmt.Sprintf("https://res.cloudinary.com/%s/%s/upload/%s", s.cloudName, resourceType, publicID), nil
}
