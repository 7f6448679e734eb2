package service

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/target/salonbook-ui/internal/domain/model"
	apperrors "github.com/target/salonbook-ui/internal/errors"
	"github.com/target/salonbook-ui/internal/ports"
)

// DefaultMaxUploadBytes caps a single image upload (5 MiB).
const DefaultMaxUploadBytes int64 = 5 << 20

// UploadService validates browser images and forwards them to the backend.
type UploadService struct {
	uploader ports.ImageUploader
	maxBytes int64
}

// NewUploadService constructs a new UploadService.
func NewUploadService(uploader ports.ImageUploader, maxBytes int64) *UploadService {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxUploadBytes
	}
	return &UploadService{uploader: uploader, maxBytes: maxBytes}
}

// Upload stores img and returns its public URL.
func (s *UploadService) Upload(ctx context.Context, img *model.ImageUpload) (string, error) {
	if img.Empty() {
		return "", apperrors.ValidationField("image", "Choose an image to upload")
	}
	if err := validateImage(img, s.maxBytes); err != nil {
		return "", err
	}
	url, err := s.uploader.UploadImage(ctx, *img)
	if err != nil {
		return "", fmt.Errorf("upload image: %w", err)
	}
	return url, nil
}

// validateImage checks size and sniffed content type. A nil or empty upload passes.
func validateImage(img *model.ImageUpload, maxBytes int64) error {
	if img.Empty() {
		return nil
	}
	if int64(len(img.Data)) > maxBytes {
		return apperrors.ValidationField("image", fmt.Sprintf("Image must be %d MB or smaller", maxBytes>>20))
	}
	sniffed := http.DetectContentType(img.Data)
	if !strings.HasPrefix(sniffed, "image/") {
		return apperrors.ValidationField("image", "File must be an image")
	}
	img.ContentType = sniffed
	return nil
}
