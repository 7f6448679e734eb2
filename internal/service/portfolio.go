package service

import (
	"context"
	"fmt"

	"github.com/target/salonbook-ui/internal/domain/model"
	"github.com/target/salonbook-ui/internal/ports"
)

// PortfolioService manages portfolio albums and their images.
type PortfolioService struct {
	repo ports.PortfolioRepository
}

// NewPortfolioService constructs a new PortfolioService.
func NewPortfolioService(repo ports.PortfolioRepository) *PortfolioService {
	return &PortfolioService{repo: repo}
}

// Albums lists the salon's albums.
func (s *PortfolioService) Albums(ctx context.Context, salonID string) ([]model.Album, error) {
	if err := requireSalon(salonID); err != nil {
		return nil, err
	}
	albums, err := s.repo.ListAlbums(ctx, salonID)
	if err != nil {
		return nil, fmt.Errorf("list albums: %w", err)
	}
	return albums, nil
}

// SaveAlbum creates an album, or replaces it when albumID is set.
func (s *PortfolioService) SaveAlbum(ctx context.Context, salonID, albumID string, in model.AlbumInput) error {
	if err := requireSalon(salonID); err != nil {
		return err
	}
	if err := in.Validate(); err != nil {
		return err
	}
	if albumID == "" {
		return s.repo.CreateAlbum(ctx, salonID, in)
	}
	return s.repo.UpdateAlbum(ctx, salonID, albumID, in)
}

// DeleteAlbum removes an album and its images.
func (s *PortfolioService) DeleteAlbum(ctx context.Context, salonID, albumID string) error {
	if err := requireSalon(salonID); err != nil {
		return err
	}
	if err := requireID(albumID, "Album id"); err != nil {
		return err
	}
	return s.repo.DeleteAlbum(ctx, salonID, albumID)
}

// AddImage attaches a previously uploaded image URL to an album.
func (s *PortfolioService) AddImage(ctx context.Context, salonID, albumID string, in model.ImageInput) error {
	if err := requireSalon(salonID); err != nil {
		return err
	}
	if err := requireID(albumID, "Album id"); err != nil {
		return err
	}
	if err := in.Validate(); err != nil {
		return err
	}
	return s.repo.AddImage(ctx, salonID, albumID, in)
}

// UpdateCaption changes an image caption. The image URL is never resent.
func (s *PortfolioService) UpdateCaption(ctx context.Context, salonID, albumID, imageID, caption string) error {
	if err := requireSalon(salonID); err != nil {
		return err
	}
	if err := requireID(imageID, "Image id"); err != nil {
		return err
	}
	in := model.ImageInput{Caption: caption}
	return s.repo.UpdateImage(ctx, salonID, albumID, imageID, in)
}

// DeleteImage removes an image from an album.
func (s *PortfolioService) DeleteImage(ctx context.Context, salonID, albumID, imageID string) error {
	if err := requireSalon(salonID); err != nil {
		return err
	}
	if err := requireID(imageID, "Image id"); err != nil {
		return err
	}
	return s.repo.DeleteImage(ctx, salonID, albumID, imageID)
}
