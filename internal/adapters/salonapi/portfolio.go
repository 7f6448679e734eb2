package salonapi

import (
	"context"
	"net/http"

	"github.com/target/salonbook-ui/internal/domain/model"
)

const (
	pathAlbums      = "/salons/{salonId}/portfolios"
	pathAlbum       = "/salons/{salonId}/portfolios/{albumId}"
	pathAlbumImages = "/salons/{salonId}/portfolios/{albumId}/images"
	pathAlbumImage  = "/salons/{salonId}/portfolios/{albumId}/images/{imageId}"
)

// ListAlbums reads the salon's portfolio albums with their images.
func (c *Client) ListAlbums(ctx context.Context, salonID string) ([]model.Album, error) {
	var out []model.Album
	err := c.do(ctx, call{op: "list_albums", method: http.MethodGet, path: pathAlbums, params: salonParams(salonID), out: &out})
	return out, err
}

// CreateAlbum adds an album.
func (c *Client) CreateAlbum(ctx context.Context, salonID string, in model.AlbumInput) error {
	return c.do(ctx, call{op: "create_album", method: http.MethodPost, path: pathAlbums, params: salonParams(salonID), body: in})
}

// UpdateAlbum replaces an album's title and description.
func (c *Client) UpdateAlbum(ctx context.Context, salonID, albumID string, in model.AlbumInput) error {
	return c.do(ctx, call{
		op: "update_album", method: http.MethodPut, path: pathAlbum,
		params: salonParams(salonID, "albumId", albumID), body: in,
	})
}

// DeleteAlbum removes an album and its images.
func (c *Client) DeleteAlbum(ctx context.Context, salonID, albumID string) error {
	return c.do(ctx, call{
		op: "delete_album", method: http.MethodDelete, path: pathAlbum,
		params: salonParams(salonID, "albumId", albumID),
	})
}

// AddImage attaches a previously uploaded image to an album.
func (c *Client) AddImage(ctx context.Context, salonID, albumID string, in model.ImageInput) error {
	return c.do(ctx, call{
		op: "add_image", method: http.MethodPost, path: pathAlbumImages,
		params: salonParams(salonID, "albumId", albumID), body: in,
	})
}

// UpdateImage changes an image caption.
func (c *Client) UpdateImage(ctx context.Context, salonID, albumID, imageID string, in model.ImageInput) error {
	return c.do(ctx, call{
		op: "update_image", method: http.MethodPut, path: pathAlbumImage,
		params: salonParams(salonID, "albumId", albumID, "imageId", imageID), body: in,
	})
}

// DeleteImage removes an image from an album.
func (c *Client) DeleteImage(ctx context.Context, salonID, albumID, imageID string) error {
	return c.do(ctx, call{
		op: "delete_image", method: http.MethodDelete, path: pathAlbumImage,
		params: salonParams(salonID, "albumId", albumID, "imageId", imageID),
	})
}
