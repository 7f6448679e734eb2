//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"strings"

	apperrors "github.com/target/salonbook-ui/internal/errors"
)

// Album is a named group of portfolio images.
type Album struct {
	ID          string  `json:"_id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Images      []Image `json:"images"`
}

// Cover returns the first image URL, if any.
func (a Album) Cover() string {
	if len(a.Images) == 0 {
		return ""
	}
	return a.Images[0].URL
}

// AlbumInput creates or replaces an album.
type AlbumInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Validate checks required fields.
func (in *AlbumInput) Validate() error {
	in.Title = strings.TrimSpace(in.Title)
	in.Description = strings.TrimSpace(in.Description)

	fe := apperrors.FieldErrors{}
	fe.Required("title", in.Title, "Album title")
	return fe.Err()
}

// Image is a portfolio picture hosted by the backend.
type Image struct {
	ID      string `json:"_id"`
	URL     string `json:"url"`
	Caption string `json:"caption"`
}

// ImageInput adds an image (by previously uploaded URL) or updates its caption.
type ImageInput struct {
	URL     string `json:"url,omitempty"`
	Caption string `json:"caption"`
}

// Validate checks required fields for a new image.
func (in *ImageInput) Validate() error {
	in.URL = strings.TrimSpace(in.URL)
	in.Caption = strings.TrimSpace(in.Caption)

	fe := apperrors.FieldErrors{}
	fe.Required("url", in.URL, "Image")
	return fe.Err()
}

// ImageUpload is a file received from the browser, ready to be proxied to the backend.
type ImageUpload struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Empty reports whether no file was supplied.
func (u *ImageUpload) Empty() bool { return u == nil || len(u.Data) == 0 }
