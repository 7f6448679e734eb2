package salonapi

import (
	"bytes"
	"context"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/target/salonbook-ui/internal/domain/model"
	apperrors "github.com/target/salonbook-ui/internal/errors"
)

// UploadImage posts a single image to POST /uploads and returns its stored URL.
func (c *Client) UploadImage(ctx context.Context, img model.ImageUpload) (string, error) {
	if img.Empty() {
		return "", apperrors.ValidationField("image", "Choose an image to upload")
	}

	var out struct {
		URL string `json:"url"`
	}
	err := c.do(ctx, call{
		op: "upload_image", method: http.MethodPost, path: "/uploads", out: &out,
		multipart: func(req *resty.Request) {
			req.SetMultipartField("image", img.Filename, img.ContentType, bytes.NewReader(img.Data))
		},
	})
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(out.URL) == "" {
		return "", apperrors.Upstream("upload response did not include a url", nil)
	}
	return out.URL, nil
}
