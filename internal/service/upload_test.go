package service

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/target/salonbook-ui/internal/domain/model"
	apperrors "github.com/target/salonbook-ui/internal/errors"
	"github.com/target/salonbook-ui/internal/mocks"
)

func TestUploadService_Upload(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	uploader := mocks.NewMockImageUploader(ctrl)
	svc := NewUploadService(uploader, 0)
	ctx := context.Background()

	uploader.EXPECT().UploadImage(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, img model.ImageUpload) (string, error) {
			assert.Equal(t, "image/png", img.ContentType)
			assert.Equal(t, "look.png", img.Filename)
			return "https://cdn.example.com/look.png", nil
		}).Times(1)

	url, err := svc.Upload(ctx, &model.ImageUpload{Filename: "look.png", ContentType: "application/octet-stream", Data: pngHeader})
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/look.png", url)
}

func TestUploadService_Rejects(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	svc := NewUploadService(mocks.NewMockImageUploader(ctrl), 32)
	ctx := context.Background()

	_, err := svc.Upload(ctx, nil)
	assert.True(t, apperrors.IsValidation(err))

	_, err = svc.Upload(ctx, &model.ImageUpload{Data: []byte("%PDF-1.7")})
	assert.Equal(t, "image", apperrors.GetField(err))

	big := append(append([]byte(nil), pngHeader...), bytes.Repeat([]byte{0}, 64)...)
	_, err = svc.Upload(ctx, &model.ImageUpload{Data: big})
	assert.True(t, apperrors.IsValidation(err))
}

func TestUploadService_BackendFailure(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	uploader := mocks.NewMockImageUploader(ctrl)
	svc := NewUploadService(uploader, 0)

	uploader.EXPECT().UploadImage(gomock.Any(), gomock.Any()).
		Return("", apperrors.Upstream("upload failed", errors.New("503"))).Times(1)

	_, err := svc.Upload(context.Background(), &model.ImageUpload{Data: pngHeader})
	require.Error(t, err)
	assert.True(t, apperrors.IsUpstream(err))
}
