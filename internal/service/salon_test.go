package service

import (
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

func TestSalonService_Details(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := mocks.NewMockSalonRepository(ctrl)
	svc := NewSalonService(SalonServiceOptions{Repo: repo})
	ctx := context.Background()

	salon := model.Salon{ID: "42", Name: "Glow", Type: "Spa"}
	addrs := []model.Address{{ID: "a1", Street: "1 Main St", City: "Springfield"}}
	links := []model.SocialLink{{ID: "l1", Platform: "Instagram", URL: "https://instagram.com/glow"}}

	repo.EXPECT().GetSalon(gomock.Any(), "42").Return(salon, nil).Times(1)
	repo.EXPECT().ListAddresses(gomock.Any(), "42").Return(addrs, nil).Times(1)
	repo.EXPECT().ListSocialLinks(gomock.Any(), "42").Return(links, nil).Times(1)

	got, err := svc.Details(ctx, "42")
	require.NoError(t, err)
	assert.Equal(t, salon, got.Salon)
	assert.Equal(t, addrs, got.Addresses)
	assert.Equal(t, links, got.SocialLinks)
}

func TestSalonService_Details_PartialFailure(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := mocks.NewMockSalonRepository(ctrl)
	svc := NewSalonService(SalonServiceOptions{Repo: repo})

	repo.EXPECT().GetSalon(gomock.Any(), "42").Return(model.Salon{ID: "42"}, nil).AnyTimes()
	repo.EXPECT().ListAddresses(gomock.Any(), "42").Return(nil, apperrors.Upstream("boom", errors.New("502"))).Times(1)
	repo.EXPECT().ListSocialLinks(gomock.Any(), "42").Return(nil, nil).AnyTimes()

	_, err := svc.Details(context.Background(), "42")
	require.Error(t, err)
	assert.True(t, apperrors.IsUpstream(err))
}

func TestSalonService_RequiresSalon(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	svc := NewSalonService(SalonServiceOptions{Repo: mocks.NewMockSalonRepository(ctrl)})

	_, err := svc.Details(context.Background(), " ")
	require.Error(t, err)
	assert.True(t, apperrors.IsForbidden(err))
}

func TestSalonService_Update(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := mocks.NewMockSalonRepository(ctrl)
	svc := NewSalonService(SalonServiceOptions{Repo: repo})
	ctx := context.Background()

	// Blank name never reaches the backend.
	err := svc.Update(ctx, "42", model.UpdateSalonRequest{Name: "  "})
	require.Error(t, err)
	assert.Contains(t, apperrors.Fields(err), "name")

	want := model.UpdateSalonRequest{Name: "Glow", Email: "hi@glow.test"}
	repo.EXPECT().UpdateSalon(ctx, "42", want).Return(nil).Times(1)
	require.NoError(t, svc.Update(ctx, "42", model.UpdateSalonRequest{Name: " Glow ", Email: "hi@glow.test "}))
}

func TestSalonService_SaveAddress(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := mocks.NewMockSalonRepository(ctrl)
	svc := NewSalonService(SalonServiceOptions{Repo: repo})
	ctx := context.Background()
	in := model.AddressInput{Street: "1 Main St", City: "Springfield"}

	repo.EXPECT().CreateAddress(ctx, "42", in).Return(nil).Times(1)
	require.NoError(t, svc.SaveAddress(ctx, "42", "", in))

	repo.EXPECT().UpdateAddress(ctx, "42", "a1", in).Return(nil).Times(1)
	require.NoError(t, svc.SaveAddress(ctx, "42", "a1", in))

	err := svc.SaveAddress(ctx, "42", "", model.AddressInput{Street: "1 Main St"})
	require.Error(t, err)
	assert.Contains(t, apperrors.Fields(err), "city")
}

func TestSalonService_SocialLinks(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := mocks.NewMockSalonRepository(ctrl)
	svc := NewSalonService(SalonServiceOptions{Repo: repo})
	ctx := context.Background()
	in := model.SocialLinkInput{Platform: "TikTok", URL: "https://tiktok.com/@glow"}

	repo.EXPECT().CreateSocialLink(ctx, "42", in).Return(nil).Times(1)
	repo.EXPECT().DeleteSocialLink(ctx, "42", "l1").Return(nil).Times(1)

	require.NoError(t, svc.SaveSocialLink(ctx, "42", "", in))
	require.NoError(t, svc.DeleteSocialLink(ctx, "42", "l1"))
	require.Error(t, svc.DeleteSocialLink(ctx, "42", ""))
}
