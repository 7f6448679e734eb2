package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/target/salonbook-ui/internal/domain/auth"
	"github.com/target/salonbook-ui/internal/domain/model"
	"github.com/target/salonbook-ui/internal/mocks"
)

func TestAdminService_List_DefaultsToPending(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := mocks.NewMockRegistrationRepository(ctrl)
	svc := NewAdminService(AdminServiceOptions{Repo: repo})
	ctx := context.Background()

	regs := []model.Registration{{ID: "r1", Name: "Ana", Role: auth.RoleOwner, Status: model.RegistrationPending}}
	repo.EXPECT().ListRegistrations(ctx, model.RegistrationPending).Return(regs, nil).Times(1)
	repo.EXPECT().ListRegistrations(ctx, model.RegistrationRejected).Return(nil, nil).Times(1)

	got, err := svc.List(ctx, "bogus")
	require.NoError(t, err)
	assert.Equal(t, regs, got)

	got, err = svc.List(ctx, model.RegistrationRejected)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestAdminService_Actions(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := mocks.NewMockRegistrationRepository(ctrl)
	svc := NewAdminService(AdminServiceOptions{Repo: repo})
	ctx := context.Background()

	repo.EXPECT().ApproveRegistration(ctx, "r1").Return(nil).Times(1)
	repo.EXPECT().RejectRegistration(ctx, "r2", "Incomplete salon details").Return(nil).Times(1)
	repo.EXPECT().RejectRegistration(ctx, "r3", "").Return(nil).Times(1)
	repo.EXPECT().DeleteRegistration(ctx, "r4").Return(nil).Times(1)

	require.NoError(t, svc.Approve(ctx, "r1"))
	require.NoError(t, svc.Reject(ctx, "r2", "  Incomplete salon details "))
	require.NoError(t, svc.Reject(ctx, "r3", ""))
	require.NoError(t, svc.Delete(ctx, "r4"))

	require.Error(t, svc.Approve(ctx, ""))
}

func TestAdminService_Reject_TruncatesReason(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := mocks.NewMockRegistrationRepository(ctrl)
	svc := NewAdminService(AdminServiceOptions{Repo: repo})
	ctx := context.Background()

	repo.EXPECT().RejectRegistration(ctx, "r1", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, reason string) error {
			assert.Len(t, []rune(reason), maxRejectReasonLen)
			return nil
		}).Times(1)

	require.NoError(t, svc.Reject(ctx, "r1", strings.Repeat("é", maxRejectReasonLen+20)))
}
