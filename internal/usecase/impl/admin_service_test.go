package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"wchub/internal/domain/entity"
	mockRepo "wchub/internal/mocks/repository"
	"wchub/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// adminServiceFixtures holds all test dependencies for admin service tests.
type adminServiceFixtures struct {
	service     usecase.AdminUsecase
	userRepo    *mockRepo.MockUserRepository
	projectRepo *mockRepo.MockProjectRepository
}

func createTestAdminService(t *testing.T) adminServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	projectRepo := mockRepo.NewMockProjectRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewAdminService(AdminServiceParams{
		UserRepo:    userRepo,
		ProjectRepo: projectRepo,
		Logger:      logger,
	})

	return adminServiceFixtures{
		service:     service,
		userRepo:    userRepo,
		projectRepo: projectRepo,
	}
}

func TestAdminService_DashboardStats(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	fx.userRepo.EXPECT().Count(ctx).Return(int64(25), nil)
	fx.userRepo.EXPECT().CountByRole(ctx, entity.RoleEntrepreneur).Return(int64(15), nil)
	fx.userRepo.EXPECT().CountByRole(ctx, entity.RoleInvestor).Return(int64(9), nil)
	fx.projectRepo.EXPECT().Count(ctx).Return(int64(40), nil)

	stats, err := fx.service.DashboardStats(ctx)

	require.NoError(t, err)
	assert.Equal(t, &usecase.DashboardStats{
		TotalUsers:         25,
		TotalEntrepreneurs: 15,
		TotalInvestors:     9,
		TotalProjects:      40,
	}, stats)
}

func TestAdminService_DashboardStats_CountFailure(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	countErr := errors.New("connection reset")
	fx.userRepo.EXPECT().Count(ctx).Return(int64(0), countErr)

	stats, err := fx.service.DashboardStats(ctx)

	assert.Nil(t, stats)
	assert.True(t, errors.Is(err, countErr))
}
