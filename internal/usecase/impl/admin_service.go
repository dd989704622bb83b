package impl

import (
	"context"
	"log/slog"

	deliverycontext "wchub/internal/delivery/context"
	"wchub/internal/domain/entity"
	"wchub/internal/domain/repository"
	"wchub/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// adminService implements the AdminUsecase interface.
type adminService struct {
	userRepo    repository.UserRepository
	projectRepo repository.ProjectRepository
	logger      *slog.Logger
}

// AdminServiceParams holds dependencies for adminService, injected by Fx.
type AdminServiceParams struct {
	fx.In

	UserRepo    repository.UserRepository
	ProjectRepo repository.ProjectRepository
	Logger      *slog.Logger
}

// NewAdminService is the constructor for adminService.
func NewAdminService(params AdminServiceParams) usecase.AdminUsecase {
	return &adminService{
		userRepo:    params.UserRepo,
		projectRepo: params.ProjectRepo,
		logger:      params.Logger,
	}
}

func (srv *adminService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// DashboardStats aggregates the platform counters for the admin dashboard.
func (srv *adminService) DashboardStats(ctx context.Context) (*usecase.DashboardStats, error) {
	totalUsers, err := srv.userRepo.Count(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count users")
	}

	totalEntrepreneurs, err := srv.userRepo.CountByRole(ctx, entity.RoleEntrepreneur)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count entrepreneurs")
	}

	totalInvestors, err := srv.userRepo.CountByRole(ctx, entity.RoleInvestor)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count investors")
	}

	totalProjects, err := srv.projectRepo.Count(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count projects")
	}

	srv.log(ctx).Debug("Dashboard stats computed", slog.Int64("totalUsers", totalUsers))

	return &usecase.DashboardStats{
		TotalUsers:         totalUsers,
		TotalEntrepreneurs: totalEntrepreneurs,
		TotalInvestors:     totalInvestors,
		TotalProjects:      totalProjects,
	}, nil
}
