package usecase

import "context"

// DashboardStats aggregates the platform counters shown on the admin dashboard.
type DashboardStats struct {
	TotalUsers         int64 `json:"totalUsers"`
	TotalEntrepreneurs int64 `json:"totalEntrepreneurs"`
	TotalInvestors     int64 `json:"totalInvestors"`
	TotalProjects      int64 `json:"totalProjects"`
}

// AdminUsecase defines the interface for administrative operations.
type AdminUsecase interface {
	DashboardStats(ctx context.Context) (*DashboardStats, error)
}
