package usecase

import (
	"context"

	"wchub/internal/domain/entity"
)

// UpdateEntrepreneurProfileInput defines the updatable entrepreneur profile fields.
type UpdateEntrepreneurProfileInput struct {
	Bio                 string `json:"bio"`
	Skills              string `json:"skills"`
	BusinessCertificate string `json:"businessCertificate"`
}

// UpdateInvestorProfileInput defines the updatable investor profile fields.
type UpdateInvestorProfileInput struct {
	CompanyName string `json:"companyName"`
	Website     string `json:"website"`
	Country     string `json:"country"`
	City        string `json:"city"`
}

// PublicProfile pairs a role profile with its owner's public account fields
// for the browse directories.
type PublicProfile struct {
	UserID    int64  `json:"userId"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`

	Entrepreneur *entity.EntrepreneurProfile `json:"entrepreneurProfile,omitempty"`
	Investor     *entity.InvestorProfile     `json:"investorProfile,omitempty"`
}

// ProfileUsecase defines the interface for role-profile business operations.
type ProfileUsecase interface {
	GetEntrepreneurProfile(ctx context.Context, userID int64) (*entity.EntrepreneurProfile, error)
	UpdateEntrepreneurProfile(ctx context.Context, userID int64, input *UpdateEntrepreneurProfileInput) (*entity.EntrepreneurProfile, error)
	GetInvestorProfile(ctx context.Context, userID int64) (*entity.InvestorProfile, error)
	UpdateInvestorProfile(ctx context.Context, userID int64, input *UpdateInvestorProfileInput) (*entity.InvestorProfile, error)
	ListEntrepreneurs(ctx context.Context) ([]*PublicProfile, error)
	ListInvestors(ctx context.Context) ([]*PublicProfile, error)
}
