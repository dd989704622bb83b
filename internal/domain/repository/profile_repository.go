package repository

import (
	"context"
	"errors"

	"wchub/internal/domain/entity"
)

// ErrProfileNotFound is returned when no profile row exists for a user.
var ErrProfileNotFound = errors.New("profile not found")

// ProfileRepository defines persistence for the role-specific profile
// extensions. Profiles are keyed by the owning user's ID and created
// lazily on the first write.
type ProfileRepository interface {
	// FindEntrepreneurByUserID retrieves an entrepreneur profile by its owner.
	FindEntrepreneurByUserID(ctx context.Context, userID int64) (*entity.EntrepreneurProfile, error)

	// UpsertEntrepreneur creates the profile on first write, updates it afterwards.
	UpsertEntrepreneur(ctx context.Context, profile *entity.EntrepreneurProfile) error

	// FindInvestorByUserID retrieves an investor profile by its owner.
	FindInvestorByUserID(ctx context.Context, userID int64) (*entity.InvestorProfile, error)

	// UpsertInvestor creates the profile on first write, updates it afterwards.
	UpsertInvestor(ctx context.Context, profile *entity.InvestorProfile) error
}
