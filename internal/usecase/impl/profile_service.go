package impl

import (
	"context"
	"log/slog"

	deliverycontext "wchub/internal/delivery/context"
	"wchub/internal/domain/entity"
	domainerrors "wchub/internal/domain/errors"
	"wchub/internal/domain/repository"
	"wchub/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	userRepo    repository.UserRepository
	profileRepo repository.ProfileRepository
	logger      *slog.Logger
}

// ProfileServiceParams holds dependencies for profileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	UserRepo    repository.UserRepository
	ProfileRepo repository.ProfileRepository
	Logger      *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		userRepo:    params.UserRepo,
		profileRepo: params.ProfileRepo,
		logger:      params.Logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetEntrepreneurProfile returns the caller's entrepreneur profile.
// Profiles are created lazily, so a user who has never saved one gets a 404.
func (srv *profileService) GetEntrepreneurProfile(ctx context.Context, userID int64) (*entity.EntrepreneurProfile, error) {
	profile, err := srv.profileRepo.FindEntrepreneurByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, domainerrors.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to load entrepreneur profile")
	}

	return profile, nil
}

// UpdateEntrepreneurProfile creates or updates the caller's entrepreneur profile.
func (srv *profileService) UpdateEntrepreneurProfile(ctx context.Context, userID int64, input *usecase.UpdateEntrepreneurProfileInput) (*entity.EntrepreneurProfile, error) {
	if input == nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("missing profile input")
	}

	profile := &entity.EntrepreneurProfile{
		UserID:              userID,
		Bio:                 input.Bio,
		Skills:              input.Skills,
		BusinessCertificate: input.BusinessCertificate,
	}

	if err := srv.profileRepo.UpsertEntrepreneur(ctx, profile); err != nil {
		srv.log(ctx).Error("Failed to save entrepreneur profile", slog.Int64("userID", userID), slog.Any("error", err))

		return nil, err
	}

	return profile, nil
}

// GetInvestorProfile returns the caller's investor profile, 404 when
// never saved.
func (srv *profileService) GetInvestorProfile(ctx context.Context, userID int64) (*entity.InvestorProfile, error) {
	profile, err := srv.profileRepo.FindInvestorByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, domainerrors.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to load investor profile")
	}

	return profile, nil
}

// UpdateInvestorProfile creates or updates the caller's investor profile.
func (srv *profileService) UpdateInvestorProfile(ctx context.Context, userID int64, input *usecase.UpdateInvestorProfileInput) (*entity.InvestorProfile, error) {
	if input == nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("missing profile input")
	}

	profile := &entity.InvestorProfile{
		UserID:      userID,
		CompanyName: input.CompanyName,
		Website:     input.Website,
		Country:     input.Country,
		City:        input.City,
	}

	if err := srv.profileRepo.UpsertInvestor(ctx, profile); err != nil {
		srv.log(ctx).Error("Failed to save investor profile", slog.Int64("userID", userID), slog.Any("error", err))

		return nil, err
	}

	return profile, nil
}

// ListEntrepreneurs returns the public entrepreneur directory.
func (srv *profileService) ListEntrepreneurs(ctx context.Context) ([]*usecase.PublicProfile, error) {
	users, err := srv.userRepo.ListByRole(ctx, entity.RoleEntrepreneur)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list entrepreneurs")
	}

	profiles := make([]*usecase.PublicProfile, 0, len(users))
	for _, user := range users {
		profiles = append(profiles, &usecase.PublicProfile{
			UserID:       user.ID,
			FirstName:    user.FirstName,
			LastName:     user.LastName,
			Email:        user.Email,
			Entrepreneur: user.EntrepreneurProfile,
		})
	}

	return profiles, nil
}

// ListInvestors returns the public investor directory.
func (srv *profileService) ListInvestors(ctx context.Context) ([]*usecase.PublicProfile, error) {
	users, err := srv.userRepo.ListByRole(ctx, entity.RoleInvestor)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list investors")
	}

	profiles := make([]*usecase.PublicProfile, 0, len(users))
	for _, user := range users {
		profiles = append(profiles, &usecase.PublicProfile{
			UserID:    user.ID,
			FirstName: user.FirstName,
			LastName:  user.LastName,
			Email:     user.Email,
			Investor:  user.InvestorProfile,
		})
	}

	return profiles, nil
}
