package postgres

import (
	"context"

	"wchub/internal/domain/entity"
	domainerrors "wchub/internal/domain/errors"
	"wchub/internal/domain/repository"
	"wchub/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// profileRepository implements the repository.ProfileRepository interface.
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(db *gorm.DB) repository.ProfileRepository {
	return &profileRepository{db: db}
}

// FindEntrepreneurByUserID retrieves an entrepreneur profile by its owner.
func (repo *profileRepository) FindEntrepreneurByUserID(ctx context.Context, userID int64) (*entity.EntrepreneurProfile, error) {
	var profileM model.EntrepreneurProfileModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&profileM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find entrepreneur profile")
	}

	return toEntrepreneurProfileDomain(&profileM), nil
}

// UpsertEntrepreneur creates the profile on first write, updates it afterwards.
// The unique index on user_id makes the upsert converge on one row per user.
func (repo *profileRepository) UpsertEntrepreneur(ctx context.Context, profile *entity.EntrepreneurProfile) error {
	profileM := fromEntrepreneurProfileDomain(profile)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"bio", "skills", "business_certificate", "updated_at"}),
		}).
		Create(profileM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("profile owner does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert entrepreneur profile")
	}

	// Re-read so callers observe the row that actually won the upsert.
	saved, err := repo.FindEntrepreneurByUserID(ctx, profile.UserID)
	if err != nil {
		return errors.Wrap(err, "failed to reload entrepreneur profile after upsert")
	}
	*profile = *saved

	return nil
}

// FindInvestorByUserID retrieves an investor profile by its owner.
func (repo *profileRepository) FindInvestorByUserID(ctx context.Context, userID int64) (*entity.InvestorProfile, error) {
	var profileM model.InvestorProfileModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&profileM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find investor profile")
	}

	return toInvestorProfileDomain(&profileM), nil
}

// UpsertInvestor creates the profile on first write, updates it afterwards.
func (repo *profileRepository) UpsertInvestor(ctx context.Context, profile *entity.InvestorProfile) error {
	profileM := fromInvestorProfileDomain(profile)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"company_name", "website", "country", "city", "updated_at"}),
		}).
		Create(profileM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("profile owner does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert investor profile")
	}

	saved, err := repo.FindInvestorByUserID(ctx, profile.UserID)
	if err != nil {
		return errors.Wrap(err, "failed to reload investor profile after upsert")
	}
	*profile = *saved

	return nil
}

func toEntrepreneurProfileDomain(profileM *model.EntrepreneurProfileModel) *entity.EntrepreneurProfile {
	return &entity.EntrepreneurProfile{
		ID:                  profileM.ID,
		UserID:              profileM.UserID,
		Bio:                 profileM.Bio,
		Skills:              profileM.Skills,
		BusinessCertificate: profileM.BusinessCertificate,
		CreatedAt:           profileM.CreatedAt,
		UpdatedAt:           profileM.UpdatedAt,
	}
}

func fromEntrepreneurProfileDomain(profile *entity.EntrepreneurProfile) *model.EntrepreneurProfileModel {
	return &model.EntrepreneurProfileModel{
		ID:                  profile.ID,
		UserID:              profile.UserID,
		Bio:                 profile.Bio,
		Skills:              profile.Skills,
		BusinessCertificate: profile.BusinessCertificate,
	}
}

func toInvestorProfileDomain(profileM *model.InvestorProfileModel) *entity.InvestorProfile {
	return &entity.InvestorProfile{
		ID:          profileM.ID,
		UserID:      profileM.UserID,
		CompanyName: profileM.CompanyName,
		Website:     profileM.Website,
		Country:     profileM.Country,
		City:        profileM.City,
		CreatedAt:   profileM.CreatedAt,
		UpdatedAt:   profileM.UpdatedAt,
	}
}

func fromInvestorProfileDomain(profile *entity.InvestorProfile) *model.InvestorProfileModel {
	return &model.InvestorProfileModel{
		ID:          profile.ID,
		UserID:      profile.UserID,
		CompanyName: profile.CompanyName,
		Website:     profile.Website,
		Country:     profile.Country,
		City:        profile.City,
	}
}
