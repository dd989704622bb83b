package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"wchub/internal/domain/entity"
	domainerrors "wchub/internal/domain/errors"
	"wchub/internal/domain/repository"
	mockRepo "wchub/internal/mocks/repository"
	"wchub/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// profileServiceFixtures holds all test dependencies for profile service tests.
type profileServiceFixtures struct {
	service     usecase.ProfileUsecase
	userRepo    *mockRepo.MockUserRepository
	profileRepo *mockRepo.MockProfileRepository
}

func createTestProfileService(t *testing.T) profileServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	profileRepo := mockRepo.NewMockProfileRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewProfileService(ProfileServiceParams{
		UserRepo:    userRepo,
		ProfileRepo: profileRepo,
		Logger:      logger,
	})

	return profileServiceFixtures{
		service:     service,
		userRepo:    userRepo,
		profileRepo: profileRepo,
	}
}

func TestProfileService_GetEntrepreneurProfile_Success(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	expected := &entity.EntrepreneurProfile{ID: 1, UserID: 7, Bio: "Textile entrepreneur"}

	fx.profileRepo.EXPECT().FindEntrepreneurByUserID(ctx, int64(7)).Return(expected, nil)

	profile, err := fx.service.GetEntrepreneurProfile(ctx, 7)

	require.NoError(t, err)
	assert.Equal(t, expected, profile)
}

func TestProfileService_GetEntrepreneurProfile_NeverSaved(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	fx.profileRepo.EXPECT().
		FindEntrepreneurByUserID(ctx, int64(7)).
		Return(nil, repository.ErrProfileNotFound)

	profile, err := fx.service.GetEntrepreneurProfile(ctx, 7)

	assert.Nil(t, profile)
	assert.True(t, errors.Is(err, domainerrors.ErrProfileNotFound))
}

func TestProfileService_UpdateEntrepreneurProfile(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	fx.profileRepo.EXPECT().
		UpsertEntrepreneur(ctx, mock.AnythingOfType("*entity.EntrepreneurProfile")).
		Run(func(ctx context.Context, profile *entity.EntrepreneurProfile) {
			profile.ID = 5
		}).
		Return(nil)

	profile, err := fx.service.UpdateEntrepreneurProfile(ctx, 7, &usecase.UpdateEntrepreneurProfileInput{
		Bio:    "Textile entrepreneur",
		Skills: "weaving, dyeing",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(5), profile.ID)
	assert.Equal(t, int64(7), profile.UserID)
	assert.Equal(t, "Textile entrepreneur", profile.Bio)
}

func TestProfileService_GetInvestorProfile_NeverSaved(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	fx.profileRepo.EXPECT().
		FindInvestorByUserID(ctx, int64(7)).
		Return(nil, repository.ErrProfileNotFound)

	profile, err := fx.service.GetInvestorProfile(ctx, 7)

	assert.Nil(t, profile)
	assert.True(t, errors.Is(err, domainerrors.ErrProfileNotFound))
}

func TestProfileService_UpdateInvestorProfile(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	fx.profileRepo.EXPECT().
		UpsertInvestor(ctx, mock.AnythingOfType("*entity.InvestorProfile")).
		Return(nil)

	profile, err := fx.service.UpdateInvestorProfile(ctx, 7, &usecase.UpdateInvestorProfileInput{
		CompanyName: "Sahel Ventures",
		Country:     "Senegal",
		City:        "Dakar",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(7), profile.UserID)
	assert.Equal(t, "Sahel Ventures", profile.CompanyName)
}

func TestProfileService_ListEntrepreneurs(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	users := []*entity.User{
		{
			ID:                  7,
			FirstName:           "Amina",
			LastName:            "Diallo",
			Email:               "amina@example.com",
			Role:                entity.RoleEntrepreneur,
			EntrepreneurProfile: &entity.EntrepreneurProfile{UserID: 7, Bio: "Textile entrepreneur"},
		},
		{
			// Registered but never filled in a profile; still listed.
			ID:        8,
			FirstName: "Fatou",
			LastName:  "Ndiaye",
			Email:     "fatou@example.com",
			Role:      entity.RoleEntrepreneur,
		},
	}

	fx.userRepo.EXPECT().ListByRole(ctx, entity.RoleEntrepreneur).Return(users, nil)

	profiles, err := fx.service.ListEntrepreneurs(ctx)

	require.NoError(t, err)
	require.Len(t, profiles, 2)
	assert.Equal(t, "Amina", profiles[0].FirstName)
	assert.NotNil(t, profiles[0].Entrepreneur)
	assert.Nil(t, profiles[1].Entrepreneur)
}

func TestProfileService_ListInvestors(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	users := []*entity.User{
		{
			ID:              9,
			FirstName:       "Mariam",
			LastName:        "Traore",
			Email:           "mariam@example.com",
			Role:            entity.RoleInvestor,
			InvestorProfile: &entity.InvestorProfile{UserID: 9, CompanyName: "Sahel Ventures"},
		},
	}

	fx.userRepo.EXPECT().ListByRole(ctx, entity.RoleInvestor).Return(users, nil)

	profiles, err := fx.service.ListInvestors(ctx)

	require.NoError(t, err)
	require.Len(t, profiles, 1)
	assert.Equal(t, "Sahel Ventures", profiles[0].Investor.CompanyName)
}
