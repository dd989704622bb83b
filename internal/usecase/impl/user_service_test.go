package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"wchub/config"
	"wchub/internal/domain/entity"
	domainerrors "wchub/internal/domain/errors"
	"wchub/internal/domain/repository"
	mockRepo "wchub/internal/mocks/repository"
	mockSvc "wchub/internal/mocks/service"
	"wchub/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service      usecase.UserUsecase
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestUserService(t *testing.T, adminSecret string) userServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := &config.Config{
		Auth: &config.AuthConfig{AdminSecret: adminSecret},
	}

	service := NewUserService(UserServiceParams{
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Config:       cfg,
		Logger:       logger,
	})

	return userServiceFixtures{
		service:      service,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func TestUserService_Register_Success(t *testing.T) {
	fx := createTestUserService(t, "")

	ctx := context.Background()
	input := &usecase.RegisterInput{
		FirstName: "Amina",
		LastName:  "Diallo",
		Email:     "Amina@Example.com",
		Password:  "Password123!",
	}

	fx.userRepo.EXPECT().
		FindByEmail(ctx, "amina@example.com").
		Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, user *entity.User) {
			user.ID = 42
		}).
		Return(nil)
	fx.tokenService.EXPECT().Generate(int64(42), "entrepreneur").Return("signed.jwt", nil)

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "signed.jwt", output.Token)
	assert.Equal(t, "amina@example.com", output.User.Email)
	assert.Equal(t, entity.RoleEntrepreneur, output.User.Role)
	assert.Equal(t, "hashed_password", output.User.PasswordHash)
}

func TestUserService_Register_EmailInUse(t *testing.T) {
	fx := createTestUserService(t, "")

	ctx := context.Background()
	input := &usecase.RegisterInput{
		FirstName: "Amina",
		LastName:  "Diallo",
		Email:     "amina@example.com",
		Password:  "Password123!",
	}

	fx.userRepo.EXPECT().
		FindByEmail(ctx, "amina@example.com").
		Return(&entity.User{ID: 1, Email: "amina@example.com"}, nil)

	output, err := fx.service.Register(ctx, input)

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrEmailInUse))
}

func TestUserService_Register_ShortPassword(t *testing.T) {
	fx := createTestUserService(t, "")

	output, err := fx.service.Register(context.Background(), &usecase.RegisterInput{
		FirstName: "Amina",
		LastName:  "Diallo",
		Email:     "amina@example.com",
		Password:  "short",
	})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestUserService_Register_UnknownRole(t *testing.T) {
	fx := createTestUserService(t, "")

	output, err := fx.service.Register(context.Background(), &usecase.RegisterInput{
		FirstName: "Amina",
		LastName:  "Diallo",
		Email:     "amina@example.com",
		Password:  "Password123!",
		Role:      "superuser",
	})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestUserService_Register_AdminSecretMismatch(t *testing.T) {
	fx := createTestUserService(t, "top-secret")

	output, err := fx.service.Register(context.Background(), &usecase.RegisterInput{
		FirstName: "Root",
		LastName:  "Admin",
		Email:     "admin@example.com",
		Password:  "Password123!",
		Role:      "admin",
		SecretKey: "wrong-guess",
	})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidAdminSecret))
}

func TestUserService_Register_AdminSecretNotConfigured(t *testing.T) {
	fx := createTestUserService(t, "")

	// With no secret configured, admin self-registration is closed even
	// when the client sends an empty key.
	output, err := fx.service.Register(context.Background(), &usecase.RegisterInput{
		FirstName: "Root",
		LastName:  "Admin",
		Email:     "admin@example.com",
		Password:  "Password123!",
		Role:      "admin",
		SecretKey: "",
	})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidAdminSecret))
}

func TestUserService_Register_AdminSecretMatch(t *testing.T) {
	fx := createTestUserService(t, "top-secret")

	ctx := context.Background()
	input := &usecase.RegisterInput{
		FirstName: "Root",
		LastName:  "Admin",
		Email:     "admin@example.com",
		Password:  "Password123!",
		Role:      "admin",
		SecretKey: "top-secret",
	}

	fx.userRepo.EXPECT().
		FindByEmail(ctx, "admin@example.com").
		Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, user *entity.User) {
			user.ID = 1
		}).
		Return(nil)
	fx.tokenService.EXPECT().Generate(int64(1), "admin").Return("signed.jwt", nil)

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, output.User.Role)
}

func TestUserService_Login_Success(t *testing.T) {
	fx := createTestUserService(t, "")

	ctx := context.Background()
	user := &entity.User{
		ID:           7,
		Email:        "amina@example.com",
		PasswordHash: "hashed_password",
		Role:         entity.RoleInvestor,
	}

	fx.userRepo.EXPECT().FindByEmail(ctx, "amina@example.com").Return(user, nil)
	fx.hasher.EXPECT().Check("Password123!", "hashed_password").Return(true)
	fx.tokenService.EXPECT().Generate(int64(7), "investor").Return("signed.jwt", nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "Amina@example.com",
		Password: "Password123!",
	})

	require.NoError(t, err)
	assert.Equal(t, "signed.jwt", output.Token)
	assert.Equal(t, int64(7), output.User.ID)
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	fx := createTestUserService(t, "")

	ctx := context.Background()
	fx.userRepo.EXPECT().
		FindByEmail(ctx, "ghost@example.com").
		Return(nil, repository.ErrUserNotFound)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "ghost@example.com",
		Password: "Password123!",
	})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	fx := createTestUserService(t, "")

	ctx := context.Background()
	user := &entity.User{ID: 7, Email: "amina@example.com", PasswordHash: "hashed_password"}

	fx.userRepo.EXPECT().FindByEmail(ctx, "amina@example.com").Return(user, nil)
	fx.hasher.EXPECT().Check("nope", "hashed_password").Return(false)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "amina@example.com",
		Password: "nope",
	})

	assert.Nil(t, output)
	// The unknown-email and wrong-password paths must be indistinguishable.
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestUserService_UpdateUser_InvalidEmail(t *testing.T) {
	fx := createTestUserService(t, "")

	ctx := context.Background()
	fx.userRepo.EXPECT().
		FindByID(ctx, int64(7)).
		Return(&entity.User{ID: 7, Email: "amina@example.com"}, nil)

	badEmail := "not-an-email"
	output, err := fx.service.UpdateUser(ctx, 7, &usecase.UpdateUserInput{Email: &badEmail})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestUserService_UpdateUser_Success(t *testing.T) {
	fx := createTestUserService(t, "")

	ctx := context.Background()
	fx.userRepo.EXPECT().
		FindByID(ctx, int64(7)).
		Return(&entity.User{ID: 7, FirstName: "Amina", LastName: "Diallo", Email: "amina@example.com"}, nil)
	fx.userRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.User")).
		Return(nil)

	firstName := "  Mina "
	output, err := fx.service.UpdateUser(ctx, 7, &usecase.UpdateUserInput{FirstName: &firstName})

	require.NoError(t, err)
	assert.Equal(t, "Mina", output.FirstName)
	assert.Equal(t, "Diallo", output.LastName)
}

func TestUserService_GetUser_NotFound(t *testing.T) {
	fx := createTestUserService(t, "")

	ctx := context.Background()
	fx.userRepo.EXPECT().FindByID(ctx, int64(99)).Return(nil, repository.ErrUserNotFound)

	user, err := fx.service.GetUser(ctx, 99)

	assert.Nil(t, user)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}
