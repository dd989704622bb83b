// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"crypto/subtle"
	"log/slog"
	"net/mail"
	"strings"

	"wchub/config"
	deliverycontext "wchub/internal/delivery/context"
	"wchub/internal/domain/entity"
	domainerrors "wchub/internal/domain/errors"
	"wchub/internal/domain/repository"
	"wchub/internal/domain/service"
	"wchub/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	adminSecret  string
	logger       *slog.Logger
}

// UserServiceParams holds dependencies for userService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Config       *config.Config
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	adminSecret := ""
	if params.Config != nil && params.Config.Auth != nil {
		adminSecret = params.Config.Auth.AdminSecret
	}

	return &userService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		adminSecret:  adminSecret,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a new account and returns a signed session token.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	if input == nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("missing registration input")
	}

	email := strings.TrimSpace(strings.ToLower(input.Email))

	if err := validateRegistration(input, email); err != nil {
		srv.log(ctx).Warn("Registration validation failed", slog.String("email", email), slog.Any("error", err))

		return nil, err
	}

	role := entity.Role(input.Role)
	if input.Role == "" {
		role = entity.RoleEntrepreneur
	}
	if !role.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown role")
	}

	// Admin accounts are gated by a shared secret. Compared in constant
	// time so the check leaks nothing about the configured value.
	if role == entity.RoleAdmin {
		if srv.adminSecret == "" ||
			subtle.ConstantTimeCompare([]byte(input.SecretKey), []byte(srv.adminSecret)) != 1 {
			srv.log(ctx).Warn("Admin registration rejected", slog.String("email", email))

			return nil, domainerrors.ErrInvalidAdminSecret
		}
	}

	if _, err := srv.userRepo.FindByEmail(ctx, email); err == nil {
		return nil, domainerrors.ErrEmailInUse
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to check existing email")
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash password")
	}

	user := &entity.User{
		FirstName:    strings.TrimSpace(input.FirstName),
		LastName:     strings.TrimSpace(input.LastName),
		Email:        email,
		PasswordHash: hashedPassword,
		Role:         role,
	}

	if err := srv.userRepo.Create(ctx, user); err != nil {
		srv.log(ctx).Error("Failed to create user", slog.String("email", email), slog.Any("error", err))

		return nil, err
	}

	token, err := srv.tokenService.Generate(user.ID, user.Role.String())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate session token")
	}

	srv.log(ctx).Info("User registered", slog.Int64("userID", user.ID), slog.String("role", user.Role.String()))

	return &usecase.AuthOutput{Token: token, User: user}, nil
}

// Login verifies credentials and returns a signed session token.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	if input == nil || input.Email == "" || input.Password == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("email and password are required")
	}

	email := strings.TrimSpace(strings.ToLower(input.Email))

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			// Same error as a wrong password, so responses do not reveal
			// which emails are registered.
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.Int64("userID", user.ID))

		return nil, domainerrors.ErrInvalidCredentials
	}

	token, err := srv.tokenService.Generate(user.ID, user.Role.String())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate session token")
	}

	srv.log(ctx).Info("User logged in", slog.Int64("userID", user.ID))

	return &usecase.AuthOutput{Token: token, User: user}, nil
}

// GetUser returns the account for the given ID.
func (srv *userService) GetUser(ctx context.Context, userID int64) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

// UpdateUser applies the provided account field changes.
func (srv *userService) UpdateUser(ctx context.Context, userID int64, input *usecase.UpdateUserInput) (*entity.User, error) {
	if input == nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("missing update input")
	}

	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	if input.FirstName != nil {
		user.FirstName = strings.TrimSpace(*input.FirstName)
	}
	if input.LastName != nil {
		user.LastName = strings.TrimSpace(*input.LastName)
	}
	if input.Email != nil {
		email := strings.TrimSpace(strings.ToLower(*input.Email))
		if _, err := mail.ParseAddress(email); err != nil {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("invalid email address")
		}
		user.Email = email
	}

	if err := srv.userRepo.Update(ctx, user); err != nil {
		srv.log(ctx).Error("Failed to update user", slog.Int64("userID", userID), slog.Any("error", err))

		return nil, err
	}

	return user, nil
}

func validateRegistration(input *usecase.RegisterInput, email string) error {
	if strings.TrimSpace(input.FirstName) == "" ||
		strings.TrimSpace(input.LastName) == "" ||
		email == "" ||
		input.Password == "" {
		return domainerrors.ErrValidationFailed.WrapMessage("firstName, lastName, email and password are required")
	}

	if _, err := mail.ParseAddress(email); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage("invalid email address")
	}

	if len(input.Password) < 8 {
		return domainerrors.ErrValidationFailed.WrapMessage("password must be at least 8 characters")
	}

	return nil
}
