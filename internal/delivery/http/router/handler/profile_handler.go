package handler

import (
	"log/slog"
	"net/http"

	"wchub/internal/delivery/http/middleware"
	"wchub/internal/delivery/http/response"
	"wchub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProfileHandler holds dependencies for role-profile handlers.
type ProfileHandler struct {
	uc     usecase.ProfileUsecase
	logger *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler, injected by Fx.
func NewProfileHandler(uc usecase.ProfileUsecase, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{
		uc:     uc,
		logger: logger,
	}
}

// GetEntrepreneurProfile returns the caller's entrepreneur profile.
func (h *ProfileHandler) GetEntrepreneurProfile(c echo.Context) error {
	profile, err := h.uc.GetEntrepreneurProfile(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profile, "")
}

// UpdateEntrepreneurProfile creates or updates the caller's entrepreneur profile.
func (h *ProfileHandler) UpdateEntrepreneurProfile(c echo.Context) error {
	var input *usecase.UpdateEntrepreneurProfileInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}

	profile, err := h.uc.UpdateEntrepreneurProfile(c.Request().Context(), middleware.UserID(c), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profile, "Profile saved successfully")
}

// GetInvestorProfile returns the caller's investor profile.
func (h *ProfileHandler) GetInvestorProfile(c echo.Context) error {
	profile, err := h.uc.GetInvestorProfile(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profile, "")
}

// UpdateInvestorProfile creates or updates the caller's investor profile.
func (h *ProfileHandler) UpdateInvestorProfile(c echo.Context) error {
	var input *usecase.UpdateInvestorProfileInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}

	profile, err := h.uc.UpdateInvestorProfile(c.Request().Context(), middleware.UserID(c), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profile, "Profile saved successfully")
}

// ListEntrepreneurs returns the public entrepreneur directory.
func (h *ProfileHandler) ListEntrepreneurs(c echo.Context) error {
	profiles, err := h.uc.ListEntrepreneurs(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profiles, "")
}

// ListInvestors returns the public investor directory.
func (h *ProfileHandler) ListInvestors(c echo.Context) error {
	profiles, err := h.uc.ListInvestors(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profiles, "")
}
