package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"wchub/internal/domain/entity"
	mockUC "wchub/internal/mocks/usecase"
	"wchub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestAuthHandler_Register(t *testing.T) {
	userUC := mockUC.NewMockUserUsecase(t)
	h := NewAuthHandler(userUC, discardLogger())

	body := `{"firstName":"Amina","lastName":"Diallo","email":"amina@example.com","password":"Password123!"}`

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	userUC.EXPECT().
		Register(mock.Anything, mock.AnythingOfType("*usecase.RegisterInput")).
		RunAndReturn(func(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
			assert.Equal(t, "amina@example.com", input.Email)
			assert.Equal(t, "Amina", input.FirstName)

			return &usecase.AuthOutput{
				Token: "signed.jwt",
				User:  &entity.User{ID: 42, Email: input.Email, Role: entity.RoleEntrepreneur},
			}, nil
		})

	require.NoError(t, h.Register(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"token":"signed.jwt"`)
	assert.Contains(t, rec.Body.String(), `"success":true`)
	// The password hash must never leak into a response payload.
	assert.NotContains(t, rec.Body.String(), "passwordHash")
}

func TestAuthHandler_Login(t *testing.T) {
	userUC := mockUC.NewMockUserUsecase(t)
	h := NewAuthHandler(userUC, discardLogger())

	body := `{"email":"amina@example.com","password":"Password123!"}`

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	userUC.EXPECT().
		Login(mock.Anything, mock.AnythingOfType("*usecase.LoginInput")).
		Return(&usecase.AuthOutput{
			Token: "signed.jwt",
			User:  &entity.User{ID: 42, Email: "amina@example.com"},
		}, nil)

	require.NoError(t, h.Login(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"token":"signed.jwt"`)
}

func TestAuthHandler_Register_BindingError(t *testing.T) {
	userUC := mockUC.NewMockUserUsecase(t)
	h := NewAuthHandler(userUC, discardLogger())

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader("{not json"))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Register(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_INPUT")
}
