package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"wchub/internal/domain/entity"
	"wchub/internal/domain/service"
	mockSvc "wchub/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthTestContext(t *testing.T, authHeader string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestAuthMiddleware_Authenticate_Success(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc)

	tokenSvc.EXPECT().
		Validate("valid.jwt").
		Return(&service.Claims{UserID: 42, Role: "investor"}, nil)

	c, _ := newAuthTestContext(t, "Bearer valid.jwt")

	nextCalled := false
	next := func(c echo.Context) error {
		nextCalled = true
		assert.Equal(t, int64(42), UserID(c))
		assert.Equal(t, entity.RoleInvestor, UserRole(c))

		return nil
	}

	require.NoError(t, m.Authenticate(next)(c))
	assert.True(t, nextCalled)
}

func TestAuthMiddleware_Authenticate_MissingHeader(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc)

	c, rec := newAuthTestContext(t, "")

	next := func(c echo.Context) error {
		t.Fatal("next handler must not run without credentials")

		return nil
	}

	require.NoError(t, m.Authenticate(next)(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_Authenticate_NotBearer(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc)

	c, rec := newAuthTestContext(t, "Basic dXNlcjpwYXNz")

	next := func(c echo.Context) error {
		t.Fatal("next handler must not run without credentials")

		return nil
	}

	require.NoError(t, m.Authenticate(next)(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_Authenticate_InvalidToken(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc)

	tokenSvc.EXPECT().Validate("expired.jwt").Return(nil, errors.New("token is expired"))

	c, rec := newAuthTestContext(t, "Bearer expired.jwt")

	next := func(c echo.Context) error {
		t.Fatal("next handler must not run with a bad token")

		return nil
	}

	require.NoError(t, m.Authenticate(next)(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "UNAUTHORIZED")
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc)

	t.Run("matching role passes", func(t *testing.T) {
		c, _ := newAuthTestContext(t, "")
		c.Set(ContextKeyRole, entity.RoleAdmin)

		nextCalled := false
		next := func(c echo.Context) error {
			nextCalled = true

			return nil
		}

		require.NoError(t, m.RequireRole(entity.RoleAdmin)(next)(c))
		assert.True(t, nextCalled)
	})

	t.Run("other role is forbidden", func(t *testing.T) {
		c, rec := newAuthTestContext(t, "")
		c.Set(ContextKeyRole, entity.RoleEntrepreneur)

		next := func(c echo.Context) error {
			t.Fatal("next handler must not run for the wrong role")

			return nil
		}

		require.NoError(t, m.RequireRole(entity.RoleAdmin)(next)(c))
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("missing role is forbidden", func(t *testing.T) {
		c, rec := newAuthTestContext(t, "")

		next := func(c echo.Context) error {
			t.Fatal("next handler must not run without role information")

			return nil
		}

		require.NoError(t, m.RequireRole(entity.RoleAdmin)(next)(c))
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}
