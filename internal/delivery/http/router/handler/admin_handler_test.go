package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	mockUC "wchub/internal/mocks/usecase"
	"wchub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAdminHandler_Dashboard(t *testing.T) {
	adminUC := mockUC.NewMockAdminUsecase(t)
	h := NewAdminHandler(adminUC, discardLogger())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/dashboard", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	adminUC.EXPECT().
		DashboardStats(mock.Anything).
		Return(&usecase.DashboardStats{
			TotalUsers:         25,
			TotalEntrepreneurs: 15,
			TotalInvestors:     9,
			TotalProjects:      40,
		}, nil)

	require.NoError(t, h.Dashboard(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"totalUsers":25`)
	assert.Contains(t, rec.Body.String(), `"totalProjects":40`)
}
