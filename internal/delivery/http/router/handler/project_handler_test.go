package handler

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"wchub/internal/delivery/http/middleware"
	"wchub/internal/domain/entity"
	mockUC "wchub/internal/mocks/usecase"
	"wchub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func multipartBody(t *testing.T, fields map[string]string, imageField, imageName string, imageData []byte) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}

	if imageField != "" {
		header := textproto.MIMEHeader{}
		header.Set("Content-Disposition", `form-data; name="`+imageField+`"; filename="`+imageName+`"`)
		header.Set("Content-Type", "image/png")
		part, err := writer.CreatePart(header)
		require.NoError(t, err)
		_, err = part.Write(imageData)
		require.NoError(t, err)
	}

	require.NoError(t, writer.Close())

	return body, writer.FormDataContentType()
}

func TestProjectHandler_Create_Multipart(t *testing.T) {
	projectUC := mockUC.NewMockProjectUsecase(t)
	h := NewProjectHandler(projectUC, discardLogger())

	imageData := []byte{0x89, 0x50, 0x4E, 0x47}
	body, contentType := multipartBody(t, map[string]string{
		"title":       "Solar Sewing Collective",
		"description": "Community workshop powered by solar panels",
		"fundingGoal": "5000",
	}, "projectImage", "workshop.png", imageData)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/projects", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.ContextKeyUserID, int64(7))

	projectUC.EXPECT().
		CreateProject(mock.Anything, int64(7), mock.AnythingOfType("*usecase.CreateProjectInput")).
		RunAndReturn(func(ctx context.Context, ownerID int64, input *usecase.CreateProjectInput) (*entity.Project, error) {
			assert.Equal(t, "Solar Sewing Collective", input.Title)
			assert.Equal(t, "Community workshop powered by solar panels", input.Description)
			assert.Equal(t, 5000, input.FundingGoal)
			require.NotNil(t, input.Image)
			assert.Equal(t, "workshop.png", input.Image.Filename)
			assert.Equal(t, "image/png", input.Image.ContentType)
			assert.Equal(t, imageData, input.Image.Data)

			return &entity.Project{ID: 10, UserID: ownerID, Title: input.Title}, nil
		})

	require.NoError(t, h.Create(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":10`)
}

func TestProjectHandler_Create_JSON(t *testing.T) {
	projectUC := mockUC.NewMockProjectUsecase(t)
	h := NewProjectHandler(projectUC, discardLogger())

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/projects",
		bytes.NewReader([]byte(`{"title":"Solar Sewing Collective","description":"Community workshop"}`)))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.ContextKeyUserID, int64(7))

	projectUC.EXPECT().
		CreateProject(mock.Anything, int64(7), mock.AnythingOfType("*usecase.CreateProjectInput")).
		RunAndReturn(func(ctx context.Context, ownerID int64, input *usecase.CreateProjectInput) (*entity.Project, error) {
			assert.Equal(t, "Solar Sewing Collective", input.Title)
			assert.Nil(t, input.Image)

			return &entity.Project{ID: 11, UserID: ownerID, Title: input.Title}, nil
		})

	require.NoError(t, h.Create(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestProjectHandler_Update_Multipart(t *testing.T) {
	projectUC := mockUC.NewMockProjectUsecase(t)
	h := NewProjectHandler(projectUC, discardLogger())

	body, contentType := multipartBody(t, map[string]string{
		"title": "Renamed Collective",
	}, "", "", nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPut, "/api/projects/10", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("10")
	c.Set(middleware.ContextKeyUserID, int64(7))
	c.Set(middleware.ContextKeyRole, entity.RoleEntrepreneur)

	projectUC.EXPECT().
		UpdateProject(mock.Anything, int64(7), entity.RoleEntrepreneur, int64(10),
			mock.AnythingOfType("*usecase.UpdateProjectInput")).
		RunAndReturn(func(ctx context.Context, actorID int64, actorRole entity.Role, projectID int64, input *usecase.UpdateProjectInput) (*entity.Project, error) {
			require.NotNil(t, input.Title)
			assert.Equal(t, "Renamed Collective", *input.Title)
			assert.Nil(t, input.Description)

			return &entity.Project{ID: projectID, UserID: actorID, Title: *input.Title}, nil
		})

	require.NoError(t, h.Update(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Renamed Collective")
}

func TestProjectHandler_Delete_NoContent(t *testing.T) {
	projectUC := mockUC.NewMockProjectUsecase(t)
	h := NewProjectHandler(projectUC, discardLogger())

	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/api/projects/10", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("10")
	c.Set(middleware.ContextKeyUserID, int64(7))
	c.Set(middleware.ContextKeyRole, entity.RoleEntrepreneur)

	projectUC.EXPECT().
		DeleteProject(mock.Anything, int64(7), entity.RoleEntrepreneur, int64(10)).
		Return(nil)

	require.NoError(t, h.Delete(c))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}
