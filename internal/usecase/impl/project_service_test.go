package impl

import (
	"bytes"
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

// projectServiceFixtures holds all test dependencies for project service tests.
type projectServiceFixtures struct {
	service     usecase.ProjectUsecase
	projectRepo *mockRepo.MockProjectRepository
	imageStore  *mockSvc.MockImageStore
	qrService   *mockSvc.MockQRCodeService
}

func createTestProjectService(t *testing.T) projectServiceFixtures {
	projectRepo := mockRepo.NewMockProjectRepository(t)
	imageStore := mockSvc.NewMockImageStore(t)
	qrService := mockSvc.NewMockQRCodeService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := &config.Config{
		Upload: &config.UploadConfig{
			MaxSizeMB:    2,
			AllowedTypes: []string{"image/jpeg", "image/png", "image/webp"},
		},
	}

	service := NewProjectService(ProjectServiceParams{
		ProjectRepo: projectRepo,
		ImageStore:  imageStore,
		QRService:   qrService,
		Config:      cfg,
		Logger:      logger,
	})

	return projectServiceFixtures{
		service:     service,
		projectRepo: projectRepo,
		imageStore:  imageStore,
		qrService:   qrService,
	}
}

func TestProjectService_CreateProject_Success(t *testing.T) {
	fx := createTestProjectService(t)

	ctx := context.Background()
	input := &usecase.CreateProjectInput{
		Title:       "  Solar Sewing Collective ",
		Description: "Community workshop powered by solar panels",
		Category:    "energy",
		FundingGoal: 5000,
	}

	fx.projectRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Project")).
		Run(func(ctx context.Context, project *entity.Project) {
			project.ID = 10
		}).
		Return(nil)

	project, err := fx.service.CreateProject(ctx, 7, input)

	require.NoError(t, err)
	assert.Equal(t, int64(10), project.ID)
	assert.Equal(t, int64(7), project.UserID)
	assert.Equal(t, "Solar Sewing Collective", project.Title)
	assert.Equal(t, entity.ProjectStatusDraft, project.Status)
	assert.Empty(t, project.ImageURL)
}

func TestProjectService_CreateProject_WithImage(t *testing.T) {
	fx := createTestProjectService(t)

	ctx := context.Background()
	input := &usecase.CreateProjectInput{
		Title:       "Solar Sewing Collective",
		Description: "Community workshop powered by solar panels",
		Image: &usecase.ImageUpload{
			Filename:    "Workshop.PNG",
			ContentType: "image/png",
			Data:        []byte{0x89, 0x50, 0x4E, 0x47},
		},
	}

	fx.imageStore.EXPECT().
		Save(ctx, mock.AnythingOfType("string"), "image/png", input.Image.Data).
		RunAndReturn(func(ctx context.Context, key, contentType string, data []byte) (string, error) {
			assert.Contains(t, key, ".png")

			return "/uploads/" + key, nil
		})
	fx.projectRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Project")).
		Return(nil)

	project, err := fx.service.CreateProject(ctx, 7, input)

	require.NoError(t, err)
	assert.Contains(t, project.ImageURL, "/uploads/")
}

func TestProjectService_CreateProject_ImageTooLarge(t *testing.T) {
	fx := createTestProjectService(t)

	input := &usecase.CreateProjectInput{
		Title:       "Solar Sewing Collective",
		Description: "Community workshop powered by solar panels",
		Image: &usecase.ImageUpload{
			Filename:    "huge.png",
			ContentType: "image/png",
			Data:        bytes.Repeat([]byte{0xFF}, (2<<20)+1),
		},
	}

	project, err := fx.service.CreateProject(context.Background(), 7, input)

	assert.Nil(t, project)
	assert.True(t, errors.Is(err, domainerrors.ErrImageRejected))
}

func TestProjectService_CreateProject_UnsupportedImageType(t *testing.T) {
	fx := createTestProjectService(t)

	input := &usecase.CreateProjectInput{
		Title:       "Solar Sewing Collective",
		Description: "Community workshop powered by solar panels",
		Image: &usecase.ImageUpload{
			Filename:    "plan.pdf",
			ContentType: "application/pdf",
			Data:        []byte("%PDF-1.4"),
		},
	}

	project, err := fx.service.CreateProject(context.Background(), 7, input)

	assert.Nil(t, project)
	assert.True(t, errors.Is(err, domainerrors.ErrImageRejected))
}

func TestProjectService_CreateProject_MissingTitle(t *testing.T) {
	fx := createTestProjectService(t)

	project, err := fx.service.CreateProject(context.Background(), 7, &usecase.CreateProjectInput{
		Description: "no title",
	})

	assert.Nil(t, project)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestProjectService_CreateProject_UnknownStatus(t *testing.T) {
	fx := createTestProjectService(t)

	project, err := fx.service.CreateProject(context.Background(), 7, &usecase.CreateProjectInput{
		Title:       "Solar Sewing Collective",
		Description: "Community workshop powered by solar panels",
		Status:      "archived",
	})

	assert.Nil(t, project)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestProjectService_UpdateProject_OwnerSuccess(t *testing.T) {
	fx := createTestProjectService(t)

	ctx := context.Background()
	fx.projectRepo.EXPECT().
		FindByID(ctx, int64(10)).
		Return(&entity.Project{ID: 10, UserID: 7, Title: "Old", Status: entity.ProjectStatusDraft}, nil)
	fx.projectRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Project")).
		Return(nil)

	title := "New Title"
	status := "active"
	project, err := fx.service.UpdateProject(ctx, 7, entity.RoleEntrepreneur, 10, &usecase.UpdateProjectInput{
		Title:  &title,
		Status: &status,
	})

	require.NoError(t, err)
	assert.Equal(t, "New Title", project.Title)
	assert.Equal(t, entity.ProjectStatusActive, project.Status)
}

func TestProjectService_UpdateProject_NotOwner(t *testing.T) {
	fx := createTestProjectService(t)

	ctx := context.Background()
	fx.projectRepo.EXPECT().
		FindByID(ctx, int64(10)).
		Return(&entity.Project{ID: 10, UserID: 7}, nil)

	title := "Hijacked"
	project, err := fx.service.UpdateProject(ctx, 8, entity.RoleEntrepreneur, 10, &usecase.UpdateProjectInput{
		Title: &title,
	})

	assert.Nil(t, project)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestProjectService_UpdateProject_AdminBypass(t *testing.T) {
	fx := createTestProjectService(t)

	ctx := context.Background()
	fx.projectRepo.EXPECT().
		FindByID(ctx, int64(10)).
		Return(&entity.Project{ID: 10, UserID: 7, Status: entity.ProjectStatusDraft}, nil)
	fx.projectRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Project")).
		Return(nil)

	title := "Moderated Title"
	project, err := fx.service.UpdateProject(ctx, 1, entity.RoleAdmin, 10, &usecase.UpdateProjectInput{
		Title: &title,
	})

	require.NoError(t, err)
	assert.Equal(t, "Moderated Title", project.Title)
}

func TestProjectService_DeleteProject_NotOwner(t *testing.T) {
	fx := createTestProjectService(t)

	ctx := context.Background()
	fx.projectRepo.EXPECT().
		FindByID(ctx, int64(10)).
		Return(&entity.Project{ID: 10, UserID: 7}, nil)

	err := fx.service.DeleteProject(ctx, 8, entity.RoleInvestor, 10)

	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestProjectService_DeleteProject_AdminBypass(t *testing.T) {
	fx := createTestProjectService(t)

	ctx := context.Background()
	fx.projectRepo.EXPECT().
		FindByID(ctx, int64(10)).
		Return(&entity.Project{ID: 10, UserID: 7}, nil)
	fx.projectRepo.EXPECT().Delete(ctx, int64(10)).Return(nil)

	err := fx.service.DeleteProject(ctx, 1, entity.RoleAdmin, 10)

	require.NoError(t, err)
}

func TestProjectService_GetProject_NotFound(t *testing.T) {
	fx := createTestProjectService(t)

	ctx := context.Background()
	fx.projectRepo.EXPECT().FindByID(ctx, int64(99)).Return(nil, repository.ErrProjectNotFound)

	project, err := fx.service.GetProject(ctx, 99)

	assert.Nil(t, project)
	assert.True(t, errors.Is(err, domainerrors.ErrProjectNotFound))
}

func TestProjectService_ListProjects_ByOwner(t *testing.T) {
	fx := createTestProjectService(t)

	ctx := context.Background()
	ownerID := int64(7)
	expected := []*entity.Project{{ID: 10, UserID: 7}}

	fx.projectRepo.EXPECT().List(ctx, &ownerID).Return(expected, nil)

	projects, err := fx.service.ListProjects(ctx, &ownerID)

	require.NoError(t, err)
	assert.Equal(t, expected, projects)
}

func TestProjectService_ProjectShareQR(t *testing.T) {
	fx := createTestProjectService(t)

	ctx := context.Background()
	png := []byte{0x89, 0x50, 0x4E, 0x47}

	fx.projectRepo.EXPECT().FindByID(ctx, int64(10)).Return(&entity.Project{ID: 10}, nil)
	fx.qrService.EXPECT().GenerateProjectQR(int64(10)).Return(png, nil)

	got, err := fx.service.ProjectShareQR(ctx, 10)

	require.NoError(t, err)
	assert.Equal(t, png, got)
}

func TestProjectService_ProjectShareQR_NotFound(t *testing.T) {
	fx := createTestProjectService(t)

	ctx := context.Background()
	fx.projectRepo.EXPECT().FindByID(ctx, int64(99)).Return(nil, repository.ErrProjectNotFound)

	got, err := fx.service.ProjectShareQR(ctx, 99)

	assert.Nil(t, got)
	assert.True(t, errors.Is(err, domainerrors.ErrProjectNotFound))
}
