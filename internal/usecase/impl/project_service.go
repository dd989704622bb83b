package impl

import (
	"context"
	"log/slog"
	"path"
	"slices"
	"strings"

	"wchub/config"
	deliverycontext "wchub/internal/delivery/context"
	"wchub/internal/domain/entity"
	domainerrors "wchub/internal/domain/errors"
	"wchub/internal/domain/repository"
	"wchub/internal/domain/service"
	"wchub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// projectService implements the ProjectUsecase interface.
type projectService struct {
	projectRepo  repository.ProjectRepository
	imageStore   service.ImageStore
	qrService    service.QRCodeService
	maxImageSize int64
	allowedTypes []string
	logger       *slog.Logger
}

// ProjectServiceParams holds dependencies for projectService, injected by Fx.
type ProjectServiceParams struct {
	fx.In

	ProjectRepo repository.ProjectRepository
	ImageStore  service.ImageStore
	QRService   service.QRCodeService
	Config      *config.Config
	Logger      *slog.Logger
}

// NewProjectService is the constructor for projectService.
func NewProjectService(params ProjectServiceParams) usecase.ProjectUsecase {
	var maxImageSize int64
	var allowedTypes []string
	if params.Config != nil && params.Config.Upload != nil {
		maxImageSize = int64(params.Config.Upload.MaxSizeMB) << 20
		allowedTypes = params.Config.Upload.AllowedTypes
	}

	return &projectService{
		projectRepo:  params.ProjectRepo,
		imageStore:   params.ImageStore,
		qrService:    params.QRService,
		maxImageSize: maxImageSize,
		allowedTypes: allowedTypes,
		logger:       params.Logger,
	}
}

func (srv *projectService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateProject creates a listing owned by the caller, storing the image
// first when one was uploaded.
func (srv *projectService) CreateProject(ctx context.Context, ownerID int64, input *usecase.CreateProjectInput) (*entity.Project, error) {
	if input == nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("missing project input")
	}

	if strings.TrimSpace(input.Title) == "" || strings.TrimSpace(input.Description) == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("title and description are required")
	}
	if input.FundingGoal < 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("funding goal cannot be negative")
	}

	status := entity.ProjectStatus(input.Status)
	if input.Status == "" {
		status = entity.ProjectStatusDraft
	}
	if !status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown project status")
	}

	imageURL, err := srv.storeImage(ctx, input.Image)
	if err != nil {
		return nil, err
	}

	project := &entity.Project{
		UserID:               ownerID,
		Title:                strings.TrimSpace(input.Title),
		Description:          input.Description,
		Email:                input.Email,
		Category:             input.Category,
		Location:             input.Location,
		Country:              input.Country,
		FundingGoal:          input.FundingGoal,
		Timeline:             input.Timeline,
		TeamSize:             input.TeamSize,
		ImageURL:             imageURL,
		VideoURL:             input.VideoURL,
		BusinessPlan:         input.BusinessPlan,
		TargetMarket:         input.TargetMarket,
		CompetitiveAdvantage: input.CompetitiveAdvantage,
		PreviousExperience:   input.PreviousExperience,
		Status:               status,
	}

	if err := srv.projectRepo.Create(ctx, project); err != nil {
		srv.log(ctx).Error("Failed to create project", slog.Int64("ownerID", ownerID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Project created", slog.Int64("projectID", project.ID), slog.Int64("ownerID", ownerID))

	return project, nil
}

// GetProject returns a single listing.
func (srv *projectService) GetProject(ctx context.Context, id int64) (*entity.Project, error) {
	project, err := srv.projectRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProjectNotFound) {
			return nil, domainerrors.ErrProjectNotFound
		}

		return nil, errors.Wrap(err, "failed to load project")
	}

	return project, nil
}

// ListProjects returns all listings, or only the owner's when ownerID is set.
func (srv *projectService) ListProjects(ctx context.Context, ownerID *int64) ([]*entity.Project, error) {
	projects, err := srv.projectRepo.List(ctx, ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list projects")
	}

	return projects, nil
}

// UpdateProject applies the provided changes after an ownership check.
// Admins may update any listing.
func (srv *projectService) UpdateProject(ctx context.Context, actorID int64, actorRole entity.Role, projectID int64, input *usecase.UpdateProjectInput) (*entity.Project, error) {
	if input == nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("missing project input")
	}

	project, err := srv.projectRepo.FindByID(ctx, projectID)
	if err != nil {
		if errors.Is(err, repository.ErrProjectNotFound) {
			return nil, domainerrors.ErrProjectNotFound
		}

		return nil, errors.Wrap(err, "failed to load project")
	}

	if project.UserID != actorID && actorRole != entity.RoleAdmin {
		srv.log(ctx).Warn("Project update forbidden",
			slog.Int64("projectID", projectID), slog.Int64("actorID", actorID))

		return nil, domainerrors.ErrForbidden
	}

	applyProjectChanges(project, input)

	if input.Status != nil {
		status := entity.ProjectStatus(*input.Status)
		if !status.IsValid() {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown project status")
		}
		project.Status = status
	}

	if input.Image != nil {
		imageURL, err := srv.storeImage(ctx, input.Image)
		if err != nil {
			return nil, err
		}
		project.ImageURL = imageURL
	}

	if err := srv.projectRepo.Update(ctx, project); err != nil {
		srv.log(ctx).Error("Failed to update project", slog.Int64("projectID", projectID), slog.Any("error", err))

		return nil, err
	}

	return project, nil
}

// DeleteProject removes a listing after an ownership check. Admins may
// delete any listing.
func (srv *projectService) DeleteProject(ctx context.Context, actorID int64, actorRole entity.Role, projectID int64) error {
	project, err := srv.projectRepo.FindByID(ctx, projectID)
	if err != nil {
		if errors.Is(err, repository.ErrProjectNotFound) {
			return domainerrors.ErrProjectNotFound
		}

		return errors.Wrap(err, "failed to load project")
	}

	if project.UserID != actorID && actorRole != entity.RoleAdmin {
		srv.log(ctx).Warn("Project delete forbidden",
			slog.Int64("projectID", projectID), slog.Int64("actorID", actorID))

		return domainerrors.ErrForbidden
	}

	if err := srv.projectRepo.Delete(ctx, projectID); err != nil {
		if errors.Is(err, repository.ErrProjectNotFound) {
			return domainerrors.ErrProjectNotFound
		}

		return err
	}

	srv.log(ctx).Info("Project deleted", slog.Int64("projectID", projectID), slog.Int64("actorID", actorID))

	return nil
}

// ProjectShareQR renders a PNG QR code linking to the project's page.
func (srv *projectService) ProjectShareQR(ctx context.Context, projectID int64) ([]byte, error) {
	if _, err := srv.GetProject(ctx, projectID); err != nil {
		return nil, err
	}

	png, err := srv.qrService.GenerateProjectQR(projectID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate project qr code")
	}

	return png, nil
}

// storeImage validates and persists an uploaded image, returning its URL.
// A nil upload returns an empty URL.
func (srv *projectService) storeImage(ctx context.Context, image *usecase.ImageUpload) (string, error) {
	if image == nil {
		return "", nil
	}

	if srv.maxImageSize > 0 && int64(len(image.Data)) > srv.maxImageSize {
		return "", domainerrors.ErrImageRejected.WrapMessage("image exceeds size limit")
	}
	if len(srv.allowedTypes) > 0 && !slices.Contains(srv.allowedTypes, image.ContentType) {
		return "", domainerrors.ErrImageRejected.WrapMessage("unsupported image type " + image.ContentType)
	}

	// Random key keeps uploads from colliding or overwriting each other.
	key := uuid.NewString() + strings.ToLower(path.Ext(image.Filename))

	url, err := srv.imageStore.Save(ctx, key, image.ContentType, image.Data)
	if err != nil {
		srv.log(ctx).Error("Failed to store project image", slog.Any("error", err))

		return "", errors.Wrap(err, "failed to store project image")
	}

	return url, nil
}

func applyProjectChanges(project *entity.Project, input *usecase.UpdateProjectInput) {
	setString := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}

	setString(&project.Title, input.Title)
	setString(&project.Description, input.Description)
	setString(&project.Email, input.Email)
	setString(&project.Category, input.Category)
	setString(&project.Location, input.Location)
	setString(&project.Country, input.Country)
	setString(&project.Timeline, input.Timeline)
	setString(&project.VideoURL, input.VideoURL)
	setString(&project.BusinessPlan, input.BusinessPlan)
	setString(&project.TargetMarket, input.TargetMarket)
	setString(&project.CompetitiveAdvantage, input.CompetitiveAdvantage)
	setString(&project.PreviousExperience, input.PreviousExperience)

	if input.FundingGoal != nil {
		project.FundingGoal = *input.FundingGoal
	}
	if input.TeamSize != nil {
		project.TeamSize = *input.TeamSize
	}
}
