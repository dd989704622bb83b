package postgres

import (
	"context"

	"wchub/internal/domain/entity"
	domainerrors "wchub/internal/domain/errors"
	"wchub/internal/domain/repository"
	"wchub/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// projectRepository implements the repository.ProjectRepository interface.
type projectRepository struct {
	db *gorm.DB
}

// NewProjectRepository is the constructor for projectRepository.
func NewProjectRepository(db *gorm.DB) repository.ProjectRepository {
	return &projectRepository{db: db}
}

// Create persists a new project listing.
func (repo *projectRepository) Create(ctx context.Context, project *entity.Project) error {
	projectM := fromProjectDomain(project)

	if err := repo.db.WithContext(ctx).Create(projectM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("project owner does not exist")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required project information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create project")
	}

	project.ID = projectM.ID
	project.CreatedAt = projectM.CreatedAt
	project.UpdatedAt = projectM.UpdatedAt

	return nil
}

// FindByID retrieves a single project by its unique ID.
func (repo *projectRepository) FindByID(ctx context.Context, id int64) (*entity.Project, error) {
	var projectM model.ProjectModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&projectM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProjectNotFound
		}

		return nil, errors.Wrap(err, "failed to find project by id")
	}

	return toProjectDomain(&projectM), nil
}

// List retrieves projects newest-first, optionally filtered by owner.
func (repo *projectRepository) List(ctx context.Context, ownerID *int64) ([]*entity.Project, error) {
	var projectModels []*model.ProjectModel

	query := repo.db.WithContext(ctx).Order("created_at DESC")
	if ownerID != nil {
		query = query.Where("user_id = ?", *ownerID)
	}

	if err := query.Find(&projectModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list projects")
	}

	projects := make([]*entity.Project, 0, len(projectModels))
	for _, projectM := range projectModels {
		projects = append(projects, toProjectDomain(projectM))
	}

	return projects, nil
}

// Update modifies an existing project listing.
func (repo *projectRepository) Update(ctx context.Context, project *entity.Project) error {
	projectM := fromProjectDomain(project)

	if err := repo.db.WithContext(ctx).Save(projectM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update project")
	}

	project.UpdatedAt = projectM.UpdatedAt

	return nil
}

// Delete removes a project listing by its unique ID.
func (repo *projectRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).Delete(&model.ProjectModel{}, id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete project")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProjectNotFound
	}

	return nil
}

// Count returns the total number of project listings.
func (repo *projectRepository) Count(ctx context.Context) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).Model(&model.ProjectModel{}).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count projects")
	}

	return count, nil
}

func toProjectDomain(projectM *model.ProjectModel) *entity.Project {
	return &entity.Project{
		ID:                   projectM.ID,
		UserID:               projectM.UserID,
		Title:                projectM.Title,
		Description:          projectM.Description,
		Email:                projectM.Email,
		Category:             projectM.Category,
		Location:             projectM.Location,
		Country:              projectM.Country,
		FundingGoal:          projectM.FundingGoal,
		Timeline:             projectM.Timeline,
		TeamSize:             projectM.TeamSize,
		ImageURL:             projectM.ImageURL,
		VideoURL:             projectM.VideoURL,
		BusinessPlan:         projectM.BusinessPlan,
		TargetMarket:         projectM.TargetMarket,
		CompetitiveAdvantage: projectM.CompetitiveAdvantage,
		PreviousExperience:   projectM.PreviousExperience,
		Status:               entity.ProjectStatus(projectM.Status),
		CreatedAt:            projectM.CreatedAt,
		UpdatedAt:            projectM.UpdatedAt,
	}
}

func fromProjectDomain(project *entity.Project) *model.ProjectModel {
	return &model.ProjectModel{
		ID:                   project.ID,
		UserID:               project.UserID,
		Title:                project.Title,
		Description:          project.Description,
		Email:                project.Email,
		Category:             project.Category,
		Location:             project.Location,
		Country:              project.Country,
		FundingGoal:          project.FundingGoal,
		Timeline:             project.Timeline,
		TeamSize:             project.TeamSize,
		ImageURL:             project.ImageURL,
		VideoURL:             project.VideoURL,
		BusinessPlan:         project.BusinessPlan,
		TargetMarket:         project.TargetMarket,
		CompetitiveAdvantage: project.CompetitiveAdvantage,
		PreviousExperience:   project.PreviousExperience,
		Status:               project.Status.String(),
		CreatedAt:            project.CreatedAt,
	}
}
