package usecase

import (
	"context"

	"wchub/internal/domain/entity"
)

// ImageUpload carries an uploaded project image through the usecase layer.
type ImageUpload struct {
	Filename    string
	ContentType string
	Data        []byte
}

// CreateProjectInput defines the data required to create a project listing.
// Form tags cover the multipart path used when an image accompanies the
// listing.
type CreateProjectInput struct {
	Title                string `json:"title" form:"title"`
	Description          string `json:"description" form:"description"`
	Email                string `json:"email" form:"email"`
	Category             string `json:"category" form:"category"`
	Location             string `json:"location" form:"location"`
	Country              string `json:"country" form:"country"`
	FundingGoal          int    `json:"fundingGoal" form:"fundingGoal"`
	Timeline             string `json:"timeline" form:"timeline"`
	TeamSize             int    `json:"teamSize" form:"teamSize"`
	VideoURL             string `json:"videoUrl" form:"videoUrl"`
	BusinessPlan         string `json:"businessPlan" form:"businessPlan"`
	TargetMarket         string `json:"targetMarket" form:"targetMarket"`
	CompetitiveAdvantage string `json:"competitiveAdvantage" form:"competitiveAdvantage"`
	PreviousExperience   string `json:"previousExperience" form:"previousExperience"`
	Status               string `json:"status" form:"status"`

	Image *ImageUpload `json:"-" form:"-"`
}

// UpdateProjectInput defines the updatable project fields. Nil pointers
// leave the stored value untouched.
type UpdateProjectInput struct {
	Title                *string `json:"title" form:"title"`
	Description          *string `json:"description" form:"description"`
	Email                *string `json:"email" form:"email"`
	Category             *string `json:"category" form:"category"`
	Location             *string `json:"location" form:"location"`
	Country              *string `json:"country" form:"country"`
	FundingGoal          *int    `json:"fundingGoal" form:"fundingGoal"`
	Timeline             *string `json:"timeline" form:"timeline"`
	TeamSize             *int    `json:"teamSize" form:"teamSize"`
	VideoURL             *string `json:"videoUrl" form:"videoUrl"`
	BusinessPlan         *string `json:"businessPlan" form:"businessPlan"`
	TargetMarket         *string `json:"targetMarket" form:"targetMarket"`
	CompetitiveAdvantage *string `json:"competitiveAdvantage" form:"competitiveAdvantage"`
	PreviousExperience   *string `json:"previousExperience" form:"previousExperience"`
	Status               *string `json:"status" form:"status"`

	Image *ImageUpload `json:"-" form:"-"`
}

// ProjectUsecase defines the interface for project listing operations.
type ProjectUsecase interface {
	CreateProject(ctx context.Context, ownerID int64, input *CreateProjectInput) (*entity.Project, error)
	GetProject(ctx context.Context, id int64) (*entity.Project, error)
	// ListProjects returns all projects, or only the owner's when ownerID is set.
	ListProjects(ctx context.Context, ownerID *int64) ([]*entity.Project, error)
	// UpdateProject enforces ownership. Admins may update any project.
	UpdateProject(ctx context.Context, actorID int64, actorRole entity.Role, projectID int64, input *UpdateProjectInput) (*entity.Project, error)
	// DeleteProject enforces ownership. Admins may delete any project.
	DeleteProject(ctx context.Context, actorID int64, actorRole entity.Role, projectID int64) error
	// ProjectShareQR renders a PNG QR code linking to the project's page.
	ProjectShareQR(ctx context.Context, projectID int64) ([]byte, error)
}
