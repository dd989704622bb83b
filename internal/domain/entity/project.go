// Package entity contains the core business objects of the project.
package entity

import "time"

// ProjectStatus represents the lifecycle state of a project listing.
type ProjectStatus string

const (
	// ProjectStatusDraft is the initial state of every new listing.
	ProjectStatusDraft ProjectStatus = "draft"
	// ProjectStatusActive marks a listing visible for funding.
	ProjectStatusActive ProjectStatus = "active"
	// ProjectStatusCompleted marks a listing that reached its goal.
	ProjectStatusCompleted ProjectStatus = "completed"
	// ProjectStatusCancelled marks a withdrawn listing.
	ProjectStatusCancelled ProjectStatus = "cancelled"
)

// String returns the string representation of the ProjectStatus.
func (s ProjectStatus) String() string {
	return string(s)
}

// IsValid checks if the ProjectStatus is a valid value.
func (s ProjectStatus) IsValid() bool {
	switch s {
	case ProjectStatusDraft, ProjectStatusActive, ProjectStatusCompleted, ProjectStatusCancelled:
		return true
	default:
		return false
	}
}

// ProjectCategories lists the categories a project can be filed under.
var ProjectCategories = []string{"Crafts", "Clothing", "Food", "Services", "Others"}

// Project is a crowdfunding listing owned by exactly one user.
type Project struct {
	ID                   int64         `json:"id"`
	UserID               int64         `json:"userId"`
	Title                string        `json:"title"`
	Description          string        `json:"description"`
	Email                string        `json:"email"`
	Category             string        `json:"category"`
	Location             string        `json:"location"`
	Country              string        `json:"country"`
	FundingGoal          int           `json:"fundingGoal"`
	Timeline             string        `json:"timeline"`
	TeamSize             int           `json:"teamSize"`
	ImageURL             string        `json:"imageUrl"`
	VideoURL             string        `json:"videoUrl"`
	BusinessPlan         string        `json:"businessPlan"`
	TargetMarket         string        `json:"targetMarket"`
	CompetitiveAdvantage string        `json:"competitiveAdvantage"`
	PreviousExperience   string        `json:"previousExperience"`
	Status               ProjectStatus `json:"status"`
	CreatedAt            time.Time     `json:"createdAt"`
	UpdatedAt            time.Time     `json:"updatedAt"`
}
