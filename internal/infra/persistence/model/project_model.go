package model

import "time"

// ProjectModel mirrors the 'projects' table. Every project references its
// owning user; listings default to draft status.
type ProjectModel struct {
	ID                   int64  `gorm:"primaryKey;autoIncrement"`
	UserID               int64  `gorm:"not null;index"`
	Title                string `gorm:"type:varchar(200);not null"`
	Description          string `gorm:"type:text;not null"`
	Email                string `gorm:"type:varchar(100);not null"`
	Category             string `gorm:"type:varchar(100);not null"`
	Location             string `gorm:"type:varchar(100);not null"`
	Country              string `gorm:"type:varchar(100);not null"`
	FundingGoal          int    `gorm:"not null"`
	Timeline             string `gorm:"type:varchar(50)"`
	TeamSize             int    `gorm:"default:1"`
	ImageURL             string `gorm:"type:varchar(500)"`
	VideoURL             string `gorm:"type:varchar(500)"`
	BusinessPlan         string `gorm:"type:varchar(500)"`
	TargetMarket         string `gorm:"type:text"`
	CompetitiveAdvantage string `gorm:"type:text"`
	PreviousExperience   string `gorm:"type:varchar(100)"`
	Status               string `gorm:"type:varchar(20);not null;default:'draft'"`
	CreatedAt            time.Time
	UpdatedAt            time.Time

	User *UserModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (ProjectModel) TableName() string {
	return "projects"
}
