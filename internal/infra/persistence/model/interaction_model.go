package model

import "time"

// InteractionModel mirrors the 'interactions' table: an append-only event
// log linking users to projects.
type InteractionModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	UserID    int64  `gorm:"not null;index"`
	ProjectID int64  `gorm:"not null;index"`
	Type      string `gorm:"type:varchar(20);not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (InteractionModel) TableName() string {
	return "interactions"
}
