package model

import "time"

// EntrepreneurProfileModel mirrors the 'entrepreneur_profiles' table.
// One row per user, created lazily on the first profile write.
type EntrepreneurProfileModel struct {
	ID                  int64  `gorm:"primaryKey;autoIncrement"`
	UserID              int64  `gorm:"uniqueIndex;not null"`
	Bio                 string `gorm:"type:text"`
	Skills              string `gorm:"type:varchar(255)"`
	BusinessCertificate string `gorm:"type:varchar(500)"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// TableName explicitly sets the table name for GORM.
func (EntrepreneurProfileModel) TableName() string {
	return "entrepreneur_profiles"
}

// InvestorProfileModel mirrors the 'investor_profiles' table.
type InvestorProfileModel struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	UserID      int64  `gorm:"uniqueIndex;not null"`
	CompanyName string `gorm:"type:varchar(255)"`
	Website     string `gorm:"type:varchar(500)"`
	Country     string `gorm:"type:varchar(100)"`
	City        string `gorm:"type:varchar(100)"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (InvestorProfileModel) TableName() string {
	return "investor_profiles"
}
