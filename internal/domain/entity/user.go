// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is the core identity record. It holds the fields shared by every
// role; role-specific data lives in the profile extensions below.
type User struct {
	ID                  int64                `json:"id"`
	FirstName           string               `json:"firstName"`
	LastName            string               `json:"lastName"`
	Email               string               `json:"email"`
	PasswordHash        string               `json:"-"` // Never serialized into any response payload.
	Role                Role                 `json:"role"`
	EntrepreneurProfile *EntrepreneurProfile `json:"entrepreneurProfile,omitempty"` // Nil until the first profile write.
	InvestorProfile     *InvestorProfile     `json:"investorProfile,omitempty"`     // Nil until the first profile write.
	CreatedAt           time.Time            `json:"createdAt"`
	UpdatedAt           time.Time            `json:"updatedAt"`
}

// EntrepreneurProfile is the one-to-one extension of a User with the
// entrepreneur role. Created lazily on the first profile write.
type EntrepreneurProfile struct {
	ID                  int64     `json:"id"`
	UserID              int64     `json:"userId"`
	Bio                 string    `json:"bio"`
	Skills              string    `json:"skills"`
	BusinessCertificate string    `json:"businessCertificate"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

// InvestorProfile is the one-to-one extension of a User with the
// investor role. Created lazily on the first profile write.
type InvestorProfile struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"userId"`
	CompanyName string    `json:"companyName"`
	Website     string    `json:"website"`
	Country     string    `json:"country"`
	City        string    `json:"city"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
