package models

import "time"

// Admin is the credential record backing dashboard sign-in. PasswordHash and
// Salt never leave the repository/service layer.
type Admin struct {
	ID           string
	Email        string
	PasswordHash string
	Salt         string
	FullName     string
	Role         string
	IsActive     bool
	AvatarURL    *string
	LastLogin    *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Principal is the sanitized view of an authenticated admin returned to the
// dashboard. It carries no credential material.
type Principal struct {
	ID        string     `json:"id"`
	Email     string     `json:"email"`
	FullName  string     `json:"full_name"`
	Role      string     `json:"role"`
	IsActive  bool       `json:"is_active"`
	AvatarURL *string    `json:"avatar_url,omitempty"`
	LastLogin *time.Time `json:"last_login,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// Principal strips credential fields from an admin record.
func (a Admin) Principal() Principal {
	return Principal{
		ID:        a.ID,
		Email:     a.Email,
		FullName:  a.FullName,
		Role:      a.Role,
		IsActive:  a.IsActive,
		AvatarURL: a.AvatarURL,
		LastLogin: a.LastLogin,
		CreatedAt: a.CreatedAt,
	}
}
