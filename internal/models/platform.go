package models

import "time"

// Rows owned by the main product. The admin service reads and moderates
// them; it never creates users or campaigns.

type VerificationStatus string

const (
	VerificationPending  VerificationStatus = "pending"
	VerificationApproved VerificationStatus = "approved"
	VerificationRejected VerificationStatus = "rejected"
)

type User struct {
	ID                 string             `json:"id"`
	FullName           string             `json:"full_name"`
	Email              string             `json:"email"`
	VerificationStatus VerificationStatus `json:"verification_status"`
	CreatedAt          time.Time          `json:"created_at"`
}

type Campaign struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	TargetAmount int64      `json:"target_amount"`
	RaisedAmount int64      `json:"raised_amount"`
	DonorCount   int        `json:"donor_count"`
	IsFeatured   bool       `json:"is_featured"`
	Status       string     `json:"status"`
	AdminNote    *string    `json:"admin_note,omitempty"`
	VerifiedAt   *time.Time `json:"verified_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

type BlogPost struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Author    string    `json:"author"`
	Published bool      `json:"published"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Activity struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// DashboardStats is the snapshot rendered on the dashboard landing cards.
type DashboardStats struct {
	TotalUsers      int       `json:"total_users"`
	TotalRevenue    int64     `json:"total_revenue"`
	InvestmentCount int       `json:"investment_count"`
	ActiveCampaigns int       `json:"active_campaigns"`
	ComputedAt      time.Time `json:"computed_at"`
}

// CampaignFunds summarizes one campaign for the funds report.
type CampaignFunds struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Target     int64  `json:"target"`
	Raised     int64  `json:"raised"`
	DonorCount int    `json:"donor_count"`
	Status     string `json:"status"`
}

// MonthlyTotal is one month of donation volume.
type MonthlyTotal struct {
	Month  time.Time `json:"month"`
	Amount int64     `json:"amount"`
}
