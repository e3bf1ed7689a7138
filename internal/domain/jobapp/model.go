package jobapp

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Status represents the stage of a job application
type Status string

const (
	StatusApplied   Status = "applied"   // Application submitted
	StatusInterview Status = "interview" // Interview loop in progress
	StatusOffer     Status = "offer"     // Offer received
	StatusRejected  Status = "rejected"  // Rejected by company
	StatusWithdrawn Status = "withdrawn" // Withdrawn by applicant
)

// Statuses lists every valid status value.
var Statuses = []Status{StatusApplied, StatusInterview, StatusOffer, StatusRejected, StatusWithdrawn}

// Valid reports whether s is a known status value.
func (s Status) Valid() bool {
	for _, v := range Statuses {
		if s == v {
			return true
		}
	}
	return false
}

// Terminal reports whether the application reached a final state.
func (s Status) Terminal() bool {
	return s == StatusRejected || s == StatusWithdrawn
}

// JobApplication represents a single tracked job application
type JobApplication struct {
	ID           string                      `gorm:"primaryKey;size:36" json:"id"`
	OwnerID      string                      `gorm:"size:64;index" json:"owner_id,omitempty"`
	Company      string                      `gorm:"size:100;not null;index" json:"company"`
	Position     string                      `gorm:"size:200;not null" json:"position"`
	AppliedDate  time.Time                   `gorm:"not null;index;column:applied_date" json:"applied_date"`
	Status       Status                      `gorm:"size:20;not null;default:'applied';index" json:"status"`
	Notes        string                      `gorm:"type:text" json:"notes,omitempty"`
	Location     string                      `gorm:"size:100" json:"location,omitempty"`
	PostingURL   string                      `gorm:"size:500;column:posting_url" json:"posting_url,omitempty"`
	ContactEmail string                      `gorm:"size:255" json:"contact_email,omitempty"`
	SalaryMin    *int                        `gorm:"column:salary_min" json:"salary_min,omitempty"`
	SalaryMax    *int                        `gorm:"column:salary_max" json:"salary_max,omitempty"`
	Requirements datatypes.JSONSlice[string] `json:"requirements,omitempty"`
	CreatedAt    time.Time                   `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time                   `gorm:"autoUpdateTime" json:"updated_at"`

	// Derived fields, never persisted
	DaysSinceApplied   int    `gorm:"-" json:"days_since_applied"`
	AppliedDateDisplay string `gorm:"-" json:"applied_date_display"`
}

// TableName specifies the database table name
func (JobApplication) TableName() string {
	return "job_applications"
}

// BeforeCreate assigns the record identifier.
func (a *JobApplication) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}

// AfterFind recomputes the derived fields on every read.
func (a *JobApplication) AfterFind(tx *gorm.DB) error {
	a.Refresh()
	return nil
}

// Refresh recomputes days-since-application and the display date.
func (a *JobApplication) Refresh() {
	a.DaysSinceApplied = int(time.Since(a.AppliedDate).Hours() / 24)
	if a.DaysSinceApplied < 0 {
		a.DaysSinceApplied = 0
	}
	a.AppliedDateDisplay = a.AppliedDate.Format("Jan 2, 2006")
}
