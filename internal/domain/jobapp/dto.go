package jobapp

type CreateJobApplicationDTO struct {
	// Required fields are enforced by the consolidated domain
	// validation so that every violation is reported per field.
	Company      string   `json:"company"`
	Position     string   `json:"position"`
	AppliedDate  string   `json:"applied_date"`
	Status       *string  `json:"status,omitempty"`
	Notes        *string  `json:"notes,omitempty"`
	Location     *string  `json:"location,omitempty"`
	PostingURL   *string  `json:"posting_url,omitempty"`
	ContactEmail *string  `json:"contact_email,omitempty"`
	SalaryMin    *int     `json:"salary_min,omitempty"`
	SalaryMax    *int     `json:"salary_max,omitempty"`
	Requirements []string `json:"requirements,omitempty"`
}

type UpdateJobApplicationDTO struct {
	Company      *string   `json:"company,omitempty"`
	Position     *string   `json:"position,omitempty"`
	AppliedDate  *string   `json:"applied_date,omitempty"`
	Status       *string   `json:"status,omitempty"`
	Notes        *string   `json:"notes,omitempty"`
	Location     *string   `json:"location,omitempty"`
	PostingURL   *string   `json:"posting_url,omitempty"`
	ContactEmail *string   `json:"contact_email,omitempty"`
	SalaryMin    *int      `json:"salary_min,omitempty"`
	SalaryMax    *int      `json:"salary_max,omitempty"`
	Requirements *[]string `json:"requirements,omitempty"`
}
