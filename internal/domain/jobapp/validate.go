package jobapp

import (
	"fmt"
	"net/mail"
	"net/url"
	"time"
	"unicode/utf8"
)

// textRule is a declarative length constraint on a string field.
type textRule struct {
	field    string
	get      func(*JobApplication) string
	required bool
	min      int
	max      int
}

var textRules = []textRule{
	{field: "company", get: func(a *JobApplication) string { return a.Company }, required: true, min: 1, max: 100},
	{field: "position", get: func(a *JobApplication) string { return a.Position }, required: true, min: 2, max: 200},
	{field: "notes", get: func(a *JobApplication) string { return a.Notes }, max: 2000},
	{field: "location", get: func(a *JobApplication) string { return a.Location }, max: 100},
}

// Validate checks every invariant of the record and collects all
// violations into a single ValidationError.
func (a *JobApplication) Validate() error {
	verr := &ValidationError{}

	for _, r := range textRules {
		v := r.get(a)
		n := utf8.RuneCountInString(v)
		switch {
		case r.required && n == 0:
			verr.Add(r.field, r.field+" is required")
		case n > 0 && n < r.min:
			verr.Add(r.field, fmt.Sprintf("%s must be at least %d characters", r.field, r.min))
		case n > r.max:
			verr.Add(r.field, fmt.Sprintf("%s must be at most %d characters", r.field, r.max))
		}
	}

	if a.AppliedDate.IsZero() {
		verr.Add("applied_date", "applied_date is required")
	} else if a.AppliedDate.After(time.Now()) {
		verr.Add("applied_date", "applied_date cannot be in the future")
	}

	if !a.Status.Valid() {
		verr.Add("status", fmt.Sprintf("status must be one of %v", Statuses))
	}

	if a.PostingURL != "" {
		u, err := url.Parse(a.PostingURL)
		if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
			verr.Add("posting_url", "posting_url must be a valid http(s) URL")
		}
	}

	if a.ContactEmail != "" {
		if _, err := mail.ParseAddress(a.ContactEmail); err != nil {
			verr.Add("contact_email", "contact_email must be a valid email address")
		}
	}

	if a.SalaryMin != nil && *a.SalaryMin < 0 {
		verr.Add("salary_min", "salary_min cannot be negative")
	}
	if a.SalaryMax != nil && *a.SalaryMax < 0 {
		verr.Add("salary_max", "salary_max cannot be negative")
	}
	if a.SalaryMin != nil && a.SalaryMax != nil && *a.SalaryMax < *a.SalaryMin {
		verr.Add("salary_max", "salary_max must be greater than or equal to salary_min")
	}

	return verr.OrNil()
}
