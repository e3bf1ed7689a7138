package application

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/apptrackhq/apptrack-go/internal/domain/jobapp"
	"github.com/apptrackhq/apptrack-go/internal/repository"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// JobService handles job application business logic
type JobService struct {
	repos *repository.Repos
}

func NewJobService(repos *repository.Repos) *JobService {
	return &JobService{repos: repos}
}

// ListResult bundles one page of applications with the totals the API
// layer needs to build pagination metadata.
type ListResult struct {
	Items []jobapp.JobApplication
	Total int64
	Page  int
	Limit int
}

// Create validates the input, applies defaults and persists a new
// application owned by ownerID.
func (s *JobService) Create(ownerID string, input jobapp.CreateJobApplicationDTO) (*jobapp.JobApplication, error) {
	app := &jobapp.JobApplication{
		OwnerID:  ownerID,
		Company:  strings.TrimSpace(input.Company),
		Position: strings.TrimSpace(input.Position),
		Status:   jobapp.StatusApplied,
	}

	verr := &jobapp.ValidationError{}

	if input.AppliedDate == "" {
		verr.Add("applied_date", "applied_date is required")
	} else if d, err := parseDate(input.AppliedDate); err != nil {
		verr.Add("applied_date", err.Error())
	} else {
		app.AppliedDate = d
	}

	if input.Status != nil {
		app.Status = jobapp.Status(*input.Status)
	}
	if input.Notes != nil {
		app.Notes = strings.TrimSpace(*input.Notes)
	}
	if input.Location != nil {
		app.Location = strings.TrimSpace(*input.Location)
	}
	if input.PostingURL != nil {
		app.PostingURL = strings.TrimSpace(*input.PostingURL)
	}
	if input.ContactEmail != nil {
		app.ContactEmail = strings.TrimSpace(*input.ContactEmail)
	}
	app.SalaryMin = input.SalaryMin
	app.SalaryMax = input.SalaryMax
	if len(input.Requirements) > 0 {
		app.Requirements = datatypes.NewJSONSlice(input.Requirements)
	}

	if err := app.Validate(); err != nil {
		var ve *jobapp.ValidationError
		if errors.As(err, &ve) {
			verr.Merge(ve)
		}
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	dup, err := s.repos.Application.HasActiveDuplicate(ownerID, app.Company, app.Position)
	if err != nil {
		return nil, fmt.Errorf("duplicate check failed: %w", err)
	}
	if dup {
		return nil, jobapp.ErrDuplicate
	}

	if err := s.repos.Application.Create(app); err != nil {
		return nil, fmt.Errorf("failed to create job application: %w", err)
	}

	app.Refresh()
	return app, nil
}

// Get returns a single application scoped to the owner.
func (s *JobService) Get(ownerID, id string) (*jobapp.JobApplication, error) {
	app, err := s.repos.Application.FindByID(ownerID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, jobapp.ErrNotFound
		}
		return nil, err
	}
	return app, nil
}

// List returns one page of applications matching the filter.
func (s *JobService) List(ownerID string, filter jobapp.ListFilter, opts jobapp.ListOptions) (*ListResult, error) {
	opts.Normalize()

	items, total, err := s.repos.Application.List(ownerID, filter, opts)
	if err != nil {
		return nil, err
	}

	return &ListResult{
		Items: items,
		Total: total,
		Page:  opts.Page,
		Limit: opts.Limit,
	}, nil
}

// Update applies the provided fields to an existing application and
// re-validates the merged record. ID, owner and creation time are
// immutable.
func (s *JobService) Update(ownerID, id string, input jobapp.UpdateJobApplicationDTO) (*jobapp.JobApplication, error) {
	app, err := s.repos.Application.FindByID(ownerID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, jobapp.ErrNotFound
		}
		return nil, err
	}

	verr := &jobapp.ValidationError{}

	if input.Company != nil {
		app.Company = strings.TrimSpace(*input.Company)
	}
	if input.Position != nil {
		app.Position = strings.TrimSpace(*input.Position)
	}
	if input.AppliedDate != nil {
		if d, err := parseDate(*input.AppliedDate); err != nil {
			verr.Add("applied_date", err.Error())
		} else {
			app.AppliedDate = d
		}
	}
	if input.Status != nil {
		app.Status = jobapp.Status(*input.Status)
	}
	if input.Notes != nil {
		app.Notes = strings.TrimSpace(*input.Notes)
	}
	if input.Location != nil {
		app.Location = strings.TrimSpace(*input.Location)
	}
	if input.PostingURL != nil {
		app.PostingURL = strings.TrimSpace(*input.PostingURL)
	}
	if input.ContactEmail != nil {
		app.ContactEmail = strings.TrimSpace(*input.ContactEmail)
	}
	if input.SalaryMin != nil {
		app.SalaryMin = input.SalaryMin
	}
	if input.SalaryMax != nil {
		app.SalaryMax = input.SalaryMax
	}
	if input.Requirements != nil {
		app.Requirements = datatypes.NewJSONSlice(*input.Requirements)
	}

	if err := app.Validate(); err != nil {
		var ve *jobapp.ValidationError
		if errors.As(err, &ve) {
			verr.Merge(ve)
		}
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	if err := s.repos.Application.Update(app); err != nil {
		return nil, fmt.Errorf("failed to update job application: %w", err)
	}

	app.Refresh()
	return app, nil
}

// Delete removes an application. Deleting an id that does not exist
// (including a second delete of the same id) returns ErrNotFound.
func (s *JobService) Delete(ownerID, id string) error {
	err := s.repos.Application.Delete(ownerID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return jobapp.ErrNotFound
		}
		return err
	}
	return nil
}

// dateLayouts are the accepted applied_date formats, tried in order.
var dateLayouts = []string{"2006-01-02", time.RFC3339}

func parseDate(value string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if d, err := time.Parse(layout, value); err == nil {
			return d, nil
		}
	}
	return time.Time{}, errors.New("applied_date must be a date in YYYY-MM-DD or RFC3339 format")
}
