package jobapp

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validApplication() *JobApplication {
	return &JobApplication{
		Company:     "Acme",
		Position:    "Engineer",
		AppliedDate: time.Now().AddDate(0, 0, -7),
		Status:      StatusApplied,
	}
}

func intPtr(v int) *int { return &v }

func fieldNames(t *testing.T, err error) []string {
	t.Helper()
	var verr *ValidationError
	require.True(t, errors.As(err, &verr), "expected *ValidationError, got %v", err)
	names := make([]string, 0, len(verr.Fields))
	for _, f := range verr.Fields {
		names = append(names, f.Field)
	}
	return names
}

func TestValidate_ValidRecord(t *testing.T) {
	assert.NoError(t, validApplication().Validate())
}

func TestValidate_FieldViolations(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*JobApplication)
		fields []string
	}{
		{"missing company", func(a *JobApplication) { a.Company = "" }, []string{"company"}},
		{"company too long", func(a *JobApplication) { a.Company = strings.Repeat("x", 101) }, []string{"company"}},
		{"missing position", func(a *JobApplication) { a.Position = "" }, []string{"position"}},
		{"position too short", func(a *JobApplication) { a.Position = "x" }, []string{"position"}},
		{"position too long", func(a *JobApplication) { a.Position = strings.Repeat("x", 201) }, []string{"position"}},
		{"missing applied date", func(a *JobApplication) { a.AppliedDate = time.Time{} }, []string{"applied_date"}},
		{"future applied date", func(a *JobApplication) { a.AppliedDate = time.Now().AddDate(0, 0, 2) }, []string{"applied_date"}},
		{"unknown status", func(a *JobApplication) { a.Status = "ghosted" }, []string{"status"}},
		{"notes too long", func(a *JobApplication) { a.Notes = strings.Repeat("x", 2001) }, []string{"notes"}},
		{"location too long", func(a *JobApplication) { a.Location = strings.Repeat("x", 101) }, []string{"location"}},
		{"bad posting url", func(a *JobApplication) { a.PostingURL = "not a url" }, []string{"posting_url"}},
		{"ftp posting url", func(a *JobApplication) { a.PostingURL = "ftp://example.com/job" }, []string{"posting_url"}},
		{"bad contact email", func(a *JobApplication) { a.ContactEmail = "nope" }, []string{"contact_email"}},
		{"negative salary min", func(a *JobApplication) { a.SalaryMin = intPtr(-1) }, []string{"salary_min"}},
		{"salary max below min", func(a *JobApplication) {
			a.SalaryMin = intPtr(90000)
			a.SalaryMax = intPtr(80000)
		}, []string{"salary_max"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := validApplication()
			tt.mutate(app)
			err := app.Validate()
			require.Error(t, err)
			assert.ElementsMatch(t, tt.fields, fieldNames(t, err))
		})
	}
}

func TestValidate_CollectsEveryViolation(t *testing.T) {
	app := &JobApplication{
		Status:      "unknown",
		AppliedDate: time.Now().AddDate(0, 1, 0),
	}
	err := app.Validate()
	require.Error(t, err)

	names := fieldNames(t, err)
	assert.ElementsMatch(t, []string{"company", "position", "applied_date", "status"}, names)
}

func TestStatus_Helpers(t *testing.T) {
	assert.True(t, StatusApplied.Valid())
	assert.True(t, StatusWithdrawn.Valid())
	assert.False(t, Status("ghosted").Valid())

	assert.True(t, StatusRejected.Terminal())
	assert.True(t, StatusWithdrawn.Terminal())
	assert.False(t, StatusOffer.Terminal())
}

func TestRefresh_DerivedFields(t *testing.T) {
	app := validApplication()
	app.AppliedDate = time.Now().AddDate(0, 0, -10)
	app.Refresh()

	assert.Equal(t, 10, app.DaysSinceApplied)
	assert.Equal(t, app.AppliedDate.Format("Jan 2, 2006"), app.AppliedDateDisplay)
}

func TestListOptions_Normalize(t *testing.T) {
	tests := []struct {
		name string
		in   ListOptions
		want ListOptions
	}{
		{"defaults", ListOptions{}, ListOptions{Page: 1, Limit: DefaultPageSize, SortBy: "created_at", SortOrder: "desc"}},
		{"clamped limit", ListOptions{Page: 2, Limit: 500, SortBy: "company", SortOrder: "asc"},
			ListOptions{Page: 2, Limit: MaxPageSize, SortBy: "company", SortOrder: "asc"}},
		{"unknown sort falls back", ListOptions{Page: 1, Limit: 10, SortBy: "password", SortOrder: "asc"},
			ListOptions{Page: 1, Limit: 10, SortBy: "created_at", SortOrder: "desc"}},
		{"bad direction", ListOptions{Page: 1, Limit: 10, SortBy: "salary", SortOrder: "sideways"},
			ListOptions{Page: 1, Limit: 10, SortBy: "salary", SortOrder: "desc"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.in.Normalize()
			assert.Equal(t, tt.want, tt.in)
		})
	}
}

func TestListOptions_OrderClause(t *testing.T) {
	opts := ListOptions{SortBy: "salary", SortOrder: "asc"}
	opts.Normalize()
	assert.Equal(t, "salary_min ASC", opts.OrderClause())

	opts = ListOptions{}
	opts.Normalize()
	assert.Equal(t, "created_at DESC", opts.OrderClause())
}
