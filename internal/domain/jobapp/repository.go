package jobapp

import "strings"

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// ListFilter narrows a listing query. Zero values mean "no filter".
type ListFilter struct {
	Status   Status // exact match
	Company  string // case-insensitive substring
	Location string // case-insensitive substring
	Search   string // case-insensitive substring over position/company/notes
}

// ListOptions controls pagination and ordering of listing queries.
type ListOptions struct {
	Page      int
	Limit     int
	SortBy    string
	SortOrder string
}

// sortColumns is the allow-list of sortable fields mapped to columns.
var sortColumns = map[string]string{
	"created_at":   "created_at",
	"applied_date": "applied_date",
	"position":     "position",
	"company":      "company",
	"salary":       "salary_min",
}

// Normalize clamps pagination to sane bounds and resolves the sort
// field against the allow-list. Unknown values fall back to defaults.
func (o *ListOptions) Normalize() {
	if o.Page < 1 {
		o.Page = 1
	}
	if o.Limit < 1 {
		o.Limit = DefaultPageSize
	}
	if o.Limit > MaxPageSize {
		o.Limit = MaxPageSize
	}
	if _, ok := sortColumns[o.SortBy]; !ok {
		o.SortBy = "created_at"
		o.SortOrder = "desc"
	}
	if o.SortOrder != "asc" && o.SortOrder != "desc" {
		o.SortOrder = "desc"
	}
}

// OrderClause returns the SQL order expression for the options.
// Normalize must have been called first.
func (o ListOptions) OrderClause() string {
	col := sortColumns[o.SortBy]
	if col == "" {
		col = "created_at"
	}
	return col + " " + strings.ToUpper(o.SortOrder)
}

// Offset returns the row offset for the current page.
func (o ListOptions) Offset() int {
	return (o.Page - 1) * o.Limit
}

// Repository defines data access for job applications. An empty ownerID
// disables ownership scoping (single-tenant mode).
type Repository interface {
	Create(app *JobApplication) error
	FindByID(ownerID, id string) (*JobApplication, error)
	List(ownerID string, filter ListFilter, opts ListOptions) ([]JobApplication, int64, error)
	Update(app *JobApplication) error
	Delete(ownerID, id string) error
	HasActiveDuplicate(ownerID, company, position string) (bool, error)
}
