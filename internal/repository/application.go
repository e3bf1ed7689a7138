package repository

import (
	"strings"

	"github.com/apptrackhq/apptrack-go/internal/domain/jobapp"
	"gorm.io/gorm"
)

// ApplicationRepo matches the domain job application repository contract.
type ApplicationRepo interface {
	jobapp.Repository
}

type DBApplicationRepo struct {
	db *gorm.DB
}

func NewApplicationRepo(db *gorm.DB) *DBApplicationRepo {
	return &DBApplicationRepo{
		db: db,
	}
}

func (r *DBApplicationRepo) Create(app *jobapp.JobApplication) error {
	return r.db.Create(app).Error
}

func (r *DBApplicationRepo) FindByID(ownerID, id string) (*jobapp.JobApplication, error) {
	var app jobapp.JobApplication
	q := r.db.Where("id = ?", id)
	if ownerID != "" {
		q = q.Where("owner_id = ?", ownerID)
	}
	err := q.First(&app).Error
	if err != nil {
		return nil, err
	}
	return &app, nil
}

func (r *DBApplicationRepo) List(ownerID string, filter jobapp.ListFilter, opts jobapp.ListOptions) ([]jobapp.JobApplication, int64, error) {
	q := r.db.Model(&jobapp.JobApplication{})
	if ownerID != "" {
		q = q.Where("owner_id = ?", ownerID)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	// LOWER/LIKE instead of ILIKE keeps the query portable across
	// postgres and the sqlite test database.
	if filter.Company != "" {
		q = q.Where("LOWER(company) LIKE ?", contains(filter.Company))
	}
	if filter.Location != "" {
		q = q.Where("LOWER(location) LIKE ?", contains(filter.Location))
	}
	if filter.Search != "" {
		s := contains(filter.Search)
		q = q.Where("LOWER(position) LIKE ? OR LOWER(company) LIKE ? OR LOWER(notes) LIKE ?", s, s, s)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var apps []jobapp.JobApplication
	err := q.Order(opts.OrderClause()).
		Offset(opts.Offset()).
		Limit(opts.Limit).
		Find(&apps).Error
	return apps, total, err
}

func (r *DBApplicationRepo) Update(app *jobapp.JobApplication) error {
	return r.db.Save(app).Error
}

func (r *DBApplicationRepo) Delete(ownerID, id string) error {
	q := r.db.Where("id = ?", id)
	if ownerID != "" {
		q = q.Where("owner_id = ?", ownerID)
	}
	res := q.Delete(&jobapp.JobApplication{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *DBApplicationRepo) HasActiveDuplicate(ownerID, company, position string) (bool, error) {
	var count int64
	q := r.db.Model(&jobapp.JobApplication{}).
		Where("LOWER(company) = ? AND LOWER(position) = ?", strings.ToLower(company), strings.ToLower(position)).
		Where("status NOT IN ?", []jobapp.Status{jobapp.StatusRejected, jobapp.StatusWithdrawn})
	if ownerID != "" {
		q = q.Where("owner_id = ?", ownerID)
	}
	err := q.Count(&count).Error
	return count > 0, err
}

func contains(s string) string {
	return "%" + strings.ToLower(s) + "%"
}
