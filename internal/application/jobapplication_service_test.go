package application

import (
	"errors"
	"testing"
	"time"

	"github.com/apptrackhq/apptrack-go/internal/domain/jobapp"
	"github.com/apptrackhq/apptrack-go/internal/repository"
	"github.com/apptrackhq/apptrack-go/internal/repository/mock"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// --------------------- Setup ---------------------
func setupJobServiceMocks(t *testing.T) (*JobService, *mock.MockApplicationRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockApp := mock.NewMockApplicationRepo(ctrl)
	repos := &repository.Repos{
		Application: mockApp,
	}
	svc := NewJobService(repos)
	return svc, mockApp
}

func ptrString(s string) *string { return &s }
func ptrInt(v int) *int          { return &v }

// --------------------- Create ---------------------
func TestCreate_Success_DefaultStatus(t *testing.T) {
	svc, mockApp := setupJobServiceMocks(t)

	mockApp.EXPECT().HasActiveDuplicate("owner-1", "Acme", "Engineer").Return(false, nil)
	mockApp.EXPECT().Create(gomock.Any()).Return(nil)

	app, err := svc.Create("owner-1", jobapp.CreateJobApplicationDTO{
		Company:     "  Acme  ",
		Position:    "Engineer",
		AppliedDate: "2024-01-01",
	})

	require.NoError(t, err)
	assert.Equal(t, "Acme", app.Company, "input is trimmed")
	assert.Equal(t, jobapp.StatusApplied, app.Status, "status defaults to applied")
	assert.Equal(t, "owner-1", app.OwnerID)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), app.AppliedDate)
}

func TestCreate_StatusOverride(t *testing.T) {
	svc, mockApp := setupJobServiceMocks(t)

	mockApp.EXPECT().HasActiveDuplicate(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
	mockApp.EXPECT().Create(gomock.Any()).Return(nil)

	app, err := svc.Create("owner-1", jobapp.CreateJobApplicationDTO{
		Company:     "Acme",
		Position:    "Engineer",
		AppliedDate: "2024-01-01",
		Status:      ptrString("interview"),
	})

	require.NoError(t, err)
	assert.Equal(t, jobapp.StatusInterview, app.Status)
}

func TestCreate_ValidationCollectsAllFields(t *testing.T) {
	svc, _ := setupJobServiceMocks(t)

	_, err := svc.Create("owner-1", jobapp.CreateJobApplicationDTO{
		Company:     "   ",
		Position:    "x",
		AppliedDate: "not-a-date",
		Status:      ptrString("ghosted"),
		SalaryMin:   ptrInt(100),
		SalaryMax:   ptrInt(50),
	})

	require.Error(t, err)
	var verr *jobapp.ValidationError
	require.True(t, errors.As(err, &verr))

	fields := map[string]bool{}
	for _, f := range verr.Fields {
		fields[f.Field] = true
	}
	for _, want := range []string{"company", "position", "applied_date", "status", "salary_max"} {
		assert.True(t, fields[want], "expected violation on %s", want)
	}
}

func TestCreate_FutureDateRejected(t *testing.T) {
	svc, _ := setupJobServiceMocks(t)

	_, err := svc.Create("owner-1", jobapp.CreateJobApplicationDTO{
		Company:     "Acme",
		Position:    "Engineer",
		AppliedDate: time.Now().AddDate(0, 0, 3).Format("2006-01-02"),
	})

	var verr *jobapp.ValidationError
	require.True(t, errors.As(err, &verr))
	require.Len(t, verr.Fields, 1)
	assert.Equal(t, "applied_date", verr.Fields[0].Field)
}

func TestCreate_Duplicate(t *testing.T) {
	svc, mockApp := setupJobServiceMocks(t)

	mockApp.EXPECT().HasActiveDuplicate("owner-1", "Acme", "Engineer").Return(true, nil)

	_, err := svc.Create("owner-1", jobapp.CreateJobApplicationDTO{
		Company:     "Acme",
		Position:    "Engineer",
		AppliedDate: "2024-01-01",
	})

	assert.ErrorIs(t, err, jobapp.ErrDuplicate)
}

// --------------------- Get ---------------------
func TestGet_NotFound(t *testing.T) {
	svc, mockApp := setupJobServiceMocks(t)

	mockApp.EXPECT().FindByID("owner-1", "missing").Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Get("owner-1", "missing")
	assert.ErrorIs(t, err, jobapp.ErrNotFound)
}

// --------------------- List ---------------------
func TestList_NormalizesOptions(t *testing.T) {
	svc, mockApp := setupJobServiceMocks(t)

	wantOpts := jobapp.ListOptions{Page: 1, Limit: jobapp.MaxPageSize, SortBy: "created_at", SortOrder: "desc"}
	mockApp.EXPECT().
		List("owner-1", jobapp.ListFilter{}, wantOpts).
		Return([]jobapp.JobApplication{}, int64(0), nil)

	result, err := svc.List("owner-1", jobapp.ListFilter{}, jobapp.ListOptions{Page: 0, Limit: 5000, SortBy: "password"})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Page)
	assert.Equal(t, jobapp.MaxPageSize, result.Limit)
}

// --------------------- Update ---------------------
func TestUpdate_NotFound(t *testing.T) {
	svc, mockApp := setupJobServiceMocks(t)

	mockApp.EXPECT().FindByID("owner-1", "missing").Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Update("owner-1", "missing", jobapp.UpdateJobApplicationDTO{Status: ptrString("offer")})
	assert.ErrorIs(t, err, jobapp.ErrNotFound)
}

func TestUpdate_PartialMerge(t *testing.T) {
	svc, mockApp := setupJobServiceMocks(t)

	existing := &jobapp.JobApplication{
		ID:          "app-1",
		OwnerID:     "owner-1",
		Company:     "Acme",
		Position:    "Engineer",
		AppliedDate: time.Now().AddDate(0, 0, -30),
		Status:      jobapp.StatusApplied,
		Notes:       "keep me",
	}

	mockApp.EXPECT().FindByID("owner-1", "app-1").Return(existing, nil)
	mockApp.EXPECT().Update(gomock.Any()).Return(nil)

	app, err := svc.Update("owner-1", "app-1", jobapp.UpdateJobApplicationDTO{Status: ptrString("offer")})
	require.NoError(t, err)
	assert.Equal(t, jobapp.StatusOffer, app.Status)
	assert.Equal(t, "keep me", app.Notes, "untouched fields survive a partial update")
	assert.Equal(t, "Acme", app.Company)
}

func TestUpdate_RevalidatesMergedRecord(t *testing.T) {
	svc, mockApp := setupJobServiceMocks(t)

	existing := &jobapp.JobApplication{
		ID:          "app-1",
		OwnerID:     "owner-1",
		Company:     "Acme",
		Position:    "Engineer",
		AppliedDate: time.Now().AddDate(0, 0, -30),
		Status:      jobapp.StatusApplied,
	}

	mockApp.EXPECT().FindByID("owner-1", "app-1").Return(existing, nil)

	_, err := svc.Update("owner-1", "app-1", jobapp.UpdateJobApplicationDTO{Company: ptrString("   ")})
	var verr *jobapp.ValidationError
	require.True(t, errors.As(err, &verr))
	require.Len(t, verr.Fields, 1)
	assert.Equal(t, "company", verr.Fields[0].Field)
}

// --------------------- Delete ---------------------
func TestDelete_Success(t *testing.T) {
	svc, mockApp := setupJobServiceMocks(t)

	mockApp.EXPECT().Delete("owner-1", "app-1").Return(nil)
	assert.NoError(t, svc.Delete("owner-1", "app-1"))
}

func TestDelete_SecondDeleteIsNotFound(t *testing.T) {
	svc, mockApp := setupJobServiceMocks(t)

	mockApp.EXPECT().Delete("owner-1", "app-1").Return(gorm.ErrRecordNotFound)
	assert.ErrorIs(t, svc.Delete("owner-1", "app-1"), jobapp.ErrNotFound)
}
