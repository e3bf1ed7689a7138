package testutils

import (
	"fmt"
	"strings"
	"testing"

	"github.com/apptrackhq/apptrack-go/internal/domain/jobapp"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewTestDB opens a private in-memory sqlite database, migrated for the
// job application schema. cache=shared keeps the database alive across
// the connections gorm pools; the name keeps tests isolated.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)

	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := gdb.AutoMigrate(&jobapp.JobApplication{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return gdb
}
