package services

import (
	"fmt"
	"strings"
	"testing"

	"github.com/prateeksteaparty/vital-wellness/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an isolated in-memory database per test. The shared-cache
// DSN keeps gorm's connection pool pointed at one database instead of one
// per connection.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.SavedRecommendation{},
		&models.Feedback{},
		&models.Issue{},
	))
	return db
}

func createTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	user := &models.User{
		Name:           "Asha",
		Gender:         "female",
		DietPreference: "veg",
		Lifestyle:      "moderately_active",
		Allergies:      "nuts,dairy",
		Email:          fmt.Sprintf("%s@example.com", strings.ToLower(strings.ReplaceAll(t.Name(), "/", "_"))),
		Password:       "hashed",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}
