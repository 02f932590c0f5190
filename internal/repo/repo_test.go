package repo

import (
	"strings"
	"testing"

	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"

	"SiteModels/internal/model"
)

// newTestDB инициализирует in-memory SQLite (modernc.org/sqlite) для тестов репозитория
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	// отдельная БД на тест, чтобы данные не пересекались
	name := strings.ReplaceAll(t.Name(), "/", "_")
	dial := gormsqlite.Dialector{DriverName: "sqlite", DSN: "file:" + name + "?mode=memory&cache=shared"}
	db, err := gorm.Open(dial, &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open sqlite (modernc): %v", err)
	}
	// Миграции для всех моделей, используемых в репозиториях
	if err := db.AutoMigrate(
		&model.User{}, &model.Admin{}, &model.Buyer{},
		&model.Product{}, &model.Disclaimer{}, &model.TrainingVideo{},
	); err != nil {
		t.Fatalf("failed to automigrate: %v", err)
	}
	return db
}
