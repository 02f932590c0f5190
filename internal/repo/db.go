package repo

import (
	"strings"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"

	"SiteModels/internal/model"
)

// InitDB открывает подключение и выполняет миграции всех моделей.
// Postgres — основной драйвер; DSN вида file:*/каталог *.db трактуется как
// SQLite (локальная разработка и тесты).
func InitDB(dsn string) (*gorm.DB, error) {
	var dial gorm.Dialector
	if dsn == "" || strings.HasPrefix(dsn, "file:") || strings.HasSuffix(dsn, ".db") {
		if dsn == "" {
			dsn = "sitemodels.db"
		}
		dial = gormsqlite.Dialector{DriverName: "sqlite", DSN: dsn}
	} else {
		dial = postgres.Open(dsn)
	}

	db, err := gorm.Open(dial, &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(
		&model.User{},
		&model.Admin{},
		&model.Buyer{},
		&model.Product{},
		&model.Disclaimer{},
		&model.TrainingVideo{},
	); err != nil {
		return nil, err
	}

	return db, nil
}
