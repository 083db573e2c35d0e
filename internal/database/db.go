package database

import (
	"strings"

	"github.com/glebarez/sqlite"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/hirepath/hirepath/internal/models"
)

// Connect opens the database behind dsn and migrates the schema. Postgres in
// deployment; a sqlite file or :memory: dsn for local runs and tests.
func Connect(dsn string) (*gorm.DB, error) {
	cfg := &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Error),
		// Uniqueness violations must surface as gorm.ErrDuplicatedKey so the
		// services can map them to conflicts.
		TranslateError: true,
		// The job->company reference is intentionally unconstrained: company
		// ids are format-checked but never verified to exist.
		DisableForeignKeyConstraintWhenMigrating: true,
	}

	db, err := gorm.Open(open(dsn), cfg)
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to database")
	}

	if strings.Contains(dsn, ":memory:") {
		// every pooled connection would otherwise see its own empty database
		sqlDB, err := db.DB()
		if err != nil {
			return nil, errors.Wrap(err, "failed to resolve sql db handle")
		}
		sqlDB.SetMaxOpenConns(1)
	}

	log.Info("database connection established")

	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Company{},
		&models.Job{},
		&models.Application{},
	)
	return errors.Wrap(err, "failed to migrate schema")
}

func open(dsn string) gorm.Dialector {
	if strings.HasPrefix(dsn, "postgres://") || strings.Contains(dsn, "host=") {
		return postgres.Open(dsn)
	}
	return sqlite.Open(dsn)
}
