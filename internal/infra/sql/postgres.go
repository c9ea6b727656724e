package sql

import (
	"fmt"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const (
	_queryTimeout = 5 * time.Second
)

// NewPostgresORM connects to postgres. The password may be kept out of the
// DSN and supplied through FORMBUILDER_SERVER_POSTGRES_PASSWORD.
func NewPostgresORM(dsn string) (ORM, error) {
	pass, ok := os.LookupEnv("FORMBUILDER_SERVER_POSTGRES_PASSWORD")
	if ok {
		dsn = fmt.Sprintf("%s password=%s", dsn, pass)
	}

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres db: %w", err)
	}

	return &DB{
		DB:                   gormDB,
		autoMigrationEnabled: true,
		timeout:              _queryTimeout,
	}, nil
}
