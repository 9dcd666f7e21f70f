package database

import (
	"MigrantHealth/models"
	"MigrantHealth/utils"
	"context"
	"log"
	"os"
	"time"

	"github.com/pkg/errors"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// InitDB initializes the database connection and configures it.
func InitDB(ctx context.Context, dsn, adminUsername, adminPassword string) (*gorm.DB, error) {
	// Configure logging level based on environment
	logMode := logger.Silent
	if os.Getenv("ENV") == "development" {
		logMode = logger.Info
	}

	// Open the database connection
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: false,
		PrepareStmt:                              true,
		Logger:                                   logger.Default.LogMode(logMode),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to open database connection")
	}

	// Configure connection pool
	if err := configureConnectionPool(db); err != nil {
		return nil, err
	}

	// Test the database connection
	if err := testDatabaseConnection(ctx, db); err != nil {
		return nil, err
	}

	// Run migrations
	if err := runMigrations(db); err != nil {
		return nil, err
	}

	// Seed the initial admin account
	if err := seedInitialData(db, adminUsername, adminPassword); err != nil {
		return nil, err
	}

	log.Println("Database initialized successfully.")
	return db, nil
}

// configureConnectionPool sets up the connection pool settings for the database.
func configureConnectionPool(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return errors.Wrap(err, "failed to get sql.DB from GORM")
	}
	sqlDB.SetMaxOpenConns(40)
	sqlDB.SetMaxIdleConns(20)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
	return nil
}

// testDatabaseConnection verifies that the database connection is functional.
func testDatabaseConnection(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return errors.Wrap(err, "failed to get sql.DB from GORM")
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return errors.Wrap(err, "failed to ping database")
	}
	return nil
}

// runMigrations performs database schema migrations.
func runMigrations(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.HealthRecord{},
		&models.Prescription{},
	)
}

// seedInitialData creates the first admin account so the deployment is
// reachable before any user has been created through the API.
func seedInitialData(db *gorm.DB, adminUsername, adminPassword string) error {
	hashed, err := utils.HashPassword(adminPassword)
	if err != nil {
		return errors.Wrap(err, "failed to hash admin password")
	}
	if err := models.SeedAdmin(db, adminUsername, hashed); err != nil {
		return errors.Wrap(err, "failed to seed admin user")
	}
	return nil
}
