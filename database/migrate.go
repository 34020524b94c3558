package database

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/sitecheck-simple/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DBConnection represents a database connection
type DBConnection struct {
	DB     *gorm.DB
	Name   string
	DbURL  string
	Models []interface{}
}

// NewDBConnection creates a new database connection
func NewDBConnection(name, dbURL string) (*DBConnection, error) {
	if dbURL == "" {
		return nil, errors.New("database URL cannot be empty")
	}

	// Configure GORM logger
	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Info,
			IgnoreRecordNotFoundError: true,
			ParameterizedQueries:      true,
			Colorful:                  true,
		},
	)

	// Connect to database
	db, err := gorm.Open(postgres.Open(dbURL), &gorm.Config{
		Logger: newLogger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s database: %v", name, err)
	}

	// Get and configure the underlying SQL DB
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get SQL DB for %s: %v", name, err)
	}

	// Set connection pool settings
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	log.Printf("✅ Connected to %s database", name)

	return &DBConnection{
		DB:    db,
		Name:  name,
		DbURL: dbURL,
		Models: []interface{}{
			&models.User{},
			&models.Project{},
			&models.Evaluation{},
			&models.Answer{},
		},
	}, nil
}

// Migrate migrates the database schema
func (c *DBConnection) Migrate() error {
	log.Printf("Migrating %s database schema...", c.Name)
	err := c.DB.AutoMigrate(c.Models...)
	if err != nil {
		return fmt.Errorf("failed to migrate %s database: %v", c.Name, err)
	}
	log.Printf("✅ %s database schema migrated", c.Name)
	return nil
}

// MigrateDataBetweenDatabases migrates data from source to target.
// Order matters: users before projects, projects before evaluations and
// answers, so foreign keys resolve on the target side.
func MigrateDataBetweenDatabases(source, target *DBConnection) error {
	log.Println("Starting data migration from source to target...")

	var users []models.User
	if err := source.DB.Find(&users).Error; err != nil {
		return fmt.Errorf("failed to fetch users: %v", err)
	}
	log.Printf("Found %d users to migrate", len(users))
	if len(users) > 0 {
		if err := target.DB.Create(&users).Error; err != nil {
			return fmt.Errorf("failed to migrate users: %v", err)
		}
	}

	var projects []models.Project
	if err := source.DB.Find(&projects).Error; err != nil {
		return fmt.Errorf("failed to fetch projects: %v", err)
	}
	log.Printf("Found %d projects to migrate", len(projects))
	if len(projects) > 0 {
		if err := target.DB.Create(&projects).Error; err != nil {
			return fmt.Errorf("failed to migrate projects: %v", err)
		}
	}

	var evaluations []models.Evaluation
	if err := source.DB.Find(&evaluations).Error; err != nil {
		return fmt.Errorf("failed to fetch evaluations: %v", err)
	}
	log.Printf("Found %d evaluations to migrate", len(evaluations))
	if len(evaluations) > 0 {
		if err := target.DB.Create(&evaluations).Error; err != nil {
			return fmt.Errorf("failed to migrate evaluations: %v", err)
		}
	}

	var answers []models.Answer
	if err := source.DB.Order("id").Find(&answers).Error; err != nil {
		return fmt.Errorf("failed to fetch answers: %v", err)
	}
	log.Printf("Found %d answers to migrate", len(answers))
	if len(answers) > 0 {
		if err := target.DB.Create(&answers).Error; err != nil {
			return fmt.Errorf("failed to migrate answers: %v", err)
		}
	}

	log.Println("✅ Data migration completed successfully!")
	return nil
}
