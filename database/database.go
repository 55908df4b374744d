package database

import (
	"fmt"
	"log"

	"coursehub/config"
	"coursehub/models"
	courseModels "coursehub/models/course"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// DbInstance struct holds the database connection instance
type DbInstance struct {
	Db *gorm.DB
}

// Database is the global database instance
var Database DbInstance

// ConnectDb establishes a connection to PostgreSQL
func ConnectDb() {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		config.AppConfig.DBHost,
		config.AppConfig.DBUser,
		config.AppConfig.DBPassword,
		config.AppConfig.DBName,
		config.AppConfig.DBPort,
	)

	// TranslateError lets workflows detect unique-constraint violations as
	// gorm.ErrDuplicatedKey; duplicate enroll/rate/submit relies on it.
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}

	// Set up connection pooling
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get database instance: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(0)

	RunMigrations(db)
	SeedRoles(db)

	// Save database instance globally
	Database = DbInstance{Db: db}
}

// RunMigrations performs database migrations
func RunMigrations(db *gorm.DB) {
	log.Println("Running Migrations...")

	err := db.AutoMigrate(
		&models.User{},
		&models.Role{},
		&models.UserRole{},
		&models.Category{},
		&courseModels.Course{},
		&courseModels.Module{},
		&courseModels.Lesson{},
		&courseModels.Assignment{},
		&courseModels.Submission{},
		&models.Payment{},
		&courseModels.Enrollment{},
		&models.Rating{},
		&models.Certificate{},
		&models.Comment{},
	)
	if err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	log.Println("Migrations completed successfully.")
}

// SeedRoles inserts the fixed role codes if they are missing
func SeedRoles(db *gorm.DB) {
	roles := []models.Role{
		{ID: models.RoleAdmin, Name: "admin", Description: "Full management access"},
		{ID: models.RoleInstructor, Name: "instructor", Description: "Owns and grades courses"},
		{ID: models.RoleStudent, Name: "student", Description: "Enrolls and learns"},
	}

	for _, role := range roles {
		if err := db.Where("id = ?", role.ID).FirstOrCreate(&role).Error; err != nil {
			log.Printf("Error seeding role %s: %v", role.Name, err)
		}
	}
}
