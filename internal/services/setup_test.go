package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/hirepath/hirepath/internal/auth"
	"github.com/hirepath/hirepath/internal/database"
	"github.com/hirepath/hirepath/internal/dtos"
	"github.com/hirepath/hirepath/internal/models"
)

const testJWTSecret = "test-secret"

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	return db
}

func seedUser(t *testing.T, db *gorm.DB, email string, role models.Role) *models.User {
	t.Helper()
	hash, err := auth.HashPassword("password123")
	require.NoError(t, err)
	user := models.User{
		FullName:     "Test User",
		Email:        email,
		PasswordHash: hash,
		PhoneNumber:  "555-0100",
		Role:         role,
	}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func seedCompany(t *testing.T, db *gorm.DB, ownerID, name string) *models.Company {
	t.Helper()
	company := models.Company{Name: name, UserID: ownerID}
	require.NoError(t, db.Create(&company).Error)
	return &company
}

func seedJob(t *testing.T, db *gorm.DB, creatorID, companyID, title string) *models.Job {
	t.Helper()
	job := models.Job{
		Title:           title,
		Description:     "build things",
		Requirements:    []string{"go"},
		Salary:          90000,
		ExperienceLevel: 3,
		Location:        "Remote",
		JobType:         "full-time",
		Position:        2,
		CompanyID:       companyID,
		CreatedBy:       creatorID,
	}
	require.NoError(t, db.Create(&job).Error)
	return &job
}

func validJobRequest(companyID string) *dtos.JobCreationRequest {
	return &dtos.JobCreationRequest{
		Title:           "Backend Engineer",
		Description:     "Build the API",
		Requirements:    dtos.StringList{"go", "sql"},
		Salary:          "90000",
		ExperienceLevel: "3",
		Location:        "Remote",
		JobType:         "full-time",
		Position:        "2",
		Company:         companyID,
	}
}

func newUserService(db *gorm.DB) *UserService {
	return NewUserService(db, testJWTSecret, time.Hour)
}

func ctx() context.Context { return context.Background() }
