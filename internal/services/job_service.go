package services

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/hirepath/hirepath/internal/apperrors"
	"github.com/hirepath/hirepath/internal/dtos"
	"github.com/hirepath/hirepath/internal/ids"
	"github.com/hirepath/hirepath/internal/models"
)

type JobService struct {
	db *gorm.DB
}

func NewJobService(db *gorm.DB) *JobService {
	return &JobService{db: db}
}

func (s *JobService) Create(ctx context.Context, creatorID string, req *dtos.JobCreationRequest) (*models.Job, error) {
	if req.Title == "" || req.Description == "" || !req.Salary.Present() ||
		!req.ExperienceLevel.Present() || req.Location == "" || req.JobType == "" ||
		!req.Position.Present() || req.Company == "" {
		return nil, apperrors.Validation("All fields are required")
	}

	position, err := req.Position.Int()
	if err != nil {
		return nil, apperrors.Validation("Position must be a valid number")
	}
	salary, err := req.Salary.Int()
	if err != nil {
		return nil, apperrors.Validation("Salary must be a valid number")
	}
	experience, err := req.ExperienceLevel.Int()
	if err != nil {
		return nil, apperrors.Validation("Experience level must be a valid number")
	}

	// Format check only; the company is not required to exist.
	if !ids.Valid(req.Company) {
		return nil, apperrors.Validation("Invalid company ID format")
	}

	job := models.Job{
		Title:           req.Title,
		Description:     req.Description,
		Requirements:    req.Requirements,
		Salary:          salary,
		ExperienceLevel: experience,
		Location:        req.Location,
		JobType:         req.JobType,
		Position:        position,
		CompanyID:       req.Company,
		CreatedBy:       creatorID,
	}
	if err := s.db.WithContext(ctx).Create(&job).Error; err != nil {
		return nil, apperrors.Internal("failed to create job", err)
	}
	return &job, nil
}

func (s *JobService) List(ctx context.Context) ([]models.Job, error) {
	var jobs []models.Job
	err := s.db.WithContext(ctx).Preload("Company").Preload("Creator").Find(&jobs).Error
	if err != nil {
		return nil, apperrors.Internal("failed to list jobs", err)
	}
	return jobs, nil
}

func (s *JobService) ListOwn(ctx context.Context, creatorID string) ([]models.Job, error) {
	var jobs []models.Job
	err := s.db.WithContext(ctx).Preload("Company").
		Where("created_by = ?", creatorID).Find(&jobs).Error
	if err != nil {
		return nil, apperrors.Internal("failed to list jobs", err)
	}
	if len(jobs) == 0 {
		return nil, apperrors.NotFound("No jobs found for this user")
	}
	return jobs, nil
}

func (s *JobService) Get(ctx context.Context, id string) (*models.Job, error) {
	if !ids.Valid(id) {
		return nil, apperrors.Validation("Invalid job ID format")
	}
	var job models.Job
	err := s.db.WithContext(ctx).Preload("Company").Preload("Creator").
		Where("id = ?", id).Take(&job).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NotFound("Job not found")
	}
	if err != nil {
		return nil, apperrors.Internal("failed to fetch job", err)
	}
	return &job, nil
}

// Update merges a partial update into a job. Only the job's creator may call
// it; numeric and id fields present in the payload are re-validated.
func (s *JobService) Update(ctx context.Context, id, callerID string, req *dtos.JobUpdateRequest) (*models.Job, error) {
	if !ids.Valid(id) {
		return nil, apperrors.Validation("Invalid job ID format")
	}

	var job models.Job
	err := s.db.WithContext(ctx).Where("id = ?", id).Take(&job).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NotFound("Job not found")
	}
	if err != nil {
		return nil, apperrors.Internal("failed to fetch job", err)
	}

	if job.CreatedBy != callerID {
		return nil, apperrors.Forbidden("You are not authorized to update this job")
	}

	if req.Position.Present() {
		position, err := req.Position.Int()
		if err != nil {
			return nil, apperrors.Validation("Position must be a valid number")
		}
		job.Position = position
	}
	if req.Salary.Present() {
		salary, err := req.Salary.Int()
		if err != nil {
			return nil, apperrors.Validation("Salary must be a valid number")
		}
		job.Salary = salary
	}
	if req.ExperienceLevel.Present() {
		experience, err := req.ExperienceLevel.Int()
		if err != nil {
			return nil, apperrors.Validation("Experience level must be a valid number")
		}
		job.ExperienceLevel = experience
	}
	if req.Company != "" {
		if !ids.Valid(req.Company) {
			return nil, apperrors.Validation("Invalid company ID format")
		}
		job.CompanyID = req.Company
	}
	if req.Title != "" {
		job.Title = req.Title
	}
	if req.Description != "" {
		job.Description = req.Description
	}
	if req.Location != "" {
		job.Location = req.Location
	}
	if req.JobType != "" {
		job.JobType = req.JobType
	}
	if req.Requirements != nil {
		job.Requirements = req.Requirements
	}

	if err := s.db.WithContext(ctx).Save(&job).Error; err != nil {
		return nil, apperrors.Internal("failed to update job", err)
	}
	return &job, nil
}

func (s *JobService) Delete(ctx context.Context, id, callerID string) error {
	if !ids.Valid(id) {
		return apperrors.Validation("Invalid job ID format")
	}

	var job models.Job
	err := s.db.WithContext(ctx).Where("id = ?", id).Take(&job).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.NotFound("Job not found")
	}
	if err != nil {
		return apperrors.Internal("failed to fetch job", err)
	}

	if job.CreatedBy != callerID {
		return apperrors.Forbidden("You are not authorized to delete this job")
	}

	if err := s.db.WithContext(ctx).Delete(&job).Error; err != nil {
		return apperrors.Internal("failed to delete job", err)
	}
	return nil
}
