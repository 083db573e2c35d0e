package services

import (
	"context"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"gorm.io/gorm"

	"github.com/hirepath/hirepath/internal/apperrors"
	"github.com/hirepath/hirepath/internal/dtos"
	"github.com/hirepath/hirepath/internal/ids"
	"github.com/hirepath/hirepath/internal/metrics"
	"github.com/hirepath/hirepath/internal/models"
)

// ApplicationService tracks applications and their status pipeline. Viewer
// and mutator rights derive from the job's creator; the applicant owns only
// submission and withdrawal.
type ApplicationService struct {
	db *gorm.DB
}

func NewApplicationService(db *gorm.DB) *ApplicationService {
	return &ApplicationService{db: db}
}

// Apply submits an application with status "applied". At most one application
// may exist per (job, applicant); the lookup gives a friendly error and the
// unique index on (job_id, applicant_id) closes the race between concurrent
// submissions.
func (s *ApplicationService) Apply(ctx context.Context, jobID, applicantID string) (*models.Application, error) {
	if !ids.Valid(jobID) {
		return nil, apperrors.Validation("Invalid job ID format")
	}

	var job models.Job
	err := s.db.WithContext(ctx).Where("id = ?", jobID).Take(&job).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NotFound("Job not found")
	}
	if err != nil {
		return nil, apperrors.Internal("failed to fetch job", err)
	}

	var existing models.Application
	err = s.db.WithContext(ctx).
		Where("job_id = ? AND applicant_id = ?", jobID, applicantID).
		Take(&existing).Error
	if err == nil {
		return nil, apperrors.Conflict("You have already applied for this job")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.Internal("failed to look up application", err)
	}

	application := models.Application{
		JobID:       jobID,
		ApplicantID: applicantID,
		Status:      models.StatusApplied,
	}
	if err := s.db.WithContext(ctx).Create(&application).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.Conflict("You have already applied for this job")
		}
		return nil, apperrors.Internal("failed to create application", err)
	}

	metrics.ApplicationsSubmittedCounter.Inc()
	return &application, nil
}

// ListOwn returns the caller's applications, newest first, joined with job
// and company summaries.
func (s *ApplicationService) ListOwn(ctx context.Context, applicantID string) ([]dtos.MyApplicationView, error) {
	var applications []models.Application
	err := s.db.WithContext(ctx).
		Preload("Job").Preload("Job.Company").
		Where("applicant_id = ?", applicantID).
		Order("created_at DESC").
		Find(&applications).Error
	if err != nil {
		return nil, apperrors.Internal("failed to list applications", err)
	}

	return lo.Map(applications, func(a models.Application, _ int) dtos.MyApplicationView {
		view := dtos.MyApplicationView{
			ID:        a.ID,
			Status:    string(a.Status),
			CreatedAt: a.CreatedAt,
			UpdatedAt: a.UpdatedAt,
		}
		if a.Job != nil {
			view.Job = dtos.AppliedJobSummary{
				ID:       a.Job.ID,
				Title:    a.Job.Title,
				Location: a.Job.Location,
				Salary:   a.Job.Salary,
				JobType:  a.Job.JobType,
			}
			if a.Job.Company != nil {
				view.Job.Company = dtos.AppliedCompanySummary{
					Name:     a.Job.Company.Name,
					Location: a.Job.Company.Location,
				}
			}
		}
		return view
	}), nil
}

// ListForJob returns a job's applications, newest first, joined with
// applicant summaries. Only the job's creator may see the pipeline.
func (s *ApplicationService) ListForJob(ctx context.Context, jobID, callerID string) ([]dtos.JobApplicationView, error) {
	if !ids.Valid(jobID) {
		return nil, apperrors.Validation("Invalid job ID format")
	}

	var job models.Job
	err := s.db.WithContext(ctx).Where("id = ?", jobID).Take(&job).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NotFound("Job not found")
	}
	if err != nil {
		return nil, apperrors.Internal("failed to fetch job", err)
	}

	if job.CreatedBy != callerID {
		return nil, apperrors.Forbidden("You are not authorized to view applications for this job")
	}

	var applications []models.Application
	err = s.db.WithContext(ctx).
		Preload("Applicant").
		Where("job_id = ?", jobID).
		Order("created_at DESC").
		Find(&applications).Error
	if err != nil {
		return nil, apperrors.Internal("failed to list applications", err)
	}

	return lo.Map(applications, func(a models.Application, _ int) dtos.JobApplicationView {
		view := dtos.JobApplicationView{
			ID:        a.ID,
			Status:    string(a.Status),
			CreatedAt: a.CreatedAt,
			UpdatedAt: a.UpdatedAt,
		}
		if a.Applicant != nil {
			view.Applicant = dtos.ApplicantSummary{
				ID:          a.Applicant.ID,
				FullName:    a.Applicant.FullName,
				Email:       a.Applicant.Email,
				PhoneNumber: a.Applicant.PhoneNumber,
				Profile: dtos.ApplicantProfile{
					Bio:    a.Applicant.Profile.Bio,
					Skills: a.Applicant.Profile.Skills,
				},
			}
		}
		return view
	}), nil
}

// UpdateStatus overwrites an application's status. Any of the five statuses
// may follow any other; there is no enforced ordering, so a recruiter can
// move an applicant backwards as well as forwards. Only the creator of the
// application's job may call it.
func (s *ApplicationService) UpdateStatus(ctx context.Context, applicationID, callerID, status string) (*models.Application, error) {
	if !ids.Valid(applicationID) {
		return nil, apperrors.Validation("Invalid application ID format")
	}

	parsed, err := models.ParseApplicationStatus(status)
	if err != nil {
		return nil, apperrors.Validation("Invalid status, must be one of: applied, under_review, interview, rejected, hired")
	}

	var application models.Application
	err = s.db.WithContext(ctx).Where("id = ?", applicationID).Take(&application).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NotFound("Application not found")
	}
	if err != nil {
		return nil, apperrors.Internal("failed to fetch application", err)
	}

	var job models.Job
	err = s.db.WithContext(ctx).Where("id = ?", application.JobID).Take(&job).Error
	if err != nil {
		return nil, apperrors.Internal("failed to fetch job", err)
	}
	if job.CreatedBy != callerID {
		return nil, apperrors.Forbidden("You are not authorized to update this application")
	}

	application.Status = parsed
	if err := s.db.WithContext(ctx).Save(&application).Error; err != nil {
		return nil, apperrors.Internal("failed to update application", err)
	}
	return &application, nil
}

// Delete withdraws an application. Only the applicant who submitted it may
// remove it.
func (s *ApplicationService) Delete(ctx context.Context, applicationID, callerID string) error {
	if !ids.Valid(applicationID) {
		return apperrors.Validation("Invalid application ID format")
	}

	var application models.Application
	err := s.db.WithContext(ctx).Where("id = ?", applicationID).Take(&application).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.NotFound("Application not found")
	}
	if err != nil {
		return apperrors.Internal("failed to fetch application", err)
	}

	if application.ApplicantID != callerID {
		return apperrors.Forbidden("You are not authorized to delete this application")
	}

	if err := s.db.WithContext(ctx).Delete(&application).Error; err != nil {
		return apperrors.Internal("failed to delete application", err)
	}
	return nil
}
