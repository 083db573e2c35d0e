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

// CompanyService owns company records. Update and Delete intentionally skip
// the ownership check: any authenticated caller holding the id may mutate a
// company. That matches the contract existing clients rely on (recruiters
// edit companies created by teammates).
type CompanyService struct {
	db *gorm.DB
}

func NewCompanyService(db *gorm.DB) *CompanyService {
	return &CompanyService{db: db}
}

func (s *CompanyService) Create(ctx context.Context, ownerID string, req *dtos.CompanyCreateRequest) (*models.Company, error) {
	if req.Name == "" {
		return nil, apperrors.Validation("All fields are required")
	}

	var existing models.Company
	err := s.db.WithContext(ctx).Where("name = ?", req.Name).Take(&existing).Error
	if err == nil {
		return nil, apperrors.Conflict("Company already exists")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.Internal("failed to look up company", err)
	}

	company := models.Company{Name: req.Name, UserID: ownerID}
	if err := s.db.WithContext(ctx).Create(&company).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.Conflict("Company already exists")
		}
		return nil, apperrors.Internal("failed to create company", err)
	}
	return &company, nil
}

// ListOwn returns the caller's companies. An empty result answers not found,
// which the registered clients treat as "nothing to show yet".
func (s *CompanyService) ListOwn(ctx context.Context, ownerID string) ([]models.Company, error) {
	var companies []models.Company
	if err := s.db.WithContext(ctx).Where("user_id = ?", ownerID).Find(&companies).Error; err != nil {
		return nil, apperrors.Internal("failed to list companies", err)
	}
	if len(companies) == 0 {
		return nil, apperrors.NotFound("No companies found")
	}
	return companies, nil
}

func (s *CompanyService) Get(ctx context.Context, id string) (*models.Company, error) {
	if !ids.Valid(id) {
		return nil, apperrors.Validation("Invalid company ID format")
	}
	var company models.Company
	err := s.db.WithContext(ctx).Where("id = ?", id).Take(&company).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NotFound("Company not found")
	}
	if err != nil {
		return nil, apperrors.Internal("failed to fetch company", err)
	}
	return &company, nil
}

func (s *CompanyService) Update(ctx context.Context, id string, req *dtos.CompanyUpdateRequest) (*models.Company, error) {
	company, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		company.Name = req.Name
	}
	if req.Location != "" {
		company.Location = req.Location
	}
	if req.Website != "" {
		company.Website = req.Website
	}
	if req.Description != "" {
		company.Description = req.Description
	}
	if req.Logo != "" {
		company.Logo = req.Logo
	}

	if err := s.db.WithContext(ctx).Save(company).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.Conflict("Company already exists")
		}
		return nil, apperrors.Internal("failed to update company", err)
	}
	return company, nil
}

func (s *CompanyService) Delete(ctx context.Context, id string) error {
	company, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.db.WithContext(ctx).Delete(company).Error; err != nil {
		return apperrors.Internal("failed to delete company", err)
	}
	return nil
}
