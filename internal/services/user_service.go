package services

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/hirepath/hirepath/internal/apperrors"
	"github.com/hirepath/hirepath/internal/auth"
	"github.com/hirepath/hirepath/internal/dtos"
	"github.com/hirepath/hirepath/internal/models"
)

type UserService struct {
	db        *gorm.DB
	jwtSecret string
	tokenTTL  time.Duration
}

func NewUserService(db *gorm.DB, jwtSecret string, tokenTTL time.Duration) *UserService {
	return &UserService{db: db, jwtSecret: jwtSecret, tokenTTL: tokenTTL}
}

func (s *UserService) Register(ctx context.Context, req *dtos.RegisterRequest) error {
	if req.FullName == "" || req.Email == "" || req.Password == "" || req.PhoneNumber == "" || req.Role == "" {
		return apperrors.Validation("All fields are required")
	}
	role, err := models.ParseRole(req.Role)
	if err != nil {
		return apperrors.Validation("Role must be either seeker or recruiter")
	}

	var existing models.User
	err = s.db.WithContext(ctx).Where("email = ?", req.Email).Take(&existing).Error
	if err == nil {
		return apperrors.Conflict("Email already in use")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.Internal("failed to look up user", err)
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return apperrors.Internal("failed to hash password", err)
	}

	user := models.User{
		FullName:     req.FullName,
		Email:        req.Email,
		PasswordHash: hash,
		PhoneNumber:  req.PhoneNumber,
		Role:         role,
	}
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.Conflict("Email already in use")
		}
		return apperrors.Internal("failed to create user", err)
	}
	return nil
}

// Login verifies credentials and issues a signed, time-limited token. Unknown
// email and wrong password produce the same error so callers cannot probe
// which field was wrong.
func (s *UserService) Login(ctx context.Context, req *dtos.LoginRequest) (string, *models.User, error) {
	if req.Email == "" || req.Password == "" {
		return "", nil, apperrors.Validation("Email and password are required")
	}

	var user models.User
	err := s.db.WithContext(ctx).Where("email = ?", req.Email).Take(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil, apperrors.Auth("Invalid email or password")
	}
	if err != nil {
		return "", nil, apperrors.Internal("failed to look up user", err)
	}

	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		return "", nil, apperrors.Auth("Invalid email or password")
	}

	token, err := auth.GenerateToken(user.ID, s.jwtSecret, s.tokenTTL)
	if err != nil {
		return "", nil, apperrors.Internal("failed to sign token", err)
	}
	return token, &user, nil
}

func (s *UserService) GetProfile(ctx context.Context, userID string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).Where("id = ?", userID).Take(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NotFound("User not found")
	}
	if err != nil {
		return nil, apperrors.Internal("failed to fetch user", err)
	}
	return &user, nil
}

// UpdateProfile replaces fullName, phoneNumber, email and the profile pair
// (bio, skills) wholesale. Partial nested updates are not supported.
func (s *UserService) UpdateProfile(ctx context.Context, userID string, req *dtos.UpdateProfileRequest) (*models.User, error) {
	user, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.FullName = req.FullName
	user.PhoneNumber = req.PhoneNumber
	user.Email = req.Email
	user.Profile.Bio = req.Profile.Bio
	user.Profile.Skills = req.Profile.Skills

	if err := s.db.WithContext(ctx).Save(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.Conflict("Email already in use")
		}
		return nil, apperrors.Internal("failed to update user", err)
	}
	return user, nil
}
