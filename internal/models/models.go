package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/hirepath/hirepath/internal/ids"
)

type User struct {
	ID        string    `gorm:"primaryKey;size:24" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	FullName     string  `gorm:"not null" json:"fullName"`
	Email        string  `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string  `gorm:"not null" json:"-"`
	PhoneNumber  string  `gorm:"not null" json:"phoneNumber"`
	Role         Role    `gorm:"not null" json:"role"`
	Profile      Profile `gorm:"embedded;embeddedPrefix:profile_" json:"profile"`
}

// Profile is replaced wholesale on update: a profile payload overwrites bio
// and skills as a pair.
type Profile struct {
	Bio                string   `json:"bio"`
	Skills             []string `gorm:"serializer:json" json:"skills"`
	ProfilePicture     string   `json:"profilePicture"`
	Resume             string   `json:"resume"`
	ResumeOriginalName string   `json:"resumeOriginalName"`
}

type Company struct {
	ID        string    `gorm:"primaryKey;size:24" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Name        string `gorm:"uniqueIndex;not null" json:"name"`
	UserID      string `gorm:"size:24;index" json:"userId"`
	Location    string `json:"location"`
	Website     string `json:"website"`
	Description string `json:"description"`
	Logo        string `json:"logo"`
}

type Job struct {
	ID        string    `gorm:"primaryKey;size:24" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Title           string   `gorm:"not null" json:"title"`
	Description     string   `gorm:"type:text" json:"description"`
	Requirements    []string `gorm:"serializer:json" json:"requirements"`
	Salary          int      `json:"salary"`
	ExperienceLevel int      `json:"experienceLevel"`
	Location        string   `json:"location"`
	JobType         string   `json:"jobType"`
	Position        int      `json:"position"`

	// CompanyID is format-checked on input but its existence is not verified,
	// matching the contract the clients were written against.
	CompanyID string   `gorm:"size:24;index" json:"company_id"`
	Company   *Company `gorm:"foreignKey:CompanyID" json:"company,omitempty"`

	CreatedBy string `gorm:"size:24;index" json:"created_by"`
	Creator   *User  `gorm:"foreignKey:CreatedBy" json:"creator,omitempty"`

	// Derived by query, never stored as a duplicated id list.
	Applications []Application `gorm:"foreignKey:JobID" json:"applications,omitempty"`
}

type Application struct {
	ID        string    `gorm:"primaryKey;size:24" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	JobID       string `gorm:"size:24;uniqueIndex:idx_job_applicant" json:"job_id"`
	Job         *Job   `gorm:"foreignKey:JobID" json:"job,omitempty"`
	ApplicantID string `gorm:"size:24;uniqueIndex:idx_job_applicant" json:"applicant_id"`
	Applicant   *User  `gorm:"foreignKey:ApplicantID" json:"applicant,omitempty"`

	Status ApplicationStatus `gorm:"not null;default:applied" json:"status"`
}

func (u *User) BeforeCreate(*gorm.DB) error {
	if u.ID == "" {
		u.ID = ids.New()
	}
	return nil
}

func (c *Company) BeforeCreate(*gorm.DB) error {
	if c.ID == "" {
		c.ID = ids.New()
	}
	return nil
}

func (j *Job) BeforeCreate(*gorm.DB) error {
	if j.ID == "" {
		j.ID = ids.New()
	}
	return nil
}

func (a *Application) BeforeCreate(*gorm.DB) error {
	if a.ID == "" {
		a.ID = ids.New()
	}
	return nil
}
