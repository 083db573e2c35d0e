package dtos

import "time"

type StatusUpdateRequest struct {
	Status string `json:"status"`
}

// MyApplicationView joins an application with its job and the job's company,
// the shape the seeker's applications page renders.
type MyApplicationView struct {
	ID        string            `json:"id"`
	Status    string            `json:"status"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
	Job       AppliedJobSummary `json:"job"`
}

type AppliedJobSummary struct {
	ID       string                `json:"id"`
	Title    string                `json:"title"`
	Location string                `json:"location"`
	Salary   int                   `json:"salary"`
	JobType  string                `json:"jobType"`
	Company  AppliedCompanySummary `json:"company"`
}

type AppliedCompanySummary struct {
	Name     string `json:"name"`
	Location string `json:"location"`
}

// JobApplicationView joins an application with its applicant, the shape the
// recruiter's pipeline page renders.
type JobApplicationView struct {
	ID        string           `json:"id"`
	Status    string           `json:"status"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
	Applicant ApplicantSummary `json:"applicant"`
}

type ApplicantSummary struct {
	ID          string           `json:"id"`
	FullName    string           `json:"fullName"`
	Email       string           `json:"email"`
	PhoneNumber string           `json:"phoneNumber"`
	Profile     ApplicantProfile `json:"profile"`
}

type ApplicantProfile struct {
	Bio    string   `json:"bio"`
	Skills []string `json:"skills"`
}
