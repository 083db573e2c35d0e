package models

import (
	"fmt"
	"strings"
)

// Role is a closed set. Authorization decisions switch over it exhaustively
// instead of comparing raw strings.
type Role string

const (
	RoleSeeker    Role = "seeker"
	RoleRecruiter Role = "recruiter"
)

func ParseRole(s string) (Role, error) {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleSeeker:
		return RoleSeeker, nil
	case RoleRecruiter:
		return RoleRecruiter, nil
	default:
		return "", fmt.Errorf("unknown role %q", s)
	}
}

type ApplicationStatus string

const (
	StatusApplied     ApplicationStatus = "applied"
	StatusUnderReview ApplicationStatus = "under_review"
	StatusInterview   ApplicationStatus = "interview"
	StatusRejected    ApplicationStatus = "rejected"
	StatusHired       ApplicationStatus = "hired"
)

// ValidStatuses lists every accepted status. Transitions between them are
// unrestricted: recruiters may move an applicant back and forth freely.
func ValidStatuses() []ApplicationStatus {
	return []ApplicationStatus{
		StatusApplied,
		StatusUnderReview,
		StatusInterview,
		StatusRejected,
		StatusHired,
	}
}

func ParseApplicationStatus(s string) (ApplicationStatus, error) {
	candidate := ApplicationStatus(strings.ToLower(strings.TrimSpace(s)))
	for _, status := range ValidStatuses() {
		if candidate == status {
			return status, nil
		}
	}
	return "", fmt.Errorf("unknown application status %q", s)
}
