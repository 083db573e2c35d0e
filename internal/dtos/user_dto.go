package dtos

type RegisterRequest struct {
	FullName    string `json:"fullName"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	PhoneNumber string `json:"phoneNumber"`
	Role        string `json:"role"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserSummary is the login response payload; it never carries credentials.
type UserSummary struct {
	ID       string `json:"id"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

type ProfileUpdate struct {
	Bio    string   `json:"bio"`
	Skills []string `json:"skills"`
}

// UpdateProfileRequest replaces the listed fields wholesale; bio and skills
// are overwritten as a pair.
type UpdateProfileRequest struct {
	FullName    string        `json:"fullName"`
	PhoneNumber string        `json:"phoneNumber"`
	Email       string        `json:"email"`
	Profile     ProfileUpdate `json:"profile"`
}
