package dtos

type CompanyCreateRequest struct {
	Name string `json:"name"`
}

// CompanyUpdateRequest carries the editable fields; empty fields are left
// untouched.
type CompanyUpdateRequest struct {
	Name        string `json:"name"`
	Location    string `json:"location"`
	Website     string `json:"website"`
	Description string `json:"description"`
	Logo        string `json:"logo"`
}
