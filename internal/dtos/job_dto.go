package dtos

type JobCreationRequest struct {
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	Requirements    StringList `json:"requirements"`
	Salary          Numeric    `json:"salary"`
	ExperienceLevel Numeric    `json:"experienceLevel"`
	Location        string     `json:"location"`
	JobType         string     `json:"jobType"`
	Position        Numeric    `json:"position"`
	Company         string     `json:"company"`
}

// JobUpdateRequest is a partial update: absent fields keep their stored
// values. Numeric and id fields present in the payload are re-validated with
// the same rules as creation.
type JobUpdateRequest struct {
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	Requirements    StringList `json:"requirements"`
	Salary          Numeric    `json:"salary"`
	ExperienceLevel Numeric    `json:"experienceLevel"`
	Location        string     `json:"location"`
	JobType         string     `json:"jobType"`
	Position        Numeric    `json:"position"`
	Company         string     `json:"company"`
}
