package application

type SubmitRequest struct {
	OpportunityID   string   `json:"opportunityId"`
	OpportunityType string   `json:"opportunityType"`
	ResumeLink      string   `json:"resumeLink"`
	SubmissionLink  string   `json:"submissionLink"`
	AdditionalLinks []string `json:"additionalLinks"`
	CoverLetter     string   `json:"coverLetter"`
}

// UpdateRequest carries the fields a student may change while the
// application is still pending; nil fields are left untouched.
type UpdateRequest struct {
	ResumeLink      *string  `json:"resumeLink"`
	SubmissionLink  *string  `json:"submissionLink"`
	AdditionalLinks []string `json:"additionalLinks"`
	CoverLetter     *string  `json:"coverLetter"`
}

type StatusUpdateRequest struct {
	Status     string `json:"status"`
	AdminNotes string `json:"adminNotes"`
}

// ListFilter narrows the admin application listing; empty fields match all.
type ListFilter struct {
	OpportunityType string
	Status          string
	OpportunityID   string
}

type AdminListResponse struct {
	Applications []Application `json:"applications"`
	Total        int           `json:"total"`
}

type Stats struct {
	Total    int `json:"total"`
	Pending  int `json:"pending"`
	Approved int `json:"approved"`
	Rejected int `json:"rejected"`
}

type OpportunityApplicationsResponse struct {
	Applications []Application `json:"applications"`
	Stats        Stats         `json:"stats"`
}
