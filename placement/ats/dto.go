package ats

// UploadRequest carries an uploaded resume file through the analysis
// pipeline.
type UploadRequest struct {
	Filename string
	Data     []byte
}

// UploadAnalysisResponse is returned for a direct file upload.
type UploadAnalysisResponse struct {
	Success    bool         `json:"success"`
	Filename   string       `json:"filename"`
	ParsedData SectionMap   `json:"parsed_data"`
	ATSScore   *ScoreReport `json:"ats_score"`
}

// SavedResumeAnalysisResponse is returned when analysis runs against the
// resume link stored on the student's profile.
type SavedResumeAnalysisResponse struct {
	ParsedData SectionMap   `json:"parsed_data"`
	ATSScore   *ScoreReport `json:"ats_score"`
}
