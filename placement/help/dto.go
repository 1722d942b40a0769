package help

type CreateReportRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}
