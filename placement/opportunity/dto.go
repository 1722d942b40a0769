package opportunity

type CreateRequest struct {
	Title            string   `json:"title"`
	Domain           string   `json:"domain"`
	StudentsRequired *int     `json:"studentsRequired"`
	Duration         string   `json:"duration"`
	Deadline         string   `json:"deadline"`
	GoogleFormLink   string   `json:"googleFormLink"`
	Description      string   `json:"description"`
	Requirements     string   `json:"requirements"`
	Professors       []string `json:"professors"`
	Students         []string `json:"students"`
}

// UpdateRequest carries a partial update; nil fields are left untouched.
type UpdateRequest struct {
	Title            *string  `json:"title"`
	Domain           *string  `json:"domain"`
	StudentsRequired *int     `json:"studentsRequired"`
	Duration         *string  `json:"duration"`
	Deadline         *string  `json:"deadline"`
	GoogleFormLink   *string  `json:"googleFormLink"`
	Description      *string  `json:"description"`
	Requirements     *string  `json:"requirements"`
	Professors       []string `json:"professors"`
	Students         []string `json:"students"`
	Status           *string  `json:"status"`
}
