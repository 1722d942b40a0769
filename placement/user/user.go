package user

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/carevo/platform/pkg/kernel"
)

// FreeformList is a JSONB-backed list of client-shaped objects. Onboarding
// collects experiences, certifications and projects as free-form entries
// that are stored and returned verbatim.
type FreeformList []map[string]any

func (l FreeformList) Value() (driver.Value, error) {
	if l == nil {
		return json.Marshal(FreeformList{})
	}
	return json.Marshal(l)
}

func (l *FreeformList) Scan(src any) error {
	if src == nil {
		*l = FreeformList{}
		return nil
	}
	var data []byte
	switch v := src.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into FreeformList", src)
	}
	return json.Unmarshal(data, l)
}

// User is a platform account. Student profile fields stay zero-valued for
// admin and placement cell accounts.
type User struct {
	ID                  kernel.UserID   `db:"id" json:"id"`
	Email               kernel.Email    `db:"email" json:"email"`
	PasswordHash        string          `db:"password_hash" json:"-"`
	Name                string          `db:"name" json:"name"`
	UserType            kernel.UserType `db:"user_type" json:"userType"`
	Field               string          `db:"field" json:"field"`
	Year                string          `db:"year" json:"year"`
	CGPA                float64         `db:"cgpa" json:"cgpa"`
	Mobile              kernel.Phone    `db:"mobile" json:"mobile"`
	RollNo              string          `db:"roll_no" json:"rollNo"`
	ResumeURL           string          `db:"resume_url" json:"resumeUrl"`
	PerformanceDocURL   string          `db:"performance_doc_url" json:"performanceDocUrl"`
	LinkedinProfile     string          `db:"linkedin_profile" json:"linkedinProfile"`
	GithubProfile       string          `db:"github_profile" json:"githubProfile"`
	Skills              pq.StringArray  `db:"skills" json:"skills"`
	TechStack           pq.StringArray  `db:"tech_stack" json:"techStack"`
	AITools             pq.StringArray  `db:"ai_tools" json:"aiTools"`
	Experiences         FreeformList    `db:"experiences" json:"experiences"`
	Certifications      FreeformList    `db:"certifications" json:"certifications"`
	Projects            FreeformList    `db:"projects" json:"projects"`
	OnboardingCompleted bool            `db:"onboarding_completed" json:"onboardingCompleted"`
	CreatedAt           time.Time       `db:"created_at" json:"createdAt"`
	UpdatedAt           time.Time       `db:"updated_at" json:"updatedAt"`
}

// IsStudent reports whether the account belongs to a student.
func (u *User) IsStudent() bool {
	return u.UserType == kernel.UserTypeStudent
}

// StudentProject is a project a student showcases on their own profile,
// distinct from the Projects list collected during onboarding and from
// admin-posted opportunities.
type StudentProject struct {
	ID          kernel.StudentProjectID `db:"id" json:"id"`
	UserID      kernel.UserID           `db:"user_id" json:"userId"`
	Title       string                  `db:"title" json:"title"`
	GithubLink  string                  `db:"github_link" json:"githubLink"`
	WebsiteLink string                  `db:"website_link" json:"websiteLink"`
	TechStack   pq.StringArray          `db:"tech_stack" json:"techStack"`
	CreatedAt   time.Time               `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time               `db:"updated_at" json:"updatedAt"`
}
