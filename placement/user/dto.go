package user

// UserSummary is the compact identity block returned by the auth endpoints.
type UserSummary struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	UserType string `json:"userType"`
}

// Summary builds the auth-facing view of a user.
func (u *User) Summary() UserSummary {
	return UserSummary{
		ID:       u.ID.String(),
		Email:    u.Email.String(),
		Name:     u.Name,
		UserType: string(u.UserType),
	}
}

type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	UserType string `json:"userType"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthResponse struct {
	Message string      `json:"message"`
	Token   string      `json:"token"`
	User    UserSummary `json:"user"`
}

type StatusResponse struct {
	Authenticated bool         `json:"authenticated"`
	User          *UserSummary `json:"user,omitempty"`
}

type RequestPasswordResetRequest struct {
	Email string `json:"email"`
}

type ResetPasswordRequest struct {
	Email       string `json:"email"`
	OTP         string `json:"otp"`
	NewPassword string `json:"newPassword"`
}

// UpdateProfileRequest is a partial profile update; nil fields are left
// untouched.
type UpdateProfileRequest struct {
	Name              *string       `json:"name"`
	Field             *string       `json:"field"`
	Year              *string       `json:"year"`
	CGPA              *float64      `json:"cgpa"`
	Mobile            *string       `json:"mobile"`
	ResumeURL         *string       `json:"resumeUrl"`
	PerformanceDocURL *string       `json:"performanceDocUrl"`
	RollNo            *string       `json:"rollNo"`
	Skills            *[]string     `json:"skills"`
	TechStack         *[]string     `json:"techStack"`
	AITools           *[]string     `json:"aiTools"`
	Experiences       *FreeformList `json:"experiences"`
	Certifications    *FreeformList `json:"certifications"`
	Projects          *FreeformList `json:"projects"`

	OnboardingCompleted *bool `json:"onboardingCompleted"`
}

// OnboardingStep names one screen of the multi-step student onboarding.
type OnboardingStep string

const (
	StepBasicInfo      OnboardingStep = "basic_info"
	StepExperiences    OnboardingStep = "experiences"
	StepCertifications OnboardingStep = "certifications"
	StepProjects       OnboardingStep = "projects"
	StepSkills         OnboardingStep = "skills"
	StepTechStack      OnboardingStep = "tech_stack"
	StepAITools        OnboardingStep = "ai_tools"
)

// OnboardingData is the union of all step payloads; each step reads only
// its own fields.
type OnboardingData struct {
	Field           string       `json:"field"`
	Year            string       `json:"year"`
	Mobile          string       `json:"mobile"`
	CGPA            float64      `json:"cgpa"`
	RollNo          string       `json:"rollNo"`
	Experiences     FreeformList `json:"experiences"`
	LinkedinProfile string       `json:"linkedinProfile"`
	Achievements    FreeformList `json:"achievements"`
	Projects        FreeformList `json:"projects"`
	GithubProfile   string       `json:"githubProfile"`
	Skills          []string     `json:"skills"`
	TechStack       []string     `json:"techStack"`
	AITools         []string     `json:"aiTools"`
}

type OnboardingRequest struct {
	Step      OnboardingStep `json:"step"`
	Data      OnboardingData `json:"data"`
	Completed bool           `json:"completed"`
}

type OnboardingStatusResponse struct {
	OnboardingCompleted bool `json:"onboardingCompleted"`
}

type StudentProjectRequest struct {
	Title       string   `json:"title"`
	GithubLink  string   `json:"githubLink"`
	WebsiteLink string   `json:"websiteLink"`
	TechStack   []string `json:"techStack"`
}

// UpdateStudentProjectRequest is a partial project update.
type UpdateStudentProjectRequest struct {
	Title       *string   `json:"title"`
	GithubLink  *string   `json:"githubLink"`
	WebsiteLink *string   `json:"websiteLink"`
	TechStack   *[]string `json:"techStack"`
}

// DirectoryEntry is one row of the admin student directory: the full
// student profile plus activity counts.
type DirectoryEntry struct {
	User
	ProjectsCount     int `json:"projectsCount"`
	ApplicationsCount int `json:"applicationsCount"`
}
