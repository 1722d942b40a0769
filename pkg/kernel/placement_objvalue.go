package kernel

import (
	"regexp"
	"strings"
)

type Email string

var emailPattern = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)

// Normalize lowercases and trims the address the way it is stored.
func (e Email) Normalize() Email {
	return Email(strings.ToLower(strings.TrimSpace(string(e))))
}

func (e Email) IsValid() bool {
	return emailPattern.MatchString(string(e))
}

func (e Email) String() string { return string(e) }

type Phone string

func (p Phone) String() string { return string(p) }

// UserType distinguishes the three account roles of the placement cell.
type UserType string

const (
	UserTypeStudent       UserType = "student"
	UserTypeAdmin         UserType = "admin"
	UserTypePlacementCell UserType = "placementCell"
)

func (t UserType) IsValid() bool {
	switch t {
	case UserTypeStudent, UserTypeAdmin, UserTypePlacementCell:
		return true
	default:
		return false
	}
}

// OnboardingRequired reports whether accounts of this type start with an
// incomplete onboarding flow. Only students go through onboarding.
func (t UserType) OnboardingRequired() bool {
	return t == UserTypeStudent
}

// DriveLink is a Google Drive or Docs sharing URL. Resumes and submissions
// are referenced by link rather than uploaded.
type DriveLink string

var driveFileIDPattern = regexp.MustCompile(`/d/([^/]+)`)

func (l DriveLink) IsValid() bool {
	s := string(l)
	if s == "" {
		return false
	}
	return strings.HasPrefix(s, "https://drive.google.com/") ||
		strings.HasPrefix(s, "https://docs.google.com/")
}

// DirectDownloadURL rewrites a drive.google.com share link into the form
// that serves the raw file bytes. Links that are not file share links are
// returned unchanged.
func (l DriveLink) DirectDownloadURL() string {
	s := string(l)
	if !strings.Contains(s, "drive.google.com/file/d/") {
		return s
	}
	m := driveFileIDPattern.FindStringSubmatch(s)
	if m == nil {
		return s
	}
	return "https://drive.google.com/uc?export=download&id=" + m[1]
}

func (l DriveLink) String() string { return string(l) }

// OpportunityType tags an admin posting as a project, research paper or
// patent opportunity.
type OpportunityType string

const (
	OpportunityTypeProject  OpportunityType = "project"
	OpportunityTypeResearch OpportunityType = "research"
	OpportunityTypePatent   OpportunityType = "patent"
)

func (t OpportunityType) IsValid() bool {
	switch t {
	case OpportunityTypeProject, OpportunityTypeResearch, OpportunityTypePatent:
		return true
	default:
		return false
	}
}
