package ats

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strings"
)

const maxScore = 100

// metricPattern flags quantified achievements such as "40%", "3+" or plain
// counts inside experience bullets.
var metricPattern = regexp.MustCompile(`\d+[%+]?`)

// actionVerbs are scanned as substrings of the lowercased full text for the
// keyword portion of the formatting criterion.
var actionVerbs = []string{
	"developed", "designed", "implemented", "managed", "led", "created",
	"built", "improved", "optimized", "achieved", "delivered", "launched",
}

// BreakdownItem is one criterion's earned score against its maximum.
type BreakdownItem struct {
	Score int `json:"score"`
	Max   int `json:"max"`
}

// BreakdownEntry names a criterion in the scoring breakdown.
type BreakdownEntry struct {
	Name string
	Item BreakdownItem
}

// Breakdown is the per-criterion decomposition of the total score. It
// serializes as a JSON object keyed by criterion name in scoring order.
type Breakdown []BreakdownEntry

func (b Breakdown) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, entry := range b {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(entry.Name)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(entry.Item)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Get returns the breakdown item for a criterion name.
func (b Breakdown) Get(name string) (BreakdownItem, bool) {
	for _, entry := range b {
		if entry.Name == name {
			return entry.Item, true
		}
	}
	return BreakdownItem{}, false
}

// ScoreReport is the full result of scoring a parsed resume.
type ScoreReport struct {
	Score            int       `json:"score"`
	MaxScore         int       `json:"max_score"`
	Percentage       float64   `json:"percentage"`
	Rating           string    `json:"rating"`
	RatingColor      string    `json:"rating_color"`
	Feedback         []string  `json:"feedback"`
	ScoringBreakdown Breakdown `json:"scoring_breakdown"`
	Recommendations  []string  `json:"recommendations"`
}

// CalculateScore evaluates a parsed resume against the fixed rubric. The
// full extracted text is consulted for the metric and action verb checks.
func CalculateScore(sections SectionMap, fullText string) (*ScoreReport, error) {
	if sections == nil {
		return nil, ErrInvalidInput()
	}

	report := &ScoreReport{
		MaxScore:        maxScore,
		Feedback:        []string{},
		Recommendations: []string{},
	}

	addCriterion := func(name string, score, max int) {
		report.Score += score
		report.ScoringBreakdown = append(report.ScoringBreakdown, BreakdownEntry{
			Name: name,
			Item: BreakdownItem{Score: score, Max: max},
		})
	}
	say := func(format string, args ...any) {
		report.Feedback = append(report.Feedback, fmt.Sprintf(format, args...))
	}

	// Contact information, max 10.
	contactScore := 0
	hasEmail, hasPhone := false, false
	for _, item := range sections[SectionPersonalInfo] {
		lower := strings.ToLower(item)
		if strings.Contains(lower, "email") {
			hasEmail = true
		}
		if strings.Contains(lower, "phone") {
			hasPhone = true
		}
	}
	if hasEmail {
		contactScore += 5
		say("✓ Email address found")
	} else {
		say("✗ Missing email address")
	}
	if hasPhone {
		contactScore += 5
		say("✓ Phone number found")
	} else {
		say("✗ Missing phone number")
	}
	addCriterion("Contact Information", contactScore, 10)

	// Education, max 15.
	educationScore := 0
	if entries := sections[SectionEducation]; len(entries) > 0 {
		educationScore = min(15, len(entries)*5)
		say("✓ Education section found with %d entries", len(entries))
	} else {
		say("✗ No education section found")
	}
	addCriterion("Education", educationScore, 15)

	// Work experience, max 25, with a metric bonus inside the same cap.
	experienceScore := 0
	if entries := sections[SectionExperience]; len(entries) > 0 {
		experienceScore = min(25, len(entries)*5)
		say("✓ Work experience section found with %d entries", len(entries))
		for _, item := range entries {
			if metricPattern.MatchString(item) {
				experienceScore += 5
				say("✓ Quantifiable achievements found (numbers/metrics)")
				break
			}
		}
		experienceScore = min(experienceScore, 25)
	} else {
		say("✗ No work experience section found")
	}
	addCriterion("Work Experience", experienceScore, 25)

	// Skills, max 15, counting comma-separated tokens across all lines.
	skillsScore := 0
	if entries := sections[SectionSkills]; len(entries) > 0 {
		skillCount := 0
		for _, item := range entries {
			skillCount += len(strings.Split(item, ","))
		}
		skillsScore = min(15, skillCount)
		say("✓ Skills section found with approximately %d skills", skillCount)
	} else {
		say("✗ No skills section found")
	}
	addCriterion("Skills", skillsScore, 15)

	// Projects, max 10.
	projectsScore := 0
	if entries := sections[SectionProjects]; len(entries) > 0 {
		projectsScore = min(10, len(entries)*3)
		say("✓ Projects section found with %d projects", len(entries))
	} else {
		say("⚠ No projects section found")
	}
	addCriterion("Projects", projectsScore, 10)

	// Certifications, max 8.
	certScore := 0
	if entries := sections[SectionCertifications]; len(entries) > 0 {
		certScore = min(8, len(entries)*2)
		say("✓ Certifications found: %d certificates", len(entries))
	} else {
		say("⚠ No certifications listed")
	}
	addCriterion("Certifications", certScore, 8)

	// Research and publications, max 7.
	researchScore := 0
	if entries := sections[SectionResearch]; len(entries) > 0 {
		researchScore = min(7, len(entries)*3)
		say("✓ Research/Publications found: %d papers", len(entries))
	} else {
		say("⚠ No research or publications listed")
	}
	addCriterion("Research & Publications", researchScore, 7)

	// Formatting and keywords, max 10: distinct section structure plus
	// action verb usage across the whole text.
	formattingScore := 0
	if sections.SectionCount() >= 4 {
		formattingScore += 5
		say("✓ Good resume structure with %d sections", sections.SectionCount())
	} else {
		say("⚠ Resume could use more distinct sections")
	}
	lowerText := strings.ToLower(fullText)
	verbsFound := 0
	for _, verb := range actionVerbs {
		if strings.Contains(lowerText, verb) {
			verbsFound++
		}
	}
	switch {
	case verbsFound >= 5:
		formattingScore += 5
		say("✓ Strong action verbs used (%d found)", verbsFound)
	case verbsFound >= 2:
		formattingScore += 3
		say("⚠ Some action verbs used (%d found), consider adding more", verbsFound)
	default:
		say("✗ Few action verbs used, strengthen your descriptions")
	}
	formattingScore = min(formattingScore, 10)
	addCriterion("Formatting & Keywords", formattingScore, 10)

	report.Percentage = math.Round(float64(report.Score)/maxScore*100*10) / 10
	report.Rating, report.RatingColor = ratingFor(report.Percentage)
	report.Recommendations = recommendationsFor(report.ScoringBreakdown)

	return report, nil
}

// ratingFor maps a percentage onto the fixed rating bands.
func ratingFor(percentage float64) (rating, color string) {
	switch {
	case percentage >= 90:
		return "Excellent", "green"
	case percentage >= 75:
		return "Very Good", "blue"
	case percentage >= 60:
		return "Good", "yellow"
	case percentage >= 40:
		return "Fair", "orange"
	default:
		return "Needs Improvement", "red"
	}
}

// recommendationsFor derives actionable advice from weak criteria. A resume
// with no weak criterion gets a single encouraging line.
func recommendationsFor(breakdown Breakdown) []string {
	recs := []string{}
	weak := func(name string, threshold int, advice string) {
		if item, ok := breakdown.Get(name); ok && item.Score < threshold {
			recs = append(recs, advice)
		}
	}
	weak("Contact Information", 10, "Add complete contact information (email and phone number)")
	weak("Education", 10, "Expand your education section with degree details, institution names, and graduation dates")
	weak("Work Experience", 15, "Add more work experience with quantifiable achievements (e.g., 'Increased sales by 20%')")
	weak("Skills", 10, "List more relevant technical and soft skills")
	weak("Projects", 5, "Include personal or academic projects to showcase practical experience")
	weak("Certifications", 4, "Add relevant certifications to strengthen your profile")
	weak("Formatting & Keywords", 7, "Use more action verbs and organize content into clear sections")

	if len(recs) == 0 {
		recs = append(recs, "Your resume looks great! Keep it updated.")
	}
	return recs
}
