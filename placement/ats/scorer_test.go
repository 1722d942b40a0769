package ats

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/carevo/platform/pkg/errx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullResumeSections() SectionMap {
	return SectionMap{
		SectionPersonalInfo: {"Email: jane@example.com", "Phone: 9876543210"},
		SectionEducation:    {"BTech CS", "Class XII", "Class X"},
		SectionExperience: {
			"Developed a billing service",
			"Improved latency by 40%",
			"Led a team of 4",
			"Launched two products",
			"Managed vendor relations",
		},
		SectionSkills:         {"Go, Python, SQL, Redis, Docker, Kubernetes, Git, Linux", "AWS, Terraform, Kafka, gRPC, React, TypeScript, Bash"},
		SectionProjects:       {"Compiler", "Chat app", "Scraper", "CLI tool"},
		SectionCertifications: {"AWS SAA", "CKA", "OCI", "GCP ACE"},
		SectionResearch:       {"Paper on consensus", "Paper on caching", "Survey on queues"},
	}
}

const fullResumeText = "developed designed implemented managed led created built a series of systems"

func TestCalculateScore_NilSections(t *testing.T) {
	_, err := CalculateScore(nil, "some text")
	require.Error(t, err)

	var appErr *errx.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, CodeInvalidInput, appErr.Code)
	assert.Equal(t, 400, appErr.HTTPStatus)
}

func TestCalculateScore_EmptyResume(t *testing.T) {
	report, err := CalculateScore(SectionMap{}, "")
	require.NoError(t, err)

	assert.Equal(t, 0, report.Score)
	assert.Equal(t, 100, report.MaxScore)
	assert.Equal(t, 0.0, report.Percentage)
	assert.Equal(t, "Needs Improvement", report.Rating)
	assert.Equal(t, "red", report.RatingColor)

	for _, entry := range report.ScoringBreakdown {
		assert.Zero(t, entry.Item.Score, entry.Name)
	}
	// Every weak criterion with a recommendation threshold fires.
	assert.Len(t, report.Recommendations, 7)
}

func TestCalculateScore_PerfectResume(t *testing.T) {
	report, err := CalculateScore(fullResumeSections(), fullResumeText)
	require.NoError(t, err)

	assert.Equal(t, 100, report.Score)
	assert.Equal(t, 100.0, report.Percentage)
	assert.Equal(t, "Excellent", report.Rating)
	assert.Equal(t, "green", report.RatingColor)
	assert.Equal(t, []string{"Your resume looks great! Keep it updated."}, report.Recommendations)
}

func TestCalculateScore_BreakdownCaps(t *testing.T) {
	report, err := CalculateScore(fullResumeSections(), fullResumeText)
	require.NoError(t, err)

	caps := map[string]int{
		"Contact Information":     10,
		"Education":               15,
		"Work Experience":         25,
		"Skills":                  15,
		"Projects":                10,
		"Certifications":          8,
		"Research & Publications": 7,
		"Formatting & Keywords":   10,
	}
	require.Len(t, report.ScoringBreakdown, len(caps))
	for _, entry := range report.ScoringBreakdown {
		max, ok := caps[entry.Name]
		require.True(t, ok, entry.Name)
		assert.Equal(t, max, entry.Item.Max, entry.Name)
		assert.GreaterOrEqual(t, entry.Item.Score, 0, entry.Name)
		assert.LessOrEqual(t, entry.Item.Score, max, entry.Name)
	}
}

func TestCalculateScore_ScenarioSubScores(t *testing.T) {
	sections := SectionMap{
		SectionPersonalInfo: {"Email: john@example.com", "Phone: 9876543210", "John Doe"},
		SectionEducation:    {"BTech Computer Science, XYZ Institute"},
		SectionSkills:       {"Python, Go, SQL"},
	}

	report, err := CalculateScore(sections, "John Doe resume text")
	require.NoError(t, err)

	education, ok := report.ScoringBreakdown.Get("Education")
	require.True(t, ok)
	assert.Equal(t, 5, education.Score)

	skills, ok := report.ScoringBreakdown.Get("Skills")
	require.True(t, ok)
	assert.Equal(t, 3, skills.Score)

	contact, ok := report.ScoringBreakdown.Get("Contact Information")
	require.True(t, ok)
	assert.Equal(t, 10, contact.Score)
}

func TestCalculateScore_ExperienceMetricBonus(t *testing.T) {
	base := SectionMap{SectionExperience: {"Shipped the payments flow", "Maintained CI"}}
	report, err := CalculateScore(base, "")
	require.NoError(t, err)
	exp, _ := report.ScoringBreakdown.Get("Work Experience")
	assert.Equal(t, 10, exp.Score)

	withMetric := SectionMap{SectionExperience: {"Shipped the payments flow", "Cut costs by 30%"}}
	report, err = CalculateScore(withMetric, "")
	require.NoError(t, err)
	exp, _ = report.ScoringBreakdown.Get("Work Experience")
	assert.Equal(t, 15, exp.Score)
}

func TestCalculateScore_ExperienceCapHoldsWithBonus(t *testing.T) {
	sections := SectionMap{SectionExperience: {
		"Did 1 thing", "Did 2 things", "Did 3 things", "Did 4 things", "Did 5 things", "Did 6 things",
	}}
	report, err := CalculateScore(sections, "")
	require.NoError(t, err)

	exp, _ := report.ScoringBreakdown.Get("Work Experience")
	assert.Equal(t, 25, exp.Score)
}

func TestCalculateScore_ExperienceMonotonicity(t *testing.T) {
	prev := -1
	var lines []string
	for i := 0; i < 8; i++ {
		report, err := CalculateScore(SectionMap{SectionExperience: lines}, "")
		require.NoError(t, err)
		exp, _ := report.ScoringBreakdown.Get("Work Experience")
		assert.GreaterOrEqual(t, exp.Score, prev)
		prev = exp.Score
		lines = append(lines, "Maintained internal tooling")
	}
}

func TestCalculateScore_FormattingVerbTiers(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"no verbs", "plain text with nothing notable", 0},
		{"two verbs", "developed and designed things", 3},
		{"five verbs", "developed designed implemented managed led", 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report, err := CalculateScore(SectionMap{}, tt.text)
			require.NoError(t, err)
			formatting, _ := report.ScoringBreakdown.Get("Formatting & Keywords")
			assert.Equal(t, tt.want, formatting.Score)
		})
	}
}

func TestCalculateScore_FormattingSectionStructure(t *testing.T) {
	sections := SectionMap{
		SectionPersonalInfo: {"Jane"},
		SectionEducation:    {"BSc"},
		SectionSkills:       {"Go"},
		SectionProjects:     {"CLI"},
	}
	report, err := CalculateScore(sections, "developed designed implemented managed led created")
	require.NoError(t, err)

	formatting, _ := report.ScoringBreakdown.Get("Formatting & Keywords")
	assert.Equal(t, 10, formatting.Score)
}

func TestCalculateScore_RatingBands(t *testing.T) {
	tests := []struct {
		percentage float64
		rating     string
		color      string
	}{
		{95, "Excellent", "green"},
		{90, "Excellent", "green"},
		{80, "Very Good", "blue"},
		{75, "Very Good", "blue"},
		{60, "Good", "yellow"},
		{45, "Fair", "orange"},
		{10, "Needs Improvement", "red"},
	}
	for _, tt := range tests {
		rating, color := ratingFor(tt.percentage)
		assert.Equal(t, tt.rating, rating)
		assert.Equal(t, tt.color, color)
	}
}

func TestCalculateScore_Idempotence(t *testing.T) {
	text := "Education\nBTech CS\n\nSkills\nGo, SQL\n\njane@example.com 9876543210"
	sections := ParseResume(text)

	first, err := CalculateScore(sections, text)
	require.NoError(t, err)
	second, err := CalculateScore(sections, text)
	require.NoError(t, err)

	a, err := json.Marshal(first)
	require.NoError(t, err)
	b, err := json.Marshal(second)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestCalculateScore_FeedbackCoversEveryCriterion(t *testing.T) {
	report, err := CalculateScore(SectionMap{}, "")
	require.NoError(t, err)

	// Two contact signals, two formatting signals, one line for each of the
	// six remaining criteria.
	assert.Len(t, report.Feedback, 10)
}

func TestBreakdown_MarshalJSONOrder(t *testing.T) {
	report, err := CalculateScore(SectionMap{}, "")
	require.NoError(t, err)

	out, err := json.Marshal(report.ScoringBreakdown)
	require.NoError(t, err)

	var keys []string
	dec := json.NewDecoder(strings.NewReader(string(out)))
	_, err = dec.Token()
	require.NoError(t, err)
	for dec.More() {
		tok, err := dec.Token()
		require.NoError(t, err)
		if key, ok := tok.(string); ok {
			keys = append(keys, key)
			var item BreakdownItem
			require.NoError(t, dec.Decode(&item))
		}
	}
	assert.Equal(t, []string{
		"Contact Information",
		"Education",
		"Work Experience",
		"Skills",
		"Projects",
		"Certifications",
		"Research & Publications",
		"Formatting & Keywords",
	}, keys)
}
