package ats

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseResume_SectionedResume(t *testing.T) {
	text := "John Doe\njohn@example.com\n9876543210\n\nEducation\nBTech Computer Science, XYZ Institute\n\nSkills\nPython, Go, SQL"

	parsed := ParseResume(text)

	require.Contains(t, parsed, SectionPersonalInfo)
	assert.Equal(t, []string{
		"Email: john@example.com",
		"Phone: 9876543210",
		"John Doe",
		"john@example.com",
		"9876543210",
	}, parsed[SectionPersonalInfo])

	assert.Equal(t, []string{"BTech Computer Science, XYZ Institute"}, parsed[SectionEducation])
	assert.Equal(t, []string{"Python, Go, SQL"}, parsed[SectionSkills])
	assert.NotContains(t, parsed, SectionExperience)
}

func TestParseResume_NoHeadersNoContact(t *testing.T) {
	parsed := ParseResume("just a summary paragraph\nanother plain sentence")

	require.Len(t, parsed, 1)
	assert.Equal(t, []string{
		"just a summary paragraph",
		"another plain sentence",
	}, parsed[SectionPersonalInfo])
}

func TestParseResume_EmptyText(t *testing.T) {
	parsed := ParseResume("")

	assert.NotNil(t, parsed)
	assert.Empty(t, parsed)
}

func TestParseResume_HeaderLinesAreConsumed(t *testing.T) {
	text := "Skills\nPython\nEducation\nBSc Mathematics"

	parsed := ParseResume(text)

	assert.Equal(t, []string{"Python"}, parsed[SectionSkills])
	assert.Equal(t, []string{"BSc Mathematics"}, parsed[SectionEducation])
	for _, lines := range parsed {
		assert.NotContains(t, lines, "Skills")
		assert.NotContains(t, lines, "Education")
	}
}

func TestParseResume_HeaderLengthCap(t *testing.T) {
	// A keyword buried in a long prose line must stay content.
	long := "during this role I gained a lot of valuable experience working with distributed systems"
	text := "Work History\n" + long

	parsed := ParseResume(text)

	assert.Equal(t, []string{long}, parsed[SectionExperience])
}

func TestParseResume_ShortKeywordLineBecomesHeader(t *testing.T) {
	// The 50-char heuristic intentionally misclassifies short content lines
	// that mention a trigger keyword.
	text := "Education\nBTech Computer Science, XYZ University\nGraduated 2024"

	parsed := ParseResume(text)

	assert.NotContains(t, parsed[SectionEducation], "BTech Computer Science, XYZ University")
	assert.Equal(t, []string{"Graduated 2024"}, parsed[SectionEducation])
}

func TestParseResume_RepeatedHeadersAccumulate(t *testing.T) {
	text := "Skills\nPython\nTechnical Skills\nKubernetes"

	parsed := ParseResume(text)

	assert.Equal(t, []string{"Python", "Kubernetes"}, parsed[SectionSkills])
}

func TestParseResume_FirstKeywordRuleWins(t *testing.T) {
	// "Academic Projects" matches the education rule ("academic") before the
	// projects rule, since rules are evaluated in declaration order.
	text := "Academic Projects\nBuilt a compiler"

	parsed := ParseResume(text)

	assert.Equal(t, []string{"Built a compiler"}, parsed[SectionEducation])
	assert.NotContains(t, parsed, SectionProjects)
}

func TestParseResume_FirstMatchOnlyForContact(t *testing.T) {
	text := "a@b.com\nsecond@c.com\n(011) 2345-6789 and 9876543210"

	parsed := ParseResume(text)

	info := parsed[SectionPersonalInfo]
	require.NotEmpty(t, info)
	assert.Equal(t, "Email: a@b.com", info[0])
	assert.Contains(t, info[1], "Phone: ")
	for _, item := range info[2:] {
		assert.NotContains(t, item, "Email: ")
		assert.NotContains(t, item, "Phone: ")
	}
}

func TestParseResume_LineConservation(t *testing.T) {
	// Every non-blank line is either stored in exactly one section or
	// consumed as a header.
	text := "John Doe\n\nEducation\nBSc Physics\nMSc Physics\n\nSkills\nGit, Linux"
	nonBlank := 6
	headers := 2

	parsed := ParseResume(text)

	stored := 0
	for _, lines := range parsed {
		stored += len(lines)
	}
	assert.Equal(t, nonBlank-headers, stored)
}

func TestSectionMap_MarshalJSONOrder(t *testing.T) {
	m := SectionMap{
		SectionSkills:       {"Go"},
		SectionPersonalInfo: {"Jane"},
		SectionEducation:    {"BSc"},
	}

	out, err := json.Marshal(m)
	require.NoError(t, err)
	assert.JSONEq(t, `{"personal_info":["Jane"],"education":["BSc"],"skills":["Go"]}`, string(out))
	assert.Equal(t, `{"personal_info":["Jane"],"education":["BSc"],"skills":["Go"]}`, string(out))
}
