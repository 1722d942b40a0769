package ats

import (
	"bytes"
	"encoding/json"
	"regexp"
	"strings"
	"unicode/utf8"
)

// SectionKey is one of the fixed vocabulary labels used to bucket resume
// content.
type SectionKey string

const (
	SectionPersonalInfo   SectionKey = "personal_info"
	SectionEducation      SectionKey = "education"
	SectionExperience     SectionKey = "experience"
	SectionProjects       SectionKey = "projects"
	SectionSkills         SectionKey = "skills"
	SectionCertifications SectionKey = "certifications"
	SectionResearch       SectionKey = "research"
	SectionThesis         SectionKey = "thesis"
	SectionStartups       SectionKey = "startups"
	SectionAchievements   SectionKey = "achievements"
	SectionLanguages      SectionKey = "languages"
	SectionInterests      SectionKey = "interests"
	SectionOther          SectionKey = "other_sections"
)

// sectionRules maps each section key to its header trigger keywords. Rules
// are evaluated in declaration order and the first match wins, so the order
// here is load-bearing.
type sectionRule struct {
	key      SectionKey
	keywords []string
}

var sectionRules = []sectionRule{
	{SectionPersonalInfo, []string{"name", "contact", "email", "phone", "address", "profile"}},
	{SectionEducation, []string{"education", "academic", "qualification", "degree", "university", "college"}},
	{SectionExperience, []string{"experience", "employment", "work history", "professional experience"}},
	{SectionProjects, []string{"projects", "personal projects", "academic projects"}},
	{SectionSkills, []string{"skills", "technical skills", "competencies", "expertise"}},
	{SectionCertifications, []string{"certifications", "certificates", "licenses"}},
	{SectionResearch, []string{"research", "research papers", "publications"}},
	{SectionThesis, []string{"thesis", "dissertation"}},
	{SectionStartups, []string{"startup", "entrepreneurship", "venture"}},
	{SectionAchievements, []string{"achievements", "awards", "honors", "accomplishments"}},
	{SectionLanguages, []string{"languages", "language proficiency"}},
	{SectionInterests, []string{"interests", "hobbies"}},
}

// sectionOrder fixes the serialization order of section keys.
var sectionOrder = []SectionKey{
	SectionPersonalInfo,
	SectionEducation,
	SectionExperience,
	SectionProjects,
	SectionSkills,
	SectionCertifications,
	SectionResearch,
	SectionThesis,
	SectionStartups,
	SectionAchievements,
	SectionLanguages,
	SectionInterests,
	SectionOther,
}

// headerMaxLen keeps ordinary prose that mentions a keyword mid-sentence
// from being classified as a section header.
const headerMaxLen = 50

var (
	emailPattern = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Z|a-z]{2,}\b`)

	// Deliberately permissive: also matches digit runs inside dates or ID
	// numbers. The scoring weights are calibrated against this behavior.
	phonePattern = regexp.MustCompile(`[\+]?[(]?[0-9]{1,4}[)]?[-\s\.]?[(]?[0-9]{1,4}[)]?[-\s\.]?[0-9]{1,4}[-\s\.]?[0-9]{1,9}`)
)

// SectionMap buckets resume lines under the fixed section vocabulary. Keys
// with no content are absent. It serializes as a JSON object with keys in
// the fixed vocabulary order.
type SectionMap map[SectionKey][]string

// MarshalJSON emits present sections in vocabulary order so responses are
// stable across calls.
func (m SectionMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	first := true
	for _, key := range sectionOrder {
		lines, ok := m[key]
		if !ok {
			continue
		}
		if !first {
			buf.WriteByte(',')
		}
		first = false

		k, err := json.Marshal(string(key))
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(lines)
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

// SectionCount returns the number of populated sections.
func (m SectionMap) SectionCount() int {
	return len(m)
}

// ParseResume segments extracted resume text into a SectionMap. Every
// non-blank line either switches the current section (header lines are
// consumed, never stored) or lands in exactly one section's content; lines
// seen before the first header are treated as personal info. A first email
// and a first phone match over the whole text are prepended to
// personal_info as tagged lines.
func ParseResume(text string) SectionMap {
	lines := strings.Split(text, "\n")
	parsed := make(SectionMap)

	allText := strings.Join(lines, " ")
	if email := emailPattern.FindString(allText); email != "" {
		parsed[SectionPersonalInfo] = append(parsed[SectionPersonalInfo], "Email: "+email)
	}
	if phone := phonePattern.FindString(allText); phone != "" {
		parsed[SectionPersonalInfo] = append(parsed[SectionPersonalInfo], "Phone: "+phone)
	}

	var (
		currentSection SectionKey
		currentContent []string
	)

	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		if key, ok := classifyHeader(line); ok {
			if currentSection != "" && len(currentContent) > 0 {
				parsed[currentSection] = append(parsed[currentSection], currentContent...)
			}
			currentSection = key
			currentContent = nil
			continue
		}

		if currentSection != "" {
			currentContent = append(currentContent, line)
		} else {
			parsed[SectionPersonalInfo] = append(parsed[SectionPersonalInfo], line)
		}
	}

	if currentSection != "" && len(currentContent) > 0 {
		parsed[currentSection] = append(parsed[currentSection], currentContent...)
	}

	for key, content := range parsed {
		if len(content) == 0 {
			delete(parsed, key)
		}
	}

	return parsed
}

// classifyHeader reports whether a non-blank line introduces a new section.
// A line is a header for the first rule whose keyword it contains, provided
// the whole line stays under the header length cap.
func classifyHeader(line string) (SectionKey, bool) {
	if utf8.RuneCountInString(line) >= headerMaxLen {
		return "", false
	}
	lower := strings.ToLower(line)
	for _, rule := range sectionRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(lower, keyword) {
				return rule.key, true
			}
		}
	}
	return "", false
}
