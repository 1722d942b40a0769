package studentsearch

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanJSON(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", `{"a": 1}`, `{"a": 1}`},
		{"json fence", "```json\n{\"a\": 1}\n```", `{"a": 1}`},
		{"bare fence", "```\n{\"a\": 1}\n```", `{"a": 1}`},
		{"surrounding whitespace", "  \n```json\n{\"a\": 1}\n```  \n", `{"a": 1}`},
		{"no trailing fence", "```json\n{\"a\": 1}", `{"a": 1}`},
		{"empty", "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CleanJSON(tc.input))
		})
	}
}

func TestBuildPrompt(t *testing.T) {
	students := []StudentProfile{
		{ID: "s1", Name: "Jane Doe", Skills: []string{"Go", "Blockchain"}, CGPA: 8.4},
	}

	prompt, err := buildPrompt("Show me students with Blockchain skills", students)
	require.NoError(t, err)

	assert.Contains(t, prompt, `"Show me students with Blockchain skills"`)
	assert.Contains(t, prompt, "filtered_student_ids")
	// The serialized roster is embedded verbatim.
	data, err := json.Marshal(students)
	require.NoError(t, err)
	assert.Contains(t, prompt, string(data))
}

func TestFilterResult_Unmarshal(t *testing.T) {
	raw := CleanJSON("```json\n{\"response\": \"Found 2 students.\", \"filtered_student_ids\": [\"s1\", \"s2\"]}\n```")

	var result FilterResult
	require.NoError(t, json.Unmarshal([]byte(raw), &result))
	assert.Equal(t, "Found 2 students.", result.Response)
	assert.Equal(t, []string{"s1", "s2"}, result.FilteredStudentIDs)
}
