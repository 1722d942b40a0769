// Package studentsearch answers natural-language queries over student
// profiles with Gemini, returning the matching profile IDs.
package studentsearch

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

const modelName = "gemini-2.5-flash"

// StudentProfile is the profile shape serialized into the prompt and echoed
// back to the client.
type StudentProfile struct {
	ID              string           `json:"id"`
	Name            string           `json:"name"`
	Email           string           `json:"email"`
	Field           string           `json:"field"`
	Year            string           `json:"year"`
	CGPA            float64          `json:"cgpa"`
	RollNo          string           `json:"rollNo"`
	Skills          []string         `json:"skills"`
	TechStack       []string         `json:"techStack"`
	AITools         []string         `json:"aiTools"`
	Experiences     []map[string]any `json:"experiences"`
	Certifications  []map[string]any `json:"certifications"`
	Projects        []map[string]any `json:"projects"`
	LinkedinProfile string           `json:"linkedinProfile"`
	GithubProfile   string           `json:"githubProfile"`
	Mobile          string           `json:"mobile"`
}

// FilterResult is the model's answer: a short explanation plus the IDs of
// matching students.
type FilterResult struct {
	Response           string   `json:"response"`
	FilteredStudentIDs []string `json:"filtered_student_ids"`
}

type Searcher struct {
	client *genai.Client
}

func NewSearcher(ctx context.Context, apiKey string) (*Searcher, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	return &Searcher{client: client}, nil
}

// Filter asks the model to pick the students matching the query.
func (s *Searcher) Filter(ctx context.Context, query string, students []StudentProfile) (*FilterResult, error) {
	prompt, err := buildPrompt(query, students)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Models.GenerateContent(ctx, modelName, genai.Text(prompt), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}
	if resp == nil {
		return nil, fmt.Errorf("no response generated")
	}

	text := CleanJSON(resp.Text())
	var result FilterResult
	if err := json.Unmarshal([]byte(text), &result); err != nil {
		return nil, fmt.Errorf("failed to parse model response: %w", err)
	}
	if result.Response == "" {
		result.Response = "Here are the students matching your criteria."
	}
	return &result, nil
}

func buildPrompt(query string, students []StudentProfile) (string, error) {
	data, err := json.Marshal(students)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf(`You are an AI assistant helping an admin filter students based on their query.

User Query: %q

Available Students Data (JSON):
%s

Instructions:
1. Analyze the user's query to understand what type of students they're looking for
2. Filter the students based on skills, techStack, aiTools, experiences, field, year, CGPA, or any other criteria mentioned
3. Return a JSON response with:
   - "response": A natural language response explaining what you found (2-3 sentences max)
   - "filtered_student_ids": An array of student IDs that match the criteria

Example queries:
- "Show me students with Blockchain skills" → Filter by skills containing "Blockchain"
- "Show me MERN stack developers" → Filter by techStack containing MongoDB, Express, React, Node
- "Show me AI/ML students" → Filter by skills/techStack containing AI, ML, Machine Learning, etc.
- "Show fullstack developers with CGPA above 8" → Filter by skills AND cgpa

Return ONLY valid JSON in this exact format:
{
  "response": "Found X students with [criteria]. They have experience in [relevant skills].",
  "filtered_student_ids": ["id1", "id2", "id3"]
}

Be intelligent about matching - use synonyms and related terms. For example:
- "AI" matches "Artificial Intelligence", "Machine Learning", "Deep Learning"
- "MERN" matches "MongoDB", "Express", "React", "Node.js"
- "Fullstack" matches students with both frontend and backend skills
`, query, data), nil
}

// CleanJSON strips the markdown code fences models wrap JSON answers in.
func CleanJSON(input string) string {
	clean := strings.TrimSpace(input)

	if strings.HasPrefix(clean, "```json") {
		clean = strings.TrimPrefix(clean, "```json")
	} else if strings.HasPrefix(clean, "```") {
		clean = strings.TrimPrefix(clean, "```")
	}
	clean = strings.TrimLeft(clean, "\r\n")

	clean = strings.TrimSuffix(clean, "```")

	return strings.TrimSpace(clean)
}
