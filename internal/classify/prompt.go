package classify

import (
	"encoding/json"
	"fmt"
	"strings"
)

// buildPrompt builds the categorization prompt: all titles in one request,
// topics restricted to the closed set.
func buildPrompt(topics, titles []string) string {
	return fmt.Sprintf(`Categorize these maxillofacial surgery article titles into exactly one of these topics: %s.

Return a JSON array of objects with "title" and "topic" keys. Use each title verbatim. Every title must appear exactly once.

Titles:
%s

Return ONLY the JSON array, no other text.`, strings.Join(topics, ", "), strings.Join(titles, "\n"))
}

// assignment is one (title, topic) pair from the model.
type assignment struct {
	Title string `json:"title"`
	Topic string `json:"topic"`
}

// ParseAssignments parses the model's JSON array of {title, topic} pairs
// into a title-keyed lookup. Duplicate titles resolve last-write-wins.
// Topics outside the closed set are kept as-is; policy for them belongs to
// the caller.
func ParseAssignments(text string) (map[string]string, error) {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```") {
		text = extractFromCodeBlock(text)
	}

	var pairs []assignment
	if err := json.Unmarshal([]byte(text), &pairs); err != nil {
		return nil, fmt.Errorf("parsing categorization response: %w", err)
	}

	lookup := make(map[string]string, len(pairs))
	for _, p := range pairs {
		if p.Title == "" {
			continue
		}
		lookup[p.Title] = p.Topic
	}
	return lookup, nil
}

// extractFromCodeBlock extracts content from a markdown code block.
func extractFromCodeBlock(text string) string {
	lines := strings.Split(text, "\n")
	if len(lines) < 2 {
		return text
	}

	start := 1
	end := len(lines)
	if strings.TrimSpace(lines[len(lines)-1]) == "```" {
		end = len(lines) - 1
	}

	return strings.Join(lines[start:end], "\n")
}
