package services

import (
	_ "embed"
	"fmt"
	"strings"
	"text/template"

	"google.golang.org/genai"
)

//go:embed prompts/match_projects.tmpl
var matchProjectsTemplate string

var matchProjectsPrompt = template.Must(template.New("match_projects").Parse(matchProjectsTemplate))

// BuildProjectMatchPrompt embeds bio verbatim and the titles as a bulleted list.
func BuildProjectMatchPrompt(bio string, titles []string) (string, error) {
	var b strings.Builder
	data := struct {
		Bio    string
		Titles []string
	}{Bio: bio, Titles: titles}

	if err := matchProjectsPrompt.Execute(&b, data); err != nil {
		return "", fmt.Errorf("failed to render match prompt: %w", err)
	}
	return b.String(), nil
}

// ProjectMatchOutputSchema declares the structured output expected from the model:
// {"matchedTitles": string[]}.
func ProjectMatchOutputSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"matchedTitles": {
				Type:        genai.TypeArray,
				Description: "Titles from the provided project list that are most relevant to the skills in the 'About Me' section.",
				Items:       &genai.Schema{Type: genai.TypeString},
			},
		},
		Required: []string{"matchedTitles"},
	}
}

// extractJSON strips markdown fences some models wrap around JSON output.
func extractJSON(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "```") {
		raw = strings.TrimPrefix(raw, "```json")
		raw = strings.TrimPrefix(raw, "```")
		if idx := strings.LastIndex(raw, "```"); idx != -1 {
			raw = raw[:idx]
		}
	}
	return strings.TrimSpace(raw)
}
