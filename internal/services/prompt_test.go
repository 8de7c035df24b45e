package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func TestBuildProjectMatchPrompt(t *testing.T) {
	bio := "I build games in Unity & C#.\nAlso some <b>web</b> work."
	prompt, err := BuildProjectMatchPrompt(bio, []string{"Pixel Raiders", "VR Escape Room"})
	require.NoError(t, err)

	assert.Contains(t, prompt, bio)
	assert.Contains(t, prompt, "- Pixel Raiders\n- VR Escape Room\n")
	assert.Contains(t, prompt, "Return ONLY the names of the most relevant projects")
	assert.Contains(t, prompt, "If no projects are relevant, return an empty array.")
}

func TestBuildProjectMatchPromptWithoutTitles(t *testing.T) {
	prompt, err := BuildProjectMatchPrompt("Go developer", nil)
	require.NoError(t, err)

	assert.Contains(t, prompt, "And the following list of projects:\n\n\nIdentify")
	assert.NotContains(t, prompt, "- ")
}

func TestProjectMatchOutputSchema(t *testing.T) {
	schema := ProjectMatchOutputSchema()

	assert.Equal(t, genai.TypeObject, schema.Type)
	assert.Equal(t, []string{"matchedTitles"}, schema.Required)
	require.Contains(t, schema.Properties, "matchedTitles")
	assert.Equal(t, genai.TypeArray, schema.Properties["matchedTitles"].Type)
	assert.Equal(t, genai.TypeString, schema.Properties["matchedTitles"].Items.Type)
}

func TestExtractJSON(t *testing.T) {
	assert.Equal(t, `{"matchedTitles": []}`, extractJSON("```json\n{\"matchedTitles\": []}\n```"))
	assert.Equal(t, `{"a": 1}`, extractJSON("  {\"a\": 1}  "))
}
