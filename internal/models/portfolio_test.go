package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPortfolioHighlight(t *testing.T) {
	p := &Portfolio{Projects: []Project{
		{Title: "Pixel Raiders", Tags: []string{"Unity"}},
		{Title: "VR Escape Room"},
		{Title: "Veridian Keeper", Highlight: true},
	}}

	projects := p.Highlight([]string{"VR Escape Room", "Unknown"})

	assert.Equal(t, []string{"Pixel Raiders", "VR Escape Room", "Veridian Keeper"}, p.Titles())
	assert.False(t, projects[0].Highlight)
	assert.True(t, projects[1].Highlight)
	assert.False(t, projects[2].Highlight)

	projects[0].Tags[0] = "changed"
	assert.Equal(t, "Unity", p.Projects[0].Tags[0])
	assert.True(t, p.Projects[2].Highlight)
}
