// Package content loads the portfolio document served by the API: the about text,
// skill groups and projects.
package content

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"veridian/portfolio-api/internal/models"
	"veridian/portfolio-api/internal/validator"
)

//go:embed portfolio.yaml
var defaultPortfolio []byte

// Load reads the portfolio from path, or the embedded document when path is empty.
func Load(path string, v *validator.Validator) (*models.Portfolio, error) {
	data := defaultPortfolio

	if path = strings.TrimSpace(path); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read portfolio file: %w", err)
		}
		data = raw
	}

	return Parse(data, v)
}

// Parse decodes a YAML portfolio document and checks it is usable: an about text,
// at least one project, distinct titles and known categories.
func Parse(data []byte, v *validator.Validator) (*models.Portfolio, error) {
	var portfolio models.Portfolio
	if err := yaml.Unmarshal(data, &portfolio); err != nil {
		return nil, fmt.Errorf("failed to parse portfolio: %w", err)
	}

	portfolio.About = strings.TrimSpace(portfolio.About)
	for i := range portfolio.Projects {
		portfolio.Projects[i].Title = strings.TrimSpace(portfolio.Projects[i].Title)
	}

	if err := v.Validate(&portfolio); err != nil {
		return nil, fmt.Errorf("invalid portfolio: %w", err)
	}

	return &portfolio, nil
}
