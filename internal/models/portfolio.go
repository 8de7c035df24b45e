package models

const (
	CategoryWebDevelopment  = "Web Development"
	CategoryGameDevelopment = "Game Development"
)

type Portfolio struct {
	Owner    string       `yaml:"owner" json:"owner" validate:"required"`
	About    string       `yaml:"about" json:"about" validate:"required"`
	Skills   []SkillGroup `yaml:"skills" json:"skills" validate:"dive"`
	Projects []Project    `yaml:"projects" json:"projects" validate:"required,min=1,unique=Title,dive"`
}

type SkillGroup struct {
	Name   string   `yaml:"name" json:"name" validate:"required"`
	Skills []string `yaml:"skills" json:"skills" validate:"required,min=1,dive,required"`
}

type Project struct {
	Title       string   `yaml:"title" json:"title" validate:"required"`
	Description string   `yaml:"description" json:"description"`
	Image       string   `yaml:"image" json:"image" validate:"omitempty,url"`
	Category    string   `yaml:"category" json:"category" validate:"oneof='Web Development' 'Game Development'"`
	Tags        []string `yaml:"tags" json:"tags"`
	ImageHint   string   `yaml:"image_hint" json:"imageHint"`
	Highlight   bool     `yaml:"-" json:"highlight"`
}

// Titles returns the project titles in display order.
func (p *Portfolio) Titles() []string {
	titles := make([]string, 0, len(p.Projects))
	for _, project := range p.Projects {
		titles = append(titles, project.Title)
	}
	return titles
}

// Highlight returns a copy of the projects with Highlight set on every project
// whose title is in matched. The portfolio itself is left untouched.
func (p *Portfolio) Highlight(matched []string) []Project {
	set := make(map[string]struct{}, len(matched))
	for _, title := range matched {
		set[title] = struct{}{}
	}

	projects := make([]Project, len(p.Projects))
	for i, project := range p.Projects {
		_, project.Highlight = set[project.Title]
		project.Tags = append([]string(nil), project.Tags...)
		projects[i] = project
	}
	return projects
}
