package domain

// Resume is the locale-keyed resume content rendered on the resume page
// and into the downloadable PDF. Loaded from the locale data files;
// read-only.
type Resume struct {
	Name     string       `json:"name"`
	Label    string       `json:"label"`
	Email    string       `json:"email"`
	Location string       `json:"location"`
	Website  string       `json:"website"`
	Summary  string       `json:"summary"`
	Skills   []SkillGroup `json:"skills"`
	Work     []Experience `json:"work"`
	Locale   string       `json:"-"`
}

// SkillGroup is a named cluster of related skills.
type SkillGroup struct {
	Category string   `json:"category"`
	Items    []string `json:"items"`
}

// Experience is a single work history entry.
type Experience struct {
	Company  string `json:"company"`
	Position string `json:"position"`
	Start    string `json:"start"`
	End      string `json:"end"`
	Location string `json:"location"`
	Summary  string `json:"summary"`
}
