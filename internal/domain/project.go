// Package domain contains the portfolio's core entities and business errors.
package domain

import "time"

// ProjectSource identifies where a project entry was loaded from.
type ProjectSource string

const (
	// SourceGitHub marks projects fetched from the GitHub repository listing.
	SourceGitHub ProjectSource = "github"

	// SourceLocal marks projects loaded from the local data store.
	SourceLocal ProjectSource = "local"
)

// Project is a single portfolio entry. Entries are loaded at request time
// from the GitHub API or the local store and are never mutated by the
// running process. Display order follows the order provided by the source.
type Project struct {
	// Name is the project title.
	Name string

	// Description is a short human-readable summary.
	Description string

	// Tags are technologies and topics associated with the project.
	Tags []string

	// GitHubURL links to the repository page, if any.
	GitHubURL string

	// DemoURL links to a live demo, if any.
	DemoURL string

	// ImageURL links to a preview image, if any.
	ImageURL string

	// Language is the primary implementation language reported by the source.
	Language string

	// Stars and Forks are counts pulled from the repository listing.
	// Always zero for local projects.
	Stars int
	Forks int

	// Featured marks projects highlighted on the home page.
	Featured bool

	// Source records which backend provided this entry.
	Source ProjectSource

	// UpdatedAt is the last activity timestamp reported by the source.
	UpdatedAt time.Time
}

// MatchesSearch reports whether the project matches a case-folded search
// term against its name and description. An empty term matches everything.
func (p *Project) MatchesSearch(term string) bool {
	if term == "" {
		return true
	}

	return containsFold(p.Name, term) || containsFold(p.Description, term)
}
