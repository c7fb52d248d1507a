package sources

import (
	"slices"

	"github.com/samber/lo"
)

type Type string

const (
	TypeAPI     Type = "api"
	TypeRSS     Type = "rss"
	TypeScraper Type = "scraper"
)

type Source struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Type        Type     `json:"type"`
	URL         string   `json:"url"`
	Enabled     bool     `json:"enabled"`
	Category    string   `json:"category"`
	Countries   []string `json:"countries,omitempty"`
	Description string   `json:"description"`
}

type Stats struct {
	Total      int            `json:"total"`
	Enabled    int            `json:"enabled"`
	ByType     map[Type]int   `json:"byType"`
	ByCategory map[string]int `json:"byCategory"`
}

// Registry is a read-only view over a source catalog. Order is declaration order.
type Registry struct {
	sources []Source
}

var defaultRegistry = NewRegistry(catalog)

// Default returns the registry over the built-in catalog.
func Default() *Registry {
	return defaultRegistry
}

func NewRegistry(sources []Source) *Registry {
	return &Registry{sources: slices.Clone(sources)}
}

func (r *Registry) All() []Source {
	return slices.Clone(r.sources)
}

func (r *Registry) Enabled() []Source {
	return lo.Filter(r.sources, func(s Source, _ int) bool { return s.Enabled })
}

func (r *Registry) ByCategory(category string) []Source {
	return lo.Filter(r.sources, func(s Source, _ int) bool { return s.Enabled && s.Category == category })
}

// Categories lists every category in the catalog, enabled or not, in order of first appearance.
func (r *Registry) Categories() []string {
	return lo.Uniq(lo.Map(r.sources, func(s Source, _ int) string { return s.Category }))
}

func (r *Registry) Lookup(id string) (Source, bool) {
	return lo.Find(r.sources, func(s Source) bool { return s.ID == id })
}

func (r *Registry) Stats() Stats {
	enabled := r.Enabled()
	return Stats{
		Total:      len(r.sources),
		Enabled:    len(enabled),
		ByType:     lo.CountValuesBy(enabled, func(s Source) Type { return s.Type }),
		ByCategory: lo.CountValuesBy(enabled, func(s Source) string { return s.Category }),
	}
}
