package model

// Language represents a single catalog entry
type Language struct {
	Name         string   `json:"name" yaml:"name"`                   // Display name, used as the search key
	Year         uint32   `json:"year" yaml:"year"`                   // Year of creation or first release
	Creators     []string `json:"creators" yaml:"creators"`           // People or organizations, in catalog order
	Paradigm     []string `json:"paradigm" yaml:"paradigm"`           // Free-text paradigm tags (e.g., "functional")
	Typing       string   `json:"typing" yaml:"typing"`               // Typing discipline (e.g., "static, strong")
	InfluencedBy []string `json:"influenced_by" yaml:"influenced_by"` // Informational only, never cross-referenced
}

// Catalog is the ordered set of languages loaded for one invocation.
// It is never mutated after load.
type Catalog []Language

// Names returns the language names in catalog order
func (c Catalog) Names() []string {
	names := make([]string, len(c))
	for i, lang := range c {
		names[i] = lang.Name
	}
	return names
}
