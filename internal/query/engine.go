// Package query filters and summarizes a language catalog.
// Every operation is pure and preserves catalog order.
package query

import (
	"errors"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/ppiankov/kapa/internal/model"
)

// ErrEmptyCatalog is returned by ComputeStats when there is nothing to summarize
var ErrEmptyCatalog = errors.New("catalog is empty: no statistics available")

// ListAll returns the catalog unchanged
func ListAll(c model.Catalog) model.Catalog {
	return c
}

// SearchByName returns languages whose name contains q, ignoring case.
// An empty q matches everything.
func SearchByName(c model.Catalog, q string) model.Catalog {
	needle := lower(q)
	return filter(c, func(lang model.Language) bool {
		return strings.Contains(lower(lang.Name), needle)
	})
}

// FilterByYear returns languages created in exactly year
func FilterByYear(c model.Catalog, year uint32) model.Catalog {
	return filter(c, func(lang model.Language) bool {
		return lang.Year == year
	})
}

// FilterByCreator returns languages where at least one creator contains q, ignoring case
func FilterByCreator(c model.Catalog, q string) model.Catalog {
	needle := lower(q)
	return filter(c, func(lang model.Language) bool {
		for _, creator := range lang.Creators {
			if strings.Contains(lower(creator), needle) {
				return true
			}
		}
		return false
	})
}

// ComputeStats summarizes the catalog. Ties for earliest and latest go to
// the first language in catalog order.
func ComputeStats(c model.Catalog) (model.Stats, error) {
	if len(c) == 0 {
		return model.Stats{}, ErrEmptyCatalog
	}

	stats := model.Stats{
		Total:          len(c),
		Earliest:       c[0],
		Latest:         c[0],
		ParadigmCounts: make(map[string]int),
	}

	for _, lang := range c[1:] {
		if lang.Year < stats.Earliest.Year {
			stats.Earliest = lang
		}
		if lang.Year > stats.Latest.Year {
			stats.Latest = lang
		}
	}

	for _, lang := range c {
		seen := make(map[string]struct{}, len(lang.Paradigm))
		for _, p := range lang.Paradigm {
			if _, dup := seen[p]; dup {
				continue
			}
			seen[p] = struct{}{}
			stats.ParadigmCounts[p]++
		}
	}

	return stats, nil
}

func filter(c model.Catalog, keep func(model.Language) bool) model.Catalog {
	out := make(model.Catalog, 0, len(c))
	for _, lang := range c {
		if keep(lang) {
			out = append(out, lang)
		}
	}
	return out
}

// lower lowercases s for case-insensitive comparison. Only case changes;
// ß stays ß, so "sse" does not match "Straße".
// A Caser is stateful, so each call gets its own.
func lower(s string) string {
	return cases.Lower(language.Und).String(s)
}
