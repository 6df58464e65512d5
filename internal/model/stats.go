package model

import "sort"

// Stats summarizes a catalog
type Stats struct {
	Total          int            `json:"total" yaml:"total"`
	Earliest       Language       `json:"earliest" yaml:"earliest"`
	Latest         Language       `json:"latest" yaml:"latest"`
	ParadigmCounts map[string]int `json:"paradigm_counts" yaml:"paradigm_counts"`
}

// ParadigmCount is one row of the paradigm breakdown
type ParadigmCount struct {
	Paradigm string
	Count    int
}

// SortedParadigms returns the paradigm counts ordered by count (descending),
// then by tag so that output is stable across runs.
func (s Stats) SortedParadigms() []ParadigmCount {
	rows := make([]ParadigmCount, 0, len(s.ParadigmCounts))
	for p, n := range s.ParadigmCounts {
		rows = append(rows, ParadigmCount{Paradigm: p, Count: n})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Count != rows[j].Count {
			return rows[i].Count > rows[j].Count
		}
		return rows[i].Paradigm < rows[j].Paradigm
	})

	return rows
}
