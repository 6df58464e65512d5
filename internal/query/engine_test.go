package query

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ppiankov/kapa/internal/model"
)

func sampleCatalog() model.Catalog {
	return model.Catalog{
		{Name: "Rust", Year: 2010, Creators: []string{"Graydon Hoare"}, Paradigm: []string{"functional", "imperative", "concurrent"}, Typing: "static, strong"},
		{Name: "Go", Year: 2009, Creators: []string{"Robert Griesemer", "Rob Pike", "Ken Thompson"}, Paradigm: []string{"concurrent", "imperative"}, Typing: "static, strong"},
		{Name: "C", Year: 1972, Creators: []string{"Dennis Ritchie"}, Paradigm: []string{"imperative", "procedural"}, Typing: "static, weak"},
		{Name: "TypeScript", Year: 2012, Creators: []string{"Anders Hejlsberg"}, Paradigm: []string{"object-oriented", "functional"}, Typing: "static, gradual"},
		{Name: "Ruby", Year: 1995, Creators: []string{"Yukihiro Matsumoto"}, Paradigm: []string{"object-oriented"}, Typing: "dynamic, strong"},
		{Name: "B", Year: 1969, Creators: []string{"Ken Thompson", "Dennis Ritchie"}, Paradigm: []string{"imperative"}, Typing: "typeless"},
		{Name: "ML", Year: 1973, Creators: []string{"Robin Milner"}, Paradigm: []string{"functional"}, Typing: "static, inferred"},
		{Name: "Scheme", Year: 1975, Creators: []string{"Guy Steele", "Gerald Sussman"}, Paradigm: []string{"functional"}, Typing: "dynamic"},
		{Name: "Smalltalk", Year: 1972, Creators: []string{"Alan Kay"}, Paradigm: []string{"object-oriented"}, Typing: "dynamic"},
	}
}

func TestListAll(t *testing.T) {
	c := sampleCatalog()
	assert.Equal(t, c, ListAll(c))
	assert.Empty(t, ListAll(model.Catalog{}))
}

func TestSearchByName(t *testing.T) {
	c := sampleCatalog()

	tests := []struct {
		query string
		want  []string
	}{
		{"ru", []string{"Rust", "Ruby"}},
		{"RU", []string{"Rust", "Ruby"}},
		{"go", []string{"Go"}},
		{"script", []string{"TypeScript"}},
		{"alk", []string{"Smalltalk"}},
		{"c", []string{"C", "TypeScript", "Scheme"}},
		{"zig", []string{}},
		{"", c.Names()},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			assert.Equal(t, tt.want, SearchByName(c, tt.query).Names())
		})
	}
}

func TestSearchByName_Subsequence(t *testing.T) {
	c := sampleCatalog()

	for _, q := range []string{"", "r", "S", "us", "sc", "m", "x"} {
		got := SearchByName(c, q)

		var want []string
		for _, lang := range c {
			if strings.Contains(strings.ToLower(lang.Name), strings.ToLower(q)) {
				want = append(want, lang.Name)
			}
		}
		if want == nil {
			want = []string{}
		}
		assert.Equal(t, want, got.Names(), "query %q", q)
	}
}

func TestSearchByName_UnicodeCase(t *testing.T) {
	c := model.Catalog{{Name: "Élan"}, {Name: "Straße"}, {Name: "ΣΙΓΜΑ"}}

	assert.Equal(t, []string{"Élan"}, SearchByName(c, "éLAN").Names())
	assert.Equal(t, []string{"Straße"}, SearchByName(c, "STRAßE").Names())
	assert.Equal(t, []string{"ΣΙΓΜΑ"}, SearchByName(c, "σιγ").Names())

	// lowercasing only: no ß -> ss expansion
	assert.Empty(t, SearchByName(c, "sse"))
	assert.Empty(t, SearchByName(c, "STRASSE"))
}

func TestFilterByCreator_UnicodeCase(t *testing.T) {
	c := model.Catalog{{Name: "Elixir", Creators: []string{"José Valim"}}}

	assert.Equal(t, []string{"Elixir"}, FilterByCreator(c, "JOSÉ").Names())
	assert.Empty(t, FilterByCreator(c, "jose"))
}

func TestFilterByYear(t *testing.T) {
	c := sampleCatalog()

	assert.Equal(t, []string{"Go"}, FilterByYear(c, 2009).Names())
	assert.Equal(t, []string{"C", "Smalltalk"}, FilterByYear(c, 1972).Names())
	assert.Empty(t, FilterByYear(c, 1800))
	assert.NotNil(t, FilterByYear(c, 1800))
}

func TestFilterByCreator(t *testing.T) {
	c := sampleCatalog()

	tests := []struct {
		query string
		want  []string
	}{
		{"ken thompson", []string{"Go", "B"}},
		{"Ritchie", []string{"C", "B"}},
		{"rob", []string{"Go", "ML"}},
		{"Anders", []string{"TypeScript"}},
		{"Bjarne", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterByCreator(c, tt.query).Names())
		})
	}
}

func TestFilterByCreator_NoMatchIsNotAnError(t *testing.T) {
	c := model.Catalog{
		{Name: "Rust", Year: 2010, Creators: []string{"Graydon Hoare"}},
		{Name: "Go", Year: 2009, Creators: []string{"Rob Pike"}},
	}
	assert.Empty(t, FilterByCreator(c, "Anders"))
}

func TestFilters_DoNotMutateCatalog(t *testing.T) {
	c := sampleCatalog()
	before := sampleCatalog()

	_ = SearchByName(c, "r")
	_ = FilterByYear(c, 1972)
	_ = FilterByCreator(c, "ken")
	_, _ = ComputeStats(c)

	assert.Equal(t, before, c)
}

func TestComputeStats_RustGo(t *testing.T) {
	c := model.Catalog{
		{Name: "Rust", Year: 2010, Paradigm: []string{"functional", "imperative"}},
		{Name: "Go", Year: 2009, Paradigm: []string{"concurrent", "imperative"}},
	}

	stats, err := ComputeStats(c)
	require.NoError(t, err)

	assert.Equal(t, 2, stats.Total)
	assert.Equal(t, "Go", stats.Earliest.Name)
	assert.Equal(t, uint32(2009), stats.Earliest.Year)
	assert.Equal(t, "Rust", stats.Latest.Name)
	assert.Equal(t, uint32(2010), stats.Latest.Year)
	assert.Equal(t, map[string]int{"functional": 1, "imperative": 2, "concurrent": 1}, stats.ParadigmCounts)
}

func TestComputeStats_Properties(t *testing.T) {
	c := sampleCatalog()

	stats, err := ComputeStats(c)
	require.NoError(t, err)
	assert.Equal(t, len(c), stats.Total)

	for _, lang := range c {
		assert.LessOrEqual(t, stats.Earliest.Year, lang.Year)
		assert.GreaterOrEqual(t, stats.Latest.Year, lang.Year)
	}

	for tag, n := range stats.ParadigmCounts {
		want := 0
		for _, lang := range c {
			for _, p := range lang.Paradigm {
				if p == tag {
					want++
					break
				}
			}
		}
		assert.Equal(t, want, n, "paradigm %q", tag)
	}
	assert.Len(t, stats.ParadigmCounts, 5)
}

func TestComputeStats_TieBreakFirstInOrder(t *testing.T) {
	c := model.Catalog{
		{Name: "A", Year: 2000},
		{Name: "B", Year: 1990},
		{Name: "C", Year: 1990},
		{Name: "D", Year: 2000},
	}

	stats, err := ComputeStats(c)
	require.NoError(t, err)
	assert.Equal(t, "B", stats.Earliest.Name)
	assert.Equal(t, "A", stats.Latest.Name)
}

func TestComputeStats_DuplicateTagCountsOncePerRecord(t *testing.T) {
	c := model.Catalog{
		{Name: "A", Paradigm: []string{"functional", "functional"}},
		{Name: "B", Paradigm: []string{"functional", "Functional"}},
	}

	stats, err := ComputeStats(c)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"functional": 2, "Functional": 1}, stats.ParadigmCounts)
}

func TestComputeStats_Empty(t *testing.T) {
	_, err := ComputeStats(model.Catalog{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrEmptyCatalog))

	_, err = ComputeStats(nil)
	assert.ErrorIs(t, err, ErrEmptyCatalog)
}
