package pipeline

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"gopkg.in/yaml.v3"

	"github.com/ppiankov/kapa/internal/model"
)

// Renderer writes query results in the configured output format
type Renderer struct {
	format string
}

// NewRenderer creates a renderer for format (table, json, yaml)
func NewRenderer(format string) *Renderer {
	if format == "" {
		format = model.OutputTable
	}
	return &Renderer{format: format}
}

// Format returns the output format
func (r *Renderer) Format() string {
	return r.format
}

// RenderLanguages writes a titled table of languages, or the bare list for json/yaml
func (r *Renderer) RenderLanguages(w io.Writer, title string, langs model.Catalog) error {
	switch r.format {
	case model.OutputJSON:
		return writeJSON(w, langs)
	case model.OutputYAML:
		return writeYAML(w, langs)
	}

	if title != "" {
		if _, err := fmt.Fprintln(w, title); err != nil {
			return err
		}
	}

	t := newTable("Name", "Year", "Creators", "Paradigm", "Typing")
	for _, lang := range langs {
		t.AppendRow(table.Row{
			lang.Name,
			strconv.FormatUint(uint64(lang.Year), 10),
			strings.Join(lang.Creators, ", "),
			strings.Join(lang.Paradigm, ", "),
			lang.Typing,
		})
	}
	return writeTable(w, t)
}

// RenderEmpty reports a query with no results. Table output prints the
// message; json/yaml print an empty list so the output stays parseable.
func (r *Renderer) RenderEmpty(w io.Writer, message string) error {
	switch r.format {
	case model.OutputJSON:
		return writeJSON(w, model.Catalog{})
	case model.OutputYAML:
		return writeYAML(w, model.Catalog{})
	}

	_, err := fmt.Fprintln(w, message)
	return err
}

// RenderStats writes the catalog summary
func (r *Renderer) RenderStats(w io.Writer, stats model.Stats) error {
	switch r.format {
	case model.OutputJSON:
		return writeJSON(w, stats)
	case model.OutputYAML:
		return writeYAML(w, stats)
	}

	var b strings.Builder
	b.WriteString("Programming Language Statistics:\n")
	fmt.Fprintf(&b, "- Total languages: %d\n", stats.Total)
	fmt.Fprintf(&b, "- Earliest language: %s (%d)\n", stats.Earliest.Name, stats.Earliest.Year)
	fmt.Fprintf(&b, "- Latest language: %s (%d)\n", stats.Latest.Name, stats.Latest.Year)
	b.WriteString("\nParadigm Counts:\n")
	if _, err := io.WriteString(w, b.String()); err != nil {
		return err
	}

	t := newTable("Paradigm", "Count")
	for _, row := range stats.SortedParadigms() {
		t.AppendRow(table.Row{row.Paradigm, strconv.Itoa(row.Count)})
	}
	return writeTable(w, t)
}

// IsStructured reports whether the output is machine-readable
func (r *Renderer) IsStructured() bool {
	return r.format == model.OutputJSON || r.format == model.OutputYAML
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}
