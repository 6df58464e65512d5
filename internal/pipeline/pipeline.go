package pipeline

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/ppiankov/kapa/internal/catalog"
	"github.com/ppiankov/kapa/internal/logger"
	"github.com/ppiankov/kapa/internal/model"
	"github.com/ppiankov/kapa/internal/query"
)

// Kind identifies which query a Command runs
type Kind int

const (
	KindList Kind = iota
	KindSearch
	KindYear
	KindCreator
	KindStats
)

func (k Kind) String() string {
	switch k {
	case KindList:
		return "list"
	case KindSearch:
		return "search"
	case KindYear:
		return "year"
	case KindCreator:
		return "creator"
	case KindStats:
		return "stats"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Command is a parsed CLI request
type Command struct {
	Kind  Kind
	Query string // search and creator
	Year  uint32 // year
}

// Pipeline orchestrates load, query and render for one invocation
type Pipeline struct {
	loader   *catalog.Loader
	renderer *Renderer
	logger   *slog.Logger
	notices  io.Writer // informational messages that must not pollute structured output
}

// Option configures a Pipeline
type Option func(*Pipeline)

// WithLoader replaces the default catalog loader
func WithLoader(l *catalog.Loader) Option {
	return func(p *Pipeline) { p.loader = l }
}

// WithNotices sets where informational messages go for json/yaml output
func WithNotices(w io.Writer) Option {
	return func(p *Pipeline) { p.notices = w }
}

// WithLogger sets the diagnostic logger
func WithLogger(log *slog.Logger) Option {
	return func(p *Pipeline) { p.logger = log }
}

// NewPipeline creates a new pipeline with the given configuration
func NewPipeline(cfg *model.Config, opts ...Option) *Pipeline {
	p := &Pipeline{
		renderer: NewRenderer(cfg.Output),
		logger:   logger.Discard(),
		notices:  os.Stderr,
	}

	for _, opt := range opts {
		opt(p)
	}

	if p.loader == nil {
		p.loader = catalog.NewLoader(catalog.DefaultCandidates(cfg.Data),
			catalog.WithLogger(p.logger),
			catalog.WithExplicitPath(cfg.Data),
		)
	}

	return p
}

// Run loads the catalog, executes cmd and writes the result to w
func (p *Pipeline) Run(w io.Writer, cmd Command) error {
	languages, err := p.loader.Load()
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	return p.Execute(w, languages, cmd)
}

// Execute runs cmd against an already loaded catalog
func (p *Pipeline) Execute(w io.Writer, languages model.Catalog, cmd Command) error {
	p.logger.Debug("executing query", slog.String("command", cmd.Kind.String()), slog.Int("languages", len(languages)))

	switch cmd.Kind {
	case KindList:
		return p.renderList(w, "Displaying all programming languages:",
			query.ListAll(languages), "No languages in the catalog")

	case KindSearch:
		return p.renderList(w, fmt.Sprintf("Search results for '%s':", cmd.Query),
			query.SearchByName(languages, cmd.Query),
			fmt.Sprintf("No languages found matching '%s'", cmd.Query))

	case KindYear:
		return p.renderList(w, fmt.Sprintf("Languages created in %d:", cmd.Year),
			query.FilterByYear(languages, cmd.Year),
			fmt.Sprintf("No languages created in %d", cmd.Year))

	case KindCreator:
		return p.renderList(w, fmt.Sprintf("Languages created by '%s':", cmd.Query),
			query.FilterByCreator(languages, cmd.Query),
			fmt.Sprintf("No languages found created by '%s'", cmd.Query))

	case KindStats:
		stats, err := query.ComputeStats(languages)
		if err != nil {
			return fmt.Errorf("compute stats: %w", err)
		}
		return p.renderer.RenderStats(w, stats)

	default:
		return fmt.Errorf("unknown command %s", cmd.Kind)
	}
}

func (p *Pipeline) renderList(w io.Writer, title string, results model.Catalog, empty string) error {
	if len(results) > 0 {
		return p.renderer.RenderLanguages(w, title, results)
	}

	if p.renderer.IsStructured() {
		fmt.Fprintln(p.notices, empty)
	}
	return p.renderer.RenderEmpty(w, empty)
}
