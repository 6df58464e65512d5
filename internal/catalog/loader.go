package catalog

import (
	"log/slog"

	"github.com/dustin/go-humanize"
	"github.com/spf13/afero"

	"github.com/ppiankov/kapa/internal/logger"
	"github.com/ppiankov/kapa/internal/model"
)

// Loader locates and parses the catalog file
type Loader struct {
	fs         afero.Fs
	candidates []string
	explicit   string // user-supplied path; a miss is reported at warn level
	logger     *slog.Logger
}

// Option configures a Loader
type Option func(*Loader)

// WithFs sets the filesystem the loader reads from
func WithFs(fs afero.Fs) Option {
	return func(l *Loader) { l.fs = fs }
}

// WithLogger sets the diagnostic logger
func WithLogger(log *slog.Logger) Option {
	return func(l *Loader) { l.logger = log }
}

// WithExplicitPath marks path as requested by the user (--data / KAPA_DATA).
// It should also appear in the candidate list.
func WithExplicitPath(path string) Option {
	return func(l *Loader) { l.explicit = path }
}

// NewLoader creates a loader that probes candidates in order
func NewLoader(candidates []string, opts ...Option) *Loader {
	l := &Loader{
		fs:         afero.NewOsFs(),
		candidates: candidates,
		logger:     logger.Discard(),
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Candidates returns the paths probed by Load, in order
func (l *Loader) Candidates() []string {
	return append([]string(nil), l.candidates...)
}

// Load reads the first readable candidate and parses it.
// A readable file that fails to parse is fatal; later candidates are not tried.
func (l *Loader) Load() (model.Catalog, error) {
	for _, path := range l.candidates {
		info, err := l.fs.Stat(path)
		if err != nil {
			l.skip(path, "catalog candidate unavailable", err)
			continue
		}
		if info.IsDir() {
			l.skip(path, "catalog candidate is a directory", nil)
			continue
		}

		data, err := afero.ReadFile(l.fs, path)
		if err != nil {
			l.skip(path, "catalog candidate unreadable", err)
			continue
		}

		l.logger.Debug("reading catalog",
			slog.String("path", path),
			slog.String("size", humanize.Bytes(uint64(len(data)))),
		)

		catalog, err := Parse(data)
		if err != nil {
			return nil, &MalformedError{Path: path, Err: err}
		}

		l.logger.Debug("catalog loaded", slog.String("path", path), slog.Int("languages", len(catalog)))
		return catalog, nil
	}

	return nil, &NotFoundError{Tried: l.Candidates()}
}

func (l *Loader) skip(path, msg string, err error) {
	attrs := []any{slog.String("path", path)}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}

	if path != "" && path == l.explicit {
		l.logger.Warn(msg+", falling back to default locations", attrs...)
		return
	}
	l.logger.Debug(msg, attrs...)
}
