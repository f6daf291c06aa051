// Package runtime provides the application runtime context for OrarioDoc.
package runtime

import (
	"os"

	"github.com/mbelotti-dev/orariodoc/internal/config"
	"github.com/mbelotti-dev/orariodoc/internal/output"
	"github.com/mbelotti-dev/orariodoc/internal/schedule"
	"github.com/mbelotti-dev/orariodoc/internal/storage"
)

// Context holds the application runtime: one store handle, one service,
// one formatter. It replaces any notion of shared module globals; commands
// receive everything through here and tests build fresh instances.
type Context struct {
	Store     storage.Store
	Service   *schedule.Service
	Config    *config.Config
	Formatter *output.Formatter

	Debug bool
}

// Options configures the runtime context.
type Options struct {
	DBPath     string
	InMemory   bool
	LegacyPath string
	Format     output.Format
	ColorMode  output.ColorMode
	Debug      bool
}

// DefaultOptions returns default runtime options.
func DefaultOptions() Options {
	return Options{
		DBPath:     storage.DefaultPath(),
		LegacyPath: storage.DefaultLegacyPath(),
		Format:     output.FormatCLI,
		ColorMode:  output.ColorAuto,
	}
}

// New creates a new runtime context: loads the config file, resolves the
// storage backend once, and wires the schedule service over it.
func New(opts Options) (*Context, error) {
	cfg, err := config.Load(config.Path())
	if err != nil {
		return nil, err
	}

	if cfg.DatabasePath != "" && opts.DBPath == storage.DefaultPath() {
		opts.DBPath = cfg.DatabasePath
	}

	// Environment override, highest precedence.
	if envPath := os.Getenv("ORARIODOC_DATABASE"); envPath != "" {
		if envPath == ":memory:" {
			opts.InMemory = true
		} else {
			opts.DBPath = envPath
		}
	}

	store, err := storage.Open(storage.Options{
		Path:       opts.DBPath,
		InMemory:   opts.InMemory,
		LegacyPath: opts.LegacyPath,
	})
	if err != nil {
		return nil, err
	}

	formatter := output.NewFormatter()
	formatter.Format = opts.Format
	formatter.ColorMode = opts.ColorMode

	return &Context{
		Store:     store,
		Service:   schedule.New(store),
		Config:    cfg,
		Formatter: formatter,
		Debug:     opts.Debug,
	}, nil
}

// Close closes the runtime context.
func (c *Context) Close() error {
	if c.Store != nil {
		return c.Store.Close()
	}
	return nil
}

// CLIFormatter returns a CLI formatter.
func (c *Context) CLIFormatter() *output.CLIFormatter {
	return output.NewCLIFormatter(c.Formatter)
}

// IsJSON returns true if output format is JSON.
func (c *Context) IsJSON() bool {
	return c.Formatter.Format == output.FormatJSON
}
