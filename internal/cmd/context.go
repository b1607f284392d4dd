package cmd

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/homewhisper/internal/config"
	"github.com/felixgeelhaar/homewhisper/internal/log"
	"github.com/felixgeelhaar/homewhisper/internal/storage"
	"github.com/felixgeelhaar/homewhisper/internal/ux"
	"github.com/felixgeelhaar/homewhisper/internal/wizard"
)

// CommandContext holds the global command-line flags.
type CommandContext struct {
	ConfigPath string
	Store      string
	DataDir    string
	LogLevel   string
	LogFormat  string
	Format     string
	NoColor    bool
}

// NewCommandContext extracts command context from cobra.Command flags.
func NewCommandContext(cmd *cobra.Command) (*CommandContext, error) {
	flags := cmd.Flags()
	c := &CommandContext{}

	for name, dst := range map[string]*string{
		"config":     &c.ConfigPath,
		"store":      &c.Store,
		"data-dir":   &c.DataDir,
		"log-level":  &c.LogLevel,
		"log-format": &c.LogFormat,
		"format":     &c.Format,
	} {
		v, err := flags.GetString(name)
		if err != nil {
			return nil, err
		}
		*dst = v
	}

	noColor, err := flags.GetBool("no-color")
	if err != nil {
		return nil, err
	}
	c.NoColor = noColor

	return c, nil
}

// LoadConfig loads the configuration and applies the flags on top.
func (c *CommandContext) LoadConfig() (*config.Config, error) {
	cfg, err := config.Load(config.LoadOptions{Path: c.ConfigPath})
	if err != nil {
		return nil, err
	}

	if c.Store != "" {
		cfg.Store.Backend = c.Store
	}
	if c.DataDir != "" {
		cfg.Store.DataDir = c.DataDir
	}
	if c.LogLevel != "" {
		cfg.Logging.Level = c.LogLevel
	}
	if c.LogFormat != "" {
		cfg.Logging.Format = c.LogFormat
	}
	if c.Format != "" {
		cfg.Output.Format = c.Format
	}
	if c.NoColor {
		cfg.Output.NoColor = true
	}

	return cfg, cfg.Validate()
}

// session is everything a command needs to talk to the wizard.
type session struct {
	cfg     *config.Config
	logger  *log.Logger
	store   storage.Store
	wiz     *wizard.Controller
	palette *ux.Palette
	closers []io.Closer
}

// sessionOptions controls openSession.
type sessionOptions struct {
	// logToFile sends logs to a file so they do not corrupt the TUI
	logToFile bool
}

// openSession loads config, builds the logger, opens the store and
// initializes the wizard controller.
func openSession(cmd *cobra.Command, opts sessionOptions) (*session, error) {
	cmdCtx, err := NewCommandContext(cmd)
	if err != nil {
		return nil, fmt.Errorf("failed to create command context: %w", err)
	}
	cfg, err := cmdCtx.LoadConfig()
	if err != nil {
		return nil, err
	}

	s := &session{cfg: cfg}

	output := log.NewOutput(cmd.ErrOrStderr())
	if opts.logToFile || cfg.Logging.File != "" {
		path := cfg.Logging.File
		if path == "" {
			path = filepath.Join(cfg.Store.DataDir, "homewhisper.log")
		}
		out, closer, err := log.OutputFile(path)
		if err != nil {
			return nil, err
		}
		output = out
		s.closers = append(s.closers, closer)
	}

	level, err := log.ParseLevel(cfg.Logging.Level)
	if err != nil {
		s.Close()
		return nil, err
	}
	s.logger = log.New(log.Config{
		Level:       level,
		Format:      log.ParseFormat(cfg.Logging.Format),
		Output:      output,
		ServiceName: "homewhisper",
	})
	log.SetDefaultLogger(s.logger)

	store, err := storage.Open(storage.Options{
		Backend: cfg.Store.Backend,
		Dir:     cfg.Store.DataDir,
	})
	if err != nil {
		s.Close()
		return nil, err
	}
	s.store = store
	s.closers = append([]io.Closer{store}, s.closers...)

	s.wiz = wizard.New(store, wizard.WithLogger(s.logger))
	s.wiz.Initialize(commandContext(cmd))

	s.palette = ux.NewPalette(cfg.Output.NoColor || !ux.ColorWriter(cmd.OutOrStdout()))

	s.logger.DebugContext(commandContext(cmd), "session opened",
		"backend", cfg.Store.Backend,
		"data_dir", cfg.Store.DataDir,
		"session_id", s.wiz.SessionID())
	return s, nil
}

// Close releases the store and the log file.
func (s *session) Close() {
	for _, c := range s.closers {
		if err := c.Close(); err != nil && s.logger != nil {
			s.logger.WithError(err).Warn("close failed")
		}
	}
	s.closers = nil
}

// formatter returns the output formatter for the configured format.
func (s *session) formatter(w io.Writer) (ux.Formatter, error) {
	return ux.NewFormatter(s.cfg.Output.Format, &ux.FormatterOptions{
		Writer:  w,
		NoColor: s.palette.Plain,
	})
}

func newFormatter(cmd *cobra.Command, format string, noColor bool) (ux.Formatter, error) {
	out := cmd.OutOrStdout()
	return ux.NewFormatter(format, &ux.FormatterOptions{
		Writer:  out,
		NoColor: noColor || !ux.ColorWriter(out),
	})
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
