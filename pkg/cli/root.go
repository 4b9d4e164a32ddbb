package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/typeahead-kit/typeahead/pkg/config"
	"github.com/typeahead-kit/typeahead/pkg/logging"
	"github.com/typeahead-kit/typeahead/pkg/template"
)

var (
	// Version is injected during build
	Version = "dev"
	// Commit is injected during build
	Commit = "none"
	// BuildDate is injected during build
	BuildDate = "unknown"
)

// rootOptions holds the persistent flags and the state every subcommand
// shares once the root pre-run has resolved configuration.
type rootOptions struct {
	configPath string
	logLevel   string
	logFormat  string
	logFile    string
	jsonOutput bool

	cfg     *config.Config
	logger  *slog.Logger
	closers []io.Closer
}

// NewRootCmd builds the typeahead command tree.
func NewRootCmd() *cobra.Command {
	cmd, _ := newRootCmd()
	return cmd
}

func newRootCmd() (*cobra.Command, *rootOptions) {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "typeahead",
		Short: "typeahead renders [[placeholder]] templates against JSON and YAML data",
		Long: `typeahead resolves dotted paths into data and renders the templates a
typeahead widget shows for its results.

Configuration can be provided via flags, environment variables, or a configuration file.
By default, typeahead looks for .typeahead.yaml in the working directory and
typeahead/config.yaml in the user config directory.`,
		// No Run function here means 'typeahead' with no args will print help text by default.
		SilenceUsage:  true,
		SilenceErrors: true, // We handle errors in Execute()
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return opts.teardown()
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&opts.configPath, "config", "", "Config file path (env: "+config.EnvConfig+")")
	pf.StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	pf.StringVar(&opts.logFormat, "log-format", "", "Log format: text, json")
	pf.StringVar(&opts.logFile, "log-file", "", "Also append JSON logs to this file")
	pf.BoolVar(&opts.jsonOutput, "json", false, "Output command results in JSON format")

	cmd.AddCommand(
		newRenderCmd(opts),
		newExtractCmd(opts),
		newResultsCmd(opts),
		newConfigCmd(opts),
		newVersionCmd(opts),
	)

	return cmd, opts
}

// Execute runs the root command and exits non-zero on failure.
// This is called by main.main().
func Execute() {
	if err := execute(newRootCmd()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// execute runs cmd and releases whatever setup opened. cobra skips the
// post-run hooks when RunE fails, so teardown is repeated here.
func execute(cmd *cobra.Command, opts *rootOptions) error {
	err := cmd.Execute()
	if cerr := opts.teardown(); err == nil {
		err = cerr
	}
	return err
}

// setup loads configuration, applies flag overrides and builds the logger.
func (o *rootOptions) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	config.MergeConfig(cfg, &config.Config{
		LogLevel:  o.logLevel,
		LogFormat: o.logFormat,
		LogFile:   o.logFile,
	}, config.SourceFlag)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	o.cfg = cfg

	logCfg := logging.Config{
		Level:  logging.ParseLevel(cfg.LogLevel),
		Format: logging.ParseFormat(cfg.LogFormat),
		Output: cmd.ErrOrStderr(),
	}
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		o.closers = append(o.closers, f)
		logCfg.Tee = f
	}

	o.logger = logging.New(logCfg).With(
		"command", cmd.Name(),
		"render_id", uuid.NewString(),
	)
	o.logger.Debug("configuration loaded",
		"openTag", cfg.OpenTag,
		"closeTag", cfg.CloseTag,
		"sources", cfg.Sources,
	)
	return nil
}

// teardown closes the files setup opened. It is safe to call twice.
func (o *rootOptions) teardown() error {
	var first error
	for _, c := range o.closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	o.closers = nil
	return first
}

// engine builds a template engine from the configured tags; non-empty
// arguments override them.
func (o *rootOptions) engine(openTag, closeTag string) *template.Engine {
	if openTag == "" {
		openTag = o.cfg.OpenTag
	}
	if closeTag == "" {
		closeTag = o.cfg.CloseTag
	}
	return template.New(
		template.WithDelimiters(openTag, closeTag),
		template.WithLogger(o.logger),
	)
}
