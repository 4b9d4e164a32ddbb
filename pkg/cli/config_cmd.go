package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/typeahead-kit/typeahead/pkg/cli/internal/output"
	"github.com/typeahead-kit/typeahead/pkg/config"
)

// ConfigOutput is the JSON output of the config command.
type ConfigOutput struct {
	*config.Config
	Sources map[string]string `json:"sources"`
	Files   []string          `json:"files,omitempty"`
}

func newConfigCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show effective configuration with source annotations",
		Example: `  typeahead config
  typeahead config --json
  TYPEAHEAD_OPEN_TAG='{{' typeahead config`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfig(cmd, root)
		},
	}
}

func runConfig(cmd *cobra.Command, root *rootOptions) error {
	cfg := root.cfg
	files := loadedFiles(root.configPath)

	w := cmd.OutOrStdout()
	return root.printResult(w, ConfigOutput{Config: cfg, Sources: cfg.Sources, Files: files}, func() error {
		fmt.Fprintln(w, "Effective Configuration:")
		fmt.Fprintln(w)

		tw := output.Table(w)
		printConfigValue(tw, "openTag", cfg.OpenTag, cfg.Sources)
		printConfigValue(tw, "closeTag", cfg.CloseTag, cfg.Sources)
		printConfigValue(tw, "errorTemplate", cfg.ErrorTemplate, cfg.Sources)
		printConfigValue(tw, "emptyTemplate", cfg.EmptyTemplate, cfg.Sources)
		printConfigValue(tw, "logLevel", cfg.LogLevel, cfg.Sources)
		printConfigValue(tw, "logFormat", cfg.LogFormat, cfg.Sources)
		printConfigValue(tw, "logFile", cfg.LogFile, cfg.Sources)
		if err := tw.Flush(); err != nil {
			return err
		}

		if len(files) > 0 {
			fmt.Fprintln(w)
			fmt.Fprintln(w, "Sources loaded:")
			for _, f := range files {
				fmt.Fprintf(w, "  - %s\n", f)
			}
		}
		return nil
	})
}

// printConfigValue prints a config value with source annotation. Unset
// values are skipped.
func printConfigValue(w io.Writer, name, value string, sources map[string]string) {
	source, ok := sources[name]
	if !ok {
		return
	}
	fmt.Fprintf(w, "  %s:\t%q\t(%s)\n", name, value, formatSource(source))
}

// formatSource formats a source type for display.
func formatSource(source string) string {
	switch source {
	case config.SourceGlobal:
		return "global config"
	case config.SourceLocal:
		return "local config"
	case config.SourceFile:
		return "config file"
	default:
		return source
	}
}

// loadedFiles lists the config files that exist, in load order.
func loadedFiles(explicit string) []string {
	var files []string
	if globalPath, err := config.FindGlobalConfig(); err == nil && globalPath != "" {
		files = append(files, globalPath+" (global)")
	}
	if localPath, err := config.FindLocalConfig(); err == nil && localPath != "" {
		files = append(files, localPath+" (local)")
	}
	if explicit == "" {
		explicit = os.Getenv(config.EnvConfig)
	}
	if explicit != "" {
		files = append(files, explicit+" (file)")
	}
	return files
}
