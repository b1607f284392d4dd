package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/felixgeelhaar/homewhisper/internal/config"
	errs "github.com/felixgeelhaar/homewhisper/internal/errors"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage homewhisper configuration",
	Long: `View and initialize the homewhisper configuration.

Settings come from, in order of precedence:
  1. Command-line flags
  2. HOMEWHISPER_* environment variables (also read from a .env file)
  3. The config file (default ~/.homewhisper/config.yaml)
  4. Built-in defaults`,
}

var configViewCmd = &cobra.Command{
	Use:   "view",
	Short: "Show the effective configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfigView,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	Args:  cobra.NoArgs,
	RunE:  runConfigPath,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file",
	Args:  cobra.NoArgs,
	RunE:  runConfigInit,
}

var configInitForce bool

func init() {
	configInitCmd.Flags().BoolVar(&configInitForce, "force", false, "overwrite an existing config file")

	configCmd.AddCommand(configViewCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configInitCmd)

	rootCmd.AddCommand(configCmd)
}

// configPath returns the --config flag or the default path.
func configPath(cmd *cobra.Command) (string, error) {
	cmdCtx, err := NewCommandContext(cmd)
	if err != nil {
		return "", fmt.Errorf("failed to create command context: %w", err)
	}
	if cmdCtx.ConfigPath != "" {
		return cmdCtx.ConfigPath, nil
	}
	return config.DefaultPath()
}

func runConfigView(cmd *cobra.Command, args []string) error {
	cmdCtx, err := NewCommandContext(cmd)
	if err != nil {
		return fmt.Errorf("failed to create command context: %w", err)
	}
	cfg, err := cmdCtx.LoadConfig()
	if err != nil {
		return err
	}

	if cfg.Output.Format == "json" || cfg.Output.Format == "yaml" {
		f, err := newFormatter(cmd, cfg.Output.Format, true)
		if err != nil {
			return err
		}
		return f.Format(cfg)
	}

	path, err := configPath(cmd)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Configuration file: %s\n\n", path)

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	fmt.Fprint(out, string(data))
	return nil
}

func runConfigPath(cmd *cobra.Command, args []string) error {
	path, err := configPath(cmd)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path, err := configPath(cmd)
	if err != nil {
		return err
	}

	if _, err := os.Stat(path); err == nil && !configInitForce {
		return errs.New(errs.ErrCodeConfigRead, fmt.Sprintf("config file already exists: %s", path)).
			WithSuggestion("Pass --force to overwrite it")
	} else if err != nil && !errors.Is(err, os.ErrNotExist) {
		return errs.Wrap(errs.ErrCodeConfigRead, fmt.Sprintf("failed to stat config file: %s", path), err)
	}

	if err := config.Default().Save(path); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote default configuration to %s\n", path)
	return nil
}
