package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/abasp/config"
	"github.com/katalvlaran/abasp/errors"
)

// ConfigCmd represents the config command
var ConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage abagen configuration",
	Long: `Display, validate and initialise the abagen configuration.

Configuration sources (in order of precedence):
1. Command line flags
2. Environment variables (ABAGEN_* prefix, e.g. ABAGEN_PARALLEL)
3. The file given with --config, or ./abagen.toml
4. Default values (the stock four-configuration table)

Examples:
  abagen config show                 # Show the effective configuration
  abagen config show --format yaml   # Show it as YAML
  abagen config validate             # Check values and report unknown keys
  abagen config init                 # Write ./abagen.toml with the defaults`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	RunE:  runConfigShow,
}

var configValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the configuration",
	Long:  "Validate the effective configuration and report keys in the file that match no setting",
	RunE:  runConfigValidate,
}

var configInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write the default configuration as TOML",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runConfigInit,
}

var (
	configFormat    string
	configInitForce bool
)

func init() {
	configShowCmd.Flags().StringVar(&configFormat, "format", config.FormatTOML, "Output format: toml, json, yaml")
	configInitCmd.Flags().BoolVarP(&configInitForce, "force", "f", false, "Overwrite an existing file")

	ConfigCmd.AddCommand(configShowCmd)
	ConfigCmd.AddCommand(configValidateCmd)
	ConfigCmd.AddCommand(configInitCmd)
}

// configFile returns the --config flag value.
func configFile(cmd *cobra.Command) string {
	path, _ := cmd.Flags().GetString("config")
	return path
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configFile(cmd))
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}
	text, err := renderConfig(cfg, configFormat)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), text)
	return nil
}

// renderConfig marshals cfg, prefixing a comment header where the format has comments.
func renderConfig(cfg *config.Config, format string) (string, error) {
	data, err := config.Marshal(cfg, format)
	if err != nil {
		return "", err
	}
	if format == config.FormatJSON {
		return string(data), nil
	}
	return "# abagen configuration\n" + string(data), nil
}

func runConfigValidate(cmd *cobra.Command, args []string) error {
	if err := validateConfigFile(configFile(cmd)); err != nil {
		return err
	}
	pterm.Success.Println("Configuration is valid")
	return nil
}

// validateConfigFile checks the resolved file on its own, without environment
// overrides: values first, then keys that match no setting. With no file the
// defaults and environment are checked instead.
func validateConfigFile(path string) error {
	if path == "" {
		if _, err := os.Stat(config.DefaultFileName); err != nil {
			_, err := config.Load("")
			return err
		}
		path = config.DefaultFileName
	}
	cfg, err := config.LoadFromFile(path)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return errors.Wrapf(err, "%s", path)
	}
	unknown, err := config.UnknownKeys(path)
	if err != nil {
		return err
	}
	if len(unknown) > 0 {
		return errors.NewInvalidConfigError("%s: unknown keys: %s", path, strings.Join(unknown, ", "))
	}
	return nil
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := config.DefaultFileName
	if len(args) == 1 {
		path = args[0]
	}
	if err := writeDefaultConfig(path, configInitForce); err != nil {
		return err
	}
	pterm.Success.Printf("Wrote %s\n", path)
	return nil
}

// writeDefaultConfig writes the default configuration to path as TOML.
func writeDefaultConfig(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return errors.WithHint(
				errors.Newf("%s already exists", path),
				"pass --force to overwrite it")
		}
	}
	text, err := renderConfig(config.Default(), config.FormatTOML)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return errors.Wrapf(err, "failed to write %s", path)
	}
	return nil
}
