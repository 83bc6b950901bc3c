package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/abasp/cmd/abagen/commands"
	"github.com/katalvlaran/abasp/errors"
	"github.com/katalvlaran/abasp/logger"
)

var rootCmd = &cobra.Command{
	Use:   "abagen",
	Short: "abagen - random ABA-with-standpoints instances and their ASP encodings",
	Long: `abagen - random ABA-with-standpoints instance generator.

Generates assumption-based argumentation frameworks whose rules are indexed by
standpoints, and writes each one in two ASP encodings: the standpoint-atom
encoding and the standpoint-default encoding, paired per selected goal.

Available commands:
  generate - Run the configuration table and write instance files
  inspect  - Generate one framework and describe or encode it
  config   - Show, validate or initialise the configuration
  version  - Show version information

Examples:
  abagen generate                  # Stock table into ./instances_aba and ./instances_sd
  abagen inspect --standpoints 3   # Summarise one framework
  abagen config show               # Show the effective configuration`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		jsonLog, _ := cmd.Flags().GetBool("json-log")
		verbosity, _ := cmd.Flags().GetCount("verbose")
		if err := logger.Initialize(jsonLog, verbosity); err != nil {
			return errors.Wrap(err, "failed to initialize logger")
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Cleanup()
	},
}

func init() {
	rootCmd.PersistentFlags().StringP("config", "c", "", "Configuration file (default ./abagen.toml when present)")
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase log verbosity (-v enables debug logs)")
	rootCmd.PersistentFlags().Bool("json-log", false, "Emit logs as JSON")

	rootCmd.AddCommand(commands.GenerateCmd)
	rootCmd.AddCommand(commands.InspectCmd)
	rootCmd.AddCommand(commands.ConfigCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		for _, hint := range errors.GetAllHints(err) {
			fmt.Fprintln(os.Stderr, "Hint:", hint)
		}
		stop()
		os.Exit(1)
	}
}
