// Loadmon is an interactive console for tracking household appliances and
// their power usage.
//
// It presents a numbered menu for registering appliances, listing them and
// searching them by name. Records are held in memory only and are lost when
// the program exits.
//
// Usage:
//
//	loadmon
//	loadmon version
//
// Environment:
//
//	LOADMON_LOG_LEVEL  enable logging to stderr (debug, info, warn, error)
//	LOADMON_PAUSE      pause after each screen (auto, always, never)
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/muurk/loadmon/internal/appliance"
	"github.com/muurk/loadmon/internal/config"
	"github.com/muurk/loadmon/internal/console"
	"github.com/muurk/loadmon/internal/logging"
	"github.com/muurk/loadmon/internal/ui"
	"github.com/muurk/loadmon/internal/version"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "loadmon",
	Short: "Electrical Load Monitoring Simulator",
	Long: `An interactive console for tracking household appliances.

Register appliances with their power rating and daily usage hours, list
everything registered so far, or search by name. Data is kept in memory
for the current session only.`,
	Version:       version.Version,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runMenu,
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "loadmon %s\n", version.Full())
	},
}

func runMenu(cmd *cobra.Command, args []string) error {
	if err := logging.InitializeFromEnv(); err != nil {
		return err
	}
	defer logging.Sync()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	in := cmd.InOrStdin()
	store := appliance.NewStore()
	menu := console.NewMenu(in, cmd.OutOrStdout(), store, console.Options{
		Title:    cfg.Banner.Title,
		Subtitle: cfg.Banner.Subtitle,
		Pause:    cfg.Console.Pause.ShouldPause(isInteractive(in)),
	})

	logging.Info("Menu started", zap.String("version", version.Version))
	return menu.Run()
}

// isInteractive reports whether r is a terminal. Readers other than files
// never are.
func isInteractive(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && ui.IsTerminal(f)
}
