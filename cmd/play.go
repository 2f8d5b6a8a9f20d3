package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/apptitude/internal/app"
	"github.com/abhisek/apptitude/internal/client"
	"github.com/abhisek/apptitude/internal/logger"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a math test",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlay(cmd)
	},
}

func init() {
	playCmd.Flags().String("log-file", "", "Write debug logs to this file (overrides APPTITUDE_LOG_FILE)")
}

// runPlay builds the question-service client and launches the TUI.
func runPlay(cmd *cobra.Command) error {
	// Local overrides for the server URL; missing file is fine.
	_ = godotenv.Load()

	log, err := resolveLogger(cmd)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer log.Sync() //nolint:errcheck

	c := client.NewWithLogger(resolveServerURL(cmd), log)
	return app.Run(c)
}

// resolveLogger opens a file-backed debug logger when one is requested;
// otherwise logging is disabled so nothing touches the terminal.
func resolveLogger(cmd *cobra.Command) (*zap.Logger, error) {
	path, _ := cmd.Flags().GetString("log-file")
	if path == "" {
		path = os.Getenv("APPTITUDE_LOG_FILE")
	}
	if path == "" {
		return zap.NewNop(), nil
	}
	return logger.NewFile(path, logger.Config{Level: "debug"})
}
