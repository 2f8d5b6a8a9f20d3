package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/apptitude/internal/client"
)

var rootCmd = &cobra.Command{
	Use:   "apptitude",
	Short: "AI-powered math aptitude tests",
	Long:  "APPtitude — terminal math tests generated and graded by an AI teacher, with a companion question service.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlay(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("server", "", "Question service URL (overrides APPTITUDE_SERVER_URL env var)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveServerURL returns the question service URL using the --server flag
// (highest priority), then APPTITUDE_SERVER_URL, then the default.
func resolveServerURL(cmd *cobra.Command) string {
	if u, _ := cmd.Flags().GetString("server"); u != "" {
		return u
	}
	if u := os.Getenv("APPTITUDE_SERVER_URL"); u != "" {
		return u
	}
	return client.DefaultBaseURL
}
