package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/chesscoach/chess-coach/backend/internal/cli/client"
)

const version = "0.1.0"

const defaultServer = "http://localhost:8000"

var serverURL string

// rootCmd is the root command
var rootCmd = &cobra.Command{
	Use:     "coachctl",
	Short:   "Chess Coach CLI",
	Version: version,
	Long:    `A command-line client for the Chess Coach AI API.`,
	Example: `  # Check the API is up
  $ coachctl health

  # Ask the coach a single question
  $ coachctl chat -u alice "How do I beat the London system?"

  # Start an interactive chat
  $ coachctl chat -u alice

  # Look up an opening
  $ coachctl opening sicilian`,
}

// Execute executes the root command
func Execute() error {
	rootCmd.SetVersionTemplate(fmt.Sprintf("coachctl version %s\n", version))
	return rootCmd.Execute()
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVarP(&serverURL, "server", "s", defaultServer, "API server URL (default from COACH_API_URL)")

	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(openingCmd)
	rootCmd.AddCommand(analyzeCmd)
}

// newClient resolves the server from --server, then COACH_API_URL, then the default.
func newClient() (*client.APIClient, error) {
	server := serverURL
	if !rootCmd.PersistentFlags().Changed("server") {
		server = envOrDefault("COACH_API_URL", defaultServer)
	}
	return client.NewAPIClient(server)
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
