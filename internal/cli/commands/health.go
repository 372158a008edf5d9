package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chesscoach/chess-coach/backend/internal/cli/ui"
)

var healthCmd = &cobra.Command{
	Use:          "health",
	Short:        "check the API server health",
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		apiClient, err := newClient()
		if err != nil {
			return err
		}

		health, err := apiClient.Health(cmd.Context())
		if err != nil {
			ui.PrintError("%s is unreachable: %v", apiClient.Server(), err)
			return fmt.Errorf("health check failed")
		}

		ui.PrintSuccess("%s is %s", health["service"], health["status"])
		return nil
	},
}
