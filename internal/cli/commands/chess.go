package commands

import (
	"github.com/spf13/cobra"

	"github.com/chesscoach/chess-coach/backend/internal/cli/ui"
)

var openingCmd = &cobra.Command{
	Use:          "opening <name>",
	Short:        "show information about a chess opening",
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		apiClient, err := newClient()
		if err != nil {
			return err
		}

		info, err := apiClient.Opening(cmd.Context(), args[0])
		if err != nil {
			ui.PrintError("%v", err)
			return err
		}

		ui.PrintField("Opening", info["opening"])
		ui.PrintField("Description", info["description"])
		return nil
	},
}

var analyzeCmd = &cobra.Command{
	Use:          "analyze",
	Short:        "request a position analysis",
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		apiClient, err := newClient()
		if err != nil {
			return err
		}

		result, err := apiClient.Analyze(cmd.Context())
		if err != nil {
			ui.PrintError("%v", err)
			return err
		}

		ui.PrintInfo("%s", result["message"])
		return nil
	},
}
