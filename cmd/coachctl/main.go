package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/chesscoach/chess-coach/backend/internal/cli/commands"
	"github.com/chesscoach/chess-coach/backend/internal/cli/ui"
)

func main() {
	// COACH_API_URL may come from a local .env file.
	_ = godotenv.Load()

	if err := commands.Execute(); err != nil {
		if strings.Contains(err.Error(), "unknown command") {
			ui.PrintError("%s", err.Error())
			fmt.Println("\nRun 'coachctl --help' for usage.")
		}
		os.Exit(1)
	}
}
