package commands

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/chesscoach/chess-coach/backend/internal/cli/client"
	"github.com/chesscoach/chess-coach/backend/internal/cli/ui"
	"github.com/chesscoach/chess-coach/backend/internal/model/chat"
)

var chatUserID string

// chatCmd is the chat command
var chatCmd = &cobra.Command{
	Use:   "chat [message]",
	Short: "chat with the coach",
	Long: `Send a message to the coach. Without a message argument an interactive
session starts and every line read from stdin is sent as one message.`,
	RunE: runChat,
}

func init() {
	chatCmd.SilenceUsage = true
	chatCmd.Flags().StringVarP(&chatUserID, "user", "u", chat.DefaultUserID, "user id that owns the conversation")
}

func runChat(cmd *cobra.Command, args []string) error {
	apiClient, err := newClient()
	if err != nil {
		ui.PrintError("failed to create client: %v", err)
		return fmt.Errorf("client creation failed")
	}

	if len(args) > 0 {
		return sendOnce(cmd.Context(), apiClient, strings.Join(args, " "))
	}

	ui.PrintChatWelcomeBanner(apiClient.Server(), chatUserID)
	return chatLoop(cmd.Context(), apiClient, cmd.InOrStdin(), cmd.OutOrStdout())
}

func sendOnce(ctx context.Context, apiClient *client.APIClient, message string) error {
	resp, err := apiClient.SendMessage(ctx, chatUserID, message)
	if err != nil {
		ui.PrintError("%v", err)
		return err
	}
	ui.PrintCoachReply(resp.Response)
	return nil
}

func chatLoop(ctx context.Context, apiClient *client.APIClient, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "you> ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}

		line := strings.TrimSpace(scanner.Text())
		switch line {
		case "":
			continue
		case "exit", "quit":
			return nil
		}

		// Errors are printed and the session continues.
		_ = sendOnce(ctx, apiClient, line)
	}
}
