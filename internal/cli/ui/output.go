package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
)

var (
	// Color definitions for terminal output
	successColor = color.New(color.FgGreen, color.Bold)
	errorColor   = color.New(color.FgRed, color.Bold)
	infoColor    = color.New(color.FgCyan)
	coachColor   = color.New(color.FgMagenta, color.Bold)
	boldColor    = color.New(color.Bold)
)

// PrintSuccess prints a success message
func PrintSuccess(format string, args ...interface{}) {
	successColor.Printf("✓ %s\n", fmt.Sprintf(format, args...))
}

// PrintError prints an error message
func PrintError(format string, args ...interface{}) {
	errorColor.Printf("✗ %s\n", fmt.Sprintf(format, args...))
}

// PrintInfo prints an info message
func PrintInfo(format string, args ...interface{}) {
	infoColor.Printf("ℹ %s\n", fmt.Sprintf(format, args...))
}

// PrintField prints a bold key followed by its value
func PrintField(key, value string) {
	boldColor.Printf("%s: ", key)
	fmt.Println(value)
}

// PrintCoachReply prints a reply from the coach
func PrintCoachReply(text string) {
	coachColor.Print("coach> ")
	fmt.Println(text)
}

// PrintChatWelcomeBanner prints the welcome banner for interactive chat
func PrintChatWelcomeBanner(server, userID string) {
	bannerStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("86")).
		Padding(0, 2).
		Align(lipgloss.Center)

	body := fmt.Sprintf("♞  Chess Coach - Interactive Chat\n%s as %s\ntype 'exit' to quit", server, userID)
	fmt.Println(bannerStyle.Render(body))
}
