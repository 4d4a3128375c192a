// Package render holds the pure view functions of the terminal client.
package render

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/cristianoliveira/pawmatch/internal/colors"
	"github.com/cristianoliveira/pawmatch/internal/errors"
)

const (
	appTitle    = "pawmatch"
	mutedColor  = "241"
	ellipsis    = "..."
	defaultWide = 80
)

// HeaderState defines the inputs needed to render the header bar.
type HeaderState struct {
	User           string
	FavoritesCount int
	Width          int
}

// FooterState defines the inputs needed to render the footer.
type FooterState struct {
	// Help is the rendered key help line.
	Help  string
	Width int
}

// Header renders the title bar with the signed-in user and favorites count.
func Header(state HeaderState) string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ansiColorNumber(colors.Blue)))
	infoStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(mutedColor))

	parts := []string{titleStyle.Render("🐾 " + appTitle)}
	if state.User != "" {
		parts = append(parts, infoStyle.Render("signed in as "+state.User))
	}
	parts = append(parts, infoStyle.Render(favoritesLabel(state.FavoritesCount)))

	return truncate(strings.Join(parts, "  "), state.Width)
}

func favoritesLabel(n int) string {
	if n == 1 {
		return "♥ 1 favorite"
	}
	return fmt.Sprintf("♥ %d favorites", n)
}

// Footer renders the key help line.
func Footer(state FooterState) string {
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(mutedColor))
	return helpStyle.Render(state.Help)
}

// Toast renders a notification. An empty message renders nothing.
func Toast(msg errors.Message) string {
	if msg.Text == "" {
		return ""
	}
	color := colors.Blue
	prefix := "ℹ"
	switch msg.Type {
	case errors.MessageTypeError:
		color, prefix = colors.Red, "✗"
	case errors.MessageTypeWarning:
		color, prefix = colors.Yellow, "!"
	case errors.MessageTypeSuccess:
		color, prefix = colors.Green, "✓"
	}
	style := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ansiColorNumber(color)))
	return style.Render(prefix + " " + msg.Text)
}

// Loading renders the spinner line shown while a page is in flight.
func Loading(spinner string) string {
	style := lipgloss.NewStyle().Foreground(lipgloss.Color(mutedColor))
	return spinner + " " + style.Render("Loading dogs...")
}

// truncate cuts value to width runes, marking the cut with an ellipsis.
func truncate(value string, width int) string {
	if width <= 0 || utf8.RuneCountInString(value) <= width {
		return value
	}
	if width <= len(ellipsis) {
		return string([]rune(value)[:width])
	}
	return string([]rune(value)[:width-len(ellipsis)]) + ellipsis
}

// ansiColorNumber extracts the color number from an ANSI escape sequence.
// Example: "\033[0;34m" -> "34"
func ansiColorNumber(ansi string) string {
	if len(ansi) < 2 {
		return ""
	}
	lastSemicolon := strings.LastIndex(ansi, ";")
	if lastSemicolon == -1 {
		return ""
	}
	return ansi[lastSemicolon+1 : len(ansi)-1]
}
