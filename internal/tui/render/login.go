package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/cristianoliveira/pawmatch/internal/colors"
)

// LoginFormState defines the inputs needed to render the login form.
// NameInput and EmailInput are the rendered views of caller-owned inputs.
type LoginFormState struct {
	NameInput  string
	EmailInput string
	Submitting bool
	Spinner    string
	Width      int
}

// LoginForm renders the name/email form.
func LoginForm(state LoginFormState) string {
	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ansiColorNumber(colors.Blue))).
		Render("🐾 Welcome to " + appTitle)
	muted := lipgloss.NewStyle().Foreground(lipgloss.Color(mutedColor))

	lines := []string{
		title,
		muted.Render("Sign in to find your new best friend."),
		"",
		"Name:  " + state.NameInput,
		"Email: " + state.EmailInput,
		"",
	}
	if state.Submitting {
		lines = append(lines, state.Spinner+" "+muted.Render("Signing in..."))
	} else {
		lines = append(lines, muted.Render("enter: sign in  tab: next field  ctrl+c: quit"))
	}

	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ansiColorNumber(colors.Blue))).
		Padding(1, 2)
	return style.Render(strings.Join(lines, "\n"))
}
