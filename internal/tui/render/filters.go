package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/cristianoliveira/pawmatch/internal/colors"
	"github.com/cristianoliveira/pawmatch/internal/domain"
)

// Focus identifies which filter control receives keys.
type Focus int

const (
	FocusBreeds Focus = iota
	FocusSort
	FocusAgeMin
	FocusAgeMax
	FocusResults
)

const defaultBreedRows = 8

// FilterPanelState defines the inputs needed to render the filter panel.
// AgeMinInput and AgeMaxInput are the rendered views of caller-owned inputs.
type FilterPanelState struct {
	Catalog     []string
	Filter      domain.Filter
	Cursor      int
	Focus       Focus
	AgeMinInput string
	AgeMaxInput string
	// Rows is the number of breed rows shown at once.
	Rows  int
	Width int
}

// FilterPanel renders the breed multi-select, sort toggle and age inputs.
func FilterPanel(state FilterPanelState) string {
	labelStyle := lipgloss.NewStyle().Bold(true)
	activeLabel := labelStyle.Foreground(lipgloss.Color(ansiColorNumber(colors.Blue)))
	label := func(text string, f Focus) string {
		if state.Focus == f {
			return activeLabel.Render("› " + text)
		}
		return labelStyle.Render("  " + text)
	}

	var b strings.Builder
	b.WriteString(label("Breeds", FocusBreeds))
	b.WriteString(breedSummary(state.Filter.Breeds))
	b.WriteString("\n")
	b.WriteString(breedList(state))
	b.WriteString(label("Sort by breed: ", FocusSort))
	b.WriteString(state.Filter.Sort.Label())
	b.WriteString("\n")
	b.WriteString(label("Age min: ", FocusAgeMin))
	b.WriteString(state.AgeMinInput)
	b.WriteString("   ")
	b.WriteString(label("Age max: ", FocusAgeMax))
	b.WriteString(state.AgeMaxInput)

	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(mutedColor)).
		Padding(0, 1)
	if state.Width > 4 {
		style = style.Width(state.Width - 2)
	}
	return style.Render(b.String())
}

func breedSummary(selected []string) string {
	muted := lipgloss.NewStyle().Foreground(lipgloss.Color(mutedColor))
	if len(selected) == 0 {
		return muted.Render("  (all)")
	}
	return muted.Render("  (" + strings.Join(selected, ", ") + ")")
}

func breedList(state FilterPanelState) string {
	if len(state.Catalog) == 0 {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(mutedColor)).Render("    no breeds available") + "\n"
	}
	rows := state.Rows
	if rows <= 0 {
		rows = defaultBreedRows
	}
	start, end := VisibleWindow(len(state.Catalog), state.Cursor, rows)

	cursorStyle := lipgloss.NewStyle().
		Background(lipgloss.Color(ansiColorNumber(colors.Blue))).
		Foreground(lipgloss.Color("0"))
	width := state.Width - 6

	var b strings.Builder
	for i := start; i < end; i++ {
		breed := state.Catalog[i]
		box := "[ ]"
		if state.Filter.HasBreed(breed) {
			box = "[x]"
		}
		line := truncate(box+" "+breed, width)
		if i == state.Cursor && state.Focus == FocusBreeds {
			line = cursorStyle.Render(line)
		}
		b.WriteString("    ")
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

// VisibleWindow returns the [start, end) slice of a list of total items that
// keeps cursor visible within size rows.
func VisibleWindow(total, cursor, size int) (int, int) {
	if total <= 0 || size <= 0 {
		return 0, 0
	}
	if size >= total {
		return 0, total
	}
	if cursor < 0 {
		cursor = 0
	}
	if cursor >= total {
		cursor = total - 1
	}
	start := cursor - size/2
	if start < 0 {
		start = 0
	}
	if start+size > total {
		start = total - size
	}
	return start, start + size
}
