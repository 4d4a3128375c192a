package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/cristianoliveira/pawmatch/internal/colors"
	"github.com/cristianoliveira/pawmatch/internal/domain"
)

const (
	cardWidth       = 30
	favoriteMarker  = "♥"
	availableMarker = "♡"
)

// CardState defines the inputs needed to render one result card.
type CardState struct {
	Dog      domain.Dog
	Favorite bool
	Selected bool
}

// ResultsState defines the inputs needed to render the result grid.
type ResultsState struct {
	Dogs      []domain.Dog
	Favorites *domain.Favorites
	Cursor    int
	Focused   bool
	Width     int
}

// ResultCard renders a dog. The favorite marker depends only on state.Favorite.
func ResultCard(state CardState) string {
	marker := availableMarker
	markerStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(mutedColor))
	if state.Favorite {
		marker = favoriteMarker
		markerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ansiColorNumber(colors.Red)))
	}
	inner := cardWidth - 4
	nameStyle := lipgloss.NewStyle().Bold(true)
	muted := lipgloss.NewStyle().Foreground(lipgloss.Color(mutedColor))

	lines := []string{
		markerStyle.Render(marker) + " " + nameStyle.Render(truncate(state.Dog.Name, inner-2)),
		truncate(state.Dog.Breed, inner),
		fmt.Sprintf("Age: %d", state.Dog.Age),
		"Zip: " + state.Dog.ZipCode,
		muted.Render(truncate(state.Dog.Img, inner)),
	}

	border := lipgloss.NormalBorder()
	borderColor := lipgloss.Color(mutedColor)
	if state.Selected {
		border = lipgloss.ThickBorder()
		borderColor = lipgloss.Color(ansiColorNumber(colors.Blue))
	}
	style := lipgloss.NewStyle().
		Border(border).
		BorderForeground(borderColor).
		Padding(0, 1).
		Width(cardWidth - 2)
	return style.Render(strings.Join(lines, "\n"))
}

// Results renders dogs as a grid of cards sized to width.
func Results(state ResultsState) string {
	if len(state.Dogs) == 0 {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(mutedColor)).Render("No dogs found.")
	}
	columns := Columns(state.Width)

	var rows []string
	for start := 0; start < len(state.Dogs); start += columns {
		end := start + columns
		if end > len(state.Dogs) {
			end = len(state.Dogs)
		}
		cards := make([]string, 0, end-start)
		for i := start; i < end; i++ {
			dog := state.Dogs[i]
			cards = append(cards, ResultCard(CardState{
				Dog:      dog,
				Favorite: state.Favorites.Has(dog.ID),
				Selected: state.Focused && i == state.Cursor,
			}))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// Columns is the number of cards that fit in width.
func Columns(width int) int {
	if width <= 0 {
		width = defaultWide
	}
	if n := width / cardWidth; n > 1 {
		return n
	}
	return 1
}
