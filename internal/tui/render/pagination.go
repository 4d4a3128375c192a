package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/cristianoliveira/pawmatch/internal/colors"
)

// maxButtons is the number of page buttons shown before pages are elided.
const maxButtons = 9

// pageGap marks elided pages in PageButtons.
const pageGap = 0

// Pagination renders page-number buttons. Nothing is rendered when total <= 0.
func Pagination(current, total int) string {
	if total <= 0 {
		return ""
	}
	currentStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ansiColorNumber(colors.Blue)))
	muted := lipgloss.NewStyle().Foreground(lipgloss.Color(mutedColor))

	buttons := PageButtons(current, total)
	parts := make([]string, 0, len(buttons))
	for _, p := range buttons {
		switch {
		case p == pageGap:
			parts = append(parts, muted.Render("…"))
		case p == current:
			parts = append(parts, currentStyle.Render(fmt.Sprintf("[%d]", p)))
		default:
			parts = append(parts, fmt.Sprintf(" %d ", p))
		}
	}
	return strings.Join(parts, " ")
}

// PageButtons lists the pages to show for current of total. Every page is
// listed up to maxButtons; past that the first, last and the pages around
// current are kept and gaps are 0.
func PageButtons(current, total int) []int {
	if total <= 0 {
		return nil
	}
	pages := make([]int, 0, maxButtons)
	if total <= maxButtons {
		for p := 1; p <= total; p++ {
			pages = append(pages, p)
		}
		return pages
	}

	const around = 2
	lo, hi := current-around, current+around
	if lo < 2 {
		lo, hi = 2, 2+2*around
	}
	if hi > total-1 {
		lo, hi = total-1-2*around, total-1
	}

	pages = append(pages, 1)
	if lo > 2 {
		pages = append(pages, pageGap)
	}
	for p := lo; p <= hi; p++ {
		pages = append(pages, p)
	}
	if hi < total-1 {
		pages = append(pages, pageGap)
	}
	return append(pages, total)
}
