package state

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/cristianoliveira/pawmatch/internal/tui/render"
)

// breedRows is the number of breed rows shown in the filter panel.
const breedRows = 6

// View renders the search view.
func (m *Model) View() string {
	width := m.uiState.GetWidth()

	top := []string{
		render.Header(render.HeaderState{
			User:           m.session.Name(),
			FavoritesCount: m.favorites.Len(),
			Width:          width,
		}),
		render.FilterPanel(render.FilterPanelState{
			Catalog:     m.catalog,
			Filter:      m.filter,
			Cursor:      m.uiState.BreedCursor(),
			Focus:       m.uiState.Focus(),
			AgeMinInput: m.ageMin.View(),
			AgeMaxInput: m.ageMax.View(),
			Rows:        breedRows,
			Width:       width,
		}),
		m.statusLine(),
	}
	bottom := []string{
		render.Pagination(m.pagination.Current, m.pagination.Total),
		render.Footer(render.FooterState{Help: m.help.View(m.keys), Width: width}),
	}

	topView := strings.Join(top, "\n")
	bottomView := strings.Join(bottom, "\n")
	m.uiState.SetViewportHeight(m.uiState.GetHeight() - lipgloss.Height(topView) - lipgloss.Height(bottomView))
	m.updateViewportContent()

	return topView + "\n" + m.uiState.GetViewport().View() + "\n" + bottomView
}

// statusLine shows the toast, or the spinner while loading.
func (m *Model) statusLine() string {
	if toast := render.Toast(m.toast); toast != "" {
		return toast
	}
	if m.loading {
		return render.Loading(m.spinner.View())
	}
	return ""
}

// updateViewportContent renders the result grid and keeps the selected card visible.
func (m *Model) updateViewportContent() {
	focused := m.uiState.Focus() == render.FocusResults
	content := render.Results(render.ResultsState{
		Dogs:      m.results,
		Favorites: m.favorites,
		Cursor:    m.uiState.ResultCursor(),
		Focused:   focused,
		Width:     m.uiState.GetWidth(),
	})
	vp := m.uiState.GetViewport()
	vp.SetContent(content)

	if !focused || len(m.results) == 0 {
		return
	}
	cardHeight := lipgloss.Height(render.ResultCard(render.CardState{Dog: m.results[0]}))
	row := m.uiState.ResultCursor() / render.Columns(m.uiState.GetWidth())
	m.uiState.EnsureRowVisible(row*cardHeight, cardHeight)
}
