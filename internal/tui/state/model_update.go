package state

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/cristianoliveira/pawmatch/internal/domain"
	"github.com/cristianoliveira/pawmatch/internal/errors"
	"github.com/cristianoliveira/pawmatch/internal/tui/render"
)

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.uiState.SetWidth(msg.Width)
		m.uiState.SetHeight(msg.Height)
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	case breedsLoadedMsg:
		if m.foreign(msg.mount, "breeds") {
			return m, nil
		}
		return m, m.handleBreedsLoaded(msg)
	case pageLoadedMsg:
		if m.foreign(msg.mount, "page") {
			return m, nil
		}
		return m, m.handlePageLoaded(msg)
	case matchResultMsg:
		if m.foreign(msg.mount, "match") {
			return m, nil
		}
		return m, m.handleMatchResult(msg)
	case logoutResultMsg:
		if m.foreign(msg.mount, "logout") {
			return m, nil
		}
		return m, m.handleLogoutResult(msg)
	case toastExpiredMsg:
		if msg.mount == m.mount && m.toast.ID == msg.id {
			m.toast = errors.Message{}
		}
		return m, nil
	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var minCmd, maxCmd tea.Cmd
	m.ageMin, minCmd = m.ageMin.Update(msg)
	m.ageMax, maxCmd = m.ageMax.Update(msg)
	return m, tea.Batch(minCmd, maxCmd)
}

// foreign reports whether a response was issued by another mount.
func (m *Model) foreign(mount uint64, kind string) bool {
	if mount == m.mount {
		return false
	}
	m.log.Debug("response from closed view discarded", "kind", kind, "mount", mount, "current", m.mount)
	return true
}

func (m *Model) handleBreedsLoaded(msg breedsLoadedMsg) tea.Cmd {
	if msg.err != nil {
		m.catalog = nil
		return m.failure(msgBreedsFailed, msg.err)
	}
	m.catalog = msg.breeds
	m.uiState.AdjustCursorBounds(len(m.catalog), len(m.results))
	return nil
}

func (m *Model) handlePageLoaded(msg pageLoadedMsg) tea.Cmd {
	if msg.seq != m.seq {
		m.log.Debug("stale page discarded", "seq", msg.seq, "latest", m.seq)
		return nil
	}
	m.loading = false
	if msg.err != nil {
		return m.failure(msgDogsFailed, msg.err)
	}
	m.results = msg.page.Dogs
	m.pagination.Total = msg.page.TotalPages
	m.uiState.AdjustCursorBounds(len(m.catalog), len(m.results))
	m.uiState.GetViewport().GotoTop()
	return nil
}

func (m *Model) handleMatchResult(msg matchResultMsg) tea.Cmd {
	if msg.err != nil {
		return m.failure(msgMatchFailed, msg.err)
	}
	m.log.Info("match generated", "dog", msg.dog.ID)
	return m.notify(errors.MessageTypeSuccess, matchedText(msg.dog.Name))
}

func (m *Model) handleLogoutResult(msg logoutResultMsg) tea.Cmd {
	if msg.err != nil {
		m.log.Error(msgLogoutFailed, "error", msg.err.Error())
		return m.notify(errors.MessageTypeError, msgLogoutFailed)
	}
	m.Close()
	return emit(LoggedOutMsg{})
}

// handleKeyMsg routes keys: age inputs take text while focused, every
// other focus shares the global bindings.
func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		m.Close()
		return m, tea.Quit
	}

	switch m.uiState.Focus() {
	case render.FocusAgeMin, render.FocusAgeMax:
		return m, m.handleAgeInputKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.Close()
		return m, tea.Quit
	case key.Matches(msg, m.keys.NextFocus):
		return m, m.setFocus(m.uiState.NextFocus())
	case key.Matches(msg, m.keys.PrevFocus):
		return m, m.setFocus(m.uiState.PrevFocus())
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.NextPage):
		return m, m.goToPage(m.pagination.Current + 1)
	case key.Matches(msg, m.keys.PrevPage):
		return m, m.goToPage(m.pagination.Current - 1)
	case key.Matches(msg, m.keys.FirstPage):
		return m, m.goToPage(1)
	case key.Matches(msg, m.keys.LastPage):
		return m, m.goToPage(m.pagination.Total)
	case key.Matches(msg, m.keys.Match):
		return m, m.generateMatch()
	case key.Matches(msg, m.keys.Logout):
		return m, m.logoutCmd()
	}

	switch m.uiState.Focus() {
	case render.FocusBreeds:
		return m, m.handleBreedKey(msg)
	case render.FocusSort:
		if key.Matches(msg, m.keys.Toggle) {
			return m, m.toggleSort()
		}
	case render.FocusResults:
		return m, m.handleResultKey(msg)
	}
	return m, nil
}

func (m *Model) handleBreedKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.uiState.MoveBreedCursor(-1, len(m.catalog))
	case key.Matches(msg, m.keys.Down):
		m.uiState.MoveBreedCursor(1, len(m.catalog))
	case key.Matches(msg, m.keys.Toggle):
		if len(m.catalog) == 0 {
			return nil
		}
		return m.toggleBreed(m.catalog[m.uiState.BreedCursor()])
	}
	return nil
}

func (m *Model) handleResultKey(msg tea.KeyMsg) tea.Cmd {
	columns := render.Columns(m.uiState.GetWidth())
	switch {
	case key.Matches(msg, m.keys.Left):
		m.uiState.MoveResultCursor(-1, len(m.results))
	case key.Matches(msg, m.keys.Right):
		m.uiState.MoveResultCursor(1, len(m.results))
	case key.Matches(msg, m.keys.Up):
		m.uiState.MoveResultCursor(-columns, len(m.results))
	case key.Matches(msg, m.keys.Down):
		m.uiState.MoveResultCursor(columns, len(m.results))
	case key.Matches(msg, m.keys.Favorite), key.Matches(msg, m.keys.Toggle):
		if len(m.results) > 0 {
			m.toggleFavorite(m.results[m.uiState.ResultCursor()].ID)
		}
	}
	return nil
}

func (m *Model) handleAgeInputKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.NextFocus):
		return m.setFocus(m.uiState.NextFocus())
	case key.Matches(msg, m.keys.PrevFocus):
		return m.setFocus(m.uiState.PrevFocus())
	case key.Matches(msg, m.keys.Done):
		m.uiState.SetFocus(render.FocusResults)
		return m.setFocus(render.FocusResults)
	}

	var cmd tea.Cmd
	if m.uiState.Focus() == render.FocusAgeMin {
		m.ageMin, cmd = m.ageMin.Update(msg)
	} else {
		m.ageMax, cmd = m.ageMax.Update(msg)
	}
	return tea.Batch(cmd, m.applyAgeInputs())
}

// setFocus moves keyboard focus, focusing the matching age input.
func (m *Model) setFocus(f render.Focus) tea.Cmd {
	m.ageMin.Blur()
	m.ageMax.Blur()
	switch f {
	case render.FocusAgeMin:
		return m.ageMin.Focus()
	case render.FocusAgeMax:
		return m.ageMax.Focus()
	}
	return nil
}

// applyAgeInputs refetches when the parsed age range changed.
func (m *Model) applyAgeInputs() tea.Cmd {
	age := domain.AgeRange{
		Min: domain.ParseAge(m.ageMin.Value()),
		Max: domain.ParseAge(m.ageMax.Value()),
	}
	if age.Equal(m.filter.Age) {
		return nil
	}
	m.filter.Age = age
	return m.filterChanged()
}

func (m *Model) toggleBreed(breed string) tea.Cmd {
	breeds := make([]string, 0, len(m.filter.Breeds)+1)
	found := false
	for _, b := range m.filter.Breeds {
		if b == breed {
			found = true
			continue
		}
		breeds = append(breeds, b)
	}
	if !found {
		breeds = append(breeds, breed)
	}
	m.filter.Breeds = breeds
	return m.filterChanged()
}

func (m *Model) toggleSort() tea.Cmd {
	m.filter.Sort = m.filter.Sort.Toggle()
	return m.filterChanged()
}

func (m *Model) filterChanged() tea.Cmd {
	if m.pageReset == domain.PageReset {
		m.pagination.Current = 1
	}
	return m.requestPage()
}

// goToPage fetches page, clamped to the known page count, when it differs
// from the current one.
func (m *Model) goToPage(page int) tea.Cmd {
	page = m.pagination.Clamp(page)
	if !m.pagination.CanGoTo(page) {
		return nil
	}
	m.pagination.Current = page
	return m.requestPage()
}

func (m *Model) toggleFavorite(id string) {
	m.favorites.Toggle(id)
}

func (m *Model) generateMatch() tea.Cmd {
	if m.favorites.Len() == 0 {
		return m.notify(errors.MessageTypeWarning, msgNoFavorites)
	}
	return m.matchCmd(m.favorites.IDs())
}
