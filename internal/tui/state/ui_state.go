package state

import (
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/cristianoliveira/pawmatch/internal/tui/render"
)

// UIState holds the interactive state of the search view that does not
// affect what is fetched: sizes, focus and cursors.
type UIState struct {
	viewport viewport.Model
	width    int
	height   int

	focus        render.Focus
	breedCursor  int
	resultCursor int
}

// NewUIState creates a UIState with default sizes.
func NewUIState() *UIState {
	return &UIState{
		viewport: viewport.New(defaultViewportWidth, defaultViewportHeight),
		width:    defaultViewportWidth,
		height:   defaultViewportHeight,
		focus:    render.FocusBreeds,
	}
}

// GetViewport returns the results viewport.
func (u *UIState) GetViewport() *viewport.Model {
	return &u.viewport
}

func (u *UIState) GetWidth() int { return u.width }

// SetWidth updates the width. Non-positive values restore the default.
func (u *UIState) SetWidth(width int) {
	u.width = width
	if width <= 0 {
		u.width = defaultViewportWidth
	}
	u.viewport.Width = u.width
}

func (u *UIState) GetHeight() int { return u.height }

// SetHeight updates the height. Non-positive values restore the default.
func (u *UIState) SetHeight(height int) {
	u.height = height
	if height <= 0 {
		u.height = defaultViewportHeight
	}
}

// SetViewportHeight sizes the results viewport, keeping at least one line.
func (u *UIState) SetViewportHeight(height int) {
	if height < 1 {
		height = 1
	}
	u.viewport.Height = height
}

func (u *UIState) Focus() render.Focus { return u.focus }

// NextFocus cycles focus forward through the filter controls and results.
func (u *UIState) NextFocus() render.Focus {
	u.focus = (u.focus + 1) % focusCount
	return u.focus
}

// PrevFocus cycles focus backward.
func (u *UIState) PrevFocus() render.Focus {
	u.focus = (u.focus + focusCount - 1) % focusCount
	return u.focus
}

func (u *UIState) SetFocus(f render.Focus) { u.focus = f }

func (u *UIState) BreedCursor() int { return u.breedCursor }

// MoveBreedCursor moves the breed cursor by delta within [0, n).
func (u *UIState) MoveBreedCursor(delta, n int) {
	u.breedCursor = clamp(u.breedCursor+delta, n)
}

func (u *UIState) ResultCursor() int { return u.resultCursor }

// MoveResultCursor moves the result cursor by delta within [0, n).
func (u *UIState) MoveResultCursor(delta, n int) {
	u.resultCursor = clamp(u.resultCursor+delta, n)
}

// AdjustCursorBounds keeps both cursors inside their lists.
func (u *UIState) AdjustCursorBounds(breeds, results int) {
	u.breedCursor = clamp(u.breedCursor, breeds)
	u.resultCursor = clamp(u.resultCursor, results)
}

// EnsureRowVisible scrolls the viewport so the given line span is shown.
func (u *UIState) EnsureRowVisible(top, height int) {
	if top < u.viewport.YOffset {
		u.viewport.SetYOffset(top)
		return
	}
	if bottom := top + height; bottom > u.viewport.YOffset+u.viewport.Height {
		u.viewport.SetYOffset(bottom - u.viewport.Height)
	}
}

func clamp(v, n int) int {
	if n <= 0 || v < 0 {
		return 0
	}
	if v >= n {
		return n - 1
	}
	return v
}
