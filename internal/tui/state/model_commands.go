package state

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cristianoliveira/pawmatch/internal/api"
	"github.com/cristianoliveira/pawmatch/internal/domain"
	"github.com/cristianoliveira/pawmatch/internal/errors"
)

func (m *Model) fetchBreedsCmd() tea.Cmd {
	svc, ctx, sess, mount := m.svc, m.ctx, m.session, m.mount
	return func() tea.Msg {
		breeds, err := svc.ListBreeds(ctx, sess)
		return breedsLoadedMsg{mount: mount, breeds: breeds, err: err}
	}
}

// requestPage starts a fetch for the current filter and page. Any response
// to an earlier request is discarded once this one is issued.
func (m *Model) requestPage() tea.Cmd {
	m.seq++
	seq := m.seq
	params := domain.BuildSearchParams(m.filter, m.pagination.Current, m.agePolicy)
	pager, ctx, sess, mount := m.pager, m.ctx, m.session, m.mount

	fetch := func() tea.Msg {
		page, err := pager.FetchPage(ctx, sess, params)
		return pageLoadedMsg{mount: mount, seq: seq, page: page, err: err}
	}

	m.log.Debug("page requested", "seq", seq, "page", m.pagination.Current, "sort", params.Sort)
	if m.loading {
		return fetch
	}
	m.loading = true
	return tea.Batch(fetch, m.spinner.Tick)
}

func (m *Model) matchCmd(ids []string) tea.Cmd {
	pager, ctx, sess, mount := m.pager, m.ctx, m.session, m.mount
	return func() tea.Msg {
		dog, err := pager.MatchDog(ctx, sess, ids)
		return matchResultMsg{mount: mount, dog: dog, err: err}
	}
}

func (m *Model) logoutCmd() tea.Cmd {
	svc, ctx, sess, mount := m.svc, m.ctx, m.session, m.mount
	return func() tea.Msg {
		return logoutResultMsg{mount: mount, err: svc.Logout(ctx, sess)}
	}
}

// notify shows a toast and schedules its removal.
func (m *Model) notify(kind errors.MessageType, text string) tea.Cmd {
	switch kind {
	case errors.MessageTypeError:
		m.errorHandler.Error(text)
	case errors.MessageTypeWarning:
		m.errorHandler.Warning(text)
	case errors.MessageTypeSuccess:
		m.errorHandler.Success(text)
	default:
		m.errorHandler.Info(text)
	}
	return toastExpiredAfter(m.toastDuration, m.mount, m.toast.ID)
}

// failure logs err and shows text. An unauthorized error also ends the session.
func (m *Model) failure(text string, err error) tea.Cmd {
	m.log.Error(text, "error", err.Error())
	cmd := m.notify(errors.MessageTypeError, text)
	if api.IsUnauthorized(err) {
		return tea.Batch(cmd, emit(SessionExpiredMsg{}))
	}
	return cmd
}

func toastExpiredAfter(d time.Duration, mount uint64, id int) tea.Cmd {
	if d < 0 {
		return nil
	}
	return tea.Tick(d, func(time.Time) tea.Msg {
		return toastExpiredMsg{mount: mount, id: id}
	})
}

func emit(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}

func matchedText(name string) string {
	return fmt.Sprintf(msgMatchedFmt, name)
}
