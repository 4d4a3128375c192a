package state

import (
	"github.com/cristianoliveira/pawmatch/internal/api"
	"github.com/cristianoliveira/pawmatch/internal/domain"
)

// LoggedOutMsg is sent after the server accepted a logout.
type LoggedOutMsg struct{}

// SessionExpiredMsg is sent when the service no longer accepts the session.
type SessionExpiredMsg struct{}

// Messages below carry the mount id of the Model that issued them. A Model
// ignores messages from another mount, so a closed view's late responses
// never reach the view that replaced it.

// breedsLoadedMsg carries the catalog fetch result.
type breedsLoadedMsg struct {
	mount  uint64
	breeds []string
	err    error
}

// pageLoadedMsg carries the result of the page request numbered seq.
type pageLoadedMsg struct {
	mount uint64
	seq   int
	page  api.Page
	err   error
}

type matchResultMsg struct {
	mount uint64
	dog   domain.Dog
	err   error
}

type logoutResultMsg struct {
	mount uint64
	err   error
}

// toastExpiredMsg clears toast id if it is still the one showing.
type toastExpiredMsg struct {
	mount uint64
	id    int
}
