package api

import (
	"net/http"
	"sync"
	"time"
)

// Session is the credential state issued by Login. It is passed explicitly to
// every call instead of living in a shared cookie jar, and becomes invalid
// after Logout.
type Session struct {
	mu        sync.RWMutex
	name      string
	email     string
	cookies   []*http.Cookie
	createdAt time.Time
	valid     bool
}

// RestoreSession rebuilds a session from stored cookies.
func RestoreSession(name, email string, cookies []*http.Cookie, createdAt time.Time) *Session {
	return &Session{
		name:      name,
		email:     email,
		cookies:   cloneCookies(cookies),
		createdAt: createdAt,
		valid:     true,
	}
}

// Valid reports whether the session can be used. A nil session is invalid.
func (s *Session) Valid() bool {
	if s == nil {
		return false
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.valid
}

func (s *Session) Name() string {
	if s == nil {
		return ""
	}
	return s.name
}

func (s *Session) Email() string {
	if s == nil {
		return ""
	}
	return s.email
}

func (s *Session) CreatedAt() time.Time {
	if s == nil {
		return time.Time{}
	}
	return s.createdAt
}

// Cookies returns a copy of the credential cookies.
func (s *Session) Cookies() []*http.Cookie {
	if s == nil {
		return nil
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneCookies(s.cookies)
}

// ExpiresAt is the earliest cookie expiry, or the zero time when no cookie carries one.
func (s *Session) ExpiresAt() time.Time {
	var earliest time.Time
	for _, c := range s.Cookies() {
		if c.Expires.IsZero() {
			continue
		}
		if earliest.IsZero() || c.Expires.Before(earliest) {
			earliest = c.Expires
		}
	}
	return earliest
}

// Expired reports whether a cookie expiry has passed at now.
func (s *Session) Expired(now time.Time) bool {
	exp := s.ExpiresAt()
	return !exp.IsZero() && !now.Before(exp)
}

func (s *Session) invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.valid = false
	s.cookies = nil
}

func cloneCookies(in []*http.Cookie) []*http.Cookie {
	if in == nil {
		return nil
	}
	out := make([]*http.Cookie, 0, len(in))
	for _, c := range in {
		if c == nil {
			continue
		}
		cp := *c
		out = append(out, &cp)
	}
	return out
}
