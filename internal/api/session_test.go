package api

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNilSessionIsInvalid(t *testing.T) {
	var sess *Session
	assert.False(t, sess.Valid())
	assert.Nil(t, sess.Cookies())
	assert.Empty(t, sess.Name())
}

func TestSessionCookiesAreCopies(t *testing.T) {
	sess := RestoreSession("Ada", "ada@example.com", []*http.Cookie{{Name: "a", Value: "1"}}, time.Now())

	sess.Cookies()[0].Value = "changed"

	assert.Equal(t, "1", sess.Cookies()[0].Value)
}

func TestSessionExpiry(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	sess := RestoreSession("Ada", "ada@example.com", []*http.Cookie{
		{Name: "a", Value: "1", Expires: now.Add(2 * time.Hour)},
		{Name: "b", Value: "2", Expires: now.Add(time.Hour)},
		{Name: "c", Value: "3"},
	}, now)

	assert.Equal(t, now.Add(time.Hour), sess.ExpiresAt())
	assert.False(t, sess.Expired(now))
	assert.True(t, sess.Expired(now.Add(time.Hour)))

	noExpiry := RestoreSession("Ada", "", []*http.Cookie{{Name: "c", Value: "3"}}, now)
	assert.False(t, noExpiry.Expired(now.Add(1000*time.Hour)))
}

func TestInvalidateClearsCookies(t *testing.T) {
	sess := RestoreSession("Ada", "", []*http.Cookie{{Name: "a", Value: "1"}}, time.Now())
	sess.invalidate()
	assert.False(t, sess.Valid())
	assert.Nil(t, sess.Cookies())
}
