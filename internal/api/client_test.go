package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/cristianoliveira/pawmatch/internal/domain"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCookie = "fetch-access-token"

// fakeService is an httptest server emulating the remote service.
type fakeService struct {
	*httptest.Server
	hits atomic.Int32
	mux  *http.ServeMux
}

func newFakeService(t *testing.T) *fakeService {
	t.Helper()
	f := &fakeService{mux: http.NewServeMux()}
	f.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.hits.Add(1)
		f.mux.ServeHTTP(w, r)
	}))
	t.Cleanup(f.Close)
	return f
}

func (f *fakeService) client() *Client {
	return New(Options{BaseURL: f.URL, UserAgent: "pawmatch-test"})
}

func requireCookie(t *testing.T, r *http.Request) {
	t.Helper()
	c, err := r.Cookie(testCookie)
	if assert.NoError(t, err) {
		assert.Equal(t, "token-1", c.Value)
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func testSession() *Session {
	return RestoreSession("Ada", "ada@example.com",
		[]*http.Cookie{{Name: testCookie, Value: "token-1"}}, time.Unix(0, 0))
}

func TestLoginIssuesSession(t *testing.T) {
	f := newFakeService(t)
	f.mux.HandleFunc("POST /auth/login", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]string{"name": "Ada", "email": "ada@example.com"}, body)
		assert.Equal(t, "pawmatch-test", r.UserAgent())
		http.SetCookie(w, &http.Cookie{Name: testCookie, Value: "token-1", HttpOnly: true})
		_, _ = w.Write([]byte("OK"))
	})

	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	c := New(Options{BaseURL: f.URL + "/", UserAgent: "pawmatch-test", Now: func() time.Time { return now }})
	sess, err := c.Login(context.Background(), "Ada", "ada@example.com")

	require.NoError(t, err)
	require.True(t, sess.Valid())
	assert.Equal(t, "Ada", sess.Name())
	assert.Equal(t, "ada@example.com", sess.Email())
	assert.Equal(t, now, sess.CreatedAt())
	require.Len(t, sess.Cookies(), 1)
	assert.Equal(t, "token-1", sess.Cookies()[0].Value)
}

func TestLoginFailureIsAuthError(t *testing.T) {
	f := newFakeService(t)
	f.mux.HandleFunc("POST /auth/login", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad credentials", http.StatusUnauthorized)
	})

	sess, err := f.client().Login(context.Background(), "Ada", "nope")

	assert.Nil(t, sess)
	require.Error(t, err)
	assert.True(t, IsAuth(err))
	assert.False(t, IsService(err))
	assert.Equal(t, http.StatusUnauthorized, StatusCode(err))
	assert.Contains(t, err.Error(), "bad credentials")
}

func TestLoginTransportFailureIsAuthError(t *testing.T) {
	f := newFakeService(t)
	url := f.URL
	f.Close()

	_, err := New(Options{BaseURL: url}).Login(context.Background(), "Ada", "ada@example.com")

	require.Error(t, err)
	assert.True(t, IsAuth(err))
	assert.Zero(t, StatusCode(err))
}

func TestLogoutInvalidatesSession(t *testing.T) {
	f := newFakeService(t)
	f.mux.HandleFunc("POST /auth/logout", func(w http.ResponseWriter, r *http.Request) {
		requireCookie(t, r)
		_, _ = w.Write([]byte("OK"))
	})
	sess := testSession()

	require.NoError(t, f.client().Logout(context.Background(), sess))

	assert.False(t, sess.Valid())
	assert.Empty(t, sess.Cookies())
}

func TestLogoutFailureKeepsSession(t *testing.T) {
	f := newFakeService(t)
	f.mux.HandleFunc("POST /auth/logout", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	sess := testSession()

	err := f.client().Logout(context.Background(), sess)

	require.Error(t, err)
	assert.True(t, IsAuth(err))
	assert.Equal(t, http.StatusInternalServerError, StatusCode(err))
	assert.True(t, sess.Valid())
}

func TestCallsWithoutSessionMakeNoRequest(t *testing.T) {
	f := newFakeService(t)
	c := f.client()
	ctx := context.Background()

	invalid := testSession()
	invalid.invalidate()

	for name, sess := range map[string]*Session{"nil": nil, "invalidated": invalid} {
		t.Run(name, func(t *testing.T) {
			_, err := c.ListBreeds(ctx, sess)
			assert.ErrorIs(t, err, ErrNoSession)
			assert.True(t, IsAuth(err))

			_, err = c.Search(ctx, sess, domain.SearchParams{})
			assert.ErrorIs(t, err, ErrNoSession)

			_, err = c.FetchDogs(ctx, sess, []string{"d1"})
			assert.ErrorIs(t, err, ErrNoSession)

			_, err = c.Match(ctx, sess, []string{"d1"})
			assert.ErrorIs(t, err, ErrNoSession)

			err = c.Logout(ctx, sess)
			assert.ErrorIs(t, err, ErrNoSession)
			assert.True(t, IsUnauthorized(err))
		})
	}
	assert.Zero(t, f.hits.Load())
}

func TestListBreeds(t *testing.T) {
	f := newFakeService(t)
	f.mux.HandleFunc("GET /dogs/breeds", func(w http.ResponseWriter, r *http.Request) {
		requireCookie(t, r)
		writeJSON(w, []string{"Beagle", "Poodle"})
	})

	breeds, err := f.client().ListBreeds(context.Background(), testSession())

	require.NoError(t, err)
	assert.Equal(t, []string{"Beagle", "Poodle"}, breeds)
}

func TestListBreedsServerErrorIsServiceError(t *testing.T) {
	f := newFakeService(t)
	f.mux.HandleFunc("GET /dogs/breeds", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := f.client().ListBreeds(context.Background(), testSession())

	require.Error(t, err)
	assert.True(t, IsService(err))
	assert.False(t, IsAuth(err))
	assert.True(t, IsUnauthorized(err))
}

func TestSearchEncodesQuery(t *testing.T) {
	f := newFakeService(t)
	var got map[string][]string
	var rawQuery string
	f.mux.HandleFunc("GET /dogs/search", func(w http.ResponseWriter, r *http.Request) {
		requireCookie(t, r)
		got = r.URL.Query()
		rawQuery = r.URL.RawQuery
		writeJSON(w, map[string]any{"resultIds": []string{"d1", "d2"}, "total": 42, "next": "/dogs/search?from=20"})
	})

	params := domain.SearchParams{
		Breeds: []string{"Beagle", "Poodle"},
		AgeMin: domain.IntPtr(2),
		Size:   domain.IntPtr(20),
		From:   domain.IntPtr(0),
		Sort:   "breed:desc",
	}
	result, err := f.client().Search(context.Background(), testSession(), params)

	require.NoError(t, err)
	want := map[string][]string{
		"breeds[]": {"Beagle", "Poodle"},
		"ageMin":   {"2"},
		"size":     {"20"},
		"from":     {"0"},
		"sort":     {"breed:desc"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("query mismatch (-want +got):\n%s", diff)
	}
	assert.Contains(t, rawQuery, "breeds%5B%5D=Beagle&breeds%5B%5D=Poodle")
	assert.Equal(t, domain.SearchResult{ResultIDs: []string{"d1", "d2"}, Total: 42, Next: "/dogs/search?from=20"}, result)
}

func TestSearchQueryOmitsUnset(t *testing.T) {
	assert.Empty(t, SearchQuery(domain.SearchParams{}))

	q := SearchQuery(domain.SearchParams{ZipCodes: []string{"10001", "10002"}, AgeMax: domain.IntPtr(0)})
	assert.Equal(t, []string{"10001", "10002"}, q["zipCodes[]"])
	assert.Equal(t, "0", q.Get("ageMax"))
	assert.NotContains(t, q, "breeds[]")
	assert.NotContains(t, q, "sort")
}

func TestFetchDogs(t *testing.T) {
	f := newFakeService(t)
	f.mux.HandleFunc("POST /dogs", func(w http.ResponseWriter, r *http.Request) {
		requireCookie(t, r)
		var ids []string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&ids))
		assert.Equal(t, []string{"d1", "d2"}, ids)
		writeJSON(w, []map[string]any{
			{"id": "d1", "img": "https://img/1.jpg", "name": "Rex", "age": 3, "zip_code": "10001", "breed": "Beagle"},
			{"id": "d2", "img": "https://img/2.jpg", "name": "Bo", "age": 1, "zip_code": "10002", "breed": "Poodle"},
		})
	})

	dogs, err := f.client().FetchDogs(context.Background(), testSession(), []string{"d1", "d2"})

	require.NoError(t, err)
	require.Len(t, dogs, 2)
	assert.Equal(t, domain.Dog{ID: "d1", Img: "https://img/1.jpg", Name: "Rex", Age: 3, ZipCode: "10001", Breed: "Beagle"}, dogs[0])
	assert.Equal(t, "Bo", dogs[1].Name)
}

func TestFetchDogsEmptyMakesNoRequest(t *testing.T) {
	f := newFakeService(t)

	dogs, err := f.client().FetchDogs(context.Background(), testSession(), nil)

	require.NoError(t, err)
	assert.NotNil(t, dogs)
	assert.Empty(t, dogs)
	assert.Zero(t, f.hits.Load())
}

func TestMatch(t *testing.T) {
	f := newFakeService(t)
	f.mux.HandleFunc("POST /dogs/match", func(w http.ResponseWriter, r *http.Request) {
		var ids []string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&ids))
		assert.Equal(t, []string{"d1", "d3"}, ids)
		writeJSON(w, map[string]string{"match": "d3"})
	})

	result, err := f.client().Match(context.Background(), testSession(), []string{"d1", "d3"})

	require.NoError(t, err)
	assert.Equal(t, "d3", result.Match)
}

func TestMatchEmptyMakesNoRequest(t *testing.T) {
	f := newFakeService(t)

	_, err := f.client().Match(context.Background(), testSession(), []string{})

	require.Error(t, err)
	assert.True(t, IsService(err))
	assert.ErrorIs(t, err, ErrNoCandidates)
	assert.Zero(t, f.hits.Load())
}

func TestRequestTimeout(t *testing.T) {
	f := newFakeService(t)
	release := make(chan struct{})
	t.Cleanup(func() { close(release) })
	f.mux.HandleFunc("GET /dogs/breeds", func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	})

	c := New(Options{BaseURL: f.URL, Timeout: 50 * time.Millisecond})
	_, err := c.ListBreeds(context.Background(), testSession())

	require.Error(t, err)
	assert.True(t, IsService(err))
}

func TestErrorsUnwrap(t *testing.T) {
	cause := errors.New("boom")
	authErr := &AuthError{Op: "login", StatusCode: 403, Err: cause}
	svcErr := &ServiceError{Op: "search", Err: cause}

	assert.ErrorIs(t, authErr, cause)
	assert.ErrorIs(t, svcErr, cause)
	assert.Equal(t, "login: status 403: boom", authErr.Error())
	assert.Equal(t, "search: boom", svcErr.Error())
	assert.Equal(t, 403, StatusCode(authErr))
	assert.Zero(t, StatusCode(cause))
}
