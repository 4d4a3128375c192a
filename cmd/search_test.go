package cmd

import (
	"errors"
	"testing"

	"github.com/cristianoliveira/pawmatch/internal/api"
	"github.com/cristianoliveira/pawmatch/internal/domain"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// expectSearch records the params of the next Search and answers with ids/total.
func expectSearch(env *testEnv, ids []string, total int, got *domain.SearchParams) {
	env.svc.On("Search", mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			*got = args.Get(2).(domain.SearchParams)
		}).
		Return(domain.SearchResult{ResultIDs: ids, Total: total}, nil).Once()
}

func TestSearchBuildsParamsFromFlags(t *testing.T) {
	env := newTestEnv(t, "", "")
	env.saveSession(t)
	var got domain.SearchParams
	expectSearch(env, []string{"d1", "d2"}, 45, &got)
	env.svc.On("FetchDogs", mock.Anything, mock.Anything, []string{"d1", "d2"}).Return(sampleDogs(), nil)

	out, err := run(NewSearchCmd(env.deps),
		"--breed", "Beagle", "--breed", "Boxer",
		"--age-min", "2", "--age-max", "5",
		"--sort", "desc", "--page", "2")
	require.NoError(t, err)

	want := domain.SearchParams{
		Breeds: []string{"Beagle", "Boxer"},
		AgeMin: domain.IntPtr(2),
		AgeMax: domain.IntPtr(5),
		Size:   domain.IntPtr(domain.PageSize),
		From:   domain.IntPtr(20),
		Sort:   "breed:desc",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("search params mismatch (-want +got):\n%s", diff)
	}
	assert.Contains(t, out, "Rex (Beagle, age 3)")
	assert.Contains(t, out, "Bo (Boxer, age 7)")
	assert.Contains(t, env.console.String(), "Page 2 of 3 (45 dogs)")
}

func TestSearchDefaultsOmitFilters(t *testing.T) {
	env := newTestEnv(t, "", "")
	env.saveSession(t)
	var got domain.SearchParams
	expectSearch(env, []string{"d1"}, 1, &got)
	env.svc.On("FetchDogs", mock.Anything, mock.Anything, []string{"d1"}).Return(sampleDogs()[:1], nil)

	_, err := run(NewSearchCmd(env.deps))
	require.NoError(t, err)

	want := domain.SearchParams{
		Size: domain.IntPtr(domain.PageSize),
		From: domain.IntPtr(0),
		Sort: "breed:asc",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("search params mismatch (-want +got):\n%s", diff)
	}
}

func TestSearchKeepsZeroAge(t *testing.T) {
	env := newTestEnv(t, "", "")
	env.saveSession(t)
	var got domain.SearchParams
	expectSearch(env, []string{"d1"}, 1, &got)
	env.svc.On("FetchDogs", mock.Anything, mock.Anything, mock.Anything).Return(sampleDogs()[:1], nil)

	_, err := run(NewSearchCmd(env.deps), "--age-min", "0")
	require.NoError(t, err)

	require.NotNil(t, got.AgeMin)
	assert.Equal(t, 0, *got.AgeMin)
	assert.Nil(t, got.AgeMax)
}

func TestSearchNoResults(t *testing.T) {
	env := newTestEnv(t, "", "")
	env.saveSession(t)
	var got domain.SearchParams
	expectSearch(env, []string{}, 0, &got)
	env.svc.On("FetchDogs", mock.Anything, mock.Anything, []string{}).Return([]domain.Dog{}, nil)

	out, err := run(NewSearchCmd(env.deps))
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Contains(t, env.console.String(), "No dogs found")
}

func TestSearchJSONHasNoFooter(t *testing.T) {
	env := newTestEnv(t, "", "")
	env.saveSession(t)
	var got domain.SearchParams
	expectSearch(env, []string{"d1"}, 1, &got)
	env.svc.On("FetchDogs", mock.Anything, mock.Anything, mock.Anything).Return(sampleDogs()[:1], nil)

	out, err := run(NewSearchCmd(env.deps), "--format", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"name": "Rex"`)
	assert.NotContains(t, env.console.String(), "Page 1")
}

func TestSearchFailure(t *testing.T) {
	env := newTestEnv(t, "", "")
	env.saveSession(t)
	env.svc.On("Search", mock.Anything, mock.Anything, mock.Anything).
		Return(domain.SearchResult{}, &api.ServiceError{Op: "search", StatusCode: 500, Err: errors.New("500 Internal Server Error")})

	_, err := run(NewSearchCmd(env.deps))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load dogs")
	assert.True(t, api.IsService(err))
	env.svc.AssertNotCalled(t, "FetchDogs", mock.Anything, mock.Anything, mock.Anything)
}

func TestSearchRejectsInvalidFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "page zero", args: []string{"--page", "0"}},
		{name: "unknown sort", args: []string{"--sort", "sideways"}},
		{name: "negative age-min", args: []string{"--age-min", "-1"}},
		{name: "negative age-max", args: []string{"--age-max", "-3"}},
		{name: "unknown format", args: []string{"--format", "xml"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t, "Ada", "ada@example.com")

			_, err := run(NewSearchCmd(env.deps), tt.args...)
			require.Error(t, err)
			env.svc.AssertNotCalled(t, "Login", mock.Anything, mock.Anything, mock.Anything)
			env.svc.AssertNotCalled(t, "Search", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}
