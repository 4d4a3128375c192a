package api

import (
	"context"

	"github.com/cristianoliveira/pawmatch/internal/domain"
	"github.com/stretchr/testify/mock"
)

// MockService is a testify mock of Service.
//
// Example usage:
//
//	svc := new(MockService)
//	svc.On("ListBreeds", mock.Anything, sess).Return([]string{"Beagle"}, nil)
//
//	breeds, err := svc.ListBreeds(ctx, sess)
//	assert.NoError(t, err)
//	svc.AssertExpectations(t)
type MockService struct {
	mock.Mock
}

var _ Service = (*MockService)(nil)

// Login returns a mocked session.
//
//	mock.On("Login", mock.Anything, "Ada", "ada@example.com").Return(sess, nil)
func (m *MockService) Login(ctx context.Context, name, email string) (*Session, error) {
	args := m.Called(ctx, name, email)
	sess, _ := args.Get(0).(*Session)
	return sess, args.Error(1)
}

func (m *MockService) Logout(ctx context.Context, sess *Session) error {
	args := m.Called(ctx, sess)
	return args.Error(0)
}

func (m *MockService) ListBreeds(ctx context.Context, sess *Session) ([]string, error) {
	args := m.Called(ctx, sess)
	breeds, _ := args.Get(0).([]string)
	return breeds, args.Error(1)
}

// Search returns a mocked search result. Match params with mock.MatchedBy
// when only part of them matters.
func (m *MockService) Search(ctx context.Context, sess *Session, params domain.SearchParams) (domain.SearchResult, error) {
	args := m.Called(ctx, sess, params)
	return args.Get(0).(domain.SearchResult), args.Error(1)
}

func (m *MockService) FetchDogs(ctx context.Context, sess *Session, ids []string) ([]domain.Dog, error) {
	args := m.Called(ctx, sess, ids)
	dogs, _ := args.Get(0).([]domain.Dog)
	return dogs, args.Error(1)
}

func (m *MockService) Match(ctx context.Context, sess *Session, ids []string) (domain.MatchResult, error) {
	args := m.Called(ctx, sess, ids)
	return args.Get(0).(domain.MatchResult), args.Error(1)
}
