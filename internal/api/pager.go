package api

import (
	"context"

	"github.com/cristianoliveira/pawmatch/internal/domain"
)

// Page is one hydrated page of search results.
type Page struct {
	Dogs       []domain.Dog
	Total      int
	TotalPages int
	Next       string
	Prev       string
}

// Pager composes search and hydration into single operations.
type Pager struct {
	svc Service
}

// NewPager returns a Pager backed by svc.
func NewPager(svc Service) *Pager {
	return &Pager{svc: svc}
}

// FetchPage searches with params and hydrates the returned ids in order.
// On error the returned Page is empty.
func (p *Pager) FetchPage(ctx context.Context, sess *Session, params domain.SearchParams) (Page, error) {
	result, err := p.svc.Search(ctx, sess, params)
	if err != nil {
		return Page{}, err
	}
	dogs, err := p.svc.FetchDogs(ctx, sess, result.ResultIDs)
	if err != nil {
		return Page{}, err
	}
	return Page{
		Dogs:       dogs,
		Total:      result.Total,
		TotalPages: domain.TotalPages(result.Total),
		Next:       result.Next,
		Prev:       result.Prev,
	}, nil
}

// MatchDog asks for a match among ids and hydrates the chosen dog.
func (p *Pager) MatchDog(ctx context.Context, sess *Session, ids []string) (domain.Dog, error) {
	const op = "match"
	result, err := p.svc.Match(ctx, sess, ids)
	if err != nil {
		return domain.Dog{}, err
	}
	if result.Match == "" {
		return domain.Dog{}, &ServiceError{Op: op, Err: ErrMatchNotFound}
	}
	dogs, err := p.svc.FetchDogs(ctx, sess, []string{result.Match})
	if err != nil {
		return domain.Dog{}, err
	}
	if len(dogs) == 0 {
		return domain.Dog{}, &ServiceError{Op: op, Err: ErrMatchNotFound}
	}
	return dogs[0], nil
}
