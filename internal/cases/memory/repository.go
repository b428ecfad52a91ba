// Package memory provides an in-process implementation of the cases repository.
package memory

import (
	"context"
	"strconv"
	"sync"

	"github.com/aiharmwatch/harmwatch/internal/cases"
	"github.com/aiharmwatch/harmwatch/internal/domain"
)

// Repository implements the cases.Repository interface on a slice
// ordered most-recent-first. Returned cases are copies.
type Repository struct {
	mu    sync.Mutex
	cases []domain.Case
}

// NewRepository creates a repository holding the given cases in order.
func NewRepository(initial []domain.Case) *Repository {
	stored := make([]domain.Case, len(initial))
	copy(stored, initial)
	return &Repository{cases: stored}
}

// List returns up to limit cases starting at offset.
// An offset past the end yields an empty slice.
func (r *Repository) List(_ context.Context, offset, limit int) ([]domain.Case, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	total := len(r.cases)
	if offset < 0 {
		offset = 0
	}
	if offset >= total || limit < 1 {
		return make([]domain.Case, 0), total, nil
	}

	end := offset + min(limit, total-offset)
	out := make([]domain.Case, end-offset)
	copy(out, r.cases[offset:end])

	return out, total, nil
}

// IncrementViews bumps the view counter of the case with the given ID.
func (r *Repository) IncrementViews(_ context.Context, id string) (*domain.Case, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.cases {
		if r.cases[i].ID == id {
			r.cases[i].Views++
			c := r.cases[i]
			return &c, nil
		}
	}
	return nil, cases.ErrCaseNotFound
}

// Create assigns the next sequential ID and inserts the case at the front.
// IDs derive from the collection size, which never shrinks.
func (r *Repository) Create(_ context.Context, c *domain.Case) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	c.ID = strconv.Itoa(len(r.cases) + 1)
	r.cases = append([]domain.Case{*c}, r.cases...)
	return nil
}

// Count returns the number of stored cases.
func (r *Repository) Count(_ context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.cases), nil
}
