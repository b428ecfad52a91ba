package cases

import (
	"context"

	"github.com/aiharmwatch/harmwatch/internal/domain"
)

// Repository defines the interface for case storage.
// Implementations keep cases ordered most-recent-first.
type Repository interface {
	// List returns up to limit cases starting at offset, plus the total count.
	List(ctx context.Context, offset, limit int) ([]domain.Case, int, error)
	// IncrementViews bumps the view counter of the case and returns it.
	IncrementViews(ctx context.Context, id string) (*domain.Case, error)
	// Create assigns an ID to the case and inserts it at the front.
	Create(ctx context.Context, c *domain.Case) error
	Count(ctx context.Context) (int, error)
}
