package ports

import (
	"context"

	"github.com/clinicadelvalle/clinic-api/internal/core/domain"
)

// TodoRepository defines the interface for the demo todo list. The in-memory
// implementation must be safe for concurrent use.
type TodoRepository interface {
	List(ctx context.Context) ([]*domain.Todo, error)
	// FindByID returns domain.ErrTodoNotFound when no item matches.
	FindByID(ctx context.Context, id int64) (*domain.Todo, error)
	// Create assigns the next sequential ID and appends the item.
	Create(ctx context.Context, t *domain.Todo) error
	Update(ctx context.Context, t *domain.Todo) error
	Delete(ctx context.Context, id int64) error
}
