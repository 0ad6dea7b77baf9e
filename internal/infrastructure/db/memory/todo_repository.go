package memory

import (
	"context"
	"sync"

	"github.com/clinicadelvalle/clinic-api/internal/core/domain"
)

// TodoRepository is the mutex-guarded in-process list behind the demo todo
// endpoints. State is lost on restart.
type TodoRepository struct {
	mu     sync.Mutex
	items  []*domain.Todo
	nextID int64
}

// NewTodoRepository returns a repository seeded with the demo items.
func NewTodoRepository() *TodoRepository {
	return &TodoRepository{
		items: []*domain.Todo{
			{ID: 1, Title: "Configurar base de datos"},
			{ID: 2, Title: "Crear componentes Vue"},
			{ID: 3, Title: "Diseñar endpoints"},
		},
		nextID: 4,
	}
}

func (r *TodoRepository) List(_ context.Context) ([]*domain.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	list := make([]*domain.Todo, len(r.items))
	for i, t := range r.items {
		clone := *t
		list[i] = &clone
	}
	return list, nil
}

func (r *TodoRepository) FindByID(_ context.Context, id int64) (*domain.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, t := range r.items {
		if t.ID == id {
			clone := *t
			return &clone, nil
		}
	}
	return nil, domain.ErrTodoNotFound
}

func (r *TodoRepository) Create(_ context.Context, t *domain.Todo) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	t.ID = r.nextID
	r.nextID++

	clone := *t
	r.items = append(r.items, &clone)
	return nil
}

func (r *TodoRepository) Update(_ context.Context, t *domain.Todo) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, existing := range r.items {
		if existing.ID == t.ID {
			clone := *t
			r.items[i] = &clone
			return nil
		}
	}
	return domain.ErrTodoNotFound
}

func (r *TodoRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, existing := range r.items {
		if existing.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return domain.ErrTodoNotFound
}
