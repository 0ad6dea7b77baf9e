package memory

import (
	"context"
	"sync"
	"testing"

	"github.com/clinicadelvalle/clinic-api/internal/core/domain"
)

func TestTodoRepository_Seeds(t *testing.T) {
	repo := NewTodoRepository()

	todos, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(todos) != 3 {
		t.Fatalf("expected 3 seeded items, got %d", len(todos))
	}
	if todos[0].ID != 1 || todos[0].Title != "Configurar base de datos" {
		t.Errorf("unexpected first seed %+v", todos[0])
	}
}

func TestTodoRepository_CreateAssignsSequentialIDs(t *testing.T) {
	repo := NewTodoRepository()

	a := &domain.Todo{Title: "a"}
	b := &domain.Todo{Title: "b"}
	if err := repo.Create(context.Background(), a); err != nil {
		t.Fatal(err)
	}
	if err := repo.Create(context.Background(), b); err != nil {
		t.Fatal(err)
	}
	if a.ID != 4 || b.ID != 5 {
		t.Errorf("ids = %d, %d; want 4, 5", a.ID, b.ID)
	}
}

func TestTodoRepository_ListReturnsCopies(t *testing.T) {
	repo := NewTodoRepository()

	todos, _ := repo.List(context.Background())
	todos[0].Title = "mutado"

	again, _ := repo.List(context.Background())
	if again[0].Title == "mutado" {
		t.Fatal("List must not expose internal state")
	}
}

func TestTodoRepository_UpdateMissing(t *testing.T) {
	repo := NewTodoRepository()
	err := repo.Update(context.Background(), &domain.Todo{ID: 99, Title: "x"})
	if err != domain.ErrTodoNotFound {
		t.Fatalf("expected ErrTodoNotFound, got %v", err)
	}
}

func TestTodoRepository_Delete(t *testing.T) {
	repo := NewTodoRepository()

	if err := repo.Delete(context.Background(), 2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := repo.FindByID(context.Background(), 2); err != domain.ErrTodoNotFound {
		t.Fatalf("deleted item still present: %v", err)
	}
	if err := repo.Delete(context.Background(), 2); err != domain.ErrTodoNotFound {
		t.Fatalf("expected ErrTodoNotFound on second delete, got %v", err)
	}
}

func TestTodoRepository_ConcurrentCreates(t *testing.T) {
	repo := NewTodoRepository()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = repo.Create(context.Background(), &domain.Todo{Title: "concurrente"})
		}()
	}
	wg.Wait()

	todos, _ := repo.List(context.Background())
	if len(todos) != 53 {
		t.Fatalf("expected 53 items after concurrent creates, got %d", len(todos))
	}

	seen := make(map[int64]bool)
	for _, todo := range todos {
		if seen[todo.ID] {
			t.Fatalf("duplicate id %d", todo.ID)
		}
		seen[todo.ID] = true
	}
}
