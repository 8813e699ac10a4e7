package ports

import (
	"context"

	"github.com/linity/todo-api/internal/core/domain"
)

// TodoService defines use-case operations over a user's todos. The owner is
// always the authenticated identity resolved by the session middleware.
type TodoService interface {
	List(ctx context.Context, owner string, filter TodoFilter) ([]*domain.Todo, error)
	Create(ctx context.Context, owner, title string, completed bool) (*domain.Todo, error)
	Get(ctx context.Context, owner string, id int64) (*domain.Todo, error)
	Update(ctx context.Context, owner string, id int64, patch TodoPatch) (*domain.Todo, error)
	Delete(ctx context.Context, owner string, id int64) error
}
