package ports

import (
	"context"

	"github.com/linity/todo-api/internal/core/domain"
)

// TodoFilter carries the optional list constraints. When both are present
// they compose with AND semantics; an unset field imposes no constraint.
type TodoFilter struct {
	Completed *bool
	Search    string // case-insensitive substring match on title
}

// TodoPatch carries a partial update. Nil fields keep the stored value.
type TodoPatch struct {
	Title     *string
	Completed *bool
}

// TodoRepository defines ownership-scoped persistence for todos. Every
// operation is scoped to the owner's username; a todo belonging to another
// user is indistinguishable from a missing one (domain.ErrTodoNotFound).
type TodoRepository interface {
	List(ctx context.Context, owner string, filter TodoFilter) ([]*domain.Todo, error)
	// Create resolves owner to its user id and inserts the row. Returns
	// domain.ErrUserNotFound when the account no longer exists.
	Create(ctx context.Context, owner, title string, completed bool) (*domain.Todo, error)
	Get(ctx context.Context, owner string, id int64) (*domain.Todo, error)
	Update(ctx context.Context, owner string, id int64, patch TodoPatch) (*domain.Todo, error)
	Delete(ctx context.Context, owner string, id int64) error
}
