package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/linity/todo-api/internal/core/domain"
	"github.com/linity/todo-api/internal/core/ports"
)

// TodoRepository persists todos scoped to their owning user. Every query
// joins against users on the authenticated username, so a row owned by
// someone else behaves exactly like a missing row. Each operation is a
// single statement; row-level atomicity is all the consistency this model
// needs.
type TodoRepository struct {
	db *sql.DB
}

func NewTodoRepository(db *sql.DB) *TodoRepository {
	return &TodoRepository{db: db}
}

// List returns the owner's todos matching filter. Filters compose with AND;
// search is a case-insensitive substring match on the title. No ORDER BY:
// callers get store-natural order.
func (r *TodoRepository) List(ctx context.Context, owner string, filter ports.TodoFilter) ([]*domain.Todo, error) {
	query := `SELECT t.id, t.title, t.completed, t.owner_id
		FROM todos t
		JOIN users u ON u.id = t.owner_id
		WHERE u.username = $1`
	args := []any{owner}

	if filter.Completed != nil {
		args = append(args, *filter.Completed)
		query += fmt.Sprintf(" AND t.completed = $%d", len(args))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		query += fmt.Sprintf(" AND t.title ILIKE $%d", len(args))
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list todos: %w", err)
	}
	defer rows.Close()

	todos := make([]*domain.Todo, 0)
	for rows.Next() {
		var t domain.Todo
		if err := rows.Scan(&t.ID, &t.Title, &t.Completed, &t.OwnerID); err != nil {
			return nil, fmt.Errorf("scan todo: %w", err)
		}
		todos = append(todos, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list todos: %w", err)
	}
	return todos, nil
}

// Create resolves the owner to a user id and inserts the row in one
// statement. Zero rows back means the account vanished after the token was
// issued.
func (r *TodoRepository) Create(ctx context.Context, owner, title string, completed bool) (*domain.Todo, error) {
	const query = `INSERT INTO todos (title, completed, owner_id)
		SELECT $1, $2, id FROM users WHERE username = $3
		RETURNING id, title, completed, owner_id`

	var t domain.Todo
	err := r.db.QueryRowContext(ctx, query, title, completed, owner).
		Scan(&t.ID, &t.Title, &t.Completed, &t.OwnerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("insert todo: %w", err)
	}
	return &t, nil
}

func (r *TodoRepository) Get(ctx context.Context, owner string, id int64) (*domain.Todo, error) {
	const query = `SELECT t.id, t.title, t.completed, t.owner_id
		FROM todos t
		JOIN users u ON u.id = t.owner_id
		WHERE t.id = $1 AND u.username = $2`

	var t domain.Todo
	err := r.db.QueryRowContext(ctx, query, id, owner).
		Scan(&t.ID, &t.Title, &t.Completed, &t.OwnerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTodoNotFound
		}
		return nil, fmt.Errorf("get todo: %w", err)
	}
	return &t, nil
}

// Update applies a partial update: nil patch fields arrive as SQL NULL and
// COALESCE keeps the stored value. An empty patch returns the row unchanged.
func (r *TodoRepository) Update(ctx context.Context, owner string, id int64, patch ports.TodoPatch) (*domain.Todo, error) {
	const query = `UPDATE todos AS t
		SET title = COALESCE($1, t.title), completed = COALESCE($2, t.completed)
		FROM users u
		WHERE t.id = $3 AND u.id = t.owner_id AND u.username = $4
		RETURNING t.id, t.title, t.completed, t.owner_id`

	var t domain.Todo
	err := r.db.QueryRowContext(ctx, query, patch.Title, patch.Completed, id, owner).
		Scan(&t.ID, &t.Title, &t.Completed, &t.OwnerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTodoNotFound
		}
		return nil, fmt.Errorf("update todo: %w", err)
	}
	return &t, nil
}

func (r *TodoRepository) Delete(ctx context.Context, owner string, id int64) error {
	const query = `DELETE FROM todos AS t
		USING users u
		WHERE t.id = $1 AND u.id = t.owner_id AND u.username = $2`

	res, err := r.db.ExecContext(ctx, query, id, owner)
	if err != nil {
		return fmt.Errorf("delete todo: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete todo: %w", err)
	}
	if affected == 0 {
		return domain.ErrTodoNotFound
	}
	return nil
}
