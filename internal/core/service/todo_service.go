package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/linity/todo-api/internal/core/domain"
	"github.com/linity/todo-api/internal/core/ports"
)

// TodoService orchestrates ownership-scoped todo operations. The heavy
// lifting (owner resolution, filtering, partial updates) happens in the
// repository as single atomic statements; this layer adds logging and keeps
// the transport code away from persistence details.
type TodoService struct {
	repo   ports.TodoRepository
	logger zerolog.Logger
}

func NewTodoService(repo ports.TodoRepository, logger zerolog.Logger) *TodoService {
	return &TodoService{repo: repo, logger: logger}
}

func (s *TodoService) List(ctx context.Context, owner string, filter ports.TodoFilter) ([]*domain.Todo, error) {
	todos, err := s.repo.List(ctx, owner, filter)
	if err != nil {
		s.logger.Error().Err(err).Str("owner", owner).Msg("failed to list todos")
		return nil, err
	}
	return todos, nil
}

func (s *TodoService) Create(ctx context.Context, owner, title string, completed bool) (*domain.Todo, error) {
	todo, err := s.repo.Create(ctx, owner, title, completed)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			// token was valid at issuance but the account is gone
			s.logger.Warn().Str("owner", owner).Msg("todo create for missing account")
			return nil, err
		}
		s.logger.Error().Err(err).Str("owner", owner).Msg("failed to create todo")
		return nil, err
	}

	s.logger.Info().Int64("todo_id", todo.ID).Str("owner", owner).Msg("todo created")
	return todo, nil
}

func (s *TodoService) Get(ctx context.Context, owner string, id int64) (*domain.Todo, error) {
	todo, err := s.repo.Get(ctx, owner, id)
	if err != nil {
		if !errors.Is(err, domain.ErrTodoNotFound) {
			s.logger.Error().Err(err).Str("owner", owner).Int64("todo_id", id).Msg("failed to get todo")
		}
		return nil, err
	}
	return todo, nil
}

func (s *TodoService) Update(ctx context.Context, owner string, id int64, patch ports.TodoPatch) (*domain.Todo, error) {
	todo, err := s.repo.Update(ctx, owner, id, patch)
	if err != nil {
		if !errors.Is(err, domain.ErrTodoNotFound) {
			s.logger.Error().Err(err).Str("owner", owner).Int64("todo_id", id).Msg("failed to update todo")
		}
		return nil, err
	}
	return todo, nil
}

func (s *TodoService) Delete(ctx context.Context, owner string, id int64) error {
	if err := s.repo.Delete(ctx, owner, id); err != nil {
		if !errors.Is(err, domain.ErrTodoNotFound) {
			s.logger.Error().Err(err).Str("owner", owner).Int64("todo_id", id).Msg("failed to delete todo")
		}
		return err
	}

	s.logger.Info().Int64("todo_id", id).Str("owner", owner).Msg("todo deleted")
	return nil
}
