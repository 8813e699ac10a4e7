package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linity/todo-api/internal/core/domain"
)

func TestAuthRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO users").
		WithArgs("alice", "hashed-pw").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))

	repo := NewAuthRepository(db)
	created, err := repo.Create(context.Background(), &domain.User{Username: "alice", PasswordHash: "hashed-pw"})
	require.NoError(t, err)

	assert.Equal(t, int64(7), created.ID)
	assert.Equal(t, "alice", created.Username)
	assert.Equal(t, "hashed-pw", created.PasswordHash)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthRepository_Create_Duplicate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO users").
		WithArgs("alice", "hashed-pw").
		WillReturnError(&pq.Error{Code: "23505", Constraint: "users_username_key"})

	repo := NewAuthRepository(db)
	_, err = repo.Create(context.Background(), &domain.User{Username: "alice", PasswordHash: "hashed-pw"})

	assert.True(t, errors.Is(err, domain.ErrUserExists))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthRepository_FindByUsername(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "username", "password"}).
		AddRow(int64(3), "bob", "stored-hash")
	mock.ExpectQuery("SELECT id, username, password FROM users").
		WithArgs("bob").
		WillReturnRows(rows)

	repo := NewAuthRepository(db)
	user, err := repo.FindByUsername(context.Background(), "bob")
	require.NoError(t, err)

	assert.Equal(t, int64(3), user.ID)
	assert.Equal(t, "stored-hash", user.PasswordHash)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthRepository_FindByUsername_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT id, username, password FROM users").
		WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "password"}))

	repo := NewAuthRepository(db)
	_, err = repo.FindByUsername(context.Background(), "ghost")

	assert.True(t, errors.Is(err, domain.ErrUserNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}
