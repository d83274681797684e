package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUsersWithMock(t *testing.T) (*Users, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })
	return NewUsers(sqlx.NewDb(mockDB, "sqlmock")), mock
}

func TestUsersCreate_Success(t *testing.T) {
	users, mock := newUsersWithMock(t)

	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs("Alice", "alice@example.com", "$2a$10$hash").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(1)))

	u, err := users.Create(context.Background(), "Alice", "alice@example.com", "$2a$10$hash")
	require.NoError(t, err)

	assert.Equal(t, int64(1), u.ID)
	assert.Equal(t, "Alice", u.Name)
	assert.Equal(t, "alice@example.com", u.Email)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUsersCreate_DuplicateEmail(t *testing.T) {
	users, mock := newUsersWithMock(t)

	mock.ExpectQuery(`INSERT INTO users`).
		WillReturnError(errors.New(`duplicate key value violates unique constraint "users_email_key"`))

	_, err := users.Create(context.Background(), "Alice", "alice@example.com", "h")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db error")
}

func TestUsersFindByEmail_Found(t *testing.T) {
	users, mock := newUsersWithMock(t)

	rows := sqlmock.NewRows([]string{"id", "name", "email", "password"}).
		AddRow(int64(3), "Bob", "bob@example.com", "$2a$10$hash")
	mock.ExpectQuery(`SELECT id, name, email, password FROM users WHERE email=\$1`).
		WithArgs("bob@example.com").
		WillReturnRows(rows)

	u, err := users.FindByEmail(context.Background(), "bob@example.com")
	require.NoError(t, err)

	assert.Equal(t, int64(3), u.ID)
	assert.Equal(t, "$2a$10$hash", u.Password)
}

func TestUsersFindByEmail_NotFound(t *testing.T) {
	users, mock := newUsersWithMock(t)

	mock.ExpectQuery(`SELECT id, name, email, password FROM users WHERE email=\$1`).
		WithArgs("ghost@example.com").
		WillReturnError(sql.ErrNoRows)

	_, err := users.FindByEmail(context.Background(), "ghost@example.com")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUsersFindByID_NotFound(t *testing.T) {
	users, mock := newUsersWithMock(t)

	mock.ExpectQuery(`SELECT id, name, email, password FROM users WHERE id=\$1`).
		WithArgs(int64(99)).
		WillReturnError(sql.ErrNoRows)

	_, err := users.FindByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrNotFound)
}
