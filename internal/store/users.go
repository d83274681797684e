package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/guardapp/contacts-api/internal/models"
)

type Users struct {
	db *sqlx.DB
}

func NewUsers(db *sqlx.DB) *Users {
	return &Users{db: db}
}

// Create inserts a user. Email uniqueness is enforced by the schema; a
// duplicate surfaces as a wrapped driver error, not a distinct kind.
func (s *Users) Create(ctx context.Context, name, email, passwordHash string) (*models.User, error) {
	query := `
		INSERT INTO users (name, email, password)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	user := &models.User{Name: name, Email: email, Password: passwordHash}

	err := s.db.QueryRowxContext(ctx, query, name, email, passwordHash).Scan(&user.ID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

func (s *Users) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User

	err := s.db.GetContext(ctx, &user, `SELECT id, name, email, password FROM users WHERE email=$1`, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return &user, nil
}

func (s *Users) FindByID(ctx context.Context, id int64) (*models.User, error) {
	var user models.User

	err := s.db.GetContext(ctx, &user, `SELECT id, name, email, password FROM users WHERE id=$1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return &user, nil
}
