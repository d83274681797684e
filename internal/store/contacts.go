package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/guardapp/contacts-api/internal/models"
)

type Contacts struct {
	db *sqlx.DB
}

func NewContacts(db *sqlx.DB) *Contacts {
	return &Contacts{db: db}
}

// ContactPatch carries the fields of a partial update; nil means "leave as is".
type ContactPatch struct {
	Name      *string
	Email     *string
	Telephone *string
	Image     *string
}

func (p ContactPatch) empty() bool {
	return p.Name == nil && p.Email == nil && p.Telephone == nil && p.Image == nil
}

func (s *Contacts) Create(ctx context.Context, name, email, telephone, imagePath string) (*models.Contact, error) {
	query := `
		INSERT INTO contacts (name, email, telephone, image)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	contact := &models.Contact{Name: name, Email: email, Telephone: telephone, Image: imagePath}

	err := s.db.QueryRowxContext(ctx, query, name, email, telephone, imagePath).Scan(&contact.ID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return contact, nil
}

func (s *Contacts) FindByID(ctx context.Context, id int64) (*models.Contact, error) {
	var contact models.Contact

	err := s.db.GetContext(ctx, &contact, `SELECT id, name, email, telephone, image FROM contacts WHERE id=$1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return &contact, nil
}

// FindAll returns every contact. No pagination: the caller gets the whole
// table in id order.
func (s *Contacts) FindAll(ctx context.Context) ([]models.Contact, error) {
	contacts := []models.Contact{}

	err := s.db.SelectContext(ctx, &contacts, `SELECT id, name, email, telephone, image FROM contacts ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return contacts, nil
}

// Update applies the non-nil fields of patch and returns the updated row.
// An empty patch is a caller bug; handlers validate before calling.
func (s *Contacts) Update(ctx context.Context, id int64, patch ContactPatch) (*models.Contact, error) {
	if patch.empty() {
		return nil, errors.New("empty patch")
	}

	sets := []string{}
	args := []interface{}{}
	n := 1

	add := func(col string, v *string) {
		if v != nil {
			sets = append(sets, fmt.Sprintf("%s=$%d", col, n))
			args = append(args, *v)
			n++
		}
	}
	add("name", patch.Name)
	add("email", patch.Email)
	add("telephone", patch.Telephone)
	add("image", patch.Image)

	args = append(args, id)
	query := fmt.Sprintf(
		`UPDATE contacts SET %s WHERE id=$%d RETURNING id, name, email, telephone, image`,
		strings.Join(sets, ", "), n,
	)

	var contact models.Contact
	err := s.db.GetContext(ctx, &contact, query, args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return &contact, nil
}

func (s *Contacts) Delete(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM contacts WHERE id=$1`, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}
