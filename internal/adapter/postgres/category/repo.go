// Package category implements category persistence.
package category

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/heartmarshall/entomoguide-backend/internal/adapter/postgres"
	"github.com/heartmarshall/entomoguide-backend/internal/domain"
)

// Repo provides category persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new category repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

const listSQL = `SELECT id, name, description FROM categories ORDER BY name`

const getByIDSQL = `SELECT id, name, description FROM categories WHERE id = $1`

const createSQL = `
INSERT INTO categories (name, description) VALUES ($1, $2)
RETURNING id, name, description`

const updateSQL = `
UPDATE categories SET name = $1, description = $2
WHERE id = $3
RETURNING id, name, description`

const deleteSQL = `DELETE FROM categories WHERE id = $1`

const existsSQL = `SELECT EXISTS (SELECT 1 FROM categories WHERE id = $1)`

// List returns all categories ordered by name.
func (r *Repo) List(ctx context.Context) ([]domain.Category, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, listSQL)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	result := []domain.Category{}
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("list categories: %w", err)
		}
		result = append(result, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return result, nil
}

// GetByID returns the category or domain.ErrNotFound.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Category, error) {
	c, err := scanCategory(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "category", id)
	}
	return c, nil
}

// Exists reports whether a category with id exists.
func (r *Repo) Exists(ctx context.Context, id int64) (bool, error) {
	var ok bool
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, existsSQL, id).Scan(&ok); err != nil {
		return false, postgres.MapError(err, "category", id)
	}
	return ok, nil
}

// Create inserts a category. A taken name yields domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, name string, description *string) (*domain.Category, error) {
	c, err := scanCategory(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, createSQL, name, description))
	if err != nil {
		return nil, postgres.MapError(err, "category", 0)
	}
	return c, nil
}

// Update replaces the name and description of a category.
func (r *Repo) Update(ctx context.Context, id int64, name string, description *string) (*domain.Category, error) {
	c, err := scanCategory(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, updateSQL, name, description, id))
	if err != nil {
		return nil, postgres.MapError(err, "category", id)
	}
	return c, nil
}

// Delete removes a category. Insects referencing it keep existing with a
// NULL category (ON DELETE SET NULL).
func (r *Repo) Delete(ctx context.Context, id int64) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, deleteSQL, id)
	if err != nil {
		return postgres.MapError(err, "category", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("category %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

func scanCategory(row pgx.Row) (*domain.Category, error) {
	var c domain.Category
	if err := row.Scan(&c.ID, &c.Name, &c.Description); err != nil {
		return nil, err
	}
	return &c, nil
}
