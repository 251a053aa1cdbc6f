// Package insect implements catalog entry persistence. Listing and partial
// updates are built with squirrel; everything else is raw SQL.
package insect

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/heartmarshall/entomoguide-backend/internal/adapter/postgres"
	"github.com/heartmarshall/entomoguide-backend/internal/domain"
)

// Repo provides insect persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new insect repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

const insectColumns = `id, common_name, scientific_name, category_id, description, habitat, behavior`

const getByIDSQL = `SELECT ` + insectColumns + ` FROM insects WHERE id = $1`

const createSQL = `
INSERT INTO insects (common_name, scientific_name, category_id, description, habitat, behavior)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING ` + insectColumns

const (
	lockSQL      = `SELECT id FROM insects WHERE id = $1 FOR UPDATE`
	locatorsSQL  = `SELECT COALESCE(array_agg(locator ORDER BY id), '{}'::text[]) FROM insect_images WHERE insect_id = $1`
	deleteRowSQL = `DELETE FROM insects WHERE id = $1`
)

// List returns insects matching filter with the locators of their images,
// ordered by id.
func (r *Repo) List(ctx context.Context, filter domain.InsectFilter) ([]domain.Insect, error) {
	q := postgres.Builder().
		Select(
			"i.id", "i.common_name", "i.scientific_name", "i.category_id",
			"i.description", "i.habitat", "i.behavior",
			"COALESCE(array_agg(ii.locator ORDER BY ii.id) FILTER (WHERE ii.id IS NOT NULL), '{}'::text[])",
		).
		From("insects i").
		LeftJoin("insect_images ii ON ii.insect_id = i.id").
		GroupBy("i.id").
		OrderBy("i.id")

	if filter.ID > 0 {
		q = q.Where(squirrel.Eq{"i.id": filter.ID})
	}
	if name := strings.TrimSpace(filter.CommonName); name != "" {
		q = q.Where(squirrel.ILike{"i.common_name": "%" + escapeLike(name) + "%"})
	}
	if filter.CategoryID > 0 {
		q = q.Where(squirrel.Eq{"i.category_id": filter.CategoryID})
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insect list: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list insects: %w", err)
	}
	defer rows.Close()

	result := []domain.Insect{}
	for rows.Next() {
		var in domain.Insect
		if err := rows.Scan(
			&in.ID, &in.CommonName, &in.ScientificName, &in.CategoryID,
			&in.Description, &in.Habitat, &in.Behavior, &in.ImageURLs,
		); err != nil {
			return nil, fmt.Errorf("list insects: %w", err)
		}
		result = append(result, in)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list insects: %w", err)
	}

	return result, nil
}

// GetByID returns the insect or domain.ErrNotFound.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Insect, error) {
	in, err := scanInsect(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "insect", id)
	}
	return in, nil
}

// Create inserts an insect. An unknown category yields domain.ErrNotFound.
func (r *Repo) Create(ctx context.Context, in domain.Insect) (*domain.Insect, error) {
	row := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, createSQL,
		in.CommonName, in.ScientificName, in.CategoryID, in.Description, in.Habitat, in.Behavior,
	)
	created, err := scanInsect(row)
	if err != nil {
		return nil, postgres.MapError(err, "insect", 0)
	}
	return created, nil
}

// Update applies the allow-listed fields of patch and returns the updated row.
func (r *Repo) Update(ctx context.Context, id int64, patch domain.InsectPatch) (*domain.Insect, error) {
	if patch.IsEmpty() {
		return r.GetByID(ctx, id)
	}

	set := map[string]any{}
	if patch.CommonName != nil {
		set["common_name"] = *patch.CommonName
	}
	if patch.ScientificName != nil {
		set["scientific_name"] = nullable(*patch.ScientificName)
	}
	switch {
	case patch.ClearCategory:
		set["category_id"] = nil
	case patch.CategoryID != nil:
		set["category_id"] = *patch.CategoryID
	}
	if patch.Description != nil {
		set["description"] = nullable(*patch.Description)
	}
	if patch.Habitat != nil {
		set["habitat"] = nullable(*patch.Habitat)
	}
	if patch.Behavior != nil {
		set["behavior"] = nullable(*patch.Behavior)
	}

	sql, args, err := postgres.Builder().
		Update("insects").
		SetMap(set).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + insectColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insect update: %w", err)
	}

	updated, err := scanInsect(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "insect", id)
	}
	return updated, nil
}

// Delete locks the insect, removes it (its images cascade) and returns the
// locators of the removed images. Returns domain.ErrNotFound if the insect
// does not exist.
func (r *Repo) Delete(ctx context.Context, id int64) ([]string, error) {
	var locators []string
	err := postgres.NewTxManager(r.db).RunInTx(ctx, func(ctx context.Context) error {
		q := postgres.QuerierFromCtx(ctx, r.db)

		// Attach holds the same lock while it counts and inserts, so every
		// committed image is visible once the lock is ours.
		var locked int64
		if err := q.QueryRow(ctx, lockSQL, id).Scan(&locked); err != nil {
			return postgres.MapError(err, "insect", id)
		}
		if err := q.QueryRow(ctx, locatorsSQL, id).Scan(&locators); err != nil {
			return fmt.Errorf("collect images of insect %d: %w", id, err)
		}
		if _, err := q.Exec(ctx, deleteRowSQL, id); err != nil {
			return postgres.MapError(err, "insect", id)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return locators, nil
}

func scanInsect(row pgx.Row) (*domain.Insect, error) {
	var in domain.Insect
	err := row.Scan(&in.ID, &in.CommonName, &in.ScientificName, &in.CategoryID,
		&in.Description, &in.Habitat, &in.Behavior)
	if err != nil {
		return nil, err
	}
	return &in, nil
}

// nullable stores an empty optional text as NULL.
func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike neutralizes LIKE wildcards in user input.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
