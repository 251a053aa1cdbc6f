// Package attachment persists insect image records. The per-insect limit is
// enforced by the service layer under a row lock taken with LockInsect.
package attachment

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/heartmarshall/entomoguide-backend/internal/adapter/postgres"
	"github.com/heartmarshall/entomoguide-backend/internal/domain"
)

// Repo provides insect image persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new attachment repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

const attachmentColumns = `id, insect_id, locator, caption, created_at`

const (
	lockInsectSQL = `SELECT id FROM insects WHERE id = $1 FOR UPDATE`

	countSQL = `SELECT COUNT(*) FROM insect_images WHERE insect_id = $1`

	createSQL = `
INSERT INTO insect_images (insect_id, locator, caption)
VALUES ($1, $2, $3)
RETURNING ` + attachmentColumns

	getByIDSQL = `SELECT ` + attachmentColumns + ` FROM insect_images WHERE id = $1`

	listByInsectSQL = `SELECT ` + attachmentColumns + ` FROM insect_images WHERE insect_id = $1 ORDER BY id`

	updateCaptionSQL = `
UPDATE insect_images SET caption = $2
WHERE id = $1
RETURNING ` + attachmentColumns

	deleteSQL = `DELETE FROM insect_images WHERE id = $1`

	allLocatorsSQL = `SELECT locator FROM insect_images`
)

// LockInsect takes a row lock on the insect for the rest of the current
// transaction. Returns domain.ErrNotFound if the insect does not exist.
// Outside a transaction the lock is released immediately.
func (r *Repo) LockInsect(ctx context.Context, insectID int64) error {
	var id int64
	err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, lockInsectSQL, insectID).Scan(&id)
	if err != nil {
		return postgres.MapError(err, "insect", insectID)
	}
	return nil
}

// CountByInsect returns the number of images attached to the insect.
func (r *Repo) CountByInsect(ctx context.Context, insectID int64) (int, error) {
	var n int
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, countSQL, insectID).Scan(&n); err != nil {
		return 0, fmt.Errorf("count images of insect %d: %w", insectID, err)
	}
	return n, nil
}

// Create records an image. A missing insect yields domain.ErrNotFound.
func (r *Repo) Create(ctx context.Context, insectID int64, locator string, caption *string) (*domain.Attachment, error) {
	a, err := scanAttachment(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, createSQL, insectID, locator, caption))
	if err != nil {
		return nil, postgres.MapError(err, "insect image", 0)
	}
	return a, nil
}

// GetByID returns the image record or domain.ErrNotFound.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Attachment, error) {
	a, err := scanAttachment(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "insect image", id)
	}
	return a, nil
}

// ListByInsect returns the insect's images in insertion order.
// The result is never nil.
func (r *Repo) ListByInsect(ctx context.Context, insectID int64) ([]domain.Attachment, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, listByInsectSQL, insectID)
	if err != nil {
		return nil, fmt.Errorf("list images of insect %d: %w", insectID, err)
	}
	defer rows.Close()

	result := []domain.Attachment{}
	for rows.Next() {
		a, err := scanAttachment(rows)
		if err != nil {
			return nil, fmt.Errorf("list images of insect %d: %w", insectID, err)
		}
		result = append(result, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list images of insect %d: %w", insectID, err)
	}
	return result, nil
}

// UpdateCaption replaces the caption. A nil caption clears it.
func (r *Repo) UpdateCaption(ctx context.Context, id int64, caption *string) (*domain.Attachment, error) {
	a, err := scanAttachment(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, updateCaptionSQL, id, caption))
	if err != nil {
		return nil, postgres.MapError(err, "insect image", id)
	}
	return a, nil
}

// Delete removes the image record. Returns domain.ErrNotFound if absent.
func (r *Repo) Delete(ctx context.Context, id int64) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, deleteSQL, id)
	if err != nil {
		return postgres.MapError(err, "insect image", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("insect image %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

// AllLocators returns every stored locator. Used by the upload sweeper.
func (r *Repo) AllLocators(ctx context.Context) ([]string, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, allLocatorsSQL)
	if err != nil {
		return nil, fmt.Errorf("list image locators: %w", err)
	}
	locators, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("list image locators: %w", err)
	}
	return locators, nil
}

func scanAttachment(row pgx.Row) (*domain.Attachment, error) {
	var a domain.Attachment
	if err := row.Scan(&a.ID, &a.InsectID, &a.Locator, &a.Caption, &a.CreatedAt); err != nil {
		return nil, err
	}
	return &a, nil
}
