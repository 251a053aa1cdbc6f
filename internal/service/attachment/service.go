// Package attachment manages the images attached to insects.
package attachment

import (
	"context"
	"io"
	"log/slog"

	"github.com/heartmarshall/entomoguide-backend/internal/domain"
)

type attachmentRepo interface {
	LockInsect(ctx context.Context, insectID int64) error
	CountByInsect(ctx context.Context, insectID int64) (int, error)
	Create(ctx context.Context, insectID int64, locator string, caption *string) (*domain.Attachment, error)
	GetByID(ctx context.Context, id int64) (*domain.Attachment, error)
	ListByInsect(ctx context.Context, insectID int64) ([]domain.Attachment, error)
	UpdateCaption(ctx context.Context, id int64, caption *string) (*domain.Attachment, error)
	Delete(ctx context.Context, id int64) error
}

type blobStore interface {
	Put(ctx context.Context, filename string, r io.Reader) (string, error)
	Delete(ctx context.Context, locator string) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements attach and detach with the per-insect image limit.
type Service struct {
	log         *slog.Logger
	attachments attachmentRepo
	files       blobStore
	tx          txManager
}

// NewService creates a new attachment service.
func NewService(logger *slog.Logger, attachments attachmentRepo, files blobStore, tx txManager) *Service {
	return &Service{
		log:         logger.With("service", "attachment"),
		attachments: attachments,
		files:       files,
		tx:          tx,
	}
}

// Upload is one file submitted for attachment.
type Upload struct {
	Filename string
	Body     io.Reader
	Caption  *string
}
