// Package catalog manages categories and insect entries.
package catalog

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/entomoguide-backend/internal/domain"
)

type categoryRepo interface {
	List(ctx context.Context) ([]domain.Category, error)
	GetByID(ctx context.Context, id int64) (*domain.Category, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Create(ctx context.Context, name string, description *string) (*domain.Category, error)
	Update(ctx context.Context, id int64, name string, description *string) (*domain.Category, error)
	Delete(ctx context.Context, id int64) error
}

type insectRepo interface {
	List(ctx context.Context, filter domain.InsectFilter) ([]domain.Insect, error)
	GetByID(ctx context.Context, id int64) (*domain.Insect, error)
	Create(ctx context.Context, in domain.Insect) (*domain.Insect, error)
	Update(ctx context.Context, id int64, patch domain.InsectPatch) (*domain.Insect, error)
	Delete(ctx context.Context, id int64) ([]string, error)
}

type attachmentLister interface {
	ListByInsect(ctx context.Context, insectID int64) ([]domain.Attachment, error)
}

type fileRemover interface {
	Delete(ctx context.Context, locator string) error
}

// Service implements catalog operations. Reads are public; writes are
// admin only.
type Service struct {
	log         *slog.Logger
	categories  categoryRepo
	insects     insectRepo
	attachments attachmentLister
	files       fileRemover
}

// NewService creates a new catalog service.
func NewService(
	logger *slog.Logger,
	categories categoryRepo,
	insects insectRepo,
	attachments attachmentLister,
	files fileRemover,
) *Service {
	return &Service{
		log:         logger.With("service", "catalog"),
		categories:  categories,
		insects:     insects,
		attachments: attachments,
		files:       files,
	}
}
