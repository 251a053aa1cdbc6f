package attachment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/entomoguide-backend/internal/domain"
	"github.com/heartmarshall/entomoguide-backend/pkg/ctxutil"
)

const maxCaptionLen = 500

// Attach stores the file and records it against the insect.
//
// The bytes are written first. The insect row is then locked, the existing
// images counted and the record inserted in one transaction, so concurrent
// attaches to the same insect never exceed domain.MaxAttachmentsPerInsect.
// If the transaction fails the stored file is removed again.
func (s *Service) Attach(ctx context.Context, insectID int64, up Upload) (*domain.Attachment, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}

	caption, err := normalizeCaption(up.Caption)
	if err != nil {
		return nil, err
	}

	locator, err := s.files.Put(ctx, up.Filename, up.Body)
	if err != nil {
		if errors.Is(err, domain.ErrUnsupportedFileType) {
			return nil, err
		}
		return nil, fmt.Errorf("attachment.Attach store: %w: %w", domain.ErrStorage, err)
	}

	var created *domain.Attachment
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.attachments.LockInsect(ctx, insectID); err != nil {
			return err
		}

		n, err := s.attachments.CountByInsect(ctx, insectID)
		if err != nil {
			return err
		}
		if n >= domain.MaxAttachmentsPerInsect {
			return fmt.Errorf("insect %d already has %d images: %w", insectID, n, domain.ErrAttachmentLimitExceeded)
		}

		created, err = s.attachments.Create(ctx, insectID, locator, caption)
		return err
	})
	if err != nil {
		s.removeFile(context.WithoutCancel(ctx), locator)
		return nil, fmt.Errorf("attachment.Attach: %w", err)
	}

	s.log.InfoContext(ctx, "image attached",
		slog.Int64("insect_id", insectID),
		slog.Int64("attachment_id", created.ID),
	)
	return created, nil
}

// AttachMany attaches uploads one after another and stops at the first
// failure, returning what was attached up to that point alongside the error.
func (s *Service) AttachMany(ctx context.Context, insectID int64, uploads []Upload) ([]domain.Attachment, error) {
	if len(uploads) == 0 {
		return nil, domain.NewValidationError("imagens", "at least one file is required")
	}
	if len(uploads) > domain.MaxAttachmentsPerInsect {
		return nil, fmt.Errorf("%d files submitted, at most %d allowed: %w",
			len(uploads), domain.MaxAttachmentsPerInsect, domain.ErrAttachmentLimitExceeded)
	}

	attached := make([]domain.Attachment, 0, len(uploads))
	for _, up := range uploads {
		a, err := s.Attach(ctx, insectID, up)
		if err != nil {
			return attached, err
		}
		attached = append(attached, *a)
	}
	return attached, nil
}

// Detach removes the record and then the stored file. A file that cannot be
// removed is logged and left for the upload sweeper.
func (s *Service) Detach(ctx context.Context, id int64) error {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return domain.ErrUnauthorized
	}

	a, err := s.attachments.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("attachment.Detach: %w", err)
	}

	if err := s.attachments.Delete(ctx, id); err != nil {
		return fmt.Errorf("attachment.Detach: %w", err)
	}

	s.removeFile(ctx, a.Locator)

	s.log.InfoContext(ctx, "image detached",
		slog.Int64("insect_id", a.InsectID),
		slog.Int64("attachment_id", id),
	)
	return nil
}

// List returns the images of an insect in insertion order.
func (s *Service) List(ctx context.Context, insectID int64) ([]domain.Attachment, error) {
	list, err := s.attachments.ListByInsect(ctx, insectID)
	if err != nil {
		return nil, fmt.Errorf("attachment.List: %w", err)
	}
	return list, nil
}

// UpdateCaption replaces an image caption. A blank caption clears it.
func (s *Service) UpdateCaption(ctx context.Context, id int64, caption *string) (*domain.Attachment, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}

	caption, err := normalizeCaption(caption)
	if err != nil {
		return nil, err
	}

	a, err := s.attachments.UpdateCaption(ctx, id, caption)
	if err != nil {
		return nil, fmt.Errorf("attachment.UpdateCaption: %w", err)
	}
	return a, nil
}

func (s *Service) removeFile(ctx context.Context, locator string) {
	if err := s.files.Delete(ctx, locator); err != nil {
		s.log.WarnContext(ctx, "stored file not removed",
			slog.String("locator", locator),
			slog.String("error", err.Error()),
		)
	}
}

func normalizeCaption(caption *string) (*string, error) {
	caption = domain.OptionalText(caption)
	if caption != nil && len([]rune(*caption)) > maxCaptionLen {
		return nil, domain.NewValidationError("legenda", "too long")
	}
	return caption, nil
}
