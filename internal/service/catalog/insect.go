package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/entomoguide-backend/internal/domain"
)

// ListInsects returns insects matching filter, each with its image locators.
func (s *Service) ListInsects(ctx context.Context, filter domain.InsectFilter) ([]domain.Insect, error) {
	insects, err := s.insects.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("catalog.ListInsects: %w", err)
	}
	return insects, nil
}

// GetInsect returns an insect together with its attachments.
func (s *Service) GetInsect(ctx context.Context, id int64) (*InsectDetail, error) {
	var (
		insect      *domain.Insect
		attachments []domain.Attachment
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		insect, err = s.insects.GetByID(gctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		attachments, err = s.attachments.ListByInsect(gctx, id)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("catalog.GetInsect: %w", err)
	}

	insect.ImageURLs = make([]string, 0, len(attachments))
	for _, a := range attachments {
		insect.ImageURLs = append(insect.ImageURLs, a.Locator)
	}

	return &InsectDetail{Insect: insect, Attachments: attachments}, nil
}

// CreateInsect adds an insect (admin only). An unknown category yields
// domain.ErrNotFound.
func (s *Service) CreateInsect(ctx context.Context, input InsectInput) (*domain.Insect, error) {
	if err := requireAdmin(ctx); err != nil {
		return nil, err
	}

	input.normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if err := s.checkCategory(ctx, input.CategoryID); err != nil {
		return nil, fmt.Errorf("catalog.CreateInsect: %w", err)
	}

	created, err := s.insects.Create(ctx, domain.Insect{
		CommonName:     input.CommonName,
		ScientificName: input.ScientificName,
		CategoryID:     input.CategoryID,
		Description:    input.Description,
		Habitat:        input.Habitat,
		Behavior:       input.Behavior,
	})
	if err != nil {
		return nil, fmt.Errorf("catalog.CreateInsect: %w", err)
	}

	created.ImageURLs = []string{}
	s.log.InfoContext(ctx, "insect created", slog.Int64("insect_id", created.ID))
	return created, nil
}

// UpdateInsect applies the submitted fields to an insect (admin only).
// See PatchFromFields for the accepted fields.
func (s *Service) UpdateInsect(ctx context.Context, id int64, fields map[string]json.RawMessage) (*domain.Insect, error) {
	if err := requireAdmin(ctx); err != nil {
		return nil, err
	}

	patch, err := PatchFromFields(fields)
	if err != nil {
		return nil, err
	}

	if err := s.checkCategory(ctx, patch.CategoryID); err != nil {
		return nil, fmt.Errorf("catalog.UpdateInsect: %w", err)
	}

	updated, err := s.insects.Update(ctx, id, patch)
	if err != nil {
		return nil, fmt.Errorf("catalog.UpdateInsect: %w", err)
	}
	return updated, nil
}

// DeleteInsect removes an insect and its attachments (admin only).
// Stored files are removed after the rows are gone; failures are logged.
func (s *Service) DeleteInsect(ctx context.Context, id int64) error {
	if err := requireAdmin(ctx); err != nil {
		return err
	}

	locators, err := s.insects.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("catalog.DeleteInsect: %w", err)
	}

	for _, loc := range locators {
		if err := s.files.Delete(ctx, loc); err != nil {
			s.log.WarnContext(ctx, "stored file not removed",
				slog.String("locator", loc),
				slog.String("error", err.Error()),
			)
		}
	}

	s.log.InfoContext(ctx, "insect deleted",
		slog.Int64("insect_id", id),
		slog.Int("images", len(locators)),
	)
	return nil
}

func (s *Service) checkCategory(ctx context.Context, id *int64) error {
	if id == nil {
		return nil
	}
	ok, err := s.categories.Exists(ctx, *id)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("category %d: %w", *id, domain.ErrNotFound)
	}
	return nil
}
