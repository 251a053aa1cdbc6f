package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/entomoguide-backend/internal/domain"
	"github.com/heartmarshall/entomoguide-backend/pkg/ctxutil"
)

// ListCategories returns all categories ordered by name.
func (s *Service) ListCategories(ctx context.Context) ([]domain.Category, error) {
	categories, err := s.categories.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("catalog.ListCategories: %w", err)
	}
	return categories, nil
}

// GetCategory returns one category.
func (s *Service) GetCategory(ctx context.Context, id int64) (*domain.Category, error) {
	c, err := s.categories.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("catalog.GetCategory: %w", err)
	}
	return c, nil
}

// CreateCategory adds a category (admin only). Duplicate names yield
// domain.ErrAlreadyExists.
func (s *Service) CreateCategory(ctx context.Context, input CategoryInput) (*domain.Category, error) {
	if err := requireAdmin(ctx); err != nil {
		return nil, err
	}

	input.normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	c, err := s.categories.Create(ctx, input.Name, input.Description)
	if err != nil {
		return nil, fmt.Errorf("catalog.CreateCategory: %w", err)
	}

	s.log.InfoContext(ctx, "category created", slog.Int64("category_id", c.ID))
	return c, nil
}

// UpdateCategory replaces name and description (admin only).
func (s *Service) UpdateCategory(ctx context.Context, id int64, input CategoryInput) (*domain.Category, error) {
	if err := requireAdmin(ctx); err != nil {
		return nil, err
	}

	input.normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	c, err := s.categories.Update(ctx, id, input.Name, input.Description)
	if err != nil {
		return nil, fmt.Errorf("catalog.UpdateCategory: %w", err)
	}
	return c, nil
}

// DeleteCategory removes a category (admin only). Its insects stay in the
// catalog without a category.
func (s *Service) DeleteCategory(ctx context.Context, id int64) error {
	if err := requireAdmin(ctx); err != nil {
		return err
	}

	if err := s.categories.Delete(ctx, id); err != nil {
		return fmt.Errorf("catalog.DeleteCategory: %w", err)
	}

	s.log.InfoContext(ctx, "category deleted", slog.Int64("category_id", id))
	return nil
}

func requireAdmin(ctx context.Context) error {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return domain.ErrUnauthorized
	}
	if !ctxutil.IsAdminCtx(ctx) {
		return domain.ErrForbidden
	}
	return nil
}
