package account

import (
	"context"
	"fmt"

	"github.com/heartmarshall/entomoguide-backend/internal/domain"
)

// ListActive returns active accounts (admin only).
func (s *Service) ListActive(ctx context.Context) ([]domain.Account, error) {
	return s.listByStatus(ctx, domain.StatusActive)
}

// ListPending returns accounts awaiting approval (admin only).
func (s *Service) ListPending(ctx context.Context) ([]domain.Account, error) {
	return s.listByStatus(ctx, domain.StatusPending)
}

func (s *Service) listByStatus(ctx context.Context, status domain.AccountStatus) ([]domain.Account, error) {
	if err := requireAdmin(ctx); err != nil {
		return nil, err
	}

	accounts, err := s.accounts.ListByStatus(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("account.ListByStatus: %w", err)
	}
	return accounts, nil
}

// StatusCounts returns the number of accounts per status (admin only).
func (s *Service) StatusCounts(ctx context.Context) ([]domain.StatusCount, error) {
	if err := requireAdmin(ctx); err != nil {
		return nil, err
	}

	counts, err := s.accounts.CountByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("account.StatusCounts: %w", err)
	}
	return counts, nil
}

// RegistrationsPerDay returns daily registration counts within r (admin only).
func (s *Service) RegistrationsPerDay(ctx context.Context, r DateRange) ([]domain.DailyCount, error) {
	if err := requireAdmin(ctx); err != nil {
		return nil, err
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}

	counts, err := s.accounts.CountRegistrationsPerDay(ctx, r.From, r.To)
	if err != nil {
		return nil, fmt.Errorf("account.RegistrationsPerDay: %w", err)
	}
	return counts, nil
}
