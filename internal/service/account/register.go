package account

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/entomoguide-backend/internal/domain"
)

// Register creates a pending account and tells the administrator about it.
// The administrator notice is sent in the background; its outcome never
// affects the result.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*domain.Account, error) {
	input.normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("account.Register hash password: %w", err)
	}

	acc, err := s.accounts.Create(ctx, domain.Account{
		Name:         input.Name,
		Email:        input.Email,
		Login:        input.Login,
		PasswordHash: hash,
		Role:         domain.RoleUser,
	})
	if err != nil {
		return nil, fmt.Errorf("account.Register: %w", err)
	}

	s.log.InfoContext(ctx, "account registered", slog.Int64("account_id", acc.ID))

	s.dispatchAsync(ctx, domain.NotifyAdminNewRegistration, payloadOf(acc))

	return acc, nil
}
