package account

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/entomoguide-backend/internal/domain"
)

// Login checks credentials and issues a session token.
//
// An unknown key and a wrong password are indistinguishable to the caller.
// A pending account is only revealed once the password has been proven.
func (s *Service) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	input.Key = strings.TrimSpace(input.Key)
	if err := input.Validate(); err != nil {
		return nil, err
	}

	acc, err := s.accounts.FindByEmailOrLogin(ctx, input.Key)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			_, _ = s.hasher.Compare(s.dummyHash, input.Password)
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("account.Login: %w", err)
	}

	ok, err := s.hasher.Compare(acc.PasswordHash, input.Password)
	if err != nil {
		s.log.ErrorContext(ctx, "stored password hash unusable",
			slog.Int64("account_id", acc.ID),
			slog.String("error", err.Error()),
		)
		return nil, domain.ErrInvalidCredentials
	}
	if !ok {
		return nil, domain.ErrInvalidCredentials
	}

	if !acc.IsActive() {
		return nil, domain.ErrRegistrationPending
	}

	token, err := s.tokens.GenerateToken(acc.ID, acc.Role)
	if err != nil {
		return nil, fmt.Errorf("account.Login issue token: %w", err)
	}

	s.log.InfoContext(ctx, "account logged in", slog.Int64("account_id", acc.ID))

	return &LoginResult{Token: token, Account: acc}, nil
}
