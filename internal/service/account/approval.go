package account

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/entomoguide-backend/internal/domain"
	"github.com/heartmarshall/entomoguide-backend/pkg/ctxutil"
)

// Approve activates an account and notifies its holder (admin only).
//
// The status change is kept even when the notification fails; the failure
// is reported through ApproveResult and an error wrapping
// domain.ErrNotificationFailed. With mail disabled no delivery is attempted,
// which is not a failure: Notified is false and Reason says why. Approving an
// active account sends the notification again.
func (s *Service) Approve(ctx context.Context, id int64) (*ApproveResult, error) {
	if err := requireAdmin(ctx); err != nil {
		return nil, err
	}

	acc, err := s.accounts.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("account.Approve: %w", err)
	}

	if _, err := s.accounts.SetStatus(ctx, id, domain.StatusActive); err != nil {
		return nil, fmt.Errorf("account.Approve: %w", err)
	}
	acc.Status = domain.StatusActive

	s.log.InfoContext(ctx, "account approved", slog.Int64("account_id", id))

	res := s.notifier.Notify(ctx, domain.NotifyUserApproved, payloadOf(acc))
	result := &ApproveResult{Account: acc, Notified: res.Succeeded, Reason: res.Reason}
	if res.Skipped {
		s.log.InfoContext(ctx, "approval notification skipped",
			slog.Int64("account_id", id),
			slog.String("reason", res.Reason),
		)
		return result, nil
	}
	if !res.Succeeded {
		return result, fmt.Errorf("account.Approve %d: %s: %w", id, res.Reason, domain.ErrNotificationFailed)
	}

	return result, nil
}

// RevertToPending moves an account back to pending (admin only).
// No notification is sent.
func (s *Service) RevertToPending(ctx context.Context, id int64) error {
	if err := requireAdmin(ctx); err != nil {
		return err
	}

	if _, err := s.accounts.GetByID(ctx, id); err != nil {
		return fmt.Errorf("account.RevertToPending: %w", err)
	}

	if _, err := s.accounts.SetStatus(ctx, id, domain.StatusPending); err != nil {
		return fmt.Errorf("account.RevertToPending: %w", err)
	}

	s.log.InfoContext(ctx, "account reverted to pending", slog.Int64("account_id", id))
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

// requireSelfOrAdmin allows the account holder and administrators.
func requireSelfOrAdmin(ctx context.Context, id int64) error {
	callerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if callerID != id && !ctxutil.IsAdminCtx(ctx) {
		return domain.ErrForbidden
	}
	return nil
}
