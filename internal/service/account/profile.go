package account

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/entomoguide-backend/internal/domain"
)

// Get returns an account (self or admin).
func (s *Service) Get(ctx context.Context, id int64) (*domain.Account, error) {
	if err := requireSelfOrAdmin(ctx, id); err != nil {
		return nil, err
	}

	acc, err := s.accounts.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("account.Get: %w", err)
	}
	return acc, nil
}

// UpdateProfile rewrites name and email, and optionally the password and
// profile photo (self or admin).
//
// A new photo is stored before the row is updated and removed again if the
// update fails. The photo it replaces is removed after a successful update.
func (s *Service) UpdateProfile(ctx context.Context, id int64, input ProfileInput, photo *Upload) (*domain.Account, error) {
	if err := requireSelfOrAdmin(ctx, id); err != nil {
		return nil, err
	}

	input.normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	current, err := s.accounts.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("account.UpdateProfile: %w", err)
	}

	fields := domain.ProfileFields{Name: &input.Name, Email: &input.Email}

	if input.Password != "" {
		hash, err := s.hasher.Hash(input.Password)
		if err != nil {
			return nil, fmt.Errorf("account.UpdateProfile hash password: %w", err)
		}
		fields.PasswordHash = &hash
	}

	var stored string
	if photo != nil {
		stored, err = s.files.Put(ctx, photo.Filename, photo.Body)
		if err != nil {
			if errors.Is(err, domain.ErrUnsupportedFileType) {
				return nil, err
			}
			return nil, fmt.Errorf("account.UpdateProfile store photo: %w: %w", domain.ErrStorage, err)
		}
		fields.ProfilePhoto = &stored
	}

	n, err := s.accounts.UpdateProfile(ctx, id, fields)
	if err == nil && n == 0 {
		err = fmt.Errorf("account %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		if stored != "" {
			s.removeFile(ctx, stored)
		}
		return nil, fmt.Errorf("account.UpdateProfile: %w", err)
	}

	if stored != "" && current.ProfilePhoto != nil && *current.ProfilePhoto != "" {
		s.removeFile(ctx, *current.ProfilePhoto)
	}

	s.log.InfoContext(ctx, "account profile updated", slog.Int64("account_id", id))

	current.Name = input.Name
	current.Email = input.Email
	if fields.PasswordHash != nil {
		current.PasswordHash = *fields.PasswordHash
	}
	if stored != "" {
		current.ProfilePhoto = &stored
	}
	return current, nil
}

// Delete removes an account and its profile photo (self or admin).
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := requireSelfOrAdmin(ctx, id); err != nil {
		return err
	}

	acc, err := s.accounts.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("account.Delete: %w", err)
	}

	n, err := s.accounts.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("account.Delete: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("account.Delete: account %d: %w", id, domain.ErrNotFound)
	}

	if acc.ProfilePhoto != nil && *acc.ProfilePhoto != "" {
		s.removeFile(ctx, *acc.ProfilePhoto)
	}

	s.log.InfoContext(ctx, "account deleted", slog.Int64("account_id", id))
	return nil
}

// removeFile deletes a stored file, logging instead of failing.
func (s *Service) removeFile(ctx context.Context, locator string) {
	if err := s.files.Delete(ctx, locator); err != nil {
		s.log.WarnContext(ctx, "stored file not removed",
			slog.String("locator", locator),
			slog.String("error", err.Error()),
		)
	}
}
