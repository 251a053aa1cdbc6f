package account

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/heartmarshall/entomoguide-backend/internal/domain"
	"github.com/heartmarshall/entomoguide-backend/internal/service/notify"
)

// accountRepo defines the credential store operations the service needs.
type accountRepo interface {
	Create(ctx context.Context, acc domain.Account) (*domain.Account, error)
	GetByID(ctx context.Context, id int64) (*domain.Account, error)
	FindByEmailOrLogin(ctx context.Context, key string) (*domain.Account, error)
	SetStatus(ctx context.Context, id int64, status domain.AccountStatus) (int64, error)
	UpdateProfile(ctx context.Context, id int64, fields domain.ProfileFields) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
	ListByStatus(ctx context.Context, status domain.AccountStatus) ([]domain.Account, error)
	CountByStatus(ctx context.Context) ([]domain.StatusCount, error)
	CountRegistrationsPerDay(ctx context.Context, from, to time.Time) ([]domain.DailyCount, error)
}

// passwordHasher hashes and verifies secrets.
type passwordHasher interface {
	Hash(plain string) (string, error)
	Compare(hash, plain string) (bool, error)
}

// tokenIssuer signs session tokens.
type tokenIssuer interface {
	GenerateToken(accountID int64, role domain.AccountRole) (string, error)
}

// notifier dispatches lifecycle emails.
type notifier interface {
	Notify(ctx context.Context, kind domain.NotificationKind, payload notify.Payload) notify.Result
}

// fileStore keeps profile photos.
type fileStore interface {
	Put(ctx context.Context, filename string, r io.Reader) (string, error)
	Delete(ctx context.Context, locator string) error
}

// notifyTimeout bounds a background dispatch once the triggering request is gone.
const notifyTimeout = 30 * time.Second

// Service implements the account lifecycle: registration, login, approval
// and profile management.
type Service struct {
	log      *slog.Logger
	accounts accountRepo
	hasher   passwordHasher
	tokens   tokenIssuer
	notifier notifier
	files    fileStore

	// dummyHash is compared against on unknown login keys so that a miss
	// costs the same as a wrong password.
	dummyHash string

	inflight sync.WaitGroup
}

// NewService creates a new account service.
func NewService(
	logger *slog.Logger,
	accounts accountRepo,
	hasher passwordHasher,
	tokens tokenIssuer,
	n notifier,
	files fileStore,
) (*Service, error) {
	dummy, err := hasher.Hash("entomoguide-timing-equalizer")
	if err != nil {
		return nil, err
	}

	return &Service{
		log:       logger.With("service", "account"),
		accounts:  accounts,
		hasher:    hasher,
		tokens:    tokens,
		notifier:  n,
		files:     files,
		dummyHash: dummy,
	}, nil
}

// Wait blocks until every background notification has finished.
func (s *Service) Wait() {
	s.inflight.Wait()
}

// dispatchAsync sends a notification without holding up the caller.
// The dispatch outlives ctx cancellation but not notifyTimeout.
func (s *Service) dispatchAsync(ctx context.Context, kind domain.NotificationKind, payload notify.Payload) {
	s.inflight.Add(1)
	go func() {
		defer s.inflight.Done()

		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), notifyTimeout)
		defer cancel()

		res := s.notifier.Notify(ctx, kind, payload)
		if !res.Succeeded {
			s.log.WarnContext(ctx, "background notification failed",
				slog.String("kind", kind.String()),
				slog.Int64("account_id", payload.AccountID),
				slog.String("reason", res.Reason),
			)
		}
	}()
}

func payloadOf(acc *domain.Account) notify.Payload {
	return notify.Payload{AccountID: acc.ID, Name: acc.Name, Email: acc.Email}
}
