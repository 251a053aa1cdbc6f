package account

import "github.com/heartmarshall/entomoguide-backend/internal/domain"

// LoginResult is returned by a successful Login.
type LoginResult struct {
	Token   string
	Account *domain.Account
}

// ApproveResult reports an approval and whether the account holder was told.
type ApproveResult struct {
	Account  *domain.Account
	Notified bool
	Reason   string
}
