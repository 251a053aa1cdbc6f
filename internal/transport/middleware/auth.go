package middleware

import (
	"net/http"
	"strings"

	"github.com/heartmarshall/entomoguide-backend/internal/auth"
	"github.com/heartmarshall/entomoguide-backend/pkg/ctxutil"
)

type tokenValidator interface {
	ValidateToken(token string) (*auth.Claims, error)
}

// accountRecorder is implemented by the Logger's response writer.
type accountRecorder interface {
	SetAccountID(id int64)
}

// Auth rejects requests without a valid bearer token with 401 and puts the
// token's account id and role into the request context.
func Auth(validator tokenValidator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				writeError(w, http.StatusUnauthorized, "token not provided")
				return
			}

			claims, err := validator.ValidateToken(token)
			if err != nil {
				writeError(w, http.StatusUnauthorized, "invalid or expired token")
				return
			}

			if rec := recorderOf(w); rec != nil {
				rec.SetAccountID(claims.AccountID)
			}

			ctx := ctxutil.WithUserID(r.Context(), claims.AccountID)
			ctx = ctxutil.WithUserRole(ctx, claims.Role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// recorderOf walks Unwrap chains of wrapping writers to find the Logger's.
func recorderOf(w http.ResponseWriter) accountRecorder {
	for w != nil {
		if rec, ok := w.(accountRecorder); ok {
			return rec
		}
		u, ok := w.(interface{ Unwrap() http.ResponseWriter })
		if !ok {
			return nil
		}
		w = u.Unwrap()
	}
	return nil
}

func extractBearerToken(r *http.Request) string {
	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
