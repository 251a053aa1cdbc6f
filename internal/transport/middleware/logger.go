package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/entomoguide-backend/pkg/ctxutil"
)

// Logger logs one line per request. The account id is only known when Auth
// ran inside this middleware.
func Logger(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(sw, r)

			duration := time.Since(start)
			requestID := ctxutil.RequestIDFromCtx(r.Context())

			attrs := []slog.Attr{
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", sw.status),
				slog.Duration("duration", duration),
				slog.String("request_id", requestID),
			}
			if sw.accountID > 0 {
				attrs = append(attrs, slog.Int64("account_id", sw.accountID))
			}

			level := slog.LevelInfo
			switch {
			case sw.status >= 500:
				level = slog.LevelError
			case sw.status == http.StatusTooManyRequests:
				level = slog.LevelWarn
			}
			logger.LogAttrs(r.Context(), level, "http.request", attrs...)
		})
	}
}

// statusWriter captures the response status. Handlers deeper in the chain
// report the authenticated account through SetAccountID.
type statusWriter struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
	accountID   int64
}

// SetAccountID records the caller for the access log.
func (w *statusWriter) SetAccountID(id int64) { w.accountID = id }

// Unwrap lets http.ResponseController reach the underlying writer.
func (w *statusWriter) Unwrap() http.ResponseWriter { return w.ResponseWriter }

func (w *statusWriter) WriteHeader(code int) {
	if !w.wroteHeader {
		w.status = code
		w.wroteHeader = true
	}
	w.ResponseWriter.WriteHeader(code)
}
