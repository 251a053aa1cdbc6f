package rest

import (
	"net/http"
	"time"

	"github.com/heartmarshall/entomoguide-backend/internal/domain"
	"github.com/heartmarshall/entomoguide-backend/internal/service/account"
)

const dayLayout = "2006-01-02"

type statusCountResponse struct {
	Status string `json:"status"`
	Count  int64  `json:"quantidade"`
}

type dailyCountResponse struct {
	Day   string `json:"dia"`
	Count int64  `json:"quantidade"`
}

// StatusCounts handles GET /dashboard/status-usuarios.
func (h *AccountHandler) StatusCounts(w http.ResponseWriter, r *http.Request) {
	counts, err := h.svc.StatusCounts(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}

	out := make([]statusCountResponse, len(counts))
	for i, c := range counts {
		out[i] = statusCountResponse{Status: c.Status.String(), Count: c.Count}
	}
	writeJSON(w, http.StatusOK, out)
}

// RegistrationsPerDay handles GET /dashboard/cadastros-por-dia?inicio=&fim=.
// Both dates are YYYY-MM-DD and inclusive.
func (h *AccountHandler) RegistrationsPerDay(w http.ResponseWriter, r *http.Request) {
	var rng account.DateRange
	var err error
	if rng.From, err = parseDay(r, "inicio"); err != nil {
		h.fail(w, r, err)
		return
	}
	if rng.To, err = parseDay(r, "fim"); err != nil {
		h.fail(w, r, err)
		return
	}

	days, err := h.svc.RegistrationsPerDay(r.Context(), rng)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	out := make([]dailyCountResponse, len(days))
	for i, d := range days {
		out[i] = dailyCountResponse{Day: d.Day.Format(dayLayout), Count: d.Count}
	}
	writeJSON(w, http.StatusOK, out)
}

func parseDay(r *http.Request, name string) (time.Time, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return time.Time{}, domain.NewValidationError(name, "is required")
	}
	t, err := time.Parse(dayLayout, raw)
	if err != nil {
		return time.Time{}, domain.NewValidationError(name, "must be a date in YYYY-MM-DD format")
	}
	return t, nil
}
