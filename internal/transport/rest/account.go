package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/entomoguide-backend/internal/domain"
	"github.com/heartmarshall/entomoguide-backend/internal/service/account"
)

// accountService is the slice of the account service used over HTTP.
type accountService interface {
	Register(ctx context.Context, input account.RegisterInput) (*domain.Account, error)
	Login(ctx context.Context, input account.LoginInput) (*account.LoginResult, error)
	Approve(ctx context.Context, id int64) (*account.ApproveResult, error)
	RevertToPending(ctx context.Context, id int64) error
	Get(ctx context.Context, id int64) (*domain.Account, error)
	UpdateProfile(ctx context.Context, id int64, input account.ProfileInput, photo *account.Upload) (*domain.Account, error)
	Delete(ctx context.Context, id int64) error
	ListActive(ctx context.Context) ([]domain.Account, error)
	ListPending(ctx context.Context) ([]domain.Account, error)
	StatusCounts(ctx context.Context) ([]domain.StatusCount, error)
	RegistrationsPerDay(ctx context.Context, r account.DateRange) ([]domain.DailyCount, error)
}

// AccountHandler serves registration, login, approval and profile endpoints.
type AccountHandler struct {
	responder
	svc accountService
}

// NewAccountHandler creates an AccountHandler.
func NewAccountHandler(svc accountService, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{responder: responder{log: logger.With("handler", "account")}, svc: svc}
}

type accountResponse struct {
	ID           int64     `json:"id"`
	Name         string    `json:"nome"`
	Email        string    `json:"email"`
	Login        *string   `json:"login"`
	Role         string    `json:"tipo"`
	Status       string    `json:"status"`
	ProfilePhoto *string   `json:"foto_perfil"`
	CreatedAt    time.Time `json:"created_at"`
}

func toAccountResponse(a *domain.Account) accountResponse {
	return accountResponse{
		ID:           a.ID,
		Name:         a.Name,
		Email:        a.Email,
		Login:        a.Login,
		Role:         a.Role.String(),
		Status:       a.Status.String(),
		ProfilePhoto: a.ProfilePhoto,
		CreatedAt:    a.CreatedAt,
	}
}

func toAccountList(accs []domain.Account) []accountResponse {
	out := make([]accountResponse, len(accs))
	for i := range accs {
		out[i] = toAccountResponse(&accs[i])
	}
	return out
}

type registerResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}

type loginUser struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Role  string `json:"tipo"`
}

type loginResponse struct {
	Message string    `json:"message"`
	Token   string    `json:"token"`
	User    loginUser `json:"user"`
}

type approveRequest struct {
	ID int64 `json:"id"`
}

type approveResponse struct {
	Message  string `json:"message"`
	Notified bool   `json:"notificado"`
	Reason   string `json:"motivo,omitempty"`
}

type approveFailedResponse struct {
	Error  string `json:"error"`
	Reason string `json:"motivo,omitempty"`
}

type profileResponse struct {
	Message string          `json:"message"`
	Account accountResponse `json:"cliente"`
}

// Register handles POST /clientes.
func (h *AccountHandler) Register(w http.ResponseWriter, r *http.Request) {
	var input account.RegisterInput
	if err := decode(r, &input); err != nil {
		h.fail(w, r, err)
		return
	}

	acc, err := h.svc.Register(r.Context(), input)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, registerResponse{
		Message: "Solicitação de Cadastro Realizada!",
		ID:      acc.ID,
	})
}

// Login handles POST /login.
func (h *AccountHandler) Login(w http.ResponseWriter, r *http.Request) {
	var input account.LoginInput
	if err := decode(r, &input); err != nil {
		h.fail(w, r, err)
		return
	}

	res, err := h.svc.Login(r.Context(), input)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{
		Message: "Login realizado",
		Token:   res.Token,
		User: loginUser{
			ID:    res.Account.ID,
			Email: res.Account.Email,
			Role:  res.Account.Role.String(),
		},
	})
}

// Approve handles PUT /aprovarUsuario. The account stays approved even
// when the welcome mail could not be sent; that case answers 502.
func (h *AccountHandler) Approve(w http.ResponseWriter, r *http.Request) {
	var req approveRequest
	if err := decode(r, &req); err != nil {
		h.fail(w, r, err)
		return
	}
	if req.ID <= 0 {
		h.fail(w, r, domain.NewValidationError("id", "is required"))
		return
	}

	res, err := h.svc.Approve(r.Context(), req.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotificationFailed) && res != nil {
			h.log.WarnContext(r.Context(), "approval notification failed",
				slog.Int64("account_id", req.ID),
				slog.String("reason", res.Reason),
			)
			writeJSON(w, http.StatusBadGateway, approveFailedResponse{
				Error:  "account approved, but notification failed",
				Reason: res.Reason,
			})
			return
		}
		h.fail(w, r, err)
		return
	}

	resp := approveResponse{Message: "Usuário aprovado com sucesso!", Notified: true}
	if res != nil {
		resp.Notified, resp.Reason = res.Notified, res.Reason
	}
	writeJSON(w, http.StatusOK, resp)
}

// RevertToPending handles PUT /usuarios/{id}/pendente.
func (h *AccountHandler) RevertToPending(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.fail(w, r, err)
		return
	}

	if err := h.svc.RevertToPending(r.Context(), id); err != nil {
		h.fail(w, r, err)
		return
	}

	writeMessage(w, http.StatusOK, "Usuário movido para pendente com sucesso!")
}

// Get handles GET /clientes/{id}.
func (h *AccountHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.fail(w, r, err)
		return
	}

	acc, err := h.svc.Get(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toAccountResponse(acc))
}

// Update handles PUT /clientes/{id}. It accepts a JSON body or a multipart
// form carrying an optional foto_perfil file.
func (h *AccountHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.fail(w, r, err)
		return
	}

	var (
		input account.ProfileInput
		photo *account.Upload
	)
	if isMultipart(r) {
		cleanup, err := parseForm(r)
		if err != nil {
			h.fail(w, r, err)
			return
		}
		defer cleanup()

		input.Name = r.FormValue("nome")
		input.Email = r.FormValue("email")
		input.Password = r.FormValue("senha")

		files, err := openFiles(r, "foto_perfil")
		if err != nil {
			h.fail(w, r, err)
			return
		}
		defer closeAll(files)
		if len(files) > 1 {
			h.fail(w, r, domain.NewValidationError("foto_perfil", "only one file is allowed"))
			return
		}
		if len(files) == 1 {
			photo = &account.Upload{Filename: files[0].name, Body: files[0].file}
		}
	} else if err := decode(r, &input); err != nil {
		h.fail(w, r, err)
		return
	}

	acc, err := h.svc.UpdateProfile(r.Context(), id, input, photo)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, profileResponse{
		Message: "Perfil atualizado com sucesso!",
		Account: toAccountResponse(acc),
	})
}

// Delete handles DELETE /clientes/{id}.
func (h *AccountHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.fail(w, r, err)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		h.fail(w, r, err)
		return
	}

	writeMessage(w, http.StatusOK, "Cliente excluído com sucesso!")
}

// ListActive handles GET /clientes.
func (h *AccountHandler) ListActive(w http.ResponseWriter, r *http.Request) {
	accs, err := h.svc.ListActive(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toAccountList(accs))
}

// ListPending handles GET /clientesPendentes.
func (h *AccountHandler) ListPending(w http.ResponseWriter, r *http.Request) {
	accs, err := h.svc.ListPending(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toAccountList(accs))
}
