package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/entomoguide-backend/internal/domain"
	"github.com/heartmarshall/entomoguide-backend/internal/service/attachment"
)

type attachmentService interface {
	Attach(ctx context.Context, insectID int64, up attachment.Upload) (*domain.Attachment, error)
	AttachMany(ctx context.Context, insectID int64, uploads []attachment.Upload) ([]domain.Attachment, error)
	Detach(ctx context.Context, id int64) error
	List(ctx context.Context, insectID int64) ([]domain.Attachment, error)
	UpdateCaption(ctx context.Context, id int64, caption *string) (*domain.Attachment, error)
}

// AttachmentHandler serves insect images.
type AttachmentHandler struct {
	responder
	svc attachmentService
}

// NewAttachmentHandler creates an AttachmentHandler.
func NewAttachmentHandler(svc attachmentService, logger *slog.Logger) *AttachmentHandler {
	return &AttachmentHandler{responder: responder{log: logger.With("handler", "attachment")}, svc: svc}
}

type attachmentResponse struct {
	ID        int64     `json:"id"`
	InsectID  int64     `json:"id_inseto"`
	URL       string    `json:"url_imagem"`
	Caption   *string   `json:"legenda"`
	CreatedAt time.Time `json:"created_at"`
}

type partialAttachResponse struct {
	Error    string               `json:"error"`
	Attached []attachmentResponse `json:"anexadas"`
}

type captionRequest struct {
	Caption *string `json:"legenda"`
}

func toAttachmentResponse(a *domain.Attachment) attachmentResponse {
	return attachmentResponse{
		ID:        a.ID,
		InsectID:  a.InsectID,
		URL:       a.Locator,
		Caption:   a.Caption,
		CreatedAt: a.CreatedAt,
	}
}

func toAttachmentList(atts []domain.Attachment) []attachmentResponse {
	out := make([]attachmentResponse, len(atts))
	for i := range atts {
		out[i] = toAttachmentResponse(&atts[i])
	}
	return out
}

// List handles GET /insetos/{id}/imagens.
func (h *AttachmentHandler) List(w http.ResponseWriter, r *http.Request) {
	insectID, err := pathID(r, "id")
	if err != nil {
		h.fail(w, r, err)
		return
	}

	atts, err := h.svc.List(r.Context(), insectID)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toAttachmentList(atts))
}

// Attach handles POST /insetos/{id}/imagem with one file in "imagem" and
// an optional "legenda".
func (h *AttachmentHandler) Attach(w http.ResponseWriter, r *http.Request) {
	insectID, err := pathID(r, "id")
	if err != nil {
		h.fail(w, r, err)
		return
	}

	cleanup, err := parseForm(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	defer cleanup()

	files, err := openFiles(r, "imagem")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	defer closeAll(files)
	if len(files) != 1 {
		h.fail(w, r, domain.NewValidationError("imagem", "exactly one file is required"))
		return
	}

	att, err := h.svc.Attach(r.Context(), insectID, attachment.Upload{
		Filename: files[0].name,
		Body:     files[0].file,
		Caption:  formValue(r, "legenda"),
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toAttachmentResponse(att))
}

// AttachMany handles POST /insetos/{id}/imagens with up to three files in
// "imagens". A failure part-way reports what was attached before it.
func (h *AttachmentHandler) AttachMany(w http.ResponseWriter, r *http.Request) {
	insectID, err := pathID(r, "id")
	if err != nil {
		h.fail(w, r, err)
		return
	}

	cleanup, err := parseForm(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	defer cleanup()

	files, err := openFiles(r, "imagens")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	defer closeAll(files)

	caption := formValue(r, "legenda")
	uploads := make([]attachment.Upload, len(files))
	for i, f := range files {
		uploads[i] = attachment.Upload{Filename: f.name, Body: f.file, Caption: caption}
	}

	atts, err := h.svc.AttachMany(r.Context(), insectID, uploads)
	if err != nil {
		if len(atts) == 0 {
			h.fail(w, r, err)
			return
		}
		status, msg := errorStatus(err)
		if status >= http.StatusInternalServerError {
			h.log.ErrorContext(r.Context(), "attach many", slog.String("error", err.Error()))
		}
		writeJSON(w, status, partialAttachResponse{Error: msg, Attached: toAttachmentList(atts)})
		return
	}
	writeJSON(w, http.StatusCreated, toAttachmentList(atts))
}

// UpdateCaption handles PATCH /insetos/imagens/{id}. A null legenda clears it.
func (h *AttachmentHandler) UpdateCaption(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.fail(w, r, err)
		return
	}

	var req captionRequest
	if err := decode(r, &req); err != nil {
		h.fail(w, r, err)
		return
	}

	att, err := h.svc.UpdateCaption(r.Context(), id, req.Caption)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toAttachmentResponse(att))
}

// Detach handles DELETE /insetos/imagens/{id}.
func (h *AttachmentHandler) Detach(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.fail(w, r, err)
		return
	}

	if err := h.svc.Detach(r.Context(), id); err != nil {
		h.fail(w, r, err)
		return
	}
	writeMessage(w, http.StatusOK, "Referência da imagem deletada com sucesso.")
}
