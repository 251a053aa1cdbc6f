package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/entomoguide-backend/internal/domain"
	"github.com/heartmarshall/entomoguide-backend/internal/service/catalog"
)

type catalogService interface {
	ListCategories(ctx context.Context) ([]domain.Category, error)
	GetCategory(ctx context.Context, id int64) (*domain.Category, error)
	CreateCategory(ctx context.Context, input catalog.CategoryInput) (*domain.Category, error)
	UpdateCategory(ctx context.Context, id int64, input catalog.CategoryInput) (*domain.Category, error)
	DeleteCategory(ctx context.Context, id int64) error
	ListInsects(ctx context.Context, filter domain.InsectFilter) ([]domain.Insect, error)
	GetInsect(ctx context.Context, id int64) (*catalog.InsectDetail, error)
	CreateInsect(ctx context.Context, input catalog.InsectInput) (*domain.Insect, error)
	UpdateInsect(ctx context.Context, id int64, fields map[string]json.RawMessage) (*domain.Insect, error)
	DeleteInsect(ctx context.Context, id int64) error
}

// CatalogHandler serves categories and insects.
type CatalogHandler struct {
	responder
	svc catalogService
}

// NewCatalogHandler creates a CatalogHandler.
func NewCatalogHandler(svc catalogService, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{responder: responder{log: logger.With("handler", "catalog")}, svc: svc}
}

type categoryResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"nome"`
	Description *string `json:"descricao"`
}

type insectResponse struct {
	ID             int64    `json:"id"`
	CommonName     string   `json:"nome_comum"`
	ScientificName *string  `json:"nome_cientifico"`
	CategoryID     *int64   `json:"id_categoria"`
	Description    *string  `json:"descricao"`
	Habitat        *string  `json:"habitat"`
	Behavior       *string  `json:"comportamento"`
	Images         []string `json:"imagens"`
}

type insectDetailResponse struct {
	insectResponse
	Attachments []attachmentResponse `json:"anexos"`
}

type createdResponse struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

func toCategoryResponse(c *domain.Category) categoryResponse {
	return categoryResponse{ID: c.ID, Name: c.Name, Description: c.Description}
}

func toInsectResponse(i *domain.Insect) insectResponse {
	images := i.ImageURLs
	if images == nil {
		images = []string{}
	}
	return insectResponse{
		ID:             i.ID,
		CommonName:     i.CommonName,
		ScientificName: i.ScientificName,
		CategoryID:     i.CategoryID,
		Description:    i.Description,
		Habitat:        i.Habitat,
		Behavior:       i.Behavior,
		Images:         images,
	}
}

// ListCategories handles GET /categorias.
func (h *CatalogHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	cats, err := h.svc.ListCategories(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}

	out := make([]categoryResponse, len(cats))
	for i := range cats {
		out[i] = toCategoryResponse(&cats[i])
	}
	writeJSON(w, http.StatusOK, out)
}

// GetCategory handles GET /categorias/{id}.
func (h *CatalogHandler) GetCategory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.fail(w, r, err)
		return
	}

	cat, err := h.svc.GetCategory(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toCategoryResponse(cat))
}

// CreateCategory handles POST /categorias.
func (h *CatalogHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var input catalog.CategoryInput
	if err := decode(r, &input); err != nil {
		h.fail(w, r, err)
		return
	}

	cat, err := h.svc.CreateCategory(r.Context(), input)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, createdResponse{ID: cat.ID, Message: "Categoria criada com sucesso."})
}

// UpdateCategory handles PUT /categorias/{id}.
func (h *CatalogHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.fail(w, r, err)
		return
	}

	var input catalog.CategoryInput
	if err := decode(r, &input); err != nil {
		h.fail(w, r, err)
		return
	}

	if _, err := h.svc.UpdateCategory(r.Context(), id, input); err != nil {
		h.fail(w, r, err)
		return
	}
	writeMessage(w, http.StatusOK, "Categoria ID %d atualizada.", id)
}

// DeleteCategory handles DELETE /categorias/{id}.
func (h *CatalogHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.fail(w, r, err)
		return
	}

	if err := h.svc.DeleteCategory(r.Context(), id); err != nil {
		h.fail(w, r, err)
		return
	}
	writeMessage(w, http.StatusOK, "Categoria ID %d deletada.", id)
}

// ListInsects handles GET /insetos?id=&nome_comum=&id_categoria=.
func (h *CatalogHandler) ListInsects(w http.ResponseWriter, r *http.Request) {
	var (
		filter domain.InsectFilter
		err    error
	)
	if filter.ID, err = queryID(r, "id"); err != nil {
		h.fail(w, r, err)
		return
	}
	if filter.CategoryID, err = queryID(r, "id_categoria"); err != nil {
		h.fail(w, r, err)
		return
	}
	filter.CommonName = r.URL.Query().Get("nome_comum")

	insects, err := h.svc.ListInsects(r.Context(), filter)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	out := make([]insectResponse, len(insects))
	for i := range insects {
		out[i] = toInsectResponse(&insects[i])
	}
	writeJSON(w, http.StatusOK, out)
}

// GetInsect handles GET /insetos/{id}.
func (h *CatalogHandler) GetInsect(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.fail(w, r, err)
		return
	}

	detail, err := h.svc.GetInsect(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, insectDetailResponse{
		insectResponse: toInsectResponse(detail.Insect),
		Attachments:    toAttachmentList(detail.Attachments),
	})
}

// CreateInsect handles POST /insetos.
func (h *CatalogHandler) CreateInsect(w http.ResponseWriter, r *http.Request) {
	var input catalog.InsectInput
	if err := decode(r, &input); err != nil {
		h.fail(w, r, err)
		return
	}

	insect, err := h.svc.CreateInsect(r.Context(), input)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, createdResponse{ID: insect.ID, Message: "Inseto criado com sucesso."})
}

// UpdateInsect handles PUT /insetos/{id}. Only submitted fields change;
// the service rejects names outside its allow-list.
func (h *CatalogHandler) UpdateInsect(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.fail(w, r, err)
		return
	}

	var fields map[string]json.RawMessage
	if err := decode(r, &fields); err != nil {
		h.fail(w, r, err)
		return
	}

	insect, err := h.svc.UpdateInsect(r.Context(), id, fields)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toInsectResponse(insect))
}

// DeleteInsect handles DELETE /insetos/{id}.
func (h *CatalogHandler) DeleteInsect(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.fail(w, r, err)
		return
	}

	if err := h.svc.DeleteInsect(r.Context(), id); err != nil {
		h.fail(w, r, err)
		return
	}
	writeMessage(w, http.StatusOK, "Inseto ID %d deletado.", id)
}
