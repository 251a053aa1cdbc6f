package app

import (
	"net/http"

	"github.com/heartmarshall/entomoguide-backend/internal/transport/middleware"
	"github.com/heartmarshall/entomoguide-backend/internal/transport/rest"
)

const jsonBodyLimit = 1 << 20

type handlers struct {
	health      *rest.HealthHandler
	accounts    *rest.AccountHandler
	catalog     *rest.CatalogHandler
	attachments *rest.AttachmentHandler
	uploads     http.Handler
}

type routeMiddleware struct {
	auth   middleware.Middleware
	limit  func(scope string) middleware.Middleware
	json   middleware.Middleware
	upload middleware.Middleware
}

func routes(h handlers, mw routeMiddleware) *http.ServeMux {
	mux := http.NewServeMux()

	open := func(f http.HandlerFunc) http.Handler { return mw.json(f) }
	limited := func(scope string, f http.HandlerFunc) http.Handler {
		return middleware.Chain(mw.limit(scope), mw.json)(f)
	}
	user := func(f http.HandlerFunc) http.Handler { return middleware.Chain(mw.json, mw.auth)(f) }
	upload := func(f http.HandlerFunc) http.Handler { return middleware.Chain(mw.upload, mw.auth)(f) }
	admin := func(f http.HandlerFunc) http.Handler {
		return middleware.Chain(mw.json, mw.auth, middleware.AdminOnly)(f)
	}

	mux.HandleFunc("GET /{$}", h.health.Root)
	mux.HandleFunc("GET /hello-world", h.health.Hello)
	mux.HandleFunc("GET /live", h.health.Live)
	mux.HandleFunc("GET /ready", h.health.Ready)
	mux.HandleFunc("GET /health", h.health.Health)

	mux.Handle("POST /login", limited("login", h.accounts.Login))
	mux.Handle("POST /clientes", limited("register", h.accounts.Register))
	mux.Handle("GET /clientes", admin(h.accounts.ListActive))
	mux.Handle("GET /clientesPendentes", admin(h.accounts.ListPending))
	mux.Handle("PUT /aprovarUsuario", admin(h.accounts.Approve))
	mux.Handle("PUT /usuarios/{id}/pendente", admin(h.accounts.RevertToPending))
	mux.Handle("GET /clientes/{id}", user(h.accounts.Get))
	mux.Handle("PUT /clientes/{id}", upload(h.accounts.Update))
	mux.Handle("DELETE /clientes/{id}", user(h.accounts.Delete))
	mux.Handle("GET /dashboard/status-usuarios", admin(h.accounts.StatusCounts))
	mux.Handle("GET /dashboard/cadastros-por-dia", admin(h.accounts.RegistrationsPerDay))

	mux.Handle("GET /categorias", open(h.catalog.ListCategories))
	mux.Handle("GET /categorias/{id}", open(h.catalog.GetCategory))
	mux.Handle("POST /categorias", admin(h.catalog.CreateCategory))
	mux.Handle("PUT /categorias/{id}", admin(h.catalog.UpdateCategory))
	mux.Handle("DELETE /categorias/{id}", admin(h.catalog.DeleteCategory))

	mux.Handle("GET /insetos", open(h.catalog.ListInsects))
	mux.Handle("GET /insetos/{id}", open(h.catalog.GetInsect))
	mux.Handle("POST /insetos", admin(h.catalog.CreateInsect))
	mux.Handle("PUT /insetos/{id}", admin(h.catalog.UpdateInsect))
	mux.Handle("DELETE /insetos/{id}", admin(h.catalog.DeleteInsect))

	mux.Handle("GET /insetos/{id}/imagens", open(h.attachments.List))
	mux.Handle("POST /insetos/{id}/imagem", upload(h.attachments.Attach))
	mux.Handle("POST /insetos/{id}/imagens", upload(h.attachments.AttachMany))
	mux.Handle("PATCH /insetos/imagens/{id}", user(h.attachments.UpdateCaption))
	mux.Handle("DELETE /insetos/imagens/{id}", user(h.attachments.Detach))

	mux.Handle("GET /uploads/", h.uploads)

	return mux
}
