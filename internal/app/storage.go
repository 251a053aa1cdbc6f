package app

import (
	"context"
	"io"
	"net/http"

	"github.com/heartmarshall/entomoguide-backend/internal/adapter/storage/local"
	"github.com/heartmarshall/entomoguide-backend/internal/adapter/storage/s3"
	"github.com/heartmarshall/entomoguide-backend/internal/config"
)

// Store holds uploaded images. Handler serves them under /uploads/.
type Store interface {
	Put(ctx context.Context, filename string, r io.Reader) (string, error)
	Delete(ctx context.Context, locator string) error
	List(ctx context.Context) ([]string, error)
	Handler() http.Handler
}

// NewStore opens the storage driver selected by cfg.
func NewStore(ctx context.Context, cfg config.StorageConfig) (Store, error) {
	if cfg.IsS3() {
		return s3.New(ctx, cfg)
	}
	return local.New(cfg.UploadsDir)
}
