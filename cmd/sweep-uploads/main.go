// Command sweep-uploads deletes stored images that no insect attachment or
// profile photo points to. Such files are left behind when a best-effort
// delete failed. Run it from cron; --dry-run only lists them.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/entomoguide-backend/internal/adapter/postgres"
	"github.com/heartmarshall/entomoguide-backend/internal/adapter/postgres/account"
	"github.com/heartmarshall/entomoguide-backend/internal/adapter/postgres/attachment"
	"github.com/heartmarshall/entomoguide-backend/internal/app"
	"github.com/heartmarshall/entomoguide-backend/internal/config"
)

func main() {
	dryRun := flag.Bool("dry-run", false, "list orphaned files without deleting them")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	logger := app.NewLogger(cfg.Log, os.Stderr)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	if err := run(ctx, cfg, logger, *dryRun); err != nil {
		logger.Error("sweep failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger, dryRun bool) error {
	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	store, err := app.NewStore(ctx, cfg.Storage)
	if err != nil {
		return err
	}

	stored, err := store.List(ctx)
	if err != nil {
		return fmt.Errorf("list storage: %w", err)
	}

	attached, err := attachment.New(pool).AllLocators(ctx)
	if err != nil {
		return err
	}
	photos, err := account.New(pool).ProfilePhotos(ctx)
	if err != nil {
		return err
	}

	orphans := orphaned(stored, attached, photos)
	logger.Info("sweep scanned storage",
		slog.Int("stored", len(stored)),
		slog.Int("referenced", len(attached)+len(photos)),
		slog.Int("orphaned", len(orphans)),
		slog.Bool("dry_run", dryRun),
	)

	var failed int
	for _, loc := range orphans {
		if dryRun {
			logger.Info("orphaned file", slog.String("locator", loc))
			continue
		}
		if err := store.Delete(ctx, loc); err != nil {
			failed++
			logger.Warn("delete orphan", slog.String("locator", loc), slog.String("error", err.Error()))
			continue
		}
		logger.Info("deleted orphan", slog.String("locator", loc))
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d orphaned files could not be deleted", failed, len(orphans))
	}
	return nil
}

// orphaned returns the stored locators not present in any reference list,
// in stored order.
func orphaned(stored []string, refs ...[]string) []string {
	seen := make(map[string]struct{})
	for _, list := range refs {
		for _, loc := range list {
			seen[loc] = struct{}{}
		}
	}

	var out []string
	for _, loc := range stored {
		if _, ok := seen[loc]; !ok {
			out = append(out, loc)
		}
	}
	return out
}
