// Command promote makes an existing account an active administrator.
// It is used to bootstrap the first admin, who can then approve everyone else.
//
// Usage:
//
//	promote --email=ana@example.com
//
// Configuration is read the same way as the server (CONFIG_PATH or env).
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
	"github.com/heartmarshall/entomoguide-backend/internal/app"
	"github.com/heartmarshall/entomoguide-backend/internal/config"
	"github.com/heartmarshall/entomoguide-backend/internal/domain"
)

func main() {
	email := flag.String("email", "", "email of the account to promote")
	flag.Parse()

	if *email == "" {
		fmt.Fprintln(os.Stderr, "Usage: promote --email=user@example.com")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	logger := app.NewLogger(cfg.Log, os.Stderr)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	normalized := domain.NormalizeEmail(*email)
	affected, err := account.New(pool).PromoteToAdmin(ctx, normalized)
	if err != nil {
		logger.Error("promote failed", slog.String("email", normalized), slog.String("error", err.Error()))
		os.Exit(1)
	}

	if affected == 0 {
		logger.Warn("no account with that email", slog.String("email", normalized))
		os.Exit(1)
	}

	logger.Info("account promoted to admin", slog.String("email", normalized))
}
