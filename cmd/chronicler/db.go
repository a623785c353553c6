package main

import (
	"context"
	"fmt"
	"strings"

	"chronicler/internal/config"
	"chronicler/internal/store"
	"chronicler/internal/store/postgres"
	"chronicler/internal/store/sqlite"
)

// openStore picks the backend from the DSN scheme.
func openStore(ctx context.Context, cfg *config.Config) (store.Store, error) {
	dsn := cfg.Database.DSN
	switch {
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return postgres.New(ctx, dsn)
	case strings.HasPrefix(dsn, "sqlite://"):
		return sqlite.New(ctx, dsn)
	default:
		return nil, fmt.Errorf("unsupported database DSN scheme: %s", dsn)
	}
}
