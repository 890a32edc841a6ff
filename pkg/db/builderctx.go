package db

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// BeginTxWithBuilder starts a transaction and sets app.builder_id for RLS.
// Call tx.Rollback(ctx) on error paths; Commit on success.
func BeginTxWithBuilder(ctx context.Context, pool *pgxpool.Pool, builderID string) (pgx.Tx, error) {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	if _, err := tx.Exec(ctx, "SELECT set_config('app.builder_id', $1, true)", builderID); err != nil {
		_ = tx.Rollback(ctx)
		return nil, err
	}
	return tx, nil
}
