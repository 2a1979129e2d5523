//go:generate mockgen -source=feed_repository.go -destination=mock/mock_feed_repository.go -package=mock
//go:generate mockgen -source=post_repository.go -destination=mock/mock_post_repository.go -package=mock
//go:generate mockgen -source=scroll_repository.go -destination=mock/mock_scroll_repository.go -package=mock
package repository

import (
	"context"
	"database/sql"
)

// dbtx is satisfied by both *sql.DB and *sql.Tx, so the same
// repositories work standalone and inside a snapshot transaction.
type dbtx interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
