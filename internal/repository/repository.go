package repository

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
)

// DBTX is an interface abstracting *sqlx.DB and *sqlx.Tx for repository use.
// Queries are written with "?" placeholders and passed through Rebind.
type DBTX interface {
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	Rebind(query string) string
}

// maxInListSize keeps IN lists within Oracle's 1000 expression limit.
const maxInListSize = 1000

// selectIn runs query once per batch of at most maxInListSize ids and
// concatenates the rows. The query's last placeholder is the IN (?) clause;
// args fill the placeholders before it. Ordering holds within a batch only.
func selectIn[T any](ctx context.Context, exec DBTX, query string, ids []string, args ...interface{}) ([]T, error) {
	var out []T
	for start := 0; start < len(ids); start += maxInListSize {
		end := min(start+maxInListSize, len(ids))
		batchArgs := append(append(make([]interface{}, 0, len(args)+1), args...), ids[start:end])
		expanded, expandedArgs, err := sqlx.In(query, batchArgs...)
		if err != nil {
			return nil, err
		}
		var rows []T
		if err := exec.SelectContext(ctx, &rows, exec.Rebind(expanded), expandedArgs...); err != nil {
			return nil, err
		}
		out = append(out, rows...)
	}
	return out, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
