package repo

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// fakeExec records executed queries and serves canned rows, standing in for
// the pgx pool in repository tests.
type fakeExec struct {
	execQueries  []string
	execArgs     [][]any
	execErr      error
	rowsAffected int64

	rowScan func(dest ...any) error

	queryRows []func(dest ...any) error
	queryErr  error
}

func (f *fakeExec) Exec(ctx context.Context, query string, args ...any) (pgconn.CommandTag, error) {
	f.execQueries = append(f.execQueries, query)
	f.execArgs = append(f.execArgs, args)
	if f.execErr != nil {
		return pgconn.CommandTag{}, f.execErr
	}
	return pgconn.NewCommandTag(fmt.Sprintf("UPDATE %d", f.rowsAffected)), nil
}

func (f *fakeExec) QueryRow(ctx context.Context, query string, args ...any) pgx.Row {
	f.execQueries = append(f.execQueries, query)
	f.execArgs = append(f.execArgs, args)
	if f.rowScan == nil {
		return simpleRow{scan: func(dest ...any) error { return pgx.ErrNoRows }}
	}
	return simpleRow{scan: f.rowScan}
}

func (f *fakeExec) Query(ctx context.Context, query string, args ...any) (pgx.Rows, error) {
	f.execQueries = append(f.execQueries, query)
	f.execArgs = append(f.execArgs, args)
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	return &fakeRows{scans: f.queryRows}, nil
}

type simpleRow struct {
	scan func(dest ...any) error
}

func (r simpleRow) Scan(dest ...any) error { return r.scan(dest...) }

type fakeRows struct {
	scans []func(dest ...any) error
	idx   int
}

func (r *fakeRows) Next() bool {
	if r.idx >= len(r.scans) {
		return false
	}
	r.idx++
	return true
}

func (r *fakeRows) Scan(dest ...any) error { return r.scans[r.idx-1](dest...) }

func (r *fakeRows) Close()                                       {}
func (r *fakeRows) Err() error                                   { return nil }
func (r *fakeRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeRows) Values() ([]any, error) {
	return nil, fmt.Errorf("values not supported in test rows")
}
func (r *fakeRows) RawValues() [][]byte { return nil }
func (r *fakeRows) Conn() *pgx.Conn     { return nil }

// scanInto builds a row scanner assigning the given values positionally.
func scanInto(vals ...any) func(dest ...any) error {
	return func(dest ...any) error {
		if len(dest) != len(vals) {
			return fmt.Errorf("scan arity mismatch: %d dest, %d vals", len(dest), len(vals))
		}
		for i, d := range dest {
			if err := assign(d, vals[i]); err != nil {
				return fmt.Errorf("column %d: %w", i, err)
			}
		}
		return nil
	}
}

func assign(dest, val any) error {
	switch d := dest.(type) {
	case *string:
		*d, _ = val.(string)
	case *int:
		*d, _ = val.(int)
	case *int64:
		*d, _ = val.(int64)
	case *float64:
		*d, _ = val.(float64)
	case *bool:
		*d, _ = val.(bool)
	case *time.Time:
		*d, _ = val.(time.Time)
	default:
		return fmt.Errorf("unsupported dest type %T", dest)
	}
	return nil
}
