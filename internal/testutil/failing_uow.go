package testutil

import (
	"context"
	"database/sql"
	"sync/atomic"

	"github.com/Tausif-Mahmud/xad-recruitment-db/internal/db"
)

// FailingUoW wraps a UnitOfWork so that the FailOn-th write (counting from 1)
// inside each transaction returns Err. It interrupts a load part way through
// its inserts; reads pass through uncounted.
type FailingUoW struct {
	Inner  db.UnitOfWork
	FailOn int32
	Err    error
}

func (u *FailingUoW) WithinTx(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	return u.Inner.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return fn(ctx, &failingExec{DBTX: tx, failOn: u.FailOn, err: u.Err})
	})
}

type failingExec struct {
	db.DBTX
	writes atomic.Int32
	failOn int32
	err    error
}

func (f *failingExec) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	if f.writes.Add(1) == f.failOn {
		return nil, f.err
	}
	return f.DBTX.ExecContext(ctx, query, args...)
}
