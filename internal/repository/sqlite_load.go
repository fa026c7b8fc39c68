package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Tausif-Mahmud/xad-recruitment-db/internal/db"
	"github.com/Tausif-Mahmud/xad-recruitment-db/internal/domain"
)

// SQLiteLoadRepo implements LoadRepo.
type SQLiteLoadRepo struct {
	db db.DBTX
}

// NewSQLiteLoadRepo creates a new SQLiteLoadRepo.
func NewSQLiteLoadRepo(conn db.DBTX) *SQLiteLoadRepo {
	return &SQLiteLoadRepo{db: conn}
}

func (r *SQLiteLoadRepo) Create(ctx context.Context, l *domain.DatasetLoad) error {
	query := `INSERT INTO dataset_loads (id, source, row_count, staff_policy, loaded_at)
		VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		l.ID,
		l.Source,
		l.Rows,
		l.StaffPolicy,
		formatTime(l.LoadedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting dataset load: %w", err)
	}
	return nil
}

func (r *SQLiteLoadRepo) Latest(ctx context.Context) (*domain.DatasetLoad, error) {
	query := `SELECT id, source, row_count, staff_policy, loaded_at
		FROM dataset_loads ORDER BY loaded_at DESC, rowid DESC LIMIT 1`
	row := r.db.QueryRowContext(ctx, query)

	var l domain.DatasetLoad
	var loadedAt string
	if err := row.Scan(&l.ID, &l.Source, &l.Rows, &l.StaffPolicy, &loadedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("dataset load: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning dataset load: %w", err)
	}
	t, err := parseTime(loadedAt)
	if err != nil {
		return nil, err
	}
	l.LoadedAt = t
	return &l, nil
}

// List returns up to limit loads, newest first. A limit of 0 or less returns all.
func (r *SQLiteLoadRepo) List(ctx context.Context, limit int) ([]*domain.DatasetLoad, error) {
	if limit <= 0 {
		limit = -1
	}
	query := `SELECT id, source, row_count, staff_policy, loaded_at
		FROM dataset_loads ORDER BY loaded_at DESC, rowid DESC LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("listing dataset loads: %w", err)
	}
	defer rows.Close()

	var loads []*domain.DatasetLoad
	for rows.Next() {
		var l domain.DatasetLoad
		var loadedAt string
		if err := rows.Scan(&l.ID, &l.Source, &l.Rows, &l.StaffPolicy, &loadedAt); err != nil {
			return nil, fmt.Errorf("scanning dataset load: %w", err)
		}
		if l.LoadedAt, err = parseTime(loadedAt); err != nil {
			return nil, err
		}
		loads = append(loads, &l)
	}
	return loads, rows.Err()
}
