package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Tausif-Mahmud/xad-recruitment-db/internal/db"
	"github.com/Tausif-Mahmud/xad-recruitment-db/internal/domain"
)

// SQLiteRecordRepo implements RecordRepo. It stores the rows of the most
// recent load only.
type SQLiteRecordRepo struct {
	db db.DBTX
}

// NewSQLiteRecordRepo creates a new SQLiteRecordRepo.
func NewSQLiteRecordRepo(conn db.DBTX) *SQLiteRecordRepo {
	return &SQLiteRecordRepo{db: conn}
}

// ReplaceAll drops every stored record and inserts records under loadID.
// Run it inside a unit of work so readers never see a partial dataset.
func (r *SQLiteRecordRepo) ReplaceAll(ctx context.Context, loadID string, records []domain.Record) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM records`); err != nil {
		return fmt.Errorf("clearing records: %w", err)
	}
	query := `INSERT INTO records (load_id, seq, region, project, sub_division, staff_lead, role)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	for i, rec := range records {
		_, err := r.db.ExecContext(ctx, query,
			loadID, i, rec.Region, rec.Project, rec.SubDivision, rec.StaffLead, rec.Role,
		)
		if err != nil {
			return fmt.Errorf("inserting record %d: %w", i, err)
		}
	}
	return nil
}

func (r *SQLiteRecordRepo) List(ctx context.Context) ([]domain.Record, error) {
	query := `SELECT region, project, sub_division, staff_lead, role FROM records ORDER BY seq`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing records: %w", err)
	}
	defer rows.Close()
	return scanRecords(rows)
}

// ListVacancies returns the records whose staff lead is still to be hired.
func (r *SQLiteRecordRepo) ListVacancies(ctx context.Context) ([]domain.Record, error) {
	query := `SELECT region, project, sub_division, staff_lead, role FROM records
		WHERE staff_lead = ? ORDER BY region, project, sub_division, role`
	rows, err := r.db.QueryContext(ctx, query, domain.ManagerRequired)
	if err != nil {
		return nil, fmt.Errorf("listing vacancies: %w", err)
	}
	defer rows.Close()
	return scanRecords(rows)
}

// CountBy returns record counts per value of dim, largest first.
func (r *SQLiteRecordRepo) CountBy(ctx context.Context, dim Dimension) ([]Count, error) {
	col, err := column(dim)
	if err != nil {
		return nil, err
	}
	query := fmt.Sprintf(`SELECT %[1]s, COUNT(*) FROM records GROUP BY %[1]s ORDER BY COUNT(*) DESC, %[1]s`, col)
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("counting by %s: %w", dim, err)
	}
	defer rows.Close()

	var counts []Count
	for rows.Next() {
		var c Count
		if err := rows.Scan(&c.Value, &c.Count); err != nil {
			return nil, fmt.Errorf("scanning count: %w", err)
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}

func (r *SQLiteRecordRepo) Summary(ctx context.Context) (Summary, error) {
	query := `SELECT
		COUNT(*),
		COUNT(DISTINCT region),
		COUNT(DISTINCT region || char(31) || project),
		COUNT(DISTINCT region || char(31) || project || char(31) || sub_division),
		COUNT(DISTINCT staff_lead),
		COUNT(DISTINCT role),
		COALESCE(SUM(staff_lead = ?), 0)
		FROM records`
	var s Summary
	err := r.db.QueryRowContext(ctx, query, domain.ManagerRequired).Scan(
		&s.Records, &s.Regions, &s.Projects, &s.SubDivisions, &s.Staff, &s.Roles, &s.Vacancies,
	)
	if err != nil {
		return Summary{}, fmt.Errorf("summarizing records: %w", err)
	}
	return s, nil
}

func scanRecords(rows *sql.Rows) ([]domain.Record, error) {
	var out []domain.Record
	for rows.Next() {
		var rec domain.Record
		if err := rows.Scan(&rec.Region, &rec.Project, &rec.SubDivision, &rec.StaffLead, &rec.Role); err != nil {
			return nil, fmt.Errorf("scanning record: %w", err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}
