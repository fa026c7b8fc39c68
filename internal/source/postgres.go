package source

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"
	"strings"
	"sync"

	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" database/sql driver

	"github.com/Tausif-Mahmud/xad-recruitment-db/internal/importer"
)

const postgresDriver = "pgx"

var (
	sqlOpen = sql.Open
	openMu  sync.Mutex
)

var tableIdent = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*)?$`)

// PostgresConfig names the table that holds the recruitment rows.
type PostgresConfig struct {
	DSN   string
	Table string
}

// Postgres selects the five dataset columns from a table.
type Postgres struct {
	dsn   string
	table string
}

// NewPostgres validates cfg. The connection is opened per Load.
func NewPostgres(cfg PostgresConfig) (*Postgres, error) {
	if cfg.DSN == "" {
		return nil, fmt.Errorf("postgres source needs a dsn")
	}
	table := cfg.Table
	if table == "" {
		table = "recruitment"
	}
	if !tableIdent.MatchString(table) {
		return nil, fmt.Errorf("invalid postgres table name %q", table)
	}
	return &Postgres{dsn: cfg.DSN, table: table}, nil
}

func (p *Postgres) Name() string { return "postgres:" + p.table }

// selectQuery quotes each column since the headers are mixed case.
func (p *Postgres) selectQuery() string {
	cols := make([]string, len(importer.RequiredColumns))
	for i, c := range importer.RequiredColumns {
		cols[i] = `"` + c + `"`
	}
	return fmt.Sprintf("SELECT %s FROM %s", strings.Join(cols, ", "), p.table)
}

// Load reads every row. NULL cells become blanks for the normalizer.
func (p *Postgres) Load(ctx context.Context) (*importer.RawTable, error) {
	openMu.Lock()
	db, err := sqlOpen(postgresDriver, p.dsn)
	openMu.Unlock()
	if err != nil {
		return nil, dataError(p.Name(), fmt.Errorf("open postgres: %w", err))
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, p.selectQuery())
	if err != nil {
		return nil, dataError(p.Name(), fmt.Errorf("query: %w", err))
	}
	defer rows.Close()

	grid := [][]string{append([]string(nil), importer.RequiredColumns...)}
	for rows.Next() {
		var cells [5]sql.NullString
		if err := rows.Scan(&cells[0], &cells[1], &cells[2], &cells[3], &cells[4]); err != nil {
			return nil, dataError(p.Name(), fmt.Errorf("scan: %w", err))
		}
		row := make([]string, len(cells))
		for i, c := range cells {
			row[i] = c.String
		}
		grid = append(grid, row)
	}
	if err := rows.Err(); err != nil {
		return nil, dataError(p.Name(), fmt.Errorf("iterate rows: %w", err))
	}
	return importer.NewRawTable(p.Name(), grid), nil
}
