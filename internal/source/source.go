// Package source fetches the raw recruitment table from where it is kept:
// a local file, an HTTP endpoint, an S3 object or a Postgres table.
package source

import (
	"context"
	"fmt"
	"sync"

	"github.com/Tausif-Mahmud/xad-recruitment-db/internal/domain"
	"github.com/Tausif-Mahmud/xad-recruitment-db/internal/importer"
)

// Source loads the raw table. Failures are reported as *domain.DataError.
type Source interface {
	Load(ctx context.Context) (*importer.RawTable, error)
	Name() string
}

// Kind names a source implementation in configuration.
type Kind string

const (
	KindFile     Kind = "file"
	KindHTTP     Kind = "http"
	KindS3       Kind = "s3"
	KindPostgres Kind = "postgres"
)

// Spec describes which source to build.
type Spec struct {
	Kind     Kind
	Path     string
	URL      string
	Format   Format
	S3       S3Config
	Postgres PostgresConfig
}

// New builds the source described by spec.
func New(ctx context.Context, spec Spec) (Source, error) {
	switch spec.Kind {
	case KindFile, "":
		if spec.Path == "" {
			return nil, fmt.Errorf("file source needs a path")
		}
		return NewFile(spec.Path), nil
	case KindHTTP:
		h, err := NewHTTP(spec.URL, spec.Format, nil)
		if err != nil {
			return nil, err
		}
		return h, nil
	case KindS3:
		s, err := NewS3(ctx, spec.S3)
		if err != nil {
			return nil, err
		}
		return s, nil
	case KindPostgres:
		p, err := NewPostgres(spec.Postgres)
		if err != nil {
			return nil, err
		}
		return p, nil
	}
	return nil, fmt.Errorf("unknown source kind %q", spec.Kind)
}

func dataError(name string, err error) error {
	return &domain.DataError{Source: name, Err: err}
}

// Cached keeps the last successfully loaded table until Refresh.
type Cached struct {
	src Source

	mu    sync.Mutex
	table *importer.RawTable
}

// NewCached wraps src.
func NewCached(src Source) *Cached {
	return &Cached{src: src}
}

func (c *Cached) Name() string { return c.src.Name() }

// Load returns the cached table, fetching it on first use.
func (c *Cached) Load(ctx context.Context) (*importer.RawTable, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.table != nil {
		return c.table, nil
	}
	return c.fetchLocked(ctx)
}

// Refresh drops the cached table and fetches it again.
func (c *Cached) Refresh(ctx context.Context) (*importer.RawTable, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.table = nil
	return c.fetchLocked(ctx)
}

func (c *Cached) fetchLocked(ctx context.Context) (*importer.RawTable, error) {
	t, err := c.src.Load(ctx)
	if err != nil {
		return nil, err
	}
	c.table = t
	return t, nil
}
