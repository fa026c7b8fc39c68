package source

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/Tausif-Mahmud/xad-recruitment-db/internal/importer"
)

// File reads a local CSV or workbook. Path may be a doublestar glob, in which
// case the most recently modified match is read.
type File struct {
	Path string
}

// NewFile returns a source for path.
func NewFile(path string) *File {
	return &File{Path: path}
}

func (f *File) Name() string { return f.Path }

// Load reads and decodes the file.
func (f *File) Load(ctx context.Context) (*importer.RawTable, error) {
	if err := ctx.Err(); err != nil {
		return nil, dataError(f.Path, err)
	}
	path, err := f.resolve()
	if err != nil {
		return nil, dataError(f.Path, err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, dataError(path, fmt.Errorf("read file: %w", err))
	}
	grid, err := Decode(path, data)
	if err != nil {
		return nil, dataError(path, err)
	}
	return importer.NewRawTable(path, grid), nil
}

func (f *File) resolve() (string, error) {
	pattern := filepath.ToSlash(f.Path)
	if !hasMeta(pattern) {
		return f.Path, nil
	}
	matches, err := doublestar.FilepathGlob(f.Path, doublestar.WithFilesOnly())
	if err != nil {
		return "", fmt.Errorf("glob %q: %w", f.Path, err)
	}
	return newest(matches, f.Path)
}

func hasMeta(pattern string) bool {
	for _, c := range pattern {
		switch c {
		case '*', '?', '[', '{':
			return true
		}
	}
	return false
}

// newest picks the most recently modified path. Ties go to the
// lexically greatest name so the choice is stable.
func newest(paths []string, pattern string) (string, error) {
	var best string
	var bestMod int64
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			continue
		}
		mod := info.ModTime().UnixNano()
		if best == "" || mod > bestMod || (mod == bestMod && p > best) {
			best, bestMod = p, mod
		}
	}
	if best == "" {
		return "", fmt.Errorf("%w: %s", ErrNoMatch, pattern)
	}
	return best, nil
}
