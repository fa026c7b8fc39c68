package importer

import (
	"fmt"
	"strings"

	"github.com/Tausif-Mahmud/xad-recruitment-db/internal/domain"
)

// columnIndex maps each trimmed header name to its first position.
func columnIndex(header []string) map[string]int {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		name := strings.TrimSpace(h)
		if _, seen := idx[name]; !seen {
			idx[name] = i
		}
	}
	return idx
}

// ValidateColumns checks that every required column is present after trimming.
// Returns one error per missing column.
func ValidateColumns(header []string) []error {
	idx := columnIndex(header)
	var errs []error
	for _, col := range RequiredColumns {
		if _, ok := idx[col]; !ok {
			errs = append(errs, fmt.Errorf("column %q is required", col))
		}
	}
	return errs
}

// missingColumnsError folds validation errors into a single DataError.
func missingColumnsError(source string, header []string) error {
	idx := columnIndex(header)
	var missing []string
	for _, col := range RequiredColumns {
		if _, ok := idx[col]; !ok {
			missing = append(missing, col)
		}
	}
	return &domain.DataError{
		Source: source,
		Err:    fmt.Errorf("%w: %s", domain.ErrMissingColumns, strings.Join(missing, ", ")),
	}
}
