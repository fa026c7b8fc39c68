package importer

import (
	"fmt"
	"strings"

	"github.com/Tausif-Mahmud/xad-recruitment-db/internal/domain"
)

// Column headers every source must provide (after trimming).
const (
	ColRegion      = "Region"
	ColProject     = "Project"
	ColSubDivision = "Sub_Division"
	ColStaffLead   = "Staff_Lead"
	ColRole        = "Role"
)

// RequiredColumns lists the headers in canonical order.
var RequiredColumns = []string{ColRegion, ColProject, ColSubDivision, ColStaffLead, ColRole}

// RawTable is an untyped grid of cells as read from a data source.
// Rows may be shorter than Header; missing cells read as blank.
type RawTable struct {
	Source string
	Header []string
	Rows   [][]string
}

// NewRawTable splits a grid whose first row is the header.
// An empty grid yields a table with no header, which fails column validation.
func NewRawTable(source string, grid [][]string) *RawTable {
	t := &RawTable{Source: source}
	if len(grid) == 0 {
		return t
	}
	t.Header = grid[0]
	t.Rows = grid[1:]
	return t
}

// StaffPolicy decides what a blank Staff_Lead becomes.
type StaffPolicy string

const (
	// StaffPolicyUnspecified fills blank staff with "Unspecified".
	StaffPolicyUnspecified StaffPolicy = "unspecified"
	// StaffPolicyManagerRequired fills blank staff with "Manager Required".
	StaffPolicyManagerRequired StaffPolicy = "manager_required"
)

// ParseStaffPolicy accepts the configuration spelling of a policy.
// Empty input selects StaffPolicyUnspecified.
func ParseStaffPolicy(s string) (StaffPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(StaffPolicyUnspecified):
		return StaffPolicyUnspecified, nil
	case string(StaffPolicyManagerRequired), "manager-required":
		return StaffPolicyManagerRequired, nil
	}
	return "", fmt.Errorf("unknown staff policy %q (want %q or %q)", s, StaffPolicyUnspecified, StaffPolicyManagerRequired)
}

// fill returns the value written for a blank Staff_Lead.
func (p StaffPolicy) fill() string {
	if p == StaffPolicyManagerRequired {
		return domain.ManagerRequired
	}
	return domain.Unspecified
}

// DefaultNullTokens are cell values read as missing, in addition to blanks.
var DefaultNullTokens = []string{"nan", "NaN", "NULL", "null", "N/A", "n/a", "#N/A"}

// Options controls normalization.
type Options struct {
	StaffPolicy StaffPolicy
	NullTokens  []string
}

// DefaultOptions returns the normalization settings used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		StaffPolicy: StaffPolicyUnspecified,
		NullTokens:  DefaultNullTokens,
	}
}
