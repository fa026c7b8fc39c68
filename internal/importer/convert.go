package importer

import (
	"slices"
	"strings"

	"github.com/Tausif-Mahmud/xad-recruitment-db/internal/domain"
)

// Normalize converts a raw table into the canonical Dataset.
// It fails with *domain.DataError when required columns are absent; otherwise
// every row is kept and every field is filled.
func Normalize(table *RawTable, opts Options) (*domain.Dataset, error) {
	if table == nil {
		return nil, &domain.DataError{Err: domain.ErrMissingColumns}
	}
	if errs := ValidateColumns(table.Header); len(errs) > 0 {
		return nil, missingColumnsError(table.Source, table.Header)
	}
	if opts.StaffPolicy == "" {
		opts.StaffPolicy = StaffPolicyUnspecified
	}

	idx := columnIndex(table.Header)
	records := make([]domain.Record, 0, len(table.Rows))
	for _, row := range table.Rows {
		cell := func(col string) string {
			v := cellValue(row, idx[col])
			if slices.Contains(opts.NullTokens, v) {
				return ""
			}
			return v
		}
		records = append(records, NormalizeRecord(domain.Record{
			Region:      cell(ColRegion),
			Project:     cell(ColProject),
			SubDivision: cell(ColSubDivision),
			StaffLead:   cell(ColStaffLead),
			Role:        cell(ColRole),
		}, opts.StaffPolicy))
	}
	return domain.NewDataset(records), nil
}

// NormalizeRecord fills blank fields of a single record.
// Project and Sub_Division are considered together: a blank one is taken from
// the other, and both become "Unspecified" when both are blank.
func NormalizeRecord(r domain.Record, policy StaffPolicy) domain.Record {
	project := strings.TrimSpace(r.Project)
	sub := strings.TrimSpace(r.SubDivision)

	return domain.Record{
		Region:      domain.CoalesceTrimmed(r.Region, domain.UnspecifiedRegion),
		Project:     domain.CoalesceStr(project, sub, domain.Unspecified),
		SubDivision: domain.CoalesceStr(sub, project, domain.Unspecified),
		StaffLead:   domain.CoalesceTrimmed(r.StaffLead, policy.fill()),
		Role:        domain.CoalesceTrimmed(r.Role, domain.Unspecified),
	}
}

func cellValue(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}
