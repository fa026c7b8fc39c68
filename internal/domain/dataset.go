package domain

import "slices"

// Dataset is an ordered, read-only sequence of normalized records.
// It is loaded once per session and shared by every query.
type Dataset struct {
	records []Record
}

// NewDataset copies records into a new Dataset.
func NewDataset(records []Record) *Dataset {
	return &Dataset{records: slices.Clone(records)}
}

// Len returns the number of records. A nil Dataset is empty.
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.records)
}

// Records returns a copy of all records in load order.
func (d *Dataset) Records() []Record {
	if d == nil {
		return nil
	}
	return slices.Clone(d.records)
}

// Where returns the records matching m, in load order.
func (d *Dataset) Where(m Match) []Record {
	if d == nil {
		return nil
	}
	var out []Record
	for _, r := range d.records {
		if m.Matches(r) {
			out = append(out, r)
		}
	}
	return out
}

// Any reports whether at least one record matches m.
func (d *Dataset) Any(m Match) bool {
	if d == nil {
		return false
	}
	for _, r := range d.records {
		if m.Matches(r) {
			return true
		}
	}
	return false
}
