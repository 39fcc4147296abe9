package dataset

import (
	"fundpulse/pkg/contracts/domain"
)

// Table is an immutable, ordered collection of funding records loaded
// once at startup. Row order is the source file order, which for the
// known datasets is chronologically ascending. No row is ever added,
// removed, or edited after load, so a Table may be shared freely
// across goroutines.
type Table struct {
	records []domain.FundingRecord
}

// NewTable wraps the given records. The slice is owned by the Table
// after this call and must not be mutated by the caller.
func NewTable(records []domain.FundingRecord) *Table {
	return &Table{records: records}
}

// Len returns the number of records.
func (t *Table) Len() int {
	return len(t.records)
}

// Records returns the underlying record slice in load order. Callers
// must treat it as read-only.
func (t *Table) Records() []domain.FundingRecord {
	return t.records
}

// Each calls fn for every record in load order.
func (t *Table) Each(fn func(domain.FundingRecord)) {
	for _, rec := range t.records {
		fn(rec)
	}
}
