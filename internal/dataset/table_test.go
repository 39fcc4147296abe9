package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"fundpulse/pkg/contracts/domain"
)

func TestTable(t *testing.T) {
	records := []domain.FundingRecord{
		{StartupName: "Alpha"},
		{StartupName: "Beta"},
	}
	tbl := NewTable(records)

	assert.Equal(t, 2, tbl.Len())
	assert.Equal(t, records, tbl.Records())

	var names []string
	tbl.Each(func(r domain.FundingRecord) {
		names = append(names, r.StartupName)
	})
	assert.Equal(t, []string{"Alpha", "Beta"}, names)
}

func TestTable_Empty(t *testing.T) {
	tbl := NewTable(nil)
	assert.Equal(t, 0, tbl.Len())

	called := false
	tbl.Each(func(domain.FundingRecord) { called = true })
	assert.False(t, called)
}
