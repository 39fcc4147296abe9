package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFundingRecord_InvestorNames(t *testing.T) {
	tests := []struct {
		name      string
		investors string
		want      []string
	}{
		{"single", "Sequoia", []string{"Sequoia"}},
		{"comma separated", "Sequoia, Accel,Tiger", []string{"Sequoia", "Accel", "Tiger"}},
		{"padded fragments", "  Sequoia ,  Accel  ", []string{"Sequoia", "Accel"}},
		{"empty fragments dropped", "Sequoia,,Accel,", []string{"Sequoia", "Accel"}},
		{"empty field", "", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := FundingRecord{Investors: tt.investors}
			assert.Equal(t, tt.want, r.InvestorNames())
		})
	}
}

func TestFundingRecord_HasInvestor(t *testing.T) {
	r := FundingRecord{Investors: "Sequoia Capital India, Accel"}

	assert.True(t, r.HasInvestor("Sequoia Capital India"))
	assert.True(t, r.HasInvestor("Accel"))
	// Substring containment over-matches short names.
	assert.True(t, r.HasInvestor("Sequoia"))
	assert.False(t, r.HasInvestor("Tiger"))
	assert.False(t, r.HasInvestor("accel"))
}
