package valueobject

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCodePrefix(t *testing.T) {
	tests := []struct {
		name     string
		operator string
		want     string
	}{
		{"long name", "Joana", "JOA"},
		{"exact length", "ana", "ANA"},
		{"short name kept whole", "Jo", "JO"},
		{"accented", "élodie", "ÉLO"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CodePrefix(tt.operator))
		})
	}
}

func TestNextProductCode(t *testing.T) {
	tests := []struct {
		name     string
		prefix   string
		existing []string
		want     string
	}{
		{"no codes", "JOA", nil, "JOA001"},
		{"gap after soft delete", "JOA", []string{"JOA001", "JOA003"}, "JOA004"},
		{"unparsable suffix counts as zero", "JOA", []string{"JOAX", "JOA"}, "JOA001"},
		{"leading digits are read", "JOA", []string{"JOA12b"}, "JOA013"},
		{"other prefixes ignored", "JOA", []string{"MAR009", "JOA002"}, "JOA003"},
		{"no truncation past three digits", "JOA", []string{"JOA999"}, "JOA1000"},
		{"short prefix", "JO", []string{"JO041"}, "JO042"},
		{"oversized suffix counts as zero", "JOA", []string{"JOA99999999999999999999", "JOA004"}, "JOA005"},
		{"longest accepted suffix", "JOA", []string{"JOA999999999"}, "JOA1000000000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NextProductCode(tt.prefix, tt.existing)
			assert.Equal(t, tt.want, got)
			assert.NotContains(t, tt.existing, got)
		})
	}
}
