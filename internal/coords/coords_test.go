package coords

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSexagesimal(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
	}{
		{"north full", "N37-27-45", 37.4625},
		{"south negates", "S37-27-45", -37.4625},
		{"east full", "E129-21-07.2", 129.352},
		{"west negates", "W129-21-07.2", -129.352},
		{"degrees and minutes only", "N37-30", 37.5},
		{"degrees only", "N37", 37.0},
		{"fractional seconds", "N37-27-45.0023", 37.46250063888889},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Parse(tt.input)
			assert.True(t, ok)
			assert.InDelta(t, tt.want, got, 1e-6)
		})
	}
}

func TestParseDecimal(t *testing.T) {
	got, ok := Parse("35.5936")
	assert.True(t, ok)
	assert.InDelta(t, 35.5936, got, 1e-9)

	got, ok = Parse("-129.3519")
	assert.True(t, ok)
	assert.InDelta(t, -129.3519, got, 1e-9)
}

func TestParseMalformed(t *testing.T) {
	for _, input := range []string{"", "   ", "N", "Nabc-12", "N37-xx-45", "N37-27-45-9", "notanumber"} {
		_, ok := Parse(input)
		assert.False(t, ok, "input %q should not parse", input)
	}
}
