package units

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFactor(t *testing.T) {
	tests := []struct {
		unit string
		want float64
	}{
		{"ml", 1},
		{"cl", 10},
		{"dl", 100},
		{"liter", 1000},
		{"oz", 29.5735},
		{"pint", 473.176},
		{"quart", 946.353},
		{"gallon", 3785.41},
		{"g", 1},
		{"kg", 1000},
		{"lb", 453.592},
		{"dash", 0.92},
		{"drop", 0.05},
		{"pinch", 0.36},
		{"tsp", 4.2},
		{"tbsp", 12.6},
		// unknown units fall back to 1
		{"piece", 1},
		{"slice", 1},
		{"", 1},
		{"ML", 1},
	}

	for _, tt := range tests {
		t.Run(tt.unit, func(t *testing.T) {
			assert.Equal(t, tt.want, Factor(tt.unit))
		})
	}
}

func TestKnown(t *testing.T) {
	assert.True(t, Known("tbsp"))
	assert.False(t, Known("piece"))
	assert.False(t, Known("Oz"))
}

func TestConvert(t *testing.T) {
	assert.InDelta(t, 59.147, Convert(2, "oz", "ml"), 1e-9)
	assert.InDelta(t, 1.5, Convert(15, "ml", "cl"), 1e-9)
	assert.InDelta(t, 0.25, Convert(250, "g", "kg"), 1e-9)
	// mixed dimensions still produce a number
	assert.InDelta(t, 100, Convert(100, "g", "ml"), 1e-9)
	// unknown units behave like base units
	assert.InDelta(t, 3, Convert(3, "piece", "ml"), 1e-9)
}

func TestConvert_RoundTrip(t *testing.T) {
	symbols := Supported()
	for _, from := range symbols {
		for _, to := range symbols {
			const amount = 37.5
			back := Convert(Convert(amount, from, to), to, from)
			assert.InDelta(t, amount, back, 1e-9, "%s -> %s -> %s", from, to, from)
		}
	}
}

func TestTable_Sorted(t *testing.T) {
	table := Table()
	assert.Len(t, table, 16)
	for i := 1; i < len(table); i++ {
		assert.Less(t, table[i-1].Unit, table[i].Unit)
	}
}
