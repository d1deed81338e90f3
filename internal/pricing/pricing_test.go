package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculate(t *testing.T) {
	t.Run("Valid weight", func(t *testing.T) {
		q := Calculate(12.5, "4")
		assert.Equal(t, 4.0, q.Weight)
		assert.Equal(t, 50.0, q.Total)
	})

	t.Run("Fractional weight keeps unrounded total", func(t *testing.T) {
		q := Calculate(10.0, "0.333")
		assert.Equal(t, 0.333, q.Weight)
		assert.InDelta(t, 3.33, q.Total, 0.004)
		assert.Equal(t, 3.33, Round2(q.Total))
	})

	t.Run("Whitespace trimmed before parse", func(t *testing.T) {
		q := Calculate(5.0, "  2.5 ")
		assert.Equal(t, 2.5, q.Weight)
		assert.Equal(t, 12.5, q.Total)
	})

	t.Run("Total equals weight times rate", func(t *testing.T) {
		rates := []float64{0.5, 1, 12.75, 999.99}
		weights := []string{"0.1", "1", "17.25", "2500"}
		for _, rate := range rates {
			for _, w := range weights {
				q := Calculate(rate, w)
				assert.Equal(t, Round2(q.Weight*rate), Round2(q.Total))
			}
		}
	})
}

func TestCalculateZeroCase(t *testing.T) {
	tests := []struct {
		name       string
		weightText string
	}{
		{"Empty", ""},
		{"Blank", "   "},
		{"Non-numeric", "abc"},
		{"Trailing unit", "5kg"},
		{"Zero", "0"},
		{"Negative", "-3"},
		{"NaN", "NaN"},
		{"Infinity", "Inf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := Calculate(10.0, tt.weightText)
			assert.Equal(t, Zero, q)
		})
	}
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 3.33, Round2(3.333))
	assert.Equal(t, 3.34, Round2(3.335))
	assert.Equal(t, 0.0, Round2(0))
	assert.Equal(t, 100.0, Round2(99.999))
}
