package inventory

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestWeightedAverageCost(t *testing.T) {
	d := decimal.RequireFromString
	cases := []struct {
		name     string
		onHand   int
		current  string
		received int
		unit     string
		want     string
	}{
		{"mismo costo", 10, "5.00", 10, "5.00", "5"},
		{"promedio", 8, "120.00", 12, "110.00", "114"},
		{"sin existencia previa", 0, "0", 4, "9.99", "9.99"},
		{"redondeo", 1, "1.00", 2, "2.00", "1.67"},
		{"sin unidades", 0, "3.00", 0, "4.00", "0"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := WeightedAverageCost(tc.onHand, d(tc.current), tc.received, d(tc.unit))
			assert.True(t, d(tc.want).Equal(got), "got %s", got)
		})
	}
}
