package declaration

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lines(pairs ...[2]float64) []Commodity {
	items := make([]Commodity, len(pairs))
	for i, s := range pairs {
		items[i] = Commodity{Quantity: s[0], UnitPrice: s[1]}
	}
	return items
}

func allocatedSum(items []Commodity) float64 {
	var total float64
	for _, item := range items {
		total += item.AllocatedWeightKG
	}
	return round3(total)
}

func TestAllocateWeightsByValue(t *testing.T) {
	// Values 100, 300 -> 25% / 75% of 100kg.
	items := AllocateWeights(lines([2]float64{1, 100}, [2]float64{3, 100}), 100)

	require.Len(t, items, 2)
	assert.InDelta(t, 25.0, items[0].AllocatedWeightKG, 0.001)
	assert.InDelta(t, 75.0, items[1].AllocatedWeightKG, 0.001)
	assert.Equal(t, 100.0, allocatedSum(items))
}

func TestAllocateWeightsQuantityFallback(t *testing.T) {
	// All prices zero: split proportionally to quantity.
	items := AllocateWeights(lines([2]float64{2, 0}, [2]float64{8, 0}), 50)

	assert.InDelta(t, 10.0, items[0].AllocatedWeightKG, 0.001)
	assert.InDelta(t, 40.0, items[1].AllocatedWeightKG, 0.001)
	assert.Equal(t, 50.0, allocatedSum(items))
}

func TestAllocateWeightsEvenSplitFallback(t *testing.T) {
	// Quantities and prices all zero: even split.
	items := AllocateWeights(lines([2]float64{0, 0}, [2]float64{0, 0}, [2]float64{0, 0}), 9)

	for _, item := range items {
		assert.InDelta(t, 3.0, item.AllocatedWeightKG, 0.001)
	}
	assert.Equal(t, 9.0, allocatedSum(items))
}

func TestAllocateWeightsRoundingResidue(t *testing.T) {
	// Three equal lines over a weight that does not divide evenly by 3.
	// Raw allocations are 33.333... each; the heaviest line absorbs the
	// residue so the total matches exactly.
	items := AllocateWeights(lines([2]float64{1, 10}, [2]float64{1, 10}, [2]float64{1, 10}), 100)

	assert.Equal(t, 100.0, allocatedSum(items))
	for _, item := range items {
		assert.GreaterOrEqual(t, item.AllocatedWeightKG, 0.0)
	}
}

func TestAllocateWeightsSanitizesNegativeInputs(t *testing.T) {
	// Negative quantity/price lines count as zero value and receive no
	// weight while positive lines split normally.
	items := AllocateWeights(lines([2]float64{-5, 100}, [2]float64{2, 50}), 20)

	assert.InDelta(t, 0.0, items[0].AllocatedWeightKG, 0.001)
	assert.InDelta(t, 20.0, items[1].AllocatedWeightKG, 0.001)
	assert.Equal(t, 20.0, allocatedSum(items))
}

func TestAllocateWeightsNoItems(t *testing.T) {
	assert.Empty(t, AllocateWeights(nil, 100))
	assert.Empty(t, AllocateWeights([]Commodity{}, 100))
}

func TestAllocateWeightsNonPositiveTotal(t *testing.T) {
	items := AllocateWeights(lines([2]float64{1, 100}), 0)
	assert.Equal(t, 0.0, items[0].AllocatedWeightKG)

	items = AllocateWeights(lines([2]float64{1, 100}), -5)
	assert.Equal(t, 0.0, items[0].AllocatedWeightKG)
}

func TestAllocateWeightsTotalPreservedAcrossShapes(t *testing.T) {
	tests := []struct {
		name  string
		items []Commodity
		total float64
	}{
		{name: "many uneven lines", items: lines([2]float64{1, 3.33}, [2]float64{7, 0.01}, [2]float64{2, 199.99}, [2]float64{5, 42}), total: 500},
		{name: "tiny total", items: lines([2]float64{1, 1}, [2]float64{1, 2}, [2]float64{1, 3}), total: 0.01},
		{name: "single line", items: lines([2]float64{3, 17}), total: 123.456},
		{name: "mixed zero and nonzero values", items: lines([2]float64{4, 0}, [2]float64{1, 250}), total: 75},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := AllocateWeights(tt.items, tt.total)
			assert.Equal(t, round3(tt.total), allocatedSum(items))
			for i, item := range items {
				assert.GreaterOrEqual(t, item.AllocatedWeightKG, 0.0, "line %d went negative", i)
			}
		})
	}
}
