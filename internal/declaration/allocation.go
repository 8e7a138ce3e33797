package declaration

import "math"

// AllocateWeights distributes a declared total gross weight across commodity
// lines.
//
// Primary: proportional to customs value per line (quantity * unit price).
// Fallback: proportional to quantity if the total value is zero, and an even
// split if the total quantity is zero as well.
//
// Allocations are rounded to 3 decimals and a single line absorbs the
// rounding residue so the allocated total matches totalWeight exactly.
// Negative allocations never survive: if balancing drives a line below
// zero, the deficit is redistributed over the remaining lines.
func AllocateWeights(items []Commodity, totalWeight float64) []Commodity {
	if len(items) == 0 || totalWeight <= 0 {
		return items
	}

	// Sanitise inputs: negative qty/price count as 0 for allocation purposes.
	values := make([]float64, len(items))
	quantities := make([]float64, len(items))
	var totalValue, totalQty float64

	for i, item := range items {
		qty := math.Max(item.Quantity, 0)
		price := math.Max(item.UnitPrice, 0)

		quantities[i] = qty
		values[i] = qty * price
		totalQty += qty
		totalValue += values[i]
	}

	raw := make([]float64, len(items))
	switch {
	case totalValue > 0:
		for i, v := range values {
			raw[i] = (v / totalValue) * totalWeight
		}
	case totalQty > 0:
		for i, q := range quantities {
			raw[i] = (q / totalQty) * totalWeight
		}
	default:
		// Everything is zero: split evenly.
		for i := range raw {
			raw[i] = totalWeight / float64(len(items))
		}
	}

	rounded := make([]float64, len(raw))
	for i, w := range raw {
		rounded[i] = round3(w)
	}

	// Balance on the heaviest line so small lines are not distorted.
	idx := argmax(rounded)
	diff := round3(totalWeight - sum(rounded))
	rounded[idx] = round3(rounded[idx] + diff)

	// If balancing caused a negative value (rare but possible), shift the
	// deficit onto the other lines proportionally.
	if rounded[idx] < 0 {
		deficit := -rounded[idx]
		rounded[idx] = 0

		pool := sum(rounded)
		if pool == 0 {
			pool = 1
		}
		for i := range rounded {
			if i == idx {
				continue
			}
			take := round3((rounded[i] / pool) * deficit)
			rounded[i] = round3(math.Max(rounded[i]-take, 0))
		}

		// Final micro-balance.
		finalDiff := round3(totalWeight - sum(rounded))
		j := argmax(rounded)
		rounded[j] = round3(rounded[j] + finalDiff)
	}

	for i := range items {
		items[i].AllocatedWeightKG = rounded[i]
	}

	return items
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func sum(values []float64) float64 {
	var total float64
	for _, v := range values {
		total += v
	}
	return total
}

func argmax(values []float64) int {
	idx := 0
	for i, v := range values {
		if v > values[idx] {
			idx = i
		}
	}
	return idx
}
