package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParts(t *testing.T) {
	parts := Parts()
	require.Len(t, parts, 10)

	seen := make(map[string]bool)
	for _, p := range parts {
		assert.False(t, seen[p.PartID], "duplicate part ID %s", p.PartID)
		seen[p.PartID] = true

		assert.NotEmpty(t, p.DescriptionEN)
		assert.NotEmpty(t, p.DescriptionTH)
		assert.NotEmpty(t, p.Unit)
		assert.Greater(t, p.DefaultQuantity, 0)

		// Every catalog part maps to a known HS heading.
		heading, ok := HeadingFor(p.HSCode)
		require.True(t, ok, "part %s has unknown HS code %s", p.PartID, p.HSCode)
		assert.Equal(t, p.WCOCode, heading.Code)
	}
}

func TestPartsReturnsCopy(t *testing.T) {
	parts := Parts()
	parts[0].DescriptionEN = "mutated"

	assert.Equal(t, "Front brake pads", Parts()[0].DescriptionEN)
}

func TestFindPart(t *testing.T) {
	p, ok := FindPart("P004")
	require.True(t, ok)
	assert.Equal(t, "Spark plugs", p.DescriptionEN)
	assert.Equal(t, 4, p.DefaultQuantity)

	// Case-insensitive lookup.
	_, ok = FindPart("p010")
	assert.True(t, ok)

	_, ok = FindPart("P999")
	assert.False(t, ok)
}

func TestFilterParts(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{name: "empty query returns everything", query: "", want: []string{"P001", "P002", "P003", "P004", "P005", "P006", "P007", "P008", "P009", "P010"}},
		{name: "english description", query: "filter", want: []string{"P002", "P003"}},
		{name: "case insensitive", query: "BRAKE", want: []string{"P001"}},
		{name: "part id", query: "p008", want: []string{"P008"}},
		{name: "thai description", query: "หัวเทียน", want: []string{"P004"}},
		{name: "no match", query: "gearbox", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []string
			for _, p := range FilterParts(tt.query) {
				got = append(got, p.PartID)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHeadingFor(t *testing.T) {
	// Exact heading.
	h, ok := HeadingFor("8708.30")
	require.True(t, ok)
	assert.Equal(t, "Brakes and brake parts", h.Description)

	// Full national code resolves through its heading prefix.
	h, ok = HeadingFor("8421.31.00")
	require.True(t, ok)
	assert.Equal(t, "8421.31", h.Code)

	_, ok = HeadingFor("9999.99")
	assert.False(t, ok)

	_, ok = HeadingFor("")
	assert.False(t, ok)
}
