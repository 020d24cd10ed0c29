//go:build unit

package catalog_test

import (
	"testing"

	"github.com/cermartin/sr/internal/domain/catalog"

	"github.com/stretchr/testify/assert"
)

func TestParseDisplayPrice(t *testing.T) {
	tests := []struct {
		name    string
		display string
		want    int64
	}{
		{name: "plain pounds", display: "£200", want: 20000},
		{name: "with pence", display: "£45.50", want: 4550},
		{name: "thousands separator discarded", display: "£1,200", want: 120000},
		{name: "no symbol", display: "40", want: 4000},
		{name: "surrounding text stripped", display: "from £99.99 each", want: 9999},
		{name: "empty", display: "", want: 0},
		{name: "symbol only", display: "£", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, catalog.ParseDisplayPrice(tt.display))
		})
	}
}

func TestFormatPence(t *testing.T) {
	assert.Equal(t, "£200", catalog.FormatPence(20000))
	assert.Equal(t, "£45.50", catalog.FormatPence(4550))
	assert.Equal(t, "£0", catalog.FormatPence(0))
}

func TestParseFormatRoundTrip(t *testing.T) {
	for _, pence := range []int64{0, 500, 4550, 20000, 123456} {
		assert.Equal(t, pence, catalog.ParseDisplayPrice(catalog.FormatPence(pence)))
	}
}

func TestProductVariantLookup(t *testing.T) {
	p := catalog.Product{
		ID:    "1",
		Name:  "The Nordic River",
		Price: "£200",
		Variants: []catalog.Variant{
			{ID: "midnight", Name: "Midnight"},
			{ID: "deep-ocean", Name: "Deep Ocean"},
		},
	}

	v, ok := p.Variant("midnight")
	assert.True(t, ok)
	assert.Equal(t, "Midnight", v.Name)

	_, ok = p.Variant("natural-oak")
	assert.False(t, ok)

	assert.Equal(t, int64(20000), p.PricePence())
}

func TestCatalogLookup(t *testing.T) {
	c := catalog.New([]catalog.Product{
		{ID: "1", Name: "The Nordic River"},
		{ID: "2", Name: "Coastal Hex"},
	})

	assert.Len(t, c.All(), 2)

	p, ok := c.FindByID("2")
	assert.True(t, ok)
	assert.Equal(t, "Coastal Hex", p.Name)

	_, ok = c.FindByID("99")
	assert.False(t, ok)
}
