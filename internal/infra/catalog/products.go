// Package catalog provides the shop's product reference data. The range is
// small and changes only with a deploy, so it ships in code rather than a
// table.
package catalog

import (
	domain "github.com/cermartin/sr/internal/domain/catalog"
)

func NewCatalog() *domain.Catalog {
	return domain.New(products)
}

var products = []domain.Product{
	{
		ID:          "1",
		Name:        "The Nordic River",
		Category:    "Coffee Tables",
		Price:       "£200",
		Image:       "/images/coffee-table-1.jpeg",
		Description: "Black walnut meets translucent sapphire resin in a modern living centrepiece.",
		Details:     "Hand-crafted from sustainably sourced black walnut, each Nordic River table features a unique resin river pour that captures the beauty of flowing water frozen in time. The high-clarity, non-yellowing epoxy is mixed with premium pigments and poured by hand, ensuring no two tables are ever alike. Finished with a satin-smooth topcoat for everyday durability.",
		Dimensions:  "120cm × 60cm × 45cm",
		Variants: []domain.Variant{
			{ID: "natural-walnut", Name: "Natural Walnut", Color: "#8B6914", Image: "/images/coffee-table-1.jpeg"},
			{ID: "deep-ocean", Name: "Deep Ocean", Color: "#1B4D6E", Image: "/images/coffee-table-2.jpeg"},
			{ID: "midnight", Name: "Midnight", Color: "#2C2C3A", Image: "/images/coffee-table-3.jpeg"},
		},
	},
	{
		ID:          "2",
		Name:        "Coastal Hex",
		Category:    "Coasters — Set of 4",
		Price:       "£40",
		Image:       "/images/coasters.png",
		Description: "Ocean-inspired bamboo and resin coasters that protect your surfaces in style.",
		Details:     "Each set of four hexagonal coasters is individually cast from bamboo offcuts and swirled ocean-blue resin. Cork-backed to protect your furniture, heat-resistant up to 100°C, and sealed with a food-safe matte finish. The perfect complement to any Serrano Rivers table — or a standalone statement piece.",
		Dimensions:  "10cm × 10cm × 1cm",
	},
}
