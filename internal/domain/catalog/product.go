// Package catalog holds the shop's reference data: products, variants and
// display-price handling. Products are immutable and loaded once at startup;
// nothing in the runtime creates or destroys them.
package catalog

type Variant struct {
	ID    string
	Name  string
	Color string
	Image string
}

type Product struct {
	ID          string
	Name        string
	Category    string
	Price       string // display string, e.g. "£200"
	Image       string
	Description string
	Details     string
	Dimensions  string
	Variants    []Variant
}

// Variant resolves a variant id relative to this product. The empty id is
// valid for products sold without variants.
func (p Product) Variant(id string) (Variant, bool) {
	for _, v := range p.Variants {
		if v.ID == id {
			return v, true
		}
	}
	return Variant{}, false
}

// PricePence is the canonical unit price. The display string is authored by
// hand, so parsing happens here and nowhere else.
func (p Product) PricePence() int64 {
	return ParseDisplayPrice(p.Price)
}

type Catalog struct {
	products []Product
	byID     map[string]Product
}

func New(products []Product) *Catalog {
	byID := make(map[string]Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	return &Catalog{products: products, byID: byID}
}

func (c *Catalog) All() []Product {
	out := make([]Product, len(c.products))
	copy(out, c.products)
	return out
}

func (c *Catalog) FindByID(id string) (Product, bool) {
	p, ok := c.byID[id]
	return p, ok
}
