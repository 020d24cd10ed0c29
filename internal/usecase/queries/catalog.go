package queries

import (
	"github.com/cermartin/sr/internal/domain/catalog"
)

// Read models (DTO for read side)
type VariantView struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
	Image string `json:"image"`
}

type ProductView struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Category    string        `json:"category"`
	Price       string        `json:"price"`
	PricePence  int64         `json:"price_pence"`
	Image       string        `json:"image"`
	Description string        `json:"description"`
	Details     string        `json:"details,omitempty"`
	Dimensions  string        `json:"dimensions,omitempty"`
	Variants    []VariantView `json:"variants,omitempty"`
}

type CatalogQueries interface {
	List() []ProductView
	GetByID(id string) (*ProductView, bool)
}

type catalogQueriesImpl struct {
	catalog *catalog.Catalog
}

func NewCatalogQueries(c *catalog.Catalog) CatalogQueries {
	return &catalogQueriesImpl{catalog: c}
}

func (q *catalogQueriesImpl) List() []ProductView {
	products := q.catalog.All()
	views := make([]ProductView, len(products))
	for i, p := range products {
		views[i] = toProductView(p)
	}
	return views
}

func (q *catalogQueriesImpl) GetByID(id string) (*ProductView, bool) {
	p, ok := q.catalog.FindByID(id)
	if !ok {
		return nil, false
	}
	view := toProductView(p)
	return &view, true
}

func toProductView(p catalog.Product) ProductView {
	variants := make([]VariantView, len(p.Variants))
	for i, v := range p.Variants {
		variants[i] = VariantView{ID: v.ID, Name: v.Name, Color: v.Color, Image: v.Image}
	}
	if len(variants) == 0 {
		variants = nil
	}
	return ProductView{
		ID:          p.ID,
		Name:        p.Name,
		Category:    p.Category,
		Price:       p.Price,
		PricePence:  p.PricePence(),
		Image:       p.Image,
		Description: p.Description,
		Details:     p.Details,
		Dimensions:  p.Dimensions,
		Variants:    variants,
	}
}
