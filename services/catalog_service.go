package services

import (
	"github.com/7pessoal-source/noir-menu-v2/entity"
)

// CategoryWithProducts is the menu projection the frontend renders.
// Categories keep their sort order, products their fetch order; this is
// the catalog iteration order the order message uses too.
type CategoryWithProducts struct {
	entity.Category
	Products []entity.Product `json:"products"`
}

type Catalog struct {
	Categories []CategoryWithProducts `json:"categories"`
}

// BuildCatalog groups available products under their categories and drops
// categories that end up empty.
func BuildCatalog(categories []entity.Category, products []entity.Product) *Catalog {
	byCategory := make(map[uint][]entity.Product, len(categories))
	for _, p := range products {
		byCategory[p.CategoryID] = append(byCategory[p.CategoryID], p)
	}

	out := make([]CategoryWithProducts, 0, len(categories))
	for _, c := range categories {
		ps := byCategory[c.ID]
		if len(ps) == 0 {
			continue
		}
		out = append(out, CategoryWithProducts{Category: c, Products: ps})
	}
	return &Catalog{Categories: out}
}

// ProductByID scans the catalog in iteration order.
func (c *Catalog) ProductByID(id uint) (entity.Product, bool) {
	for _, cat := range c.Categories {
		for _, p := range cat.Products {
			if p.ID == id {
				return p, true
			}
		}
	}
	return entity.Product{}, false
}

// OrderLines picks the cart's items in catalog iteration order, so the
// generated document is deterministic regardless of how the cart was
// filled. Items whose product vanished from the catalog keep their cart
// snapshot and come last.
func (c *Catalog) OrderLines(cart *entity.Cart) []entity.CartItem {
	lines := make([]entity.CartItem, 0, len(cart.Items))
	seen := make(map[uint]bool, len(cart.Items))
	for _, cat := range c.Categories {
		for _, p := range cat.Products {
			if it, ok := cart.ItemByProduct(p.ID); ok {
				lines = append(lines, it)
				seen[p.ID] = true
			}
		}
	}
	for _, it := range cart.Items {
		if !seen[it.Product.ID] {
			lines = append(lines, it)
		}
	}
	return lines
}
