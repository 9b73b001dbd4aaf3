package domain

import "github.com/aamuros/hardware-store-sub002/pkg/slug"

// Sellable is one catalog entry: either a simple priced product or a
// product sold only through its variants. The two shapes are distinct
// types so flattening is exhaustive and a product can never carry both
// a base price and a variant list.
type Sellable interface {
	ProductName() string
	Items() []SelectableItem
}

// SimpleProduct is a variant-less product sold at a single price.
type SimpleProduct struct {
	Name  string
	Price int64 // centavos
}

func (p SimpleProduct) ProductName() string { return p.Name }

func (p SimpleProduct) Items() []SelectableItem {
	return []SelectableItem{{ProductName: p.Name, UnitPrice: p.Price}}
}

// Variant is one sellable variation of a VariantProduct.
type Variant struct {
	Name  string
	Price int64 // centavos
}

// VariantProduct is a product sold only through its variants; it has no
// standalone base price.
type VariantProduct struct {
	Name     string
	Variants []Variant
}

func (p VariantProduct) ProductName() string { return p.Name }

func (p VariantProduct) Items() []SelectableItem {
	items := make([]SelectableItem, len(p.Variants))
	for i, v := range p.Variants {
		items[i] = SelectableItem{ProductName: p.Name, VariantName: v.Name, UnitPrice: v.Price}
	}
	return items
}

// SelectableItem is one priced, purchasable catalog row: a variant, or a
// variant-less product. Immutable once derived from the catalog.
type SelectableItem struct {
	ProductName string
	VariantName string // empty for variant-less products
	UnitPrice   int64  // centavos
}

// Key returns the normalized product+variant key used for deduplication
// within an order.
func (i SelectableItem) Key() string {
	return slug.Key(i.ProductName, i.VariantName)
}
