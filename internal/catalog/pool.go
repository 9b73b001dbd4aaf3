// Package catalog flattens the nested product/variant catalog into the
// pool of selectable items the synthesizer draws from, partitioned into
// four price tiers.
package catalog

import (
	"github.com/aamuros/hardware-store-sub002/internal/domain"
)

// PriceTier is one of four price bands used to bias item selection
// toward realistic basket composition.
type PriceTier int

const (
	TierCheap  PriceTier = iota // ≤ ₱50
	TierMid                     // ₱50.01 – ₱500
	TierPricey                  // ₱500.01 – ₱2,000
	TierBig                     // > ₱2,000
)

// Tier band upper bounds, in centavos.
const (
	cheapMax  = 50_00
	midMax    = 500_00
	priceyMax = 2_000_00
)

func (t PriceTier) String() string {
	switch t {
	case TierCheap:
		return "cheap"
	case TierMid:
		return "mid"
	case TierPricey:
		return "pricey"
	case TierBig:
		return "big"
	default:
		return "unknown"
	}
}

// TierFor returns the price tier an item with the given unit price
// belongs to. Every price maps to exactly one tier.
func TierFor(unitPrice int64) PriceTier {
	switch {
	case unitPrice <= cheapMax:
		return TierCheap
	case unitPrice <= midMax:
		return TierMid
	case unitPrice <= priceyMax:
		return TierPricey
	default:
		return TierBig
	}
}

// Pool holds the flattened item pool and its tier partition. Built once
// at startup and static for the run.
type Pool struct {
	all   []domain.SelectableItem
	tiers [4][]domain.SelectableItem
}

// BuildPool flattens the catalog in declaration order and partitions
// the result. Every product contributes at least one item; products
// with variants contribute only their variants.
func BuildPool(entries []domain.Sellable) *Pool {
	p := &Pool{}
	for _, e := range entries {
		for _, item := range e.Items() {
			p.all = append(p.all, item)
			t := TierFor(item.UnitPrice)
			p.tiers[t] = append(p.tiers[t], item)
		}
	}
	return p
}

// All returns the full flattened item pool in declaration order.
func (p *Pool) All() []domain.SelectableItem {
	return p.all
}

// Tier returns the items in the given price band. May be empty; callers
// fall back to All.
func (p *Pool) Tier(t PriceTier) []domain.SelectableItem {
	return p.tiers[t]
}

// Len returns the number of selectable items in the pool.
func (p *Pool) Len() int {
	return len(p.all)
}

// MaxUnitPrice returns the highest unit price in the pool, zero for an
// empty pool.
func (p *Pool) MaxUnitPrice() int64 {
	var max int64
	for _, it := range p.all {
		if it.UnitPrice > max {
			max = it.UnitPrice
		}
	}
	return max
}
