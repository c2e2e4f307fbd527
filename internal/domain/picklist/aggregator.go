package picklist

import (
	"sort"

	"github.com/packhouse/backend/internal/domain/fulfillment"
)

// OrderQuantity is one order's contribution to an aggregated pick entry.
type OrderQuantity struct {
	FulfillmentID string
	Quantity      int
}

// Entry aggregates one (pick location, SKU) pair across all selected
// orders.
type Entry struct {
	Location      string // empty means unresolved, sorts and renders last
	SKU           string
	TotalQuantity int
	Breakdown     []OrderQuantity // in order-selection order
}

// Block groups the entries of one base SKU into the two picklist column
// families: personalized SKUs on one side, standard on the other. A family
// with several locations stacks as sub-rows inside the block.
type Block struct {
	BaseSKU      string
	Personalized []Entry
	Standard     []Entry
}

// Rows is the block height in sub-rows: the taller family wins, and the
// opposite column pads to match.
func (b Block) Rows() int {
	if len(b.Personalized) > len(b.Standard) {
		return len(b.Personalized)
	}
	return len(b.Standard)
}

// sortLocation is the location the whole block sorts by: the first
// location of the personalized family when it has entries, otherwise the
// standard family's. Unresolved locations sort after every real one.
func (b Block) sortLocation() string {
	entries := b.Personalized
	if len(entries) == 0 {
		entries = b.Standard
	}
	if len(entries) == 0 || entries[0].Location == "" {
		return "￿" // past any real location code
	}
	return entries[0].Location
}

// BuildBlocks aggregates the items of the selected orders into picklist
// blocks, ordered by (sort location, base SKU).
func BuildBlocks(orders []fulfillment.ProcessedOrder) []Block {
	type key struct {
		location string
		sku      string
	}
	totals := make(map[key]*Entry)
	var keyOrder []key

	for _, o := range orders {
		for _, it := range o.Items {
			k := key{location: it.PickLocation, sku: it.SKU}
			e, seen := totals[k]
			if !seen {
				e = &Entry{Location: it.PickLocation, SKU: it.SKU}
				totals[k] = e
				keyOrder = append(keyOrder, k)
			}
			e.TotalQuantity += it.Quantity
			e.Breakdown = append(e.Breakdown, OrderQuantity{
				FulfillmentID: o.FulfillmentID,
				Quantity:      it.Quantity,
			})
		}
	}

	// Split into families by the personalization marker, keyed by base SKU.
	blocks := make(map[string]*Block)
	var baseOrder []string
	for _, k := range keyOrder {
		e := totals[k]
		base := fulfillment.BaseSKU(e.SKU)
		b, seen := blocks[base]
		if !seen {
			b = &Block{BaseSKU: base}
			blocks[base] = b
			baseOrder = append(baseOrder, base)
		}
		if fulfillment.IsPersonalizedSKU(e.SKU) {
			b.Personalized = append(b.Personalized, *e)
		} else {
			b.Standard = append(b.Standard, *e)
		}
	}

	out := make([]Block, 0, len(baseOrder))
	for _, base := range baseOrder {
		b := blocks[base]
		sortEntries(b.Personalized)
		sortEntries(b.Standard)
		out = append(out, *b)
	}

	sort.SliceStable(out, func(i, j int) bool {
		li, lj := out[i].sortLocation(), out[j].sortLocation()
		if li != lj {
			return li < lj
		}
		return out[i].BaseSKU < out[j].BaseSKU
	})
	return out
}

// sortEntries orders a family's sub-rows by location, unresolved last.
func sortEntries(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		li, lj := entries[i].Location, entries[j].Location
		if (li == "") != (lj == "") {
			return li != ""
		}
		return li < lj
	})
}
