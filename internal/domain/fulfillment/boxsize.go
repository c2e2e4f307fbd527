package fulfillment

import "sort"

// Pack-size category keys with fixed meaning. Everything else comes from
// the box-size catalog.
const (
	// BoxSizeSingles is assigned to any order whose prefix multiset has
	// exactly one unit, regardless of catalog contents.
	BoxSizeSingles = "singles"
	// BoxSizeUnclassified marks an order whose multiset matched no
	// catalog combination. Downstream filtering treats it as its own
	// bucket, never as a default category.
	BoxSizeUnclassified = ""
)

// BoxSizeEntry is one named pack category from the box-size catalog.
type BoxSizeEntry struct {
	Key      string     `mapstructure:"key"`
	Name     string     `mapstructure:"name"`
	MaxItems int        `mapstructure:"max_items"`
	Combos   [][]string `mapstructure:"combos"` // each combo is a multiset of classification prefixes
}

// BoxSizeCatalog holds the configured pack categories in file order.
// Entries are matched in exactly that order: when two entries could match
// the same multiset, the earlier one wins.
type BoxSizeCatalog struct {
	Entries []BoxSizeEntry
}

// Classify assigns a pack-size category to an order's items.
//
// The items expand into a multiset of classification prefixes with each
// unit counted separately; items without a prefix are ignored. An empty
// multiset is unclassified, a single unit is "singles", and anything else
// is tested for exact multiset equality against every combination of every
// catalog entry in catalog order. The result does not depend on the input
// item ordering.
func (c *BoxSizeCatalog) Classify(items []OrderItem) string {
	var units []string
	for _, it := range items {
		if it.ClassPrefix == "" {
			continue
		}
		for i := 0; i < it.Quantity; i++ {
			units = append(units, it.ClassPrefix)
		}
	}

	switch len(units) {
	case 0:
		return BoxSizeUnclassified
	case 1:
		return BoxSizeSingles
	}

	sort.Strings(units)
	for _, entry := range c.Entries {
		for _, combo := range entry.Combos {
			if multisetEqual(units, combo) {
				return entry.Key
			}
		}
	}
	return BoxSizeUnclassified
}

// multisetEqual compares a sorted unit list against a combination that may
// arrive in any order.
func multisetEqual(sortedUnits, combo []string) bool {
	if len(sortedUnits) != len(combo) {
		return false
	}
	c := make([]string, len(combo))
	copy(c, combo)
	sort.Strings(c)
	for i := range sortedUnits {
		if sortedUnits[i] != c[i] {
			return false
		}
	}
	return true
}
