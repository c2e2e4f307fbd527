package fulfillment

// DeduplicateKits removes exploded kit components from one order group.
//
// Records flagged as kit parents stay. Every non-kit record whose base SKU
// (personalization suffix stripped) exactly matches a kit parent's base SKU
// is an inventory component the source exploded alongside the kit and would
// double-count quantities, so it is dropped. The operation is idempotent:
// a second pass over the filtered set removes nothing further.
func DeduplicateKits(records []RawLineRecord) []RawLineRecord {
	kitBases := make(map[string]struct{})
	for _, r := range records {
		if r.IsKit {
			kitBases[BaseSKU(r.SKU)] = struct{}{}
		}
	}
	if len(kitBases) == 0 {
		return records
	}

	kept := make([]RawLineRecord, 0, len(records))
	for _, r := range records {
		if !r.IsKit {
			if _, shadowed := kitBases[BaseSKU(r.SKU)]; shadowed {
				continue
			}
		}
		kept = append(kept, r)
	}
	return kept
}
