package fulfillment

import (
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/packhouse/backend/internal/domain/shared"
)

// classPrefixPattern matches a 3-letter family code followed by a 2-digit
// size code, e.g. "DPT10".
var classPrefixPattern = regexp.MustCompile(`^[A-Z]{3}[0-9]{2}$`)

// sizeCodeBySuffix whitelists the 2-digit suffixes that map to a
// normalized size code. Any other suffix yields no size.
var sizeCodeBySuffix = map[string]string{
	"10": "10oz",
	"16": "16oz",
	"26": "26oz",
}

// NormalizeRecord converts one raw line record into a canonical OrderItem.
func NormalizeRecord(r RawLineRecord) OrderItem {
	item := OrderItem{
		SKU:          strings.TrimSpace(r.SKU),
		Color:        strings.TrimSpace(r.Color),
		Barcode:      strings.TrimSpace(r.Barcode),
		PickLocation: strings.TrimSpace(r.PickLocation),
		Quantity:     parseQuantity(r.Quantity),
	}

	item.ClassPrefix = classificationPrefix(item.SKU)
	if item.ClassPrefix != "" {
		item.SizeCode = sizeCodeBySuffix[item.ClassPrefix[3:]]
	}

	// The dual-purpose field is either an image URL or a description.
	// A well-formed http(s) URL wins and leaves the description empty;
	// otherwise the image reference falls back through the alternates.
	if isHTTPURL(r.ImageOrDesc) {
		item.ImageURL = strings.TrimSpace(r.ImageOrDesc)
	} else {
		item.Description = strings.TrimSpace(r.ImageOrDesc)
		item.ImageURL = shared.FirstNonEmpty(r.AltImage1, r.AltImage2, r.AltImage3)
	}

	return item
}

// classificationPrefix returns the uppercased 5-character SKU prefix when
// it matches the family-code pattern, otherwise empty.
func classificationPrefix(sku string) string {
	if len(sku) < 5 {
		return ""
	}
	p := strings.ToUpper(sku[:5])
	if !classPrefixPattern.MatchString(p) {
		return ""
	}
	return p
}

// parseQuantity parses the quantity text field. Invalid, absent or
// non-positive values default to 1; a quantity of 0 never occurs.
func parseQuantity(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// isHTTPURL reports whether s is a well-formed absolute http or https URL.
func isHTTPURL(s string) bool {
	s = strings.TrimSpace(s)
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
