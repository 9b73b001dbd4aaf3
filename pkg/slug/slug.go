package slug

import (
	"regexp"
	"strings"
)

var slugRegexp = regexp.MustCompile(`[^a-z0-9]+`)

// Generate creates a lowercase, hyphen-separated slug from the given name.
//
// Examples:
//   - "Portland Cement 40kg" → "portland-cement-40kg"
//   - `Circular Saw 7-1/4"` → "circular-saw-7-1-4"
func Generate(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = slugRegexp.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// Key builds a stable composite key from a product name and an optional
// variant name. Variant-less products key on the product slug alone.
func Key(productName, variantName string) string {
	p := Generate(productName)
	if variantName == "" {
		return p
	}
	return p + "/" + Generate(variantName)
}
