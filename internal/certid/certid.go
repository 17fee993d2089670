// Package certid recognises certificate identifiers in URL path segments.
package certid

import "regexp"

// Pattern is the canonical 8-4-4-4-12 hex-group shape, case-insensitive.
const Pattern = `[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}`

var re = regexp.MustCompile(`^` + Pattern + `$`)

// Match reports whether s is a certificate identifier. Only the shape is checked;
// version, variant and existence are left to the certificate store.
func Match(s string) bool {
	return re.MatchString(s)
}
