// Package portal holds small presentation-side helpers shared by the
// CLI commands: search filter assembly and list pagination.
package portal

import (
	"fmt"
	"strings"
)

// Filter operators accepted by the management and SCIM list endpoints.
const (
	OpEquals     = "eq"
	OpContains   = "co"
	OpStartsWith = "sw"
	OpEndsWith   = "ew"
)

// BuildFilter renders one attribute condition, e.g. `name co "portal"`.
// Embedded quotes in the value are stripped rather than escaped; the
// server accepts no escape syntax.
func BuildFilter(attribute, operator, value string) string {
	value = strings.ReplaceAll(value, `"`, "")
	return fmt.Sprintf("%s %s %q", attribute, operator, value)
}

// CombineFilters joins conditions with the server's or-operator, the
// same shape the session listing uses for its category search.
func CombineFilters(filters ...string) string {
	nonEmpty := filters[:0]
	for _, f := range filters {
		if f != "" {
			nonEmpty = append(nonEmpty, f)
		}
	}
	return strings.Join(nonEmpty, " | ")
}
