package store

import (
	"strings"
)

// Slugify converts a category or product name into its canonical document
// ID: lower-cased, with runs of whitespace collapsed to a single hyphen.
// "Panes Dulces" becomes "panes-dulces".
func Slugify(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(strings.TrimSpace(name))), "-")
}
