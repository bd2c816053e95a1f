package reports

import (
	"regexp"
	"strconv"
	"strings"
)

// summaryLine matches "2x Rol Canela", "2 x Rol Canela" or "2 Rol Canela",
// capturing the quantity and the name up to any parenthesized extras.
var summaryLine = regexp.MustCompile(`(?i)^\s*(\d+)\s*x?\s+([^\(]+)`)

// ParsedLine is one product reconstructed from an item summary string.
type ParsedLine struct {
	Quantity int
	Name     string
}

// ParseItemSummary reconstructs product quantities from a legacy
// "{qty}x {name}" summary block. It is a best-effort heuristic for orders
// whose structured line items are missing: a line that does not match the
// pattern counts as one unit of whatever precedes the first parenthesis.
func ParseItemSummary(summary string) []ParsedLine {
	var parsed []ParsedLine
	for _, line := range strings.Split(summary, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if m := summaryLine.FindStringSubmatch(line); m != nil {
			qty, err := strconv.Atoi(m[1])
			if err != nil || qty <= 0 {
				qty = 1
			}
			parsed = append(parsed, ParsedLine{Quantity: qty, Name: strings.TrimSpace(m[2])})
			continue
		}
		name := strings.TrimSpace(strings.SplitN(line, "(", 2)[0])
		if name != "" {
			parsed = append(parsed, ParsedLine{Quantity: 1, Name: name})
		}
	}
	return parsed
}
