package offer

import (
	"regexp"
	"strings"
)

// Norwegian price notation: either decimals followed by an optional
// currency marker ("49,90 kr", "39.00") or the marker first ("kr 39,00").
var priceRe = regexp.MustCompile(`(?i)(\d+[.,]\d{2}\s*kr?|kr\s*\d+[.,]\d{2})`)

// SplitPriceLine splits one line of free text into a probable title and
// price. Only the leftmost price match is used; the title is the line
// with the match removed and surrounding separator punctuation stripped.
// When stripping leaves nothing, the trimmed original line is returned as
// the title so no record loses its text. Lines without a price match come
// back unchanged with an empty price.
func SplitPriceLine(line string) (title, price string) {
	match := priceRe.FindString(line)
	if match == "" {
		return strings.TrimSpace(line), ""
	}
	price = strings.TrimSpace(match)
	title = strings.Trim(strings.Replace(line, match, "", 1), " -:")
	if title == "" {
		title = strings.TrimSpace(line)
	}
	return title, price
}
