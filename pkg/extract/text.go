package extract

import (
	"strings"

	"github.com/oyvhov/trumftilbud/pkg/offer"
)

// FromText turns line-oriented circular text into offers. Blank lines
// and lines without a single digit are skipped: genuine offer lines
// always carry a price or quantity, pure narrative lines do not. Never
// fails; malformed content just yields fewer offers.
func FromText(text, store string) []offer.Offer {
	var offers []offer.Offer
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || !containsDigit(line) {
			continue
		}
		title, price := offer.SplitPriceLine(line)
		offers = append(offers, offer.Offer{
			Store: store,
			Title: title,
			Price: price,
		})
	}
	return offers
}

func containsDigit(s string) bool {
	for _, r := range s {
		if r >= '0' && r <= '9' {
			return true
		}
	}
	return false
}
