package extract

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/oyvhov/trumftilbud/pkg/offer"
)

// Heading tags tried in priority order. The first tag name with any
// match inside the card wins, regardless of document order.
var cardHeadingTags = []string{"h2", "h3", "h4"}

var (
	cardPriceClassRe = regexp.MustCompile(`(?i)price`)
	cardExtraClassRe = regexp.MustCompile(`(?i)description|subtitle`)
)

// FromOfferCards reads offers from visible card markup, the fallback for
// pages where no structured data blob is present. Cards are elements
// whose class contains "OfferCard" (case-sensitive, matching the
// upstream naming convention). Cards without a resolvable title are
// skipped.
func FromOfferCards(html, store string) []offer.Offer {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil
	}

	var offers []offer.Offer
	doc.Find(`[class*=OfferCard]`).Each(func(_ int, card *goquery.Selection) {
		title := firstHeadingText(card, cardHeadingTags)
		if title == "" {
			return
		}
		offers = append(offers, offer.Offer{
			Store: store,
			Title: title,
			Price: firstClassMatchText(card, cardPriceClassRe),
			Extra: firstClassMatchText(card, cardExtraClassRe),
		})
	})
	return offers
}

// firstHeadingText returns the trimmed text of the first heading found,
// trying each candidate tag name in order.
func firstHeadingText(s *goquery.Selection, tags []string) string {
	for _, tag := range tags {
		if heading := s.Find(tag).First(); heading.Length() > 0 {
			return strings.TrimSpace(heading.Text())
		}
	}
	return ""
}

// firstClassMatchText returns the trimmed text of the first descendant
// whose class attribute matches the pattern.
func firstClassMatchText(s *goquery.Selection, re *regexp.Regexp) string {
	var text string
	s.Find("[class]").EachWithBreak(func(_ int, el *goquery.Selection) bool {
		class, _ := el.Attr("class")
		if re.MatchString(class) {
			text = strings.TrimSpace(el.Text())
			return false
		}
		return true
	})
	return text
}
