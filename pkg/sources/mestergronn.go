package sources

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/oyvhov/trumftilbud/pkg/fetch"
	"github.com/oyvhov/trumftilbud/pkg/offer"
)

const mesterGronnOffersURL = "https://www.mestergronn.no/mg/ukens-tilbud.html"

// Price labels on the page use both Norwegian and English class names.
var mesterGronnPriceRe = regexp.MustCompile(`(?i)pris|price`)

// MesterGronn scrapes the weekly offers page of the Mester Grønn flower
// chain.
type MesterGronn struct {
	fetcher fetch.Fetcher
	url     string
}

// NewMesterGronn creates the Mester Grønn source.
func NewMesterGronn(f fetch.Fetcher) *MesterGronn {
	return &MesterGronn{fetcher: f, url: mesterGronnOffersURL}
}

// Store returns the store name.
func (s *MesterGronn) Store() string { return "Mester Grønn" }

// Scrape extracts offers from the weekly offer boxes.
func (s *MesterGronn) Scrape(ctx context.Context) ([]offer.Offer, error) {
	page, err := s.fetcher.Fetch(ctx, s.url)
	if err != nil {
		return nil, fmt.Errorf("fetch offers page: %w", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page.HTML()))
	if err != nil {
		return nil, fmt.Errorf("parse offers page: %w", err)
	}

	var offers []offer.Offer
	doc.Find(".mg-box").Each(func(_ int, box *goquery.Selection) {
		var title string
		for _, tag := range []string{"h2", "h3"} {
			if heading := box.Find(tag).First(); heading.Length() > 0 {
				title = strings.TrimSpace(heading.Text())
				break
			}
		}
		if title == "" {
			return
		}

		var price string
		box.Find("[class]").EachWithBreak(func(_ int, el *goquery.Selection) bool {
			class, _ := el.Attr("class")
			if mesterGronnPriceRe.MatchString(class) {
				price = strings.TrimSpace(el.Text())
				return false
			}
			return true
		})

		offers = append(offers, offer.Offer{
			Store: s.Store(),
			Title: title,
			Price: price,
			Extra: strings.TrimSpace(box.Find("p").First().Text()),
		})
	})

	return offers, nil
}
