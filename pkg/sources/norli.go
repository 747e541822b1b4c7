package sources

import (
	"context"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/oyvhov/trumftilbud/pkg/fetch"
	"github.com/oyvhov/trumftilbud/pkg/offer"
)

const norliOffersURL = "https://www.norli.no/kampanje/tilbud"

// Norli scrapes the campaign page of the Norli book chain. Products
// carry a base price and sometimes a special price; the special price
// wins and the base price is kept as a previous-price note.
type Norli struct {
	fetcher fetch.Fetcher
	url     string
}

// NewNorli creates the Norli source.
func NewNorli(f fetch.Fetcher) *Norli {
	return &Norli{fetcher: f, url: norliOffersURL}
}

// Store returns the store name.
func (s *Norli) Store() string { return "Norli" }

// Scrape extracts offers from the product grid.
func (s *Norli) Scrape(ctx context.Context) ([]offer.Offer, error) {
	page, err := s.fetcher.Fetch(ctx, s.url)
	if err != nil {
		return nil, fmt.Errorf("fetch campaign page: %w", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page.HTML()))
	if err != nil {
		return nil, fmt.Errorf("parse campaign page: %w", err)
	}

	var offers []offer.Offer
	doc.Find(".product-item-info").Each(func(_ int, item *goquery.Selection) {
		title := strings.TrimSpace(item.Find(".product-item-link").First().Text())
		if title == "" {
			return
		}

		base := strings.TrimSpace(item.Find(".price").First().Text())
		special := strings.TrimSpace(item.Find(".special-price .price").First().Text())

		o := offer.Offer{Store: s.Store(), Title: title, Price: base}
		if special != "" {
			o.Price = special
			if base != "" {
				o.Extra = "Førpris: " + base
			}
		}
		offers = append(offers, o)
	})

	return offers, nil
}
