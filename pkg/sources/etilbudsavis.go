package sources

import (
	"context"
	"fmt"
	"strings"

	"github.com/oyvhov/trumftilbud/internal/logger"
	"github.com/oyvhov/trumftilbud/pkg/extract"
	"github.com/oyvhov/trumftilbud/pkg/fetch"
	"github.com/oyvhov/trumftilbud/pkg/offer"
)

const etilbudsavisBaseURL = "https://etilbudsavis.no/"

// Etilbudsavis scrapes a store's page on etilbudsavis.no. The page
// embeds its offers in a __NEXT_DATA__ JSON blob; when the blob is
// absent or unreadable the visible offer cards are parsed instead.
//
// Some stores are reachable under more than one slug. Slugs are tried in
// order and the first one that yields offers wins. A slug that yields
// nothing without failing is not an error; only when every slug fails is
// an aggregated error returned.
type Etilbudsavis struct {
	fetcher fetch.Fetcher
	store   string
	slugs   []string
}

// NewEtilbudsavis creates a source for one store page, identified by one
// or more slug candidates.
func NewEtilbudsavis(f fetch.Fetcher, store string, slugs ...string) *Etilbudsavis {
	return &Etilbudsavis{fetcher: f, store: store, slugs: slugs}
}

// NewSpar creates the Spar source. Spar offers have historically been
// published both under their own slug and inside the Meny catalogue, so
// both are tried.
func NewSpar(f fetch.Fetcher) *Etilbudsavis {
	return NewEtilbudsavis(f, "Spar", "Spar", "Meny")
}

// Store returns the store name.
func (s *Etilbudsavis) Store() string { return s.store }

// Scrape tries each slug candidate in order and returns the first
// non-empty result.
func (s *Etilbudsavis) Scrape(ctx context.Context) ([]offer.Offer, error) {
	var errs []string
	for _, slug := range s.slugs {
		offers, err := s.scrapeSlug(ctx, slug)
		if err != nil {
			logger.Debug("slug candidate failed", "store", s.store, "slug", slug, "error", err)
			errs = append(errs, fmt.Sprintf("%s: %v", slug, err))
			continue
		}
		if len(offers) > 0 {
			return offers, nil
		}
	}
	if len(errs) == len(s.slugs) && len(errs) > 0 {
		return nil, fmt.Errorf("all slug candidates failed: %s", strings.Join(errs, "; "))
	}
	return nil, nil
}

func (s *Etilbudsavis) scrapeSlug(ctx context.Context, slug string) ([]offer.Offer, error) {
	page, err := s.fetcher.Fetch(ctx, etilbudsavisBaseURL+slug)
	if err != nil {
		return nil, err
	}

	html := page.HTML()
	if offers := extract.FromNextData(html, s.store); len(offers) > 0 {
		return offers, nil
	}
	return extract.FromOfferCards(html, s.store), nil
}
