// Package sources implements the per-retailer extraction pipelines and
// the aggregator that runs them.
package sources

import (
	"context"

	"github.com/oyvhov/trumftilbud/pkg/fetch"
	"github.com/oyvhov/trumftilbud/pkg/offer"
)

// Source is one retailer's extraction pipeline.
type Source interface {
	// Store returns the fixed store name used on every offer.
	Store() string

	// Scrape fetches and extracts the retailer's current offers.
	Scrape(ctx context.Context) ([]offer.Offer, error)
}

// All returns the full ordered list of retailer sources. Output order
// follows this declaration order, so it is part of the contract.
func All(f fetch.Fetcher) []Source {
	return []Source{
		NewMeny(f),
		NewSpar(f),
		NewEtilbudsavis(f, "Kiwi", "KIWI"),
		NewEtilbudsavis(f, "Joker", "Joker"),
		NewNorli(f),
		NewMesterGronn(f),
	}
}

// Filter returns the sources whose store name is in names, keeping the
// declaration order. An empty filter keeps everything.
func Filter(srcs []Source, names []string) []Source {
	if len(names) == 0 {
		return srcs
	}
	wanted := make(map[string]bool, len(names))
	for _, n := range names {
		wanted[n] = true
	}
	var out []Source
	for _, s := range srcs {
		if wanted[s.Store()] {
			out = append(out, s)
		}
	}
	return out
}
