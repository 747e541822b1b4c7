package sources

import (
	"context"

	"github.com/oyvhov/trumftilbud/internal/logger"
	"github.com/oyvhov/trumftilbud/pkg/offer"
)

// Warning records a source that failed during a run.
type Warning struct {
	Store string
	Err   error
}

// Result is the outcome of one aggregation run.
type Result struct {
	// Offers from all healthy sources, concatenated in source
	// declaration order with each source's internal order preserved.
	Offers []offer.Offer

	// Warnings for the sources that failed. A failing source never
	// affects the output of the others.
	Warnings []Warning
}

// Collect runs every source sequentially, in order, isolating failures.
// This is the single isolation boundary of the pipeline: a source error
// becomes a warning and the run continues with the next source.
func Collect(ctx context.Context, srcs []Source) Result {
	var result Result
	for _, src := range srcs {
		logger.Debug("scraping source", "store", src.Store())
		offers, err := src.Scrape(ctx)
		if err != nil {
			logger.Warn("kunne ikke hente tilbud", "store", src.Store(), "error", err)
			result.Warnings = append(result.Warnings, Warning{Store: src.Store(), Err: err})
			continue
		}
		logger.Debug("source scraped", "store", src.Store(), "offers", len(offers))
		result.Offers = append(result.Offers, offers...)
	}
	return result
}
