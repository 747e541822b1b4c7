package sources

import (
	"context"
	"fmt"

	"github.com/oyvhov/trumftilbud/internal/logger"
	"github.com/oyvhov/trumftilbud/pkg/extract"
	"github.com/oyvhov/trumftilbud/pkg/fetch"
	"github.com/oyvhov/trumftilbud/pkg/offer"
	"github.com/oyvhov/trumftilbud/pkg/pdftext"
)

const menyCircularURL = "https://kundeavis.meny.no/"

// Meny publishes its circular as a PDF embedded in a viewer page. The
// pipeline locates the PDF, downloads it, extracts the text and runs the
// line heuristics over it.
type Meny struct {
	fetcher fetch.Fetcher
	url     string
}

// NewMeny creates the Meny source.
func NewMeny(f fetch.Fetcher) *Meny {
	return &Meny{fetcher: f, url: menyCircularURL}
}

// Store returns the store name.
func (s *Meny) Store() string { return "Meny" }

// Scrape downloads the circular PDF and extracts one offer per price
// line.
func (s *Meny) Scrape(ctx context.Context) ([]offer.Offer, error) {
	page, err := s.fetcher.Fetch(ctx, s.url)
	if err != nil {
		return nil, fmt.Errorf("fetch circular page: %w", err)
	}

	pdfURL, err := extract.FindPDFLink(page.HTML(), page.URL)
	if err != nil {
		return nil, err
	}
	logger.Debug("located circular PDF", "store", s.Store(), "url", pdfURL)

	doc, err := s.fetcher.Fetch(ctx, pdfURL)
	if err != nil {
		return nil, fmt.Errorf("fetch circular PDF: %w", err)
	}

	text, err := pdftext.Extract(doc.Body)
	if err != nil {
		return nil, fmt.Errorf("extract circular text: %w", err)
	}

	return extract.FromText(text, s.Store()), nil
}
