package sources

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/oyvhov/trumftilbud/pkg/fetch"
)

// readTestdata reads a file from the testdata directory
func readTestdata(t *testing.T, filename string) string {
	t.Helper()
	path := filepath.Join("testdata", filename)
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read testdata %s: %v", filename, err)
	}
	return string(data)
}

// fakeFetcher serves canned documents by URL.
type fakeFetcher struct {
	pages map[string]string
	errs  map[string]error
}

func (f *fakeFetcher) Fetch(_ context.Context, url string) (fetch.Document, error) {
	if err, ok := f.errs[url]; ok {
		return fetch.Document{URL: url}, err
	}
	body, ok := f.pages[url]
	if !ok {
		return fetch.Document{URL: url}, fmt.Errorf("unexpected fetch: %s", url)
	}
	return fetch.Document{URL: url, Body: []byte(body), StatusCode: 200}, nil
}

func (f *fakeFetcher) Close() error { return nil }
func (f *fakeFetcher) Type() string { return "fake" }

func TestNorli_PricePrecedence(t *testing.T) {
	f := &fakeFetcher{pages: map[string]string{
		norliOffersURL: readTestdata(t, "norli.html"),
	}}

	offers, err := NewNorli(f).Scrape(context.Background())
	if err != nil {
		t.Fatalf("Scrape() error = %v", err)
	}
	if len(offers) != 2 {
		t.Fatalf("expected 2 offers, got %d: %v", len(offers), offers)
	}

	// Special price wins, base price becomes a previous-price note.
	if offers[0].Title != "Krimboka" {
		t.Errorf("unexpected title %q", offers[0].Title)
	}
	if offers[0].Price != "99,00 kr" {
		t.Errorf("expected special price to win, got %q", offers[0].Price)
	}
	if offers[0].Extra != "Førpris: 199,00 kr" {
		t.Errorf("expected previous-price note, got %q", offers[0].Extra)
	}

	// No special price: base price, no note.
	if offers[1].Title != "Kokeboka" || offers[1].Price != "249,00 kr" {
		t.Errorf("unexpected second offer: %+v", offers[1])
	}
	if offers[1].Extra != "" {
		t.Errorf("expected no note, got %q", offers[1].Extra)
	}
}

func TestMesterGronn(t *testing.T) {
	f := &fakeFetcher{pages: map[string]string{
		mesterGronnOffersURL: readTestdata(t, "mestergronn.html"),
	}}

	offers, err := NewMesterGronn(f).Scrape(context.Background())
	if err != nil {
		t.Fatalf("Scrape() error = %v", err)
	}
	if len(offers) != 2 {
		t.Fatalf("expected 2 offers (untitled box skipped), got %d: %v", len(offers), offers)
	}

	if offers[0].Title != "Rosebukett" || offers[0].Price != "149,00 kr" {
		t.Errorf("unexpected first offer: %+v", offers[0])
	}
	if offers[0].Extra != "10 langstilkede roser" {
		t.Errorf("unexpected extra: %q", offers[0].Extra)
	}
	if offers[1].Title != "Tulipaner" || offers[1].Price != "kr 79,00" {
		t.Errorf("unexpected second offer: %+v", offers[1])
	}
}

func TestEtilbudsavis_StructuredData(t *testing.T) {
	html := `<html><body><script id="__NEXT_DATA__" type="application/json">
	{"props":{"pageProps":{"catalogue":{"offers":[{"heading":"Smör","price":39}]}}}}
	</script></body></html>`
	f := &fakeFetcher{pages: map[string]string{
		etilbudsavisBaseURL + "KIWI": html,
	}}

	offers, err := NewEtilbudsavis(f, "Kiwi", "KIWI").Scrape(context.Background())
	if err != nil {
		t.Fatalf("Scrape() error = %v", err)
	}
	if len(offers) != 1 || offers[0].Title != "Smör" || offers[0].Price != "39" {
		t.Errorf("unexpected offers: %v", offers)
	}
	if offers[0].Store != "Kiwi" {
		t.Errorf("expected store Kiwi, got %q", offers[0].Store)
	}
}

func TestEtilbudsavis_CardFallback(t *testing.T) {
	html := `<html><body>
	<div class="a-OfferCard"><h2>Melk</h2><span class="priceLabel">21,50 kr</span></div>
	</body></html>`
	f := &fakeFetcher{pages: map[string]string{
		etilbudsavisBaseURL + "Joker": html,
	}}

	offers, err := NewEtilbudsavis(f, "Joker", "Joker").Scrape(context.Background())
	if err != nil {
		t.Fatalf("Scrape() error = %v", err)
	}
	if len(offers) != 1 || offers[0].Title != "Melk" || offers[0].Price != "21,50 kr" {
		t.Errorf("unexpected offers: %v", offers)
	}
}

func TestEtilbudsavis_SlugFallback(t *testing.T) {
	nonEmpty := `<html><body><script id="__NEXT_DATA__">
	{"props":{"pageProps":{"catalogue":{"offers":[
	{"heading":"Brød","price":"29,90 kr"},
	{"heading":"Ost","price":"89,00 kr"},
	{"heading":"Juice","price":"25,00 kr"}]}}}}
	</script></body></html>`
	f := &fakeFetcher{pages: map[string]string{
		etilbudsavisBaseURL + "Spar": "<html><body></body></html>",
		etilbudsavisBaseURL + "Meny": nonEmpty,
	}}

	offers, err := NewSpar(f).Scrape(context.Background())
	if err != nil {
		t.Fatalf("expected no error when a later slug succeeds, got %v", err)
	}
	if len(offers) != 3 {
		t.Errorf("expected 3 offers from fallback slug, got %d", len(offers))
	}
}

func TestEtilbudsavis_AllSlugsFail(t *testing.T) {
	fetchErr := errors.New("status 503")
	f := &fakeFetcher{errs: map[string]error{
		etilbudsavisBaseURL + "Spar": fetchErr,
		etilbudsavisBaseURL + "Meny": fetchErr,
	}}

	_, err := NewSpar(f).Scrape(context.Background())
	if err == nil {
		t.Fatal("expected aggregated error when every slug fails")
	}
	// Each candidate's failure is tagged with its slug.
	for _, slug := range []string{"Spar", "Meny"} {
		if !strings.Contains(err.Error(), slug) {
			t.Errorf("expected error to mention slug %q, got %v", slug, err)
		}
	}
}

func TestEtilbudsavis_AllSlugsEmpty(t *testing.T) {
	f := &fakeFetcher{pages: map[string]string{
		etilbudsavisBaseURL + "Spar": "<html><body></body></html>",
		etilbudsavisBaseURL + "Meny": "<html><body></body></html>",
	}}

	offers, err := NewSpar(f).Scrape(context.Background())
	if err != nil {
		t.Fatalf("expected no error for empty results, got %v", err)
	}
	if len(offers) != 0 {
		t.Errorf("expected no offers, got %v", offers)
	}
}

func TestMeny_NoPDFLink(t *testing.T) {
	f := &fakeFetcher{pages: map[string]string{
		menyCircularURL: "<html><body><p>ingen avis</p></body></html>",
	}}

	_, err := NewMeny(f).Scrape(context.Background())
	if err == nil {
		t.Fatal("expected locator error when the page has no PDF reference")
	}
}

func TestMeny_FetchError(t *testing.T) {
	f := &fakeFetcher{errs: map[string]error{
		menyCircularURL: errors.New("timeout"),
	}}

	_, err := NewMeny(f).Scrape(context.Background())
	if err == nil {
		t.Fatal("expected fetch error to propagate to the source boundary")
	}
}

func TestFilter(t *testing.T) {
	f := &fakeFetcher{}
	srcs := All(f)
	if len(srcs) != 6 {
		t.Fatalf("expected 6 sources, got %d", len(srcs))
	}

	filtered := Filter(srcs, []string{"Norli", "Meny"})
	if len(filtered) != 2 {
		t.Fatalf("expected 2 sources, got %d", len(filtered))
	}
	// Declaration order wins over filter order.
	if filtered[0].Store() != "Meny" || filtered[1].Store() != "Norli" {
		t.Errorf("unexpected order: %s, %s", filtered[0].Store(), filtered[1].Store())
	}

	if got := Filter(srcs, nil); len(got) != len(srcs) {
		t.Errorf("empty filter should keep everything, got %d", len(got))
	}
}
