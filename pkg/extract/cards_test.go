package extract

import "testing"

func TestFromOfferCards(t *testing.T) {
	html := readTestdata(t, "cards.html")

	offers := FromOfferCards(html, "Joker")
	if len(offers) != 2 {
		t.Fatalf("expected 2 offers, got %d: %v", len(offers), offers)
	}

	// h2 is tried before h3, even though the h3 comes first in the DOM.
	if offers[0].Title != "Grandiosa" {
		t.Errorf("expected heading priority to pick h2, got title %q", offers[0].Title)
	}
	if offers[0].Price != "39,90 kr" {
		t.Errorf("expected price %q, got %q", "39,90 kr", offers[0].Price)
	}
	if offers[0].Extra != "Flere varianter" {
		t.Errorf("expected extra %q, got %q", "Flere varianter", offers[0].Extra)
	}

	if offers[1].Title != "Cola 1,5 l" || offers[1].Price != "kr 19,90" {
		t.Errorf("unexpected second offer: %+v", offers[1])
	}
	if offers[1].Extra != "" {
		t.Errorf("expected no extra, got %q", offers[1].Extra)
	}
}

func TestFromOfferCards_NoCards(t *testing.T) {
	offers := FromOfferCards("<html><body><div class='product'></div></body></html>", "Joker")
	if len(offers) != 0 {
		t.Errorf("expected no offers, got %v", offers)
	}
}

func TestFromOfferCards_MarkerIsCaseSensitive(t *testing.T) {
	html := `<html><body><div class="offercard"><h2>Melk</h2></div></body></html>`
	offers := FromOfferCards(html, "Joker")
	if len(offers) != 0 {
		t.Errorf("expected lowercase marker not to match, got %v", offers)
	}
}
