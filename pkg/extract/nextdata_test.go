package extract

import "testing"

func TestFromNextData(t *testing.T) {
	html := readTestdata(t, "nextdata.html")

	offers := FromNextData(html, "Kiwi")
	if len(offers) != 3 {
		t.Fatalf("expected 3 offers, got %d: %v", len(offers), offers)
	}

	// Null-title item is dropped, numeric prices are coerced to text.
	if offers[0].Title != "Smör" || offers[0].Price != "39" {
		t.Errorf("unexpected first offer: %+v", offers[0])
	}
	if offers[0].Store != "Kiwi" {
		t.Errorf("expected store Kiwi, got %q", offers[0].Store)
	}

	if offers[1].Title != "Kaffe" || offers[1].Price != "49,90 kr" {
		t.Errorf("unexpected second offer: %+v", offers[1])
	}
	if offers[1].Extra != "Hel bønne, 500 g" {
		t.Errorf("expected description as extra, got %q", offers[1].Extra)
	}

	if offers[2].Title != "Appelsiner" || offers[2].Price != "25.5" {
		t.Errorf("unexpected third offer: %+v", offers[2])
	}
	if offers[2].Extra != "Pr kg" {
		t.Errorf("expected subtitle as extra, got %q", offers[2].Extra)
	}
}

func TestFromNextData_ItemsKeyFallback(t *testing.T) {
	html := `<html><body><script id="__NEXT_DATA__" type="application/json">
	{"props":{"pageProps":{"catalogue":{"items":[{"title":"Brød","price":"29,90 kr"}]}}}}
	</script></body></html>`

	offers := FromNextData(html, "Spar")
	if len(offers) != 1 {
		t.Fatalf("expected 1 offer, got %d", len(offers))
	}
	if offers[0].Title != "Brød" || offers[0].Price != "29,90 kr" {
		t.Errorf("unexpected offer: %+v", offers[0])
	}
}

func TestFromNextData_MissingBlob(t *testing.T) {
	offers := FromNextData("<html><body><p>no data here</p></body></html>", "Kiwi")
	if len(offers) != 0 {
		t.Errorf("expected no offers, got %v", offers)
	}
}

func TestFromNextData_InvalidJSON(t *testing.T) {
	html := `<html><body><script id="__NEXT_DATA__">{not json</script></body></html>`
	offers := FromNextData(html, "Kiwi")
	if len(offers) != 0 {
		t.Errorf("expected invalid JSON to degrade to no offers, got %v", offers)
	}
}

func TestFromNextData_MissingCatalogue(t *testing.T) {
	html := `<html><body><script id="__NEXT_DATA__">{"props":{"pageProps":{}}}</script></body></html>`
	offers := FromNextData(html, "Kiwi")
	if len(offers) != 0 {
		t.Errorf("expected missing catalogue to degrade to no offers, got %v", offers)
	}
}
