package extract

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/oyvhov/trumftilbud/pkg/offer"
)

// Candidate keys tried in order; the first non-null value wins. The
// order mirrors what the upstream pages have historically exposed.
var (
	nextDataTitleKeys = []string{"heading", "title", "name"}
	nextDataPriceKeys = []string{"priceText", "price"}
	nextDataExtraKeys = []string{"description", "subtitle"}
)

// FromNextData reads offers from the __NEXT_DATA__ JSON blob embedded in
// an etilbudsavis-style page. An absent blob, invalid JSON, or an
// unexpected shape all degrade to an empty result rather than an error:
// the visible-card fallback is expected to cover those pages.
func FromNextData(html, store string) []offer.Offer {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil
	}

	raw := doc.Find("script#__NEXT_DATA__").First().Text()
	if raw == "" {
		return nil
	}

	var data struct {
		Props struct {
			PageProps struct {
				Catalogue map[string]json.RawMessage `json:"catalogue"`
			} `json:"pageProps"`
		} `json:"props"`
	}
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		return nil
	}
	catalogue := data.Props.PageProps.Catalogue
	if catalogue == nil {
		return nil
	}

	var items []map[string]any
	for _, key := range []string{"offers", "items"} {
		rawList, ok := catalogue[key]
		if !ok {
			continue
		}
		if err := json.Unmarshal(rawList, &items); err == nil && items != nil {
			break
		}
		items = nil
	}

	var offers []offer.Offer
	for _, item := range items {
		title := firstString(item, nextDataTitleKeys)
		if title == "" {
			continue
		}
		o := offer.Offer{
			Store: store,
			Title: title,
			Price: firstText(item, nextDataPriceKeys),
		}
		// Only string descriptions are usable as extra info.
		if extra := firstString(item, nextDataExtraKeys); extra != "" {
			o.Extra = extra
		}
		offers = append(offers, o)
	}
	return offers
}

// firstString returns the first candidate key whose value is a non-empty
// string, trimmed.
func firstString(item map[string]any, keys []string) string {
	for _, key := range keys {
		if s, ok := item[key].(string); ok {
			if s = strings.TrimSpace(s); s != "" {
				return s
			}
		}
	}
	return ""
}

// firstText is like firstString but also coerces numeric values to text,
// since price fields arrive either as "39,90 kr" or as bare numbers.
func firstText(item map[string]any, keys []string) string {
	for _, key := range keys {
		switch v := item[key].(type) {
		case string:
			if s := strings.TrimSpace(v); s != "" {
				return s
			}
		case float64:
			return strconv.FormatFloat(v, 'f', -1, 64)
		}
	}
	return ""
}
