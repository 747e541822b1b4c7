package extract

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
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

func TestFindPDFLink_AttributeWinsOverRawText(t *testing.T) {
	html := readTestdata(t, "circular_attr.html")

	// The page also embeds an absolute PDF URL in a script, earlier in
	// the document than the iframe. The attribute tier must still win.
	link, err := FindPDFLink(html, "https://kundeavis.example.no/")
	if err != nil {
		t.Fatalf("FindPDFLink() error = %v", err)
	}

	want := "https://kundeavis.example.no/static/kundeavis/uke-34.PDF#page=1"
	if link != want {
		t.Errorf("expected %q, got %q", want, link)
	}
}

func TestFindPDFLink_RawTextFallback(t *testing.T) {
	html := readTestdata(t, "circular_rawtext.html")

	link, err := FindPDFLink(html, "https://kundeavis.example.no/")
	if err != nil {
		t.Fatalf("FindPDFLink() error = %v", err)
	}

	// Absolute raw-text matches are returned verbatim, not resolved.
	want := "https://cdn.example.com/kundeavis/uke-34.pdf?token=abc123"
	if link != want {
		t.Errorf("expected %q, got %q", want, link)
	}
}

func TestFindPDFLink_QuotedFallbackResolved(t *testing.T) {
	html := readTestdata(t, "circular_quoted.html")

	link, err := FindPDFLink(html, "https://kundeavis.example.no/uke-34/")
	if err != nil {
		t.Fatalf("FindPDFLink() error = %v", err)
	}

	want := "https://kundeavis.example.no/assets/uke-34/kundeavis.pdf"
	if link != want {
		t.Errorf("expected %q, got %q", want, link)
	}
}

func TestFindPDFLink_NoReference(t *testing.T) {
	html := readTestdata(t, "circular_none.html")

	_, err := FindPDFLink(html, "https://kundeavis.example.no/")
	if !errors.Is(err, ErrNoPDFLink) {
		t.Errorf("expected ErrNoPDFLink, got %v", err)
	}
}

func TestFindPDFLink_InvalidBaseURL(t *testing.T) {
	_, err := FindPDFLink("<html></html>", "://not-a-url")
	if err == nil {
		t.Error("expected error for invalid base URL")
	}
}
