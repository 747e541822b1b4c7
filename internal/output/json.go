package output

import (
	"bufio"
	"encoding/json"
	"io"

	"github.com/oyvhov/trumftilbud/pkg/offer"
)

// JSONWriter writes offers as a pretty-printed JSON array.
type JSONWriter struct {
	w     *bufio.Writer
	items []offer.Offer
}

// NewJSONWriter creates a JSON writer.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{
		w:     bufio.NewWriter(w),
		items: make([]offer.Offer, 0),
	}
}

// Write buffers a single offer.
func (w *JSONWriter) Write(o offer.Offer) error {
	w.items = append(w.items, o)
	return nil
}

// WriteAll buffers multiple offers.
func (w *JSONWriter) WriteAll(offers []offer.Offer) error {
	w.items = append(w.items, offers...)
	return nil
}

// Flush writes the buffered offers as a JSON array.
func (w *JSONWriter) Flush() error {
	out, err := json.MarshalIndent(w.items, "", "  ")
	if err != nil {
		return err
	}
	if _, err := w.w.Write(out); err != nil {
		return err
	}
	if _, err := w.w.WriteString("\n"); err != nil {
		return err
	}
	return w.w.Flush()
}

// Close flushes the writer.
func (w *JSONWriter) Close() error {
	return w.Flush()
}
