package output

import (
	"bufio"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/oyvhov/trumftilbud/pkg/offer"
)

// YAMLWriter writes offers as a YAML sequence.
type YAMLWriter struct {
	w     *bufio.Writer
	items []offer.Offer
}

// NewYAMLWriter creates a YAML writer.
func NewYAMLWriter(w io.Writer) *YAMLWriter {
	return &YAMLWriter{
		w:     bufio.NewWriter(w),
		items: make([]offer.Offer, 0),
	}
}

// Write buffers a single offer.
func (w *YAMLWriter) Write(o offer.Offer) error {
	w.items = append(w.items, o)
	return nil
}

// WriteAll buffers multiple offers.
func (w *YAMLWriter) WriteAll(offers []offer.Offer) error {
	w.items = append(w.items, offers...)
	return nil
}

// Flush writes the buffered offers as YAML.
func (w *YAMLWriter) Flush() error {
	encoder := yaml.NewEncoder(w.w)
	encoder.SetIndent(2)

	if err := encoder.Encode(w.items); err != nil {
		return err
	}
	if err := encoder.Close(); err != nil {
		return err
	}
	return w.w.Flush()
}

// Close flushes and closes the writer.
func (w *YAMLWriter) Close() error {
	return w.Flush()
}
