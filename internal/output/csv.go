package output

import (
	"encoding/csv"
	"io"

	"github.com/oyvhov/trumftilbud/pkg/offer"
)

// Header columns, in the deployment's display language.
var csvHeader = []string{"butikk", "tittel", "pris", "ekstrainfo"}

// CSVWriter writes offers as delimited text with a fixed four-column
// header. This is the default output format.
type CSVWriter struct {
	w      *csv.Writer
	header bool
}

// NewCSVWriter creates a CSV writer.
func NewCSVWriter(w io.Writer) *CSVWriter {
	return &CSVWriter{w: csv.NewWriter(w)}
}

// Write appends one offer row, emitting the header first if needed.
func (w *CSVWriter) Write(o offer.Offer) error {
	if !w.header {
		if err := w.w.Write(csvHeader); err != nil {
			return err
		}
		w.header = true
	}
	return w.w.Write(o.Row())
}

// WriteAll appends all offer rows.
func (w *CSVWriter) WriteAll(offers []offer.Offer) error {
	for _, o := range offers {
		if err := w.Write(o); err != nil {
			return err
		}
	}
	return nil
}

// Flush writes any buffered rows. An offer-less run still gets a header
// so the file is well formed.
func (w *CSVWriter) Flush() error {
	if !w.header {
		if err := w.w.Write(csvHeader); err != nil {
			return err
		}
		w.header = true
	}
	w.w.Flush()
	return w.w.Error()
}

// Close flushes the writer.
func (w *CSVWriter) Close() error {
	return w.Flush()
}
