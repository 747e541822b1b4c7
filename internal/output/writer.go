// Package output serializes the collected offers.
package output

import (
	"fmt"
	"io"

	"github.com/oyvhov/trumftilbud/pkg/offer"
)

// Format represents output format types.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Writer handles offer serialization.
type Writer interface {
	// Write buffers a single offer.
	Write(o offer.Offer) error

	// WriteAll buffers multiple offers.
	WriteAll(offers []offer.Offer) error

	// Flush ensures all data is written.
	Flush() error

	// Close releases resources.
	Close() error
}

// NewWriter creates a writer for the specified format.
func NewWriter(w io.Writer, format Format) (Writer, error) {
	switch format {
	case FormatCSV:
		return NewCSVWriter(w), nil
	case FormatJSON:
		return NewJSONWriter(w), nil
	case FormatYAML:
		return NewYAMLWriter(w), nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}

// Ext returns the file extension for a format.
func Ext(format Format) string {
	return "." + string(format)
}
