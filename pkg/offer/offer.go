// Package offer defines the normalized offer record produced by every
// retailer source, plus the text heuristics shared between them.
package offer

// Offer is a single normalized promotional line item. It is constructed
// once by a source extractor and never mutated afterwards.
type Offer struct {
	// Store identifies the retailer the offer came from.
	Store string `json:"store" yaml:"store"`

	// Title is the descriptive text of the offer. Extractors must drop
	// records they cannot resolve a title for; Title is never empty.
	Title string `json:"title" yaml:"title"`

	// Price keeps the original currency notation ("49,90 kr", "kr 39").
	// Formats vary per retailer, so it is never parsed into a number.
	Price string `json:"price,omitempty" yaml:"price,omitempty"`

	// Extra holds an optional free-text annotation, such as a previous
	// price note or a description line.
	Extra string `json:"extra,omitempty" yaml:"extra,omitempty"`
}

// Row renders the offer as a CSV record. Missing optional fields render
// as empty strings.
func (o Offer) Row() []string {
	return []string{o.Store, o.Title, o.Price, o.Extra}
}
