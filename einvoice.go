// Package einvoice defines a normalized electronic invoice model together
// with the contracts shared by the document format readers that produce it.
package einvoice

// Reader parses a source document in one specific format into an Invoice.
//
// Implementations are pure: one input document yields one fully populated
// aggregate or an error, never a partial result. Readers hold no state
// between calls and are safe for concurrent use on independent documents.
type Reader interface {
	ReadInvoice(data []byte) (*Invoice, error)
}
