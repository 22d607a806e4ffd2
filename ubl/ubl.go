// Package ubl reads UBL 2.1 invoice documents into the normalized
// einvoice model.
package ubl

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"

	"github.com/invopop/einvoice"
	"github.com/invopop/einvoice/xmlnode"
)

// UBL namespaces addressed during extraction.
const (
	NamespaceInvoice = "urn:oasis:names:specification:ubl:schema:xsd:Invoice-2"
	NamespaceCAC     = "urn:oasis:names:specification:ubl:schema:xsd:CommonAggregateComponents-2"
	NamespaceCBC     = "urn:oasis:names:specification:ubl:schema:xsd:CommonBasicComponents-2"
)

// namespaces binds the mnemonic prefixes used in lookup paths. The
// prefixes declared in the source document do not need to match;
// resolution is by namespace URI.
var namespaces = map[string]string{
	"cac": NamespaceCAC,
	"cbc": NamespaceCBC,
}

// Reader parses UBL invoice documents. It holds no state and is safe
// for concurrent use on independent documents.
type Reader struct{}

// NewReader returns a UBL invoice reader.
func NewReader() *Reader {
	return &Reader{}
}

var _ einvoice.Reader = (*Reader)(nil)

// ReadInvoice parses a raw UBL invoice document into the normalized
// invoice aggregate. Either the whole document parses or an error is
// returned; there is no partial result.
func (r *Reader) ReadInvoice(data []byte) (*einvoice.Invoice, error) {
	ns, err := rootNamespace(data)
	if err != nil {
		return nil, err
	}
	if ns != NamespaceInvoice {
		return nil, einvoice.ErrUnknownDocument
	}

	doc, err := xmlnode.Parse(data, namespaces)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", einvoice.ErrStructure, err)
	}
	defer doc.Free()

	return parseInvoice(doc.Root())
}

// rootNamespace extracts the namespace of the document element without
// building the full tree, so foreign documents are rejected cheaply.
func rootNamespace(data []byte) (string, error) {
	dc := xml.NewDecoder(bytes.NewReader(data))
	for {
		tk, err := dc.Token()
		if err == io.EOF {
			// Tokens such as leading character data may have been
			// consumed without ever reaching a document element, so
			// this is a structural failure, not a foreign document.
			return "", fmt.Errorf("%w: no document element", einvoice.ErrStructure)
		}
		if err != nil {
			return "", fmt.Errorf("%w: %v", einvoice.ErrStructure, err)
		}
		if t, ok := tk.(xml.StartElement); ok {
			return t.Name.Space, nil
		}
	}
}
