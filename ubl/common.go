package ubl

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/invopop/einvoice"
	"github.com/invopop/einvoice/xmlnode"
)

// Scheme attributes used when converting identifier nodes. Commodity
// classification codes qualify their scheme with listID instead of the
// default schemeID.
const (
	schemeAttr = "schemeID"
	listAttr   = "listID"
)

// structural marks a tree access failure as a structural parse error.
func structural(err error) error {
	return fmt.Errorf("%w: %v", einvoice.ErrStructure, err)
}

// missing builds the error for a field that is mandatory once its
// containing subtree is entered.
func missing(path string) error {
	return &einvoice.FieldError{Path: path, Err: einvoice.ErrMissingField}
}

// parseIdentifier converts a text bearing node and its optional scheme
// attribute into an Identifier. The caller has already confirmed the
// node exists.
func parseIdentifier(n *xmlnode.Node, attr string) einvoice.Identifier {
	id := einvoice.NewIdentifier(n.Text())
	if s, ok := n.Attr(attr); ok {
		id.Scheme = &s
	}
	return id
}

// findText returns the trimmed content of the first node at path, or
// nil when absent.
func findText(n *xmlnode.Node, path string) (*string, error) {
	node, err := n.First(path)
	if err != nil {
		return nil, structural(err)
	}
	if node == nil {
		return nil, nil
	}
	s := node.Text()
	return &s, nil
}

// findDate converts the first node at path into a calendar date.
func findDate(n *xmlnode.Node, path string) (*einvoice.Date, error) {
	s, err := findText(n, path)
	if err != nil || s == nil {
		return nil, err
	}
	d, err := einvoice.ParseDate(*s)
	if err != nil {
		return nil, &einvoice.FieldError{Path: path, Value: *s, Err: einvoice.ErrConversion}
	}
	return &d, nil
}

// findInt converts the first node at path into an integer.
func findInt(n *xmlnode.Node, path string) (*int, error) {
	s, err := findText(n, path)
	if err != nil || s == nil {
		return nil, err
	}
	v, err := strconv.Atoi(*s)
	if err != nil {
		return nil, &einvoice.FieldError{Path: path, Value: *s, Err: einvoice.ErrConversion}
	}
	return &v, nil
}

// findDecimal converts the first node at path into a decimal.
func findDecimal(n *xmlnode.Node, path string) (*decimal.Decimal, error) {
	node, err := n.First(path)
	if err != nil {
		return nil, structural(err)
	}
	if node == nil {
		return nil, nil
	}
	d, err := toDecimal(node, path)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// toDecimal converts an already located node's content into a decimal.
func toDecimal(n *xmlnode.Node, path string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(normalizeNumeric(n.Text()))
	if err != nil {
		return decimal.Decimal{}, &einvoice.FieldError{Path: path, Value: n.Text(), Err: einvoice.ErrConversion}
	}
	return d, nil
}

// normalizeNumeric cleans up numeric strings so they parse correctly:
// surrounding whitespace is removed and a leading decimal point gains a
// zero (".07" -> "0.07").
func normalizeNumeric(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, ".") {
		s = "0" + s
	}
	return s
}

// addressLinePaths lists the possible address line sources in their
// fixed priority order.
var addressLinePaths = []string{
	"cbc:StreetName",
	"cbc:AdditionalStreetName",
	"cac:AddressLine/cbc:Line",
}

// parseAddress maps a postal address subtree onto any model type that
// can receive address fields. Present lines keep the priority order
// above; absent sources are filtered out, never synthesized.
func parseAddress(n *xmlnode.Node, target einvoice.AddressTarget) error {
	lines := make([]string, 0, len(addressLinePaths))
	for _, path := range addressLinePaths {
		s, err := findText(n, path)
		if err != nil {
			return err
		}
		if s != nil {
			lines = append(lines, *s)
		}
	}
	target.SetAddressLines(lines)

	if s, err := findText(n, "cbc:CityName"); err != nil {
		return err
	} else if s != nil {
		target.SetCity(*s)
	}
	if s, err := findText(n, "cbc:PostalZone"); err != nil {
		return err
	} else if s != nil {
		target.SetPostalCode(*s)
	}
	if s, err := findText(n, "cbc:CountrySubentity"); err != nil {
		return err
	} else if s != nil {
		target.SetSubdivision(*s)
	}
	if s, err := findText(n, "cac:Country/cbc:IdentificationCode"); err != nil {
		return err
	} else if s != nil {
		target.SetCountry(*s)
	}
	return nil
}

// parseTaxCategory maps a tax category subtree onto any model type that
// carries VAT attributes. Category code and rate are independent.
func parseTaxCategory(n *xmlnode.Node, target einvoice.TaxTarget) error {
	if s, err := findText(n, "cbc:ID"); err != nil {
		return err
	} else if s != nil {
		target.SetTaxCategory(*s)
	}
	if d, err := findDecimal(n, "cbc:Percent"); err != nil {
		return err
	} else if d != nil {
		target.SetTaxRate(*d)
	}
	return nil
}
