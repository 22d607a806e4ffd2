package ubl

import (
	"github.com/invopop/einvoice"
	"github.com/invopop/einvoice/xmlnode"
)

// parseLine extracts one invoice line. Every field is independently
// optional, except that the quantity's unit code is only read when a
// quantity is present.
func parseLine(n *xmlnode.Node) (*einvoice.InvoiceLine, error) {
	line := new(einvoice.InvoiceLine)

	qty, err := n.First("cbc:InvoicedQuantity")
	if err != nil {
		return nil, structural(err)
	}
	if qty != nil {
		q, err := toDecimal(qty, "cbc:InvoicedQuantity")
		if err != nil {
			return nil, err
		}
		line.Quantity = &q
		if unit, ok := qty.Attr("unitCode"); ok {
			line.Unit = &unit
		}
	}

	if line.AccountingReference, err = findText(n, "cbc:AccountingCost"); err != nil {
		return nil, err
	}
	if line.OrderLine, err = findText(n, "cac:OrderLineReference/cbc:LineID"); err != nil {
		return nil, err
	}
	if line.Note, err = findText(n, "cbc:Note"); err != nil {
		return nil, err
	}
	if line.PeriodStart, err = findDate(n, "cac:InvoicePeriod/cbc:StartDate"); err != nil {
		return nil, err
	}
	if line.PeriodEnd, err = findDate(n, "cac:InvoicePeriod/cbc:EndDate"); err != nil {
		return nil, err
	}

	charges, err := n.All("cac:AllowanceCharge")
	if err != nil {
		return nil, structural(err)
	}
	for _, node := range charges {
		if err := parseAllowanceCharge(node, line); err != nil {
			return nil, err
		}
	}

	if line.Description, err = findText(n, "cac:Item/cbc:Description"); err != nil {
		return nil, err
	}
	if line.Name, err = findText(n, "cac:Item/cbc:Name"); err != nil {
		return nil, err
	}
	if line.BuyerID, err = findText(n, "cac:Item/cac:BuyersItemIdentification/cbc:ID"); err != nil {
		return nil, err
	}
	if line.SellerID, err = findText(n, "cac:Item/cac:SellersItemIdentification/cbc:ID"); err != nil {
		return nil, err
	}

	standard, err := n.First("cac:Item/cac:StandardItemIdentification/cbc:ID")
	if err != nil {
		return nil, structural(err)
	}
	if standard != nil {
		id := parseIdentifier(standard, schemeAttr)
		line.StandardID = &id
	}

	if line.OriginCountry, err = findText(n, "cac:Item/cac:OriginCountry/cbc:IdentificationCode"); err != nil {
		return nil, err
	}

	classifications, err := n.All("cac:Item/cac:CommodityClassification/cbc:ItemClassificationCode")
	if err != nil {
		return nil, structural(err)
	}
	for _, node := range classifications {
		line.AddClassification(parseIdentifier(node, listAttr))
	}

	if line.Price, err = findDecimal(n, "cac:Price/cbc:PriceAmount"); err != nil {
		return nil, err
	}
	if line.BaseQuantity, err = findDecimal(n, "cac:Price/cbc:BaseQuantity"); err != nil {
		return nil, err
	}

	category, err := n.First("cac:Item/cac:ClassifiedTaxCategory")
	if err != nil {
		return nil, structural(err)
	}
	if category != nil {
		if err := parseTaxCategory(category, line); err != nil {
			return nil, err
		}
	}

	return line, nil
}
