package ubl

import (
	"github.com/invopop/einvoice"
	"github.com/invopop/einvoice/xmlnode"
)

// parseInvoice walks the document root and assembles the invoice
// aggregate.
func parseInvoice(root *xmlnode.Node) (*einvoice.Invoice, error) {
	inv := einvoice.NewInvoice(nil)

	// The specification identifier must be read first, unconditionally:
	// when it resolves to a preset the invoice created above is
	// discarded and replaced by one bound to that preset, so no other
	// field may be extracted before this point.
	spec, err := findText(root, "cbc:CustomizationID")
	if err != nil {
		return nil, err
	}
	if spec != nil {
		if p := einvoice.FindPreset(*spec); p != nil {
			inv = einvoice.NewInvoice(p)
		}
		inv.Specification = spec
	}

	if inv.BusinessProcess, err = findText(root, "cbc:ProfileID"); err != nil {
		return nil, err
	}
	if inv.Number, err = findText(root, "cbc:ID"); err != nil {
		return nil, err
	}
	if inv.IssueDate, err = findDate(root, "cbc:IssueDate"); err != nil {
		return nil, err
	}
	if inv.DueDate, err = findDate(root, "cbc:DueDate"); err != nil {
		return nil, err
	}
	if inv.TypeCode, err = findInt(root, "cbc:InvoiceTypeCode"); err != nil {
		return nil, err
	}
	if inv.Note, err = findText(root, "cbc:Note"); err != nil {
		return nil, err
	}
	if inv.TaxPointDate, err = findDate(root, "cbc:TaxPointDate"); err != nil {
		return nil, err
	}
	if inv.Currency, err = findText(root, "cbc:DocumentCurrencyCode"); err != nil {
		return nil, err
	}
	if inv.AccountingReference, err = findText(root, "cbc:AccountingCost"); err != nil {
		return nil, err
	}
	if inv.BuyerReference, err = findText(root, "cbc:BuyerReference"); err != nil {
		return nil, err
	}
	if inv.PeriodStart, err = findDate(root, "cac:InvoicePeriod/cbc:StartDate"); err != nil {
		return nil, err
	}
	if inv.PeriodEnd, err = findDate(root, "cac:InvoicePeriod/cbc:EndDate"); err != nil {
		return nil, err
	}

	if err := parseBillingReferences(root, inv); err != nil {
		return nil, err
	}

	if seller, err := root.First("cac:AccountingSupplierParty/cac:Party"); err != nil {
		return nil, structural(err)
	} else if seller != nil {
		if inv.Seller, err = parseParty(seller); err != nil {
			return nil, err
		}
	}
	if buyer, err := root.First("cac:AccountingCustomerParty/cac:Party"); err != nil {
		return nil, structural(err)
	} else if buyer != nil {
		if inv.Buyer, err = parseParty(buyer); err != nil {
			return nil, err
		}
	}
	if payee, err := root.First("cac:PayeeParty"); err != nil {
		return nil, structural(err)
	} else if payee != nil {
		if inv.Payee, err = parsePayee(payee); err != nil {
			return nil, err
		}
	}

	if delivery, err := root.First("cac:Delivery"); err != nil {
		return nil, structural(err)
	} else if delivery != nil {
		if inv.Delivery, err = parseDelivery(delivery); err != nil {
			return nil, err
		}
	}

	if inv.Payment, err = parsePayment(root); err != nil {
		return nil, err
	}
	if err := parseAttachments(root, inv); err != nil {
		return nil, err
	}

	charges, err := root.All("cac:AllowanceCharge")
	if err != nil {
		return nil, structural(err)
	}
	for _, node := range charges {
		if err := parseAllowanceCharge(node, inv); err != nil {
			return nil, err
		}
	}

	lines, err := root.All("cac:InvoiceLine")
	if err != nil {
		return nil, structural(err)
	}
	for _, node := range lines {
		line, err := parseLine(node)
		if err != nil {
			return nil, err
		}
		inv.AddLine(line)
	}

	return inv, nil
}

// parseBillingReferences collects the preceding invoice references in
// document order.
func parseBillingReferences(root *xmlnode.Node, inv *einvoice.Invoice) error {
	refs, err := root.All("cac:BillingReference/cac:InvoiceDocumentReference")
	if err != nil {
		return structural(err)
	}
	for _, node := range refs {
		number, err := findText(node, "cbc:ID")
		if err != nil {
			return err
		}
		if number == nil {
			return missing("cac:InvoiceDocumentReference/cbc:ID")
		}
		ref := einvoice.PrecedingReference{Number: *number}
		if ref.IssueDate, err = findDate(node, "cbc:IssueDate"); err != nil {
			return err
		}
		inv.Preceding = append(inv.Preceding, ref)
	}
	return nil
}

// parseAttachments collects the additional document references, with
// their embedded or externally referenced attachments, in document
// order.
func parseAttachments(root *xmlnode.Node, inv *einvoice.Invoice) error {
	refs, err := root.All("cac:AdditionalDocumentReference")
	if err != nil {
		return structural(err)
	}
	for _, node := range refs {
		att, err := parseAttachment(node)
		if err != nil {
			return err
		}
		inv.Attachments = append(inv.Attachments, att)
	}
	return nil
}
