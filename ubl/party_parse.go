package ubl

import (
	"github.com/invopop/einvoice"
	"github.com/invopop/einvoice/xmlnode"
)

// parseParty extracts a full trading party record. Every field is
// independently optional; the caller only invokes this when the party
// subtree itself is present.
func parseParty(n *xmlnode.Node) (*einvoice.Party, error) {
	p := new(einvoice.Party)

	endpoint, err := n.First("cbc:EndpointID")
	if err != nil {
		return nil, structural(err)
	}
	if endpoint != nil {
		id := parseIdentifier(endpoint, schemeAttr)
		p.ElectronicAddress = &id
	}

	ids, err := n.All("cac:PartyIdentification/cbc:ID")
	if err != nil {
		return nil, structural(err)
	}
	for _, node := range ids {
		p.AddIdentifier(parseIdentifier(node, schemeAttr))
	}

	if p.TradingName, err = findText(n, "cac:PartyName/cbc:Name"); err != nil {
		return nil, err
	}

	addr, err := n.First("cac:PostalAddress")
	if err != nil {
		return nil, structural(err)
	}
	if addr != nil {
		if err := parseAddress(addr, p); err != nil {
			return nil, err
		}
	}

	if p.VATNumber, err = findText(n, "cac:PartyTaxScheme/cbc:CompanyID"); err != nil {
		return nil, err
	}
	if p.LegalName, err = findText(n, "cac:PartyLegalEntity/cbc:RegistrationName"); err != nil {
		return nil, err
	}

	company, err := n.First("cac:PartyLegalEntity/cbc:CompanyID")
	if err != nil {
		return nil, structural(err)
	}
	if company != nil {
		id := parseIdentifier(company, schemeAttr)
		p.CompanyID = &id
	}

	if p.ContactName, err = findText(n, "cac:Contact/cbc:Name"); err != nil {
		return nil, err
	}
	if p.ContactPhone, err = findText(n, "cac:Contact/cbc:Telephone"); err != nil {
		return nil, err
	}
	if p.ContactEmail, err = findText(n, "cac:Contact/cbc:ElectronicMail"); err != nil {
		return nil, err
	}

	return p, nil
}

// parsePayee extracts the reduced field set the standard defines for
// the payee role. It is deliberately a separate contract from
// parseParty so fields the standard does not define for payees cannot
// leak in.
func parsePayee(n *xmlnode.Node) (*einvoice.Party, error) {
	p := new(einvoice.Party)

	ids, err := n.All("cac:PartyIdentification/cbc:ID")
	if err != nil {
		return nil, structural(err)
	}
	for _, node := range ids {
		p.AddIdentifier(parseIdentifier(node, schemeAttr))
	}

	if p.TradingName, err = findText(n, "cac:PartyName/cbc:Name"); err != nil {
		return nil, err
	}

	company, err := n.First("cac:PartyLegalEntity/cbc:CompanyID")
	if err != nil {
		return nil, structural(err)
	}
	if company != nil {
		id := parseIdentifier(company, schemeAttr)
		p.CompanyID = &id
	}

	return p, nil
}

// parseDelivery extracts shipment information: when, where and to whom
// the goods or services were delivered.
func parseDelivery(n *xmlnode.Node) (*einvoice.Delivery, error) {
	d := new(einvoice.Delivery)

	var err error
	if d.Date, err = findDate(n, "cbc:ActualDeliveryDate"); err != nil {
		return nil, err
	}

	loc, err := n.First("cac:DeliveryLocation/cbc:ID")
	if err != nil {
		return nil, structural(err)
	}
	if loc != nil {
		id := parseIdentifier(loc, schemeAttr)
		d.Location = &id
	}

	addr, err := n.First("cac:DeliveryLocation/cac:Address")
	if err != nil {
		return nil, structural(err)
	}
	if addr != nil {
		if err := parseAddress(addr, d); err != nil {
			return nil, err
		}
	}

	if d.Name, err = findText(n, "cac:DeliveryParty/cac:PartyName/cbc:Name"); err != nil {
		return nil, err
	}

	return d, nil
}
