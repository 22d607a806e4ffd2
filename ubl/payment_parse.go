package ubl

import (
	"encoding/base64"
	"strings"

	"github.com/invopop/einvoice"
	"github.com/invopop/einvoice/xmlnode"
)

// parsePayment extracts settlement details from the first payment means
// subtree and the payment terms note. It returns nil when the document
// carries neither.
func parsePayment(root *xmlnode.Node) (*einvoice.Payment, error) {
	means, err := root.First("cac:PaymentMeans")
	if err != nil {
		return nil, structural(err)
	}
	terms, err := findText(root, "cac:PaymentTerms/cbc:Note")
	if err != nil {
		return nil, err
	}
	if means == nil && terms == nil {
		return nil, nil
	}

	p := new(einvoice.Payment)
	p.Terms = terms

	if means != nil {
		code, err := means.First("cbc:PaymentMeansCode")
		if err != nil {
			return nil, structural(err)
		}
		if code != nil {
			s := code.Text()
			p.MeansCode = &s
			if name, ok := code.Attr("name"); ok {
				p.MeansText = &name
			}
		}
		if p.ID, err = findText(means, "cbc:PaymentID"); err != nil {
			return nil, err
		}

		accounts, err := means.All("cac:PayeeFinancialAccount")
		if err != nil {
			return nil, structural(err)
		}
		for _, node := range accounts {
			t := new(einvoice.Transfer)
			if t.Account, err = findText(node, "cbc:ID"); err != nil {
				return nil, err
			}
			if t.Name, err = findText(node, "cbc:Name"); err != nil {
				return nil, err
			}
			if t.Provider, err = findText(node, "cac:FinancialInstitutionBranch/cbc:ID"); err != nil {
				return nil, err
			}
			p.AddTransfer(t)
		}
	}

	return p, nil
}

// parseAttachment extracts one additional document reference with its
// embedded or externally referenced attachment.
func parseAttachment(n *xmlnode.Node) (einvoice.Attachment, error) {
	var att einvoice.Attachment

	id, err := n.First("cbc:ID")
	if err != nil {
		return att, structural(err)
	}
	if id == nil {
		return att, missing("cac:AdditionalDocumentReference/cbc:ID")
	}
	att.ID = parseIdentifier(id, schemeAttr)

	if att.Reference, err = findText(n, "cbc:DocumentTypeCode"); err != nil {
		return att, err
	}
	if att.Description, err = findText(n, "cbc:DocumentDescription"); err != nil {
		return att, err
	}

	embedded, err := n.First("cac:Attachment/cbc:EmbeddedDocumentBinaryObject")
	if err != nil {
		return att, structural(err)
	}
	if embedded != nil {
		raw := strings.Join(strings.Fields(embedded.Text()), "")
		content, err := base64.StdEncoding.DecodeString(raw)
		if err != nil {
			return att, &einvoice.FieldError{
				Path:  "cbc:EmbeddedDocumentBinaryObject",
				Value: raw,
				Err:   einvoice.ErrConversion,
			}
		}
		att.Content = content
		if mime, ok := embedded.Attr("mimeCode"); ok {
			att.MimeCode = &mime
		}
		if filename, ok := embedded.Attr("filename"); ok {
			att.Filename = &filename
		}
	}

	if att.ExternalURI, err = findText(n, "cac:Attachment/cac:ExternalReference/cbc:URI"); err != nil {
		return att, err
	}

	return att, nil
}
