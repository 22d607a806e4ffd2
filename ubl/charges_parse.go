package ubl

import (
	"github.com/invopop/einvoice"
	"github.com/invopop/einvoice/xmlnode"
)

// parseAllowanceCharge extracts one allowance-or-charge occurrence and
// appends it to the owning target's charge or allowance collection,
// depending on the charge indicator.
func parseAllowanceCharge(n *xmlnode.Node, target einvoice.ChargeTarget) error {
	indicator, err := n.First("cbc:ChargeIndicator")
	if err != nil {
		return structural(err)
	}
	if indicator == nil {
		return missing("cbc:ChargeIndicator")
	}

	ac := new(einvoice.AllowanceOrCharge)
	if indicator.Text() == "true" {
		target.AddCharge(ac)
	} else {
		target.AddAllowance(ac)
	}

	if ac.ReasonCode, err = findText(n, "cbc:AllowanceChargeReasonCode"); err != nil {
		return err
	}
	if ac.Reason, err = findText(n, "cbc:AllowanceChargeReason"); err != nil {
		return err
	}

	// A multiplier factor makes the occurrence percentage based;
	// otherwise an absolute amount is required.
	factor, err := findDecimal(n, "cbc:MultiplierFactorNumeric")
	if err != nil {
		return err
	}
	if factor != nil {
		ac.SetPercent(*factor)
	} else {
		amount, err := findDecimal(n, "cbc:Amount")
		if err != nil {
			return err
		}
		if amount == nil {
			return missing("cbc:Amount")
		}
		ac.SetAmount(*amount)
	}

	category, err := n.First("cac:TaxCategory")
	if err != nil {
		return structural(err)
	}
	if category != nil {
		return parseTaxCategory(category, ac)
	}
	return nil
}
