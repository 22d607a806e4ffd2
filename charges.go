package einvoice

import "github.com/shopspring/decimal"

// TaxTarget is implemented by model types that carry VAT attributes, so
// tax category extraction can be shared between them.
type TaxTarget interface {
	SetTaxCategory(category string)
	SetTaxRate(rate decimal.Decimal)
}

// ChargeTarget is implemented by model types that accumulate charges
// and allowances in document order.
type ChargeTarget interface {
	AddCharge(c *AllowanceOrCharge)
	AddAllowance(c *AllowanceOrCharge)
}

// AllowanceOrCharge is a deduction or addition applied at invoice or
// line level. It is expressed either as an absolute monetary amount or
// as a percentage factor, never both.
type AllowanceOrCharge struct {
	// Charge distinguishes charges from allowances. It is set by the
	// owning collection's accumulator, not by the extraction step.
	Charge bool `json:"charge"`

	ReasonCode *string `json:"reason_code,omitempty"`
	Reason     *string `json:"reason,omitempty"`

	Amount  *decimal.Decimal `json:"amount,omitempty"`
	Percent *decimal.Decimal `json:"percent,omitempty"`

	TaxCategory *string          `json:"tax_category,omitempty"`
	TaxRate     *decimal.Decimal `json:"tax_rate,omitempty"`
}

// SetAmount records the occurrence as an absolute monetary value.
func (ac *AllowanceOrCharge) SetAmount(a decimal.Decimal) {
	ac.Amount = &a
	ac.Percent = nil
}

// SetPercent records the occurrence as a percentage factor.
func (ac *AllowanceOrCharge) SetPercent(p decimal.Decimal) {
	ac.Percent = &p
	ac.Amount = nil
}

// IsPercentage reports whether the occurrence is percentage based.
func (ac *AllowanceOrCharge) IsPercentage() bool {
	return ac.Percent != nil
}

// SetTaxCategory implements TaxTarget.
func (ac *AllowanceOrCharge) SetTaxCategory(category string) {
	ac.TaxCategory = &category
}

// SetTaxRate implements TaxTarget.
func (ac *AllowanceOrCharge) SetTaxRate(rate decimal.Decimal) {
	ac.TaxRate = &rate
}

var _ TaxTarget = (*AllowanceOrCharge)(nil)
