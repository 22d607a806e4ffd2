package einvoice

import "github.com/shopspring/decimal"

// InvoiceLine is a single invoiced item.
type InvoiceLine struct {
	Quantity *decimal.Decimal `json:"quantity,omitempty"`
	// Unit is the quantity's unit code. It is never set without a
	// quantity.
	Unit *string `json:"unit,omitempty"`

	// AccountingReference is the buyer accounting reference for the
	// line (BT-133).
	AccountingReference *string `json:"accounting_reference,omitempty"`
	OrderLine           *string `json:"order_line,omitempty"`
	Note                *string `json:"note,omitempty"`

	PeriodStart *Date `json:"period_start,omitempty"`
	PeriodEnd   *Date `json:"period_end,omitempty"`

	Charges    []*AllowanceOrCharge `json:"charges,omitempty"`
	Allowances []*AllowanceOrCharge `json:"allowances,omitempty"`

	Description *string `json:"description,omitempty"`
	Name        *string `json:"name,omitempty"`

	BuyerID    *string     `json:"buyer_id,omitempty"`
	SellerID   *string     `json:"seller_id,omitempty"`
	StandardID *Identifier `json:"standard_id,omitempty"`

	OriginCountry *string `json:"origin_country,omitempty"`
	// Classifications holds the commodity classification codes in
	// document order.
	Classifications []Identifier `json:"classifications,omitempty"`

	Price        *decimal.Decimal `json:"price,omitempty"`
	BaseQuantity *decimal.Decimal `json:"base_quantity,omitempty"`

	TaxCategory *string          `json:"tax_category,omitempty"`
	TaxRate     *decimal.Decimal `json:"tax_rate,omitempty"`
}

// AddCharge appends a line level charge, preserving document order.
func (l *InvoiceLine) AddCharge(c *AllowanceOrCharge) {
	c.Charge = true
	l.Charges = append(l.Charges, c)
}

// AddAllowance appends a line level allowance, preserving document
// order.
func (l *InvoiceLine) AddAllowance(c *AllowanceOrCharge) {
	c.Charge = false
	l.Allowances = append(l.Allowances, c)
}

// AddClassification appends a commodity classification identifier,
// preserving document order.
func (l *InvoiceLine) AddClassification(id Identifier) {
	l.Classifications = append(l.Classifications, id)
}

// SetTaxCategory implements TaxTarget.
func (l *InvoiceLine) SetTaxCategory(category string) {
	l.TaxCategory = &category
}

// SetTaxRate implements TaxTarget.
func (l *InvoiceLine) SetTaxRate(rate decimal.Decimal) {
	l.TaxRate = &rate
}

var (
	_ TaxTarget    = (*InvoiceLine)(nil)
	_ ChargeTarget = (*InvoiceLine)(nil)
	_ ChargeTarget = (*Invoice)(nil)
)
