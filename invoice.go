package einvoice

// Invoice is the normalized invoice aggregate produced by a Reader.
//
// Optional fields are nil when the source document does not carry them;
// absence is never coerced into an empty string or zero. The ordered
// collections preserve source document order exactly.
type Invoice struct {
	// Preset is the business rule profile the document was matched
	// against, or nil for the generic invoice model.
	Preset *Preset `json:"preset,omitempty"`

	Specification   *string `json:"specification,omitempty"`
	BusinessProcess *string `json:"business_process,omitempty"`
	Number          *string `json:"number,omitempty"`
	IssueDate       *Date   `json:"issue_date,omitempty"`
	DueDate         *Date   `json:"due_date,omitempty"`
	TypeCode        *int    `json:"type_code,omitempty"`
	Note            *string `json:"note,omitempty"`
	TaxPointDate    *Date   `json:"tax_point_date,omitempty"`
	Currency        *string `json:"currency,omitempty"`

	// AccountingReference is the buyer accounting reference (BT-19).
	AccountingReference *string `json:"accounting_reference,omitempty"`
	BuyerReference      *string `json:"buyer_reference,omitempty"`

	PeriodStart *Date `json:"period_start,omitempty"`
	PeriodEnd   *Date `json:"period_end,omitempty"`

	Seller *Party `json:"seller,omitempty"`
	Buyer  *Party `json:"buyer,omitempty"`
	Payee  *Party `json:"payee,omitempty"`

	Delivery *Delivery `json:"delivery,omitempty"`
	Payment  *Payment  `json:"payment,omitempty"`

	Preceding   []PrecedingReference `json:"preceding,omitempty"`
	Attachments []Attachment         `json:"attachments,omitempty"`

	Charges    []*AllowanceOrCharge `json:"charges,omitempty"`
	Allowances []*AllowanceOrCharge `json:"allowances,omitempty"`
	Lines      []*InvoiceLine       `json:"lines,omitempty"`
}

// NewInvoice creates an empty invoice bound to the given preset. A nil
// preset yields the generic invoice model.
func NewInvoice(p *Preset) *Invoice {
	return &Invoice{Preset: p}
}

// AddCharge appends a charge, preserving document order.
func (inv *Invoice) AddCharge(c *AllowanceOrCharge) {
	c.Charge = true
	inv.Charges = append(inv.Charges, c)
}

// AddAllowance appends an allowance, preserving document order.
func (inv *Invoice) AddAllowance(c *AllowanceOrCharge) {
	c.Charge = false
	inv.Allowances = append(inv.Allowances, c)
}

// AddLine appends an invoice line, preserving document order.
func (inv *Invoice) AddLine(l *InvoiceLine) {
	inv.Lines = append(inv.Lines, l)
}

// PrecedingReference points at a previously issued invoice that this
// document amends or credits.
type PrecedingReference struct {
	Number    string `json:"number"`
	IssueDate *Date  `json:"issue_date,omitempty"`
}

// Attachment is a supporting document carried by the invoice, either
// embedded as binary content or referenced by URI.
type Attachment struct {
	ID          Identifier `json:"id"`
	Description *string    `json:"description,omitempty"`
	// Reference is the UNTDID 1001 code qualifying what the referenced
	// document is.
	Reference *string `json:"reference,omitempty"`
	Content   []byte  `json:"content,omitempty"`
	MimeCode    *string    `json:"mime_code,omitempty"`
	Filename    *string    `json:"filename,omitempty"`
	ExternalURI *string    `json:"external_uri,omitempty"`
}
