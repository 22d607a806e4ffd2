package einvoice

// Payment groups how the invoice is expected to be settled.
type Payment struct {
	// MeansCode is the UNTDID 4461 payment means code.
	MeansCode *string `json:"means_code,omitempty"`
	// MeansText is the optional human readable form of the means code.
	MeansText *string `json:"means_text,omitempty"`
	// ID is the remittance information used to match the payment.
	ID *string `json:"id,omitempty"`
	// Terms is the free text payment terms note.
	Terms *string `json:"terms,omitempty"`
	// Transfers lists credit transfer destination accounts in document
	// order.
	Transfers []*Transfer `json:"transfers,omitempty"`
}

// AddTransfer appends a credit transfer destination, preserving
// document order.
func (p *Payment) AddTransfer(t *Transfer) {
	p.Transfers = append(p.Transfers, t)
}

// Transfer identifies a credit transfer destination account.
type Transfer struct {
	// Account is the account identifier, typically an IBAN.
	Account *string `json:"account,omitempty"`
	Name    *string `json:"name,omitempty"`
	// Provider is the payment service provider identifier, typically a
	// BIC.
	Provider *string `json:"provider,omitempty"`
}
