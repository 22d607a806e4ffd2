package einvoice

// AddressTarget is implemented by model types that carry a postal
// address, so address extraction can be shared between them.
type AddressTarget interface {
	SetAddressLines(lines []string)
	SetCity(city string)
	SetPostalCode(code string)
	SetSubdivision(subdivision string)
	SetCountry(code string)
}

// Party is a trading party on the invoice: seller, buyer or payee.
type Party struct {
	// ElectronicAddress is the party's routing endpoint (BT-34/BT-49).
	ElectronicAddress *Identifier `json:"electronic_address,omitempty"`
	// Identifiers holds additional party identifications in document
	// order.
	Identifiers []Identifier `json:"identifiers,omitempty"`

	TradingName *string `json:"trading_name,omitempty"`
	LegalName   *string `json:"legal_name,omitempty"`

	AddressLines []string `json:"address_lines,omitempty"`
	City         *string  `json:"city,omitempty"`
	PostalCode   *string  `json:"postal_code,omitempty"`
	Subdivision  *string  `json:"subdivision,omitempty"`
	Country      *string  `json:"country,omitempty"`

	VATNumber *string     `json:"vat_number,omitempty"`
	CompanyID *Identifier `json:"company_id,omitempty"`

	ContactName  *string `json:"contact_name,omitempty"`
	ContactPhone *string `json:"contact_phone,omitempty"`
	ContactEmail *string `json:"contact_email,omitempty"`
}

// AddIdentifier appends an additional identifier, preserving document
// order.
func (p *Party) AddIdentifier(id Identifier) {
	p.Identifiers = append(p.Identifiers, id)
}

// SetAddressLines implements AddressTarget.
func (p *Party) SetAddressLines(lines []string) { p.AddressLines = lines }

// SetCity implements AddressTarget.
func (p *Party) SetCity(city string) { p.City = &city }

// SetPostalCode implements AddressTarget.
func (p *Party) SetPostalCode(code string) { p.PostalCode = &code }

// SetSubdivision implements AddressTarget.
func (p *Party) SetSubdivision(subdivision string) { p.Subdivision = &subdivision }

// SetCountry implements AddressTarget.
func (p *Party) SetCountry(code string) { p.Country = &code }

// Delivery captures where and when the goods or services were
// delivered.
type Delivery struct {
	Date     *Date       `json:"date,omitempty"`
	Location *Identifier `json:"location,omitempty"`

	AddressLines []string `json:"address_lines,omitempty"`
	City         *string  `json:"city,omitempty"`
	PostalCode   *string  `json:"postal_code,omitempty"`
	Subdivision  *string  `json:"subdivision,omitempty"`
	Country      *string  `json:"country,omitempty"`

	// Name is the delivery party name.
	Name *string `json:"name,omitempty"`
}

// SetAddressLines implements AddressTarget.
func (d *Delivery) SetAddressLines(lines []string) { d.AddressLines = lines }

// SetCity implements AddressTarget.
func (d *Delivery) SetCity(city string) { d.City = &city }

// SetPostalCode implements AddressTarget.
func (d *Delivery) SetPostalCode(code string) { d.PostalCode = &code }

// SetSubdivision implements AddressTarget.
func (d *Delivery) SetSubdivision(subdivision string) { d.Subdivision = &subdivision }

// SetCountry implements AddressTarget.
func (d *Delivery) SetCountry(code string) { d.Country = &code }

var (
	_ AddressTarget = (*Party)(nil)
	_ AddressTarget = (*Delivery)(nil)
)
