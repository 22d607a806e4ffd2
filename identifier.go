package einvoice

import "github.com/invopop/validation"

// Identifier is a value optionally qualified by the identification
// scheme it belongs to, such as a GLN or a VAT number scheme.
type Identifier struct {
	Value  string  `json:"value"`
	Scheme *string `json:"scheme,omitempty"`
}

// NewIdentifier creates an identifier without a scheme qualifier.
func NewIdentifier(value string) Identifier {
	return Identifier{Value: value}
}

// WithScheme returns a copy of the identifier qualified by the given
// scheme.
func (id Identifier) WithScheme(scheme string) Identifier {
	id.Scheme = &scheme
	return id
}

// Validate ensures the identifier carries a value.
func (id Identifier) Validate() error {
	return validation.ValidateStruct(&id,
		validation.Field(&id.Value, validation.Required),
	)
}
