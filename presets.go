package einvoice

import (
	"strings"

	"github.com/invopop/validation"
)

// Preset binds an invoice to a named business rule profile selected by
// the document's specification identifier (BT-24).
type Preset struct {
	// Key is the short name used to refer to the preset.
	Key string `json:"key"`
	// CustomizationID is the specification identifier that selects
	// this preset.
	CustomizationID string `json:"customization_id"`
	// ProfileID is the default business process identifier for
	// documents issued under this preset.
	ProfileID string `json:"profile_id,omitempty"`
	// Description names the rule set in human terms.
	Description string `json:"-"`
}

// Is checks if two presets are the same.
func (p *Preset) Is(p2 Preset) bool {
	return p.Key == p2.Key
}

// Validate ensures the preset definition is complete.
func (p Preset) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Key, validation.Required),
		validation.Field(&p.CustomizationID, validation.Required),
	)
}

// FindPreset resolves a specification identifier against the registry.
// Exact matches win; otherwise the preset whose CustomizationID is the
// longest prefix of the identifier is chosen, so sub-profiled documents
// still land on the most specific rule set. Returns nil when nothing
// matches; the caller falls back to the generic invoice model.
func FindPreset(customizationID string) *Preset {
	if customizationID == "" {
		return nil
	}

	for i := range presets {
		if presets[i].CustomizationID == customizationID {
			return &presets[i]
		}
	}

	var best *Preset
	for i := range presets {
		p := &presets[i]
		if !strings.HasPrefix(customizationID, p.CustomizationID) {
			continue
		}
		if best == nil || len(p.CustomizationID) > len(best.CustomizationID) {
			best = p
		}
	}
	return best
}

// When adding new presets, remember to add them to both the exported
// variable definitions below AND the presets slice.

// PresetEN16931 is the base European semantic model rule set.
var PresetEN16931 = Preset{
	Key:             "en16931",
	CustomizationID: "urn:cen.eu:en16931:2017",
	Description:     "EN 16931 core invoice model",
}

// PresetPeppol is the Peppol BIS Billing 3.0 rule set.
var PresetPeppol = Preset{
	Key:             "peppol",
	CustomizationID: "urn:cen.eu:en16931:2017#compliant#urn:fdc:peppol.eu:2017:poacc:billing:3.0",
	ProfileID:       "urn:fdc:peppol.eu:2017:poacc:billing:01:1.0",
	Description:     "Peppol BIS Billing 3.0",
}

// PresetXRechnung is the German XRechnung CIUS.
var PresetXRechnung = Preset{
	Key:             "xrechnung",
	CustomizationID: "urn:cen.eu:en16931:2017#compliant#urn:xeinkauf.de:kosit:xrechnung_3.0",
	ProfileID:       "urn:fdc:peppol.eu:2017:poacc:billing:01:1.0",
	Description:     "XRechnung 3.0",
}

// PresetNLCIUS is the Dutch national CIUS.
var PresetNLCIUS = Preset{
	Key:             "nlcius",
	CustomizationID: "urn:cen.eu:en16931:2017#compliant#urn:fdc:nen.nl:nlcius:v1.0",
	Description:     "NLCIUS",
}

// PresetCIUSRO is the Romanian national CIUS.
var PresetCIUSRO = Preset{
	Key:             "cius-ro",
	CustomizationID: "urn:cen.eu:en16931:2017#compliant#urn:efactura.mfinante.ro:CIUS-RO:1.0.1",
	Description:     "CIUS-RO",
}

// PresetOIOUBL is the Danish OIOUBL 3 (Nemhandel) rule set.
var PresetOIOUBL = Preset{
	Key:             "oioubl",
	CustomizationID: "urn:fdc:oioubl.dk:trns:billing:invoice:3.0",
	ProfileID:       "urn:fdc:oioubl.dk:bis:billing_with_response:3",
	Description:     "OIOUBL 3.0",
}

// presets is used for lookups during parsing. When adding new presets,
// remember to add them here AND as exported variables above.
var presets = []Preset{PresetEN16931, PresetPeppol, PresetXRechnung, PresetNLCIUS, PresetCIUSRO, PresetOIOUBL}
