// Package records is a diffgen fixture. It covers the collection rules:
// managed fields are skipped, unexported fields are skipped, wire names come
// from the json tag when there is one and snake case when there is not.
package records

type Amp struct {
	Name     string   `json:"name"`
	Wattage  *uint16  `json:"wattage,omitempty"`
	Inputs   []string `json:"inputs,omitempty"`
	RMSPower *uint8

	Presets []string `json:"presets,omitempty" diff:"-"`

	serial string
}

type Widget struct {
	Label string `json:"label"`
}
