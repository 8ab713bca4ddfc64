package model

// Carrier identifies one energy carrier on a bill.
// Keep these values stable; they appear in JSON, YAML and CSV output.
type Carrier string

const (
	CarrierElectricity Carrier = "electricity"
	CarrierNaturalGas  Carrier = "natural-gas"
	CarrierFuelOil     Carrier = "fuel-oil"
	CarrierWoodPellet  Carrier = "wood-pellet"
	CarrierWoodChip    Carrier = "wood-chip"
	CarrierPropane     Carrier = "propane"
)

// CarrierInfo is the static catalog entry for one carrier.
type CarrierInfo struct {
	Label                string
	DefaultEscalationPct float64
}

// carrierOrder fixes display/stacking order for tables and exports.
var carrierOrder = []Carrier{
	CarrierElectricity,
	CarrierNaturalGas,
	CarrierFuelOil,
	CarrierWoodPellet,
	CarrierWoodChip,
	CarrierPropane,
}

var catalog = map[Carrier]CarrierInfo{
	CarrierElectricity: {Label: "Electricity", DefaultEscalationPct: 3.0},
	CarrierNaturalGas:  {Label: "Natural Gas", DefaultEscalationPct: 5.0},
	CarrierFuelOil:     {Label: "Fuel Oil", DefaultEscalationPct: 6.0},
	CarrierWoodPellet:  {Label: "Wood Pellets", DefaultEscalationPct: 4.0},
	CarrierWoodChip:    {Label: "Wood Chips", DefaultEscalationPct: 3.5},
	CarrierPropane:     {Label: "Propane", DefaultEscalationPct: 5.5},
}

// Carriers returns all known carriers in stable display order.
func Carriers() []Carrier {
	out := make([]Carrier, len(carrierOrder))
	copy(out, carrierOrder)
	return out
}

func (c Carrier) Valid() bool {
	_, ok := catalog[c]
	return ok
}

func (c Carrier) Label() string {
	if info, ok := catalog[c]; ok {
		return info.Label
	}
	return string(c)
}

// DefaultEscalationPct is the catalog default annual price escalation in
// percent, used when a rate map does not set the carrier explicitly.
func (c Carrier) DefaultEscalationPct() float64 {
	return catalog[c].DefaultEscalationPct
}
