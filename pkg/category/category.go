// Package category defines the closed taxonomy of microgrid component
// categories and the predicates used to classify them.
package category

import "fmt"

// BatteryType represents the chemistry of a battery.
type BatteryType uint8

const (
	BatteryUnspecified BatteryType = iota
	BatteryLiIon
	BatteryNaIon
)

func (t BatteryType) String() string {
	switch t {
	case BatteryLiIon:
		return "LiIon"
	case BatteryNaIon:
		return "NaIon"
	default:
		return "Unspecified"
	}
}

// InverterType represents the type of an inverter.
type InverterType uint8

const (
	InverterUnspecified InverterType = iota
	InverterSolar
	InverterBattery
	InverterHybrid
)

func (t InverterType) String() string {
	switch t {
	case InverterSolar:
		return "Solar"
	case InverterBattery:
		return "Battery"
	case InverterHybrid:
		return "Hybrid"
	default:
		return "Unspecified"
	}
}

// EVChargerType represents the charging current type of an EV charger.
type EVChargerType uint8

const (
	EVChargerUnspecified EVChargerType = iota
	EVChargerAC
	EVChargerDC
	EVChargerHybrid
)

func (t EVChargerType) String() string {
	switch t {
	case EVChargerAC:
		return "AC"
	case EVChargerDC:
		return "DC"
	case EVChargerHybrid:
		return "Hybrid"
	default:
		return "Unspecified"
	}
}

// kind discriminates the ComponentCategory union.
type kind uint8

const (
	kindUnspecified kind = iota
	kindGrid
	kindMeter
	kindBattery
	kindInverter
	kindEVCharger
	kindConverter
	kindCryptoMiner
	kindElectrolyzer
	kindCHP
	kindPrecharger
	kindFuse
	kindVoltageTransformer
	kindHVAC
	kindRelay
)

// ComponentCategory represents the category of a component.
//
// It is a tagged union: batteries, inverters and EV chargers carry a
// sub-type, all other categories are bare tags. The zero value is
// Unspecified. Values are comparable with ==.
type ComponentCategory struct {
	kind      kind
	battery   BatteryType
	inverter  InverterType
	evCharger EVChargerType
}

// Constructors for the bare category tags.

func Unspecified() ComponentCategory { return ComponentCategory{kind: kindUnspecified} }

func Grid() ComponentCategory { return ComponentCategory{kind: kindGrid} }

func Meter() ComponentCategory { return ComponentCategory{kind: kindMeter} }

func Converter() ComponentCategory { return ComponentCategory{kind: kindConverter} }

func CryptoMiner() ComponentCategory { return ComponentCategory{kind: kindCryptoMiner} }

func Electrolyzer() ComponentCategory { return ComponentCategory{kind: kindElectrolyzer} }

func CHP() ComponentCategory { return ComponentCategory{kind: kindCHP} }

func Precharger() ComponentCategory { return ComponentCategory{kind: kindPrecharger} }

func Fuse() ComponentCategory { return ComponentCategory{kind: kindFuse} }

func VoltageTransformer() ComponentCategory { return ComponentCategory{kind: kindVoltageTransformer} }

func HVAC() ComponentCategory { return ComponentCategory{kind: kindHVAC} }

func Relay() ComponentCategory { return ComponentCategory{kind: kindRelay} }

// Battery returns the category of a battery with the given chemistry.
func Battery(t BatteryType) ComponentCategory {
	return ComponentCategory{kind: kindBattery, battery: t}
}

// Inverter returns the category of an inverter of the given type.
func Inverter(t InverterType) ComponentCategory {
	return ComponentCategory{kind: kindInverter, inverter: t}
}

// EVCharger returns the category of an EV charger of the given type.
func EVCharger(t EVChargerType) ComponentCategory {
	return ComponentCategory{kind: kindEVCharger, evCharger: t}
}

// BatteryType returns the battery sub-type. It is only meaningful when
// IsBattery is true.
func (c ComponentCategory) BatteryType() BatteryType { return c.battery }

// InverterType returns the inverter sub-type. It is only meaningful when
// IsInverter is true.
func (c ComponentCategory) InverterType() InverterType { return c.inverter }

// EVChargerType returns the EV charger sub-type. It is only meaningful when
// IsEVCharger is true.
func (c ComponentCategory) EVChargerType() EVChargerType { return c.evCharger }

// String returns the stable human-readable spelling used in diagnostics.
func (c ComponentCategory) String() string {
	switch c.kind {
	case kindGrid:
		return "Grid"
	case kindMeter:
		return "Meter"
	case kindBattery:
		return fmt.Sprintf("Battery(%s)", c.battery)
	case kindInverter:
		return fmt.Sprintf("%sInverter", c.inverter)
	case kindEVCharger:
		return fmt.Sprintf("EVCharger(%s)", c.evCharger)
	case kindConverter:
		return "Converter"
	case kindCryptoMiner:
		return "CryptoMiner"
	case kindElectrolyzer:
		return "Electrolyzer"
	case kindCHP:
		return "CHP"
	case kindPrecharger:
		return "Precharger"
	case kindFuse:
		return "Fuse"
	case kindVoltageTransformer:
		return "VoltageTransformer"
	case kindHVAC:
		return "HVAC"
	case kindRelay:
		return "Relay"
	default:
		return "Unspecified"
	}
}
