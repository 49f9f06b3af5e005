package category

// IsUnspecified returns true if the category itself is unspecified.
func (c ComponentCategory) IsUnspecified() bool { return c.kind == kindUnspecified }

// IsGrid returns true for the grid connection point.
func (c ComponentCategory) IsGrid() bool { return c.kind == kindGrid }

// IsMeter returns true for meters.
func (c ComponentCategory) IsMeter() bool { return c.kind == kindMeter }

// IsBattery returns true for batteries of any chemistry.
func (c ComponentCategory) IsBattery() bool { return c.kind == kindBattery }

// IsInverter returns true for inverters of any type.
func (c ComponentCategory) IsInverter() bool { return c.kind == kindInverter }

// IsBatteryInverter returns true for battery inverters.
func (c ComponentCategory) IsBatteryInverter() bool {
	return c.kind == kindInverter && c.inverter == InverterBattery
}

// IsPVInverter returns true for solar inverters.
func (c ComponentCategory) IsPVInverter() bool {
	return c.kind == kindInverter && c.inverter == InverterSolar
}

// IsHybridInverter returns true for hybrid inverters.
func (c ComponentCategory) IsHybridInverter() bool {
	return c.kind == kindInverter && c.inverter == InverterHybrid
}

// IsUnspecifiedInverter returns true for inverters whose type is not
// specified.
func (c ComponentCategory) IsUnspecifiedInverter() bool {
	return c.kind == kindInverter && c.inverter == InverterUnspecified
}

// IsEVCharger returns true for EV chargers of any type.
func (c ComponentCategory) IsEVCharger() bool { return c.kind == kindEVCharger }

// IsCHP returns true for combined heat-and-power generators.
func (c ComponentCategory) IsCHP() bool { return c.kind == kindCHP }
