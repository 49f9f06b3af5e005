package category

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategoryString(t *testing.T) {
	cases := []struct {
		category ComponentCategory
		want     string
	}{
		{Unspecified(), "Unspecified"},
		{Grid(), "Grid"},
		{Meter(), "Meter"},
		{Battery(BatteryUnspecified), "Battery(Unspecified)"},
		{Battery(BatteryLiIon), "Battery(LiIon)"},
		{Battery(BatteryNaIon), "Battery(NaIon)"},
		{Inverter(InverterUnspecified), "UnspecifiedInverter"},
		{Inverter(InverterSolar), "SolarInverter"},
		{Inverter(InverterBattery), "BatteryInverter"},
		{Inverter(InverterHybrid), "HybridInverter"},
		{EVCharger(EVChargerUnspecified), "EVCharger(Unspecified)"},
		{EVCharger(EVChargerAC), "EVCharger(AC)"},
		{EVCharger(EVChargerDC), "EVCharger(DC)"},
		{EVCharger(EVChargerHybrid), "EVCharger(Hybrid)"},
		{Converter(), "Converter"},
		{CryptoMiner(), "CryptoMiner"},
		{Electrolyzer(), "Electrolyzer"},
		{CHP(), "CHP"},
		{Precharger(), "Precharger"},
		{Fuse(), "Fuse"},
		{VoltageTransformer(), "VoltageTransformer"},
		{HVAC(), "HVAC"},
		{Relay(), "Relay"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.category.String())
	}
}

func TestCategoryZeroValue(t *testing.T) {
	var c ComponentCategory
	assert.True(t, c.IsUnspecified())
	assert.Equal(t, Unspecified(), c)
}

func TestPredicates(t *testing.T) {
	assert.True(t, Grid().IsGrid())
	assert.True(t, Meter().IsMeter())
	assert.True(t, Battery(BatteryLiIon).IsBattery())
	assert.True(t, CHP().IsCHP())
	assert.True(t, EVCharger(EVChargerDC).IsEVCharger())

	inv := Inverter(InverterBattery)
	assert.True(t, inv.IsInverter())
	assert.True(t, inv.IsBatteryInverter())
	assert.False(t, inv.IsPVInverter())
	assert.False(t, inv.IsHybridInverter())
	assert.False(t, inv.IsUnspecifiedInverter())

	assert.True(t, Inverter(InverterSolar).IsPVInverter())
	assert.True(t, Inverter(InverterHybrid).IsHybridInverter())
	assert.True(t, Inverter(InverterUnspecified).IsUnspecifiedInverter())

	// Sub-typed categories compare by kind and sub-type.
	assert.NotEqual(t, Battery(BatteryLiIon), Battery(BatteryNaIon))
	assert.Equal(t, Battery(BatteryLiIon), Battery(BatteryLiIon))

	assert.False(t, Meter().IsGrid())
	assert.False(t, Battery(BatteryLiIon).IsInverter())
}
