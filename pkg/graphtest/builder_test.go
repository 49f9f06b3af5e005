package graphtest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkaiser-dev/microgrid-graph/pkg/category"
	"github.com/mkaiser-dev/microgrid-graph/pkg/graph"
)

func TestBuilderAssignsSequentialIDs(t *testing.T) {
	b := NewBuilder()
	grid := b.Grid()
	meter := b.Meter()
	chain := b.MeterBatChain(2, 2)

	assert.Equal(t, uint64(0), grid.ComponentID())
	assert.Equal(t, uint64(1), meter.ComponentID())
	assert.Equal(t, uint64(2), chain.ComponentID())
	// The chain allocated a meter, two inverters and two batteries.
	assert.Len(t, b.Components(), 7)
}

func TestBuilderBuildsValidGraph(t *testing.T) {
	b := NewBuilder()
	grid := b.Grid()
	gridMeter := b.Meter()
	b.Connect(grid, gridMeter)
	b.Connect(gridMeter, b.MeterBatChain(1, 1))
	b.Connect(gridMeter, b.MeterPVChain(2))
	b.Connect(gridMeter, b.MeterCHPChain(1))
	b.Connect(gridMeter, b.MeterEVChargerChain(1))
	b.Connect(grid, b.InvBatChain(1))

	g, err := b.Build(graph.Config{})
	require.NoError(t, err)
	assert.Equal(t, uint64(0), g.RootID())
	assert.Len(t, g.Components(), len(b.Components()))
}

func TestUnsupportedComponent(t *testing.T) {
	b := NewBuilder()
	supported := b.Meter()
	unsupported := b.AddUnsupportedComponent(category.Meter())

	components := b.Components()
	assert.True(t, components[supported.ComponentID()].IsSupported())
	assert.False(t, components[unsupported.ComponentID()].IsSupported())
}

func TestComponentAndConnectionContracts(t *testing.T) {
	c := NewComponent(7, category.CHP())
	assert.Equal(t, uint64(7), c.ComponentID())
	assert.Equal(t, category.CHP(), c.Category())
	assert.True(t, c.IsSupported())

	e := NewConnection(1, 2)
	assert.Equal(t, uint64(1), e.Source())
	assert.Equal(t, uint64(2), e.Destination())
}
