package formula_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkaiser-dev/microgrid-graph/pkg/formula"
	"github.com/mkaiser-dev/microgrid-graph/pkg/graph"
	"github.com/mkaiser-dev/microgrid-graph/pkg/graphtest"
)

func TestCHPFormula(t *testing.T) {
	b := graphtest.NewBuilder()
	grid := b.Grid()

	gridMeter := b.Meter()
	b.Connect(grid, gridMeter)

	g, err := b.Build(graph.Config{})
	require.NoError(t, err)
	f, err := formula.CHP(g, nil)
	require.NoError(t, err)
	assert.Equal(t, "0.0", f)

	// A CHP meter with one CHP.
	meterCHPChain := b.MeterCHPChain(1)
	b.Connect(gridMeter, meterCHPChain)

	require.Equal(t, uint64(1), gridMeter.ComponentID())
	require.Equal(t, uint64(2), meterCHPChain.ComponentID())

	g, err = b.Build(graph.Config{})
	require.NoError(t, err)
	f, err = formula.CHP(g, nil)
	require.NoError(t, err)
	assert.Equal(t, "COALESCE(#3, #2)", f)

	// A battery meter with one inverter and two batteries doesn't
	// contribute.
	meterBatChain := b.MeterBatChain(1, 2)
	b.Connect(gridMeter, meterBatChain)

	require.Equal(t, uint64(4), meterBatChain.ComponentID())

	g, err = b.Build(graph.Config{})
	require.NoError(t, err)
	f, err = formula.CHP(g, nil)
	require.NoError(t, err)
	assert.Equal(t, "COALESCE(#3, #2)", f)

	// A CHP meter with two CHPs.
	meterCHPChain = b.MeterCHPChain(2)
	b.Connect(gridMeter, meterCHPChain)

	require.Equal(t, uint64(8), meterCHPChain.ComponentID())

	g, err = b.Build(graph.Config{})
	require.NoError(t, err)
	f, err = formula.CHP(g, nil)
	require.NoError(t, err)
	assert.Equal(t, "COALESCE(#3, #2) + COALESCE(#10 + #9, #8)", f)

	f, err = formula.CHP(g, []uint64{10, 3})
	require.NoError(t, err)
	assert.Equal(t, "COALESCE(#3, #2) + #10", f)

	// A meter directly on the grid with three CHPs.
	meterCHPChain = b.MeterCHPChain(3)
	b.Connect(grid, meterCHPChain)

	require.Equal(t, uint64(11), meterCHPChain.ComponentID())

	g, err = b.Build(graph.Config{})
	require.NoError(t, err)
	f, err = formula.CHP(g, nil)
	require.NoError(t, err)
	assert.Equal(t,
		"COALESCE(#3, #2) + COALESCE(#10 + #9, #8) + COALESCE(#14 + #13 + #12, #11)", f)

	f, err = formula.CHP(g, []uint64{3, 9, 10, 12, 13})
	require.NoError(t, err)
	assert.Equal(t, "COALESCE(#3, #2) + COALESCE(#10 + #9, #8) + #12 + #13", f)

	f, err = formula.CHP(g, []uint64{3, 9, 10, 12, 13, 14})
	require.NoError(t, err)
	assert.Equal(t,
		"COALESCE(#3, #2) + COALESCE(#10 + #9, #8) + COALESCE(#14 + #13 + #12, #11)", f)

	f, err = formula.CHP(g, []uint64{10, 14})
	require.NoError(t, err)
	assert.Equal(t, "#10 + #14", f)

	// Failure cases.
	_, err = formula.CHP(g, []uint64{8})
	assert.EqualError(t, err, "InvalidComponent: Component with id 8 is not a CHP.")
}
