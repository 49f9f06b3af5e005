package formula

import (
	"strconv"
	"strings"

	"github.com/mkaiser-dev/microgrid-graph/pkg/graph"
)

// zeroFormula is returned when a metric has no contributing components.
const zeroFormula = "0.0"

// Grid returns the grid power formula: the sum of everything connected
// to the grid connection point.
func Grid(g *graph.ComponentGraph) (string, error) {
	return gridFormulaBuilder{graph: g}.build()
}

// Consumer returns the consumer power formula: the site load that is not
// accounted for by production or storage.
func Consumer(g *graph.ComponentGraph) (string, error) {
	builder, err := newConsumerFormulaBuilder(g)
	if err != nil {
		return "", err
	}
	return builder.build()
}

// Producer returns the producer power formula: the sum of all PV and CHP
// production in the graph, clamped to the production sign.
func Producer(g *graph.ComponentGraph) (string, error) {
	return producerFormulaBuilder{graph: g}.build()
}

// Battery returns the battery power formula. When batteryIDs is nil, all
// battery inverters in the graph contribute; batteries behind hybrid
// inverters are not included. Otherwise only the inverters of the named
// batteries contribute, and the named batteries must form complete
// sibling groups.
func Battery(g *graph.ComponentGraph, batteryIDs []uint64) (string, error) {
	builder, err := newBatteryFormulaBuilder(g, batteryIDs)
	if err != nil {
		return "", err
	}
	return builder.build()
}

// PV returns the PV power formula over the given solar inverters, or
// over all solar inverters in the graph when pvInverterIDs is nil.
func PV(g *graph.ComponentGraph, pvInverterIDs []uint64) (string, error) {
	return pvFormulaBuilder{graph: g, pvInverterIDs: pvInverterIDs}.build()
}

// CHP returns the CHP power formula over the given CHPs, or over all
// CHPs in the graph when chpIDs is nil.
func CHP(g *graph.ComponentGraph, chpIDs []uint64) (string, error) {
	return chpFormulaBuilder{graph: g, chpIDs: chpIDs}.build()
}

// EVCharger returns the EV charger power formula over the given
// chargers, or over all EV chargers in the graph when evChargerIDs is
// nil.
func EVCharger(g *graph.ComponentGraph, evChargerIDs []uint64) (string, error) {
	return evChargerFormulaBuilder{graph: g, evChargerIDs: evChargerIDs}.build()
}

// formatIDs renders component ids as "[a, b, c]" for diagnostics.
func formatIDs(ids []uint64) string {
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		parts = append(parts, strconv.FormatUint(id, 10))
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
