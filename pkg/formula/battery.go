package formula

import (
	"fmt"

	"github.com/mkaiser-dev/microgrid-graph/pkg/graph"
)

// batteryFormulaBuilder generates the battery formula.
//
// Callers name batteries, but the formula sums their battery inverters.
// A battery can only be selected together with every battery that shares
// an inverter with it, otherwise the inverter reading would count
// unselected batteries too.
type batteryFormulaBuilder struct {
	graph       *graph.ComponentGraph
	inverterIDs []uint64
}

func newBatteryFormulaBuilder(
	g *graph.ComponentGraph, batteryIDs []uint64,
) (*batteryFormulaBuilder, error) {
	var inverterIDs []uint64
	var err error
	if batteryIDs == nil {
		inverterIDs, err = g.FindAll(g.RootID(), func(n graph.Node) bool {
			return g.Config().IsBatteryInverter(n.Category())
		}, false)
	} else {
		inverterIDs, err = findInverterIDs(g, batteryIDs)
	}
	if err != nil {
		return nil, err
	}
	return &batteryFormulaBuilder{graph: g, inverterIDs: inverterIDs}, nil
}

func (b *batteryFormulaBuilder) build() (string, error) {
	if len(b.inverterIDs) == 0 {
		return zeroFormula, nil
	}
	expr, err := fallbackExpr(b.graph, b.inverterIDs, false)
	if err != nil {
		return "", err
	}
	return expr.String(), nil
}

// findInverterIDs maps the selected batteries to their inverters,
// verifying that every selected battery brings its whole sibling group.
func findInverterIDs(g *graph.ComponentGraph, batteryIDs []uint64) ([]uint64, error) {
	selected := newIDSet(batteryIDs...)
	inverterIDs := newIDSet()

	for _, batteryID := range selected.IDs() {
		battery, err := g.Component(batteryID)
		if err != nil {
			return nil, err
		}
		if !battery.Category().IsBattery() {
			return nil, graph.NewInvalidComponentError(
				fmt.Sprintf("Component with id %d is not a battery.", batteryID))
		}

		siblings, err := g.SiblingsFromPredecessors(batteryID)
		if err != nil {
			return nil, err
		}
		for _, sibling := range siblings {
			if selected.Contains(sibling.ComponentID()) {
				continue
			}
			siblingIDs := make([]uint64, 0, len(siblings))
			for _, s := range siblings {
				siblingIDs = append(siblingIDs, s.ComponentID())
			}
			return nil, graph.NewInvalidComponentError(fmt.Sprintf(
				"Battery %d can't be in a formula without all its siblings: %s.",
				batteryID, formatIDs(siblingIDs)))
		}

		predecessors, err := g.Predecessors(batteryID)
		if err != nil {
			return nil, err
		}
		for _, predecessor := range predecessors {
			inverterIDs.Insert(predecessor.ComponentID())
		}
	}
	return inverterIDs.IDs(), nil
}
