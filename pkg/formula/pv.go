package formula

import (
	"fmt"

	"github.com/mkaiser-dev/microgrid-graph/pkg/graph"
)

// pvFormulaBuilder generates the PV formula: the sum of the selected
// solar inverters, or of all solar inverters in the graph.
type pvFormulaBuilder struct {
	graph         *graph.ComponentGraph
	pvInverterIDs []uint64
}

func (b pvFormulaBuilder) build() (string, error) {
	pvInverterIDs := b.pvInverterIDs
	if pvInverterIDs == nil {
		var err error
		pvInverterIDs, err = b.graph.FindAll(b.graph.RootID(), func(n graph.Node) bool {
			return n.Category().IsPVInverter()
		}, false)
		if err != nil {
			return "", err
		}
	}
	if len(pvInverterIDs) == 0 {
		return zeroFormula, nil
	}

	for _, id := range newIDSet(pvInverterIDs...).IDs() {
		component, err := b.graph.Component(id)
		if err != nil {
			return "", err
		}
		if !component.Category().IsPVInverter() {
			return "", graph.NewInvalidComponentError(
				fmt.Sprintf("Component with id %d is not a PV inverter.", id))
		}
	}

	expr, err := fallbackExpr(b.graph, pvInverterIDs, false)
	if err != nil {
		return "", err
	}
	return expr.String(), nil
}
