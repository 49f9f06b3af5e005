package formula

import (
	"fmt"

	"github.com/mkaiser-dev/microgrid-graph/pkg/graph"
)

// evChargerFormulaBuilder generates the EV charger formula: the sum of
// the selected EV chargers, or of all EV chargers in the graph.
type evChargerFormulaBuilder struct {
	graph        *graph.ComponentGraph
	evChargerIDs []uint64
}

func (b evChargerFormulaBuilder) build() (string, error) {
	evChargerIDs := b.evChargerIDs
	if evChargerIDs == nil {
		var err error
		evChargerIDs, err = b.graph.FindAll(b.graph.RootID(), func(n graph.Node) bool {
			return n.Category().IsEVCharger()
		}, false)
		if err != nil {
			return "", err
		}
	}
	if len(evChargerIDs) == 0 {
		return zeroFormula, nil
	}

	for _, id := range newIDSet(evChargerIDs...).IDs() {
		component, err := b.graph.Component(id)
		if err != nil {
			return "", err
		}
		if !component.Category().IsEVCharger() {
			return "", graph.NewInvalidComponentError(
				fmt.Sprintf("Component with id %d is not an EV charger.", id))
		}
	}

	expr, err := fallbackExpr(b.graph, evChargerIDs, false)
	if err != nil {
		return "", err
	}
	return expr.String(), nil
}
