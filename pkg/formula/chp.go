package formula

import (
	"fmt"

	"github.com/mkaiser-dev/microgrid-graph/pkg/graph"
)

// chpFormulaBuilder generates the CHP formula: the sum of the selected
// CHPs, or of all CHPs in the graph.
type chpFormulaBuilder struct {
	graph  *graph.ComponentGraph
	chpIDs []uint64
}

func (b chpFormulaBuilder) build() (string, error) {
	chpIDs := b.chpIDs
	if chpIDs == nil {
		var err error
		chpIDs, err = b.graph.FindAll(b.graph.RootID(), func(n graph.Node) bool {
			return n.Category().IsCHP()
		}, false)
		if err != nil {
			return "", err
		}
	}
	if len(chpIDs) == 0 {
		return zeroFormula, nil
	}

	for _, id := range newIDSet(chpIDs...).IDs() {
		component, err := b.graph.Component(id)
		if err != nil {
			return "", err
		}
		if !component.Category().IsCHP() {
			return "", graph.NewInvalidComponentError(
				fmt.Sprintf("Component with id %d is not a CHP.", id))
		}
	}

	expr, err := fallbackExpr(b.graph, chpIDs, false)
	if err != nil {
		return "", err
	}
	return expr.String(), nil
}
