package formula

import (
	"github.com/mkaiser-dev/microgrid-graph/pkg/graph"
)

// producerFormulaBuilder generates the production formula: the sum of
// all the PV and CHP components in the graph.
type producerFormulaBuilder struct {
	graph *graph.ComponentGraph
}

func (b producerFormulaBuilder) build() (string, error) {
	// A PV or CHP meter already covers the inverters or CHPs behind it,
	// so traversal does not descend through matches.
	matches, err := b.graph.FindAll(b.graph.RootID(), func(n graph.Node) bool {
		isPVMeter, err := b.graph.IsPVMeter(n.ComponentID())
		if err != nil {
			return false
		}
		isCHPMeter, err := b.graph.IsCHPMeter(n.ComponentID())
		if err != nil {
			return false
		}
		return isPVMeter || isCHPMeter ||
			n.Category().IsPVInverter() || n.Category().IsCHP()
	}, false)
	if err != nil {
		return "", err
	}

	var acc *Expr
	for _, componentID := range matches {
		expr, err := fallbackExpr(b.graph, []uint64{componentID}, false)
		if err != nil {
			return "", err
		}
		// Producers are conventionally negative; clamp out any
		// consumption part.
		acc = addTo(acc, Min(Number(0.0), expr))
	}

	if acc == nil {
		return zeroFormula, nil
	}
	return acc.String(), nil
}
