package formula

import (
	"github.com/mkaiser-dev/microgrid-graph/pkg/graph"
)

// gridFormulaBuilder generates the grid formula.
//
// The grid formula is the sum of all components connected to the grid,
// each with its measurement fallback. It can be used for calculating
// power or current metrics at the grid connection point.
type gridFormulaBuilder struct {
	graph *graph.ComponentGraph
}

func (b gridFormulaBuilder) build() (string, error) {
	successors, err := b.graph.Successors(b.graph.RootID())
	if err != nil {
		return "", err
	}

	var acc *Expr
	for _, successor := range successors {
		expr, err := fallbackExpr(b.graph, []uint64{successor.ComponentID()}, true)
		if err != nil {
			return "", err
		}
		if acc == nil {
			acc = &expr
		} else {
			// Successors iterate newest connection first; prepending
			// renders the formula in connection order.
			sum := expr.Add(*acc)
			acc = &sum
		}
	}

	if acc == nil {
		return zeroFormula, nil
	}
	return acc.String(), nil
}
