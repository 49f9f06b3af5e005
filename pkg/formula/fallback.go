package formula

import (
	"github.com/mkaiser-dev/microgrid-graph/pkg/graph"
)

// fallbackResolver builds the sum expression over a set of component ids
// with measurement fallbacks substituted where possible.
//
// A meter whose successors are all measurable can be replaced by
// COALESCE of its reading and the sum of its successors' readings. A
// component of a summable category (battery inverter, solar inverter,
// CHP, EV charger) can be replaced, together with all of its electrical
// siblings, by the fallback expression of its predecessor meters —
// but only when the caller asked for the entire sibling group.
type fallbackResolver struct {
	graph        *graph.ComponentGraph
	preferMeters bool
}

// fallbackExpr returns the fallback-aware sum expression for the given
// component ids, processed in ascending order.
func fallbackExpr(g *graph.ComponentGraph, componentIDs []uint64, preferMeters bool) (Expr, error) {
	resolver := fallbackResolver{graph: g, preferMeters: preferMeters}
	return resolver.generate(newIDSet(componentIDs...))
}

func (f fallbackResolver) generate(componentIDs *idSet) (Expr, error) {
	var acc *Expr
	for componentIDs.Len() > 0 {
		componentID := componentIDs.PopMin()

		expr, ok, err := f.meterFallback(componentID)
		if err != nil {
			return Expr{}, err
		}
		if !ok {
			expr, ok, err = f.componentFallback(componentIDs, componentID)
			if err != nil {
				return Expr{}, err
			}
		}
		if !ok {
			expr = Component(componentID)
		}
		acc = addTo(acc, expr)
	}

	if acc == nil {
		return Expr{}, graph.NewInternalError("Search for fallback components failed.")
	}
	return *acc, nil
}

// meterFallback handles meters that have no meters among their
// successors. Their reading falls back to the sum of their successors'
// readings, unless a successor is unsupported.
func (f fallbackResolver) meterFallback(componentID uint64) (Expr, bool, error) {
	component, err := f.graph.Component(componentID)
	if err != nil {
		return Expr{}, false, err
	}
	if !component.Category().IsMeter() {
		return Expr{}, false, nil
	}
	hasMeterSuccessors, err := f.graph.HasMeterSuccessors(componentID)
	if err != nil {
		return Expr{}, false, err
	}
	if hasMeterSuccessors {
		return Expr{}, false, nil
	}

	successors, err := f.graph.Successors(componentID)
	if err != nil {
		return Expr{}, false, err
	}
	if len(successors) == 0 {
		return Component(componentID), true, nil
	}
	for _, successor := range successors {
		if !successor.IsSupported() {
			return Component(componentID), true, nil
		}
	}

	successorExpr := Component(successors[0].ComponentID())
	for _, successor := range successors[1:] {
		successorExpr = successorExpr.Add(Component(successor.ComponentID()))
	}

	if f.preferMeters {
		return Coalesce(Component(componentID), successorExpr), true, nil
	}
	return Coalesce(successorExpr, Component(componentID)), true, nil
}

// componentFallback handles battery inverters, solar inverters, CHPs and
// EV chargers. When the work set contains the component's entire sibling
// group, the group is replaced by the fallback expression of its
// predecessors.
func (f fallbackResolver) componentFallback(
	componentIDs *idSet, componentID uint64,
) (Expr, bool, error) {
	component, err := f.graph.Component(componentID)
	if err != nil {
		return Expr{}, false, err
	}
	cat := component.Category()
	if !f.graph.Config().IsBatteryInverter(cat) &&
		!cat.IsCHP() && !cat.IsPVInverter() && !cat.IsEVCharger() {
		return Expr{}, false, nil
	}

	siblings, err := f.graph.SiblingsFromPredecessors(componentID)
	if err != nil {
		return Expr{}, false, err
	}

	// If predecessors have other successors that are not in the work
	// set, the predecessors can't be used as fallback.
	for _, sibling := range siblings {
		if !componentIDs.Contains(sibling.ComponentID()) {
			return Component(componentID), true, nil
		}
	}

	for _, sibling := range siblings {
		componentIDs.Remove(sibling.ComponentID())
	}

	predecessors, err := f.graph.Predecessors(componentID)
	if err != nil {
		return Expr{}, false, err
	}
	predecessorIDs := make([]uint64, 0, len(predecessors))
	for _, predecessor := range predecessors {
		predecessorIDs = append(predecessorIDs, predecessor.ComponentID())
	}

	expr, err := f.generate(newIDSet(predecessorIDs...))
	if err != nil {
		return Expr{}, false, err
	}
	return expr, true, nil
}

func addTo(acc *Expr, expr Expr) *Expr {
	if acc == nil {
		return &expr
	}
	sum := acc.Add(expr)
	return &sum
}
