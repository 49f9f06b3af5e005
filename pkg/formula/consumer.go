package formula

import (
	"slices"

	"github.com/mkaiser-dev/microgrid-graph/pkg/graph"
)

// consumerFormulaBuilder generates the consumer formula.
//
// Every meter reachable from the root contributes the part of its
// reading that its known successors don't account for, clamped to
// non-negative. Meters that share successors (diamond configurations)
// are folded into a single contribution. Non-meter successors of the
// grid contribute their own clamped reading, except battery inverters,
// whose consumption is charging rather than site load.
type consumerFormulaBuilder struct {
	graph           *graph.ComponentGraph
	unvisitedMeters *idSet
}

func newConsumerFormulaBuilder(g *graph.ComponentGraph) (*consumerFormulaBuilder, error) {
	meters, err := g.FindAll(g.RootID(), func(n graph.Node) bool {
		return n.Category().IsMeter()
	}, true)
	if err != nil {
		return nil, err
	}
	return &consumerFormulaBuilder{graph: g, unvisitedMeters: newIDSet(meters...)}, nil
}

func (b *consumerFormulaBuilder) build() (string, error) {
	var allMeters *Expr
	for b.unvisitedMeters.Len() > 0 {
		meterID := b.unvisitedMeters.PopMin()
		consumption, err := b.componentConsumption(meterID)
		if err != nil {
			return "", err
		}
		allMeters = addTo(allMeters, consumption)
	}

	successors, err := b.graph.Successors(b.graph.RootID())
	if err != nil {
		return "", err
	}
	var others *Expr
	for _, successor := range successors {
		cat := successor.Category()
		if cat.IsMeter() || b.graph.Config().IsBatteryInverter(cat) {
			continue
		}
		consumption, err := b.componentConsumption(successor.ComponentID())
		if err != nil {
			return "", err
		}
		others = addTo(others, consumption)
	}

	switch {
	case allMeters != nil && others != nil:
		return allMeters.Add(*others).String(), nil
	case allMeters != nil:
		return allMeters.String(), nil
	case others != nil:
		return others.String(), nil
	default:
		return zeroFormula, nil
	}
}

// componentConsumption returns the consumption part of the given
// component, clamped to a minimum of 0.0.
func (b *consumerFormulaBuilder) componentConsumption(componentID uint64) (Expr, error) {
	component, err := b.graph.Component(componentID)
	if err != nil {
		return Expr{}, err
	}
	if !component.Category().IsMeter() {
		return Max(Number(0.0), Component(componentID)), nil
	}

	b.unvisitedMeters.Remove(componentID)
	expr := Component(componentID)

	successors, err := b.graph.Successors(componentID)
	if err != nil {
		return Expr{}, err
	}
	successorsByID := make(map[uint64]graph.Node, len(successors))
	for _, successor := range successors {
		successorsByID[successor.ComponentID()] = successor
	}

	// Meters sharing successors with this one form a diamond: their
	// readings overlap, so they are summed together and their successor
	// sets merged before subtracting.
	siblings, err := b.graph.SiblingsFromSuccessors(componentID)
	if err != nil {
		return Expr{}, err
	}
	for _, sibling := range siblings {
		expr = expr.Add(Component(sibling.ComponentID()))
		b.unvisitedMeters.Remove(sibling.ComponentID())
		siblingSuccessors, err := b.graph.Successors(sibling.ComponentID())
		if err != nil {
			return Expr{}, err
		}
		for _, successor := range siblingSuccessors {
			successorsByID[successor.ComponentID()] = successor
		}
	}

	successorIDs := make([]uint64, 0, len(successorsByID))
	for id := range successorsByID {
		successorIDs = append(successorIDs, id)
	}
	slices.Sort(successorIDs)

	for _, successorID := range successorIDs {
		var successorExpr Expr
		if successorsByID[successorID].Category().IsMeter() {
			successorExpr, err = fallbackExpr(b.graph, []uint64{successorID}, true)
			if err != nil {
				return Expr{}, err
			}
		} else {
			successorExpr = Component(successorID)
		}
		expr = expr.Sub(successorExpr)
	}

	expr = Max(Number(0.0), expr)

	// A meter with successors but no meter successors is a leaf-meter
	// cluster; its consumption is zero when readings are missing.
	hasSuccessors, err := b.graph.HasSuccessors(componentID)
	if err != nil {
		return Expr{}, err
	}
	hasMeterSuccessors, err := b.graph.HasMeterSuccessors(componentID)
	if err != nil {
		return Expr{}, err
	}
	if hasSuccessors && !hasMeterSuccessors {
		expr = Coalesce(expr, Number(0.0))
	}
	return expr, nil
}
