package graph

import (
	"github.com/mkaiser-dev/microgrid-graph/pkg/logging"
)

// Neighbor-category invariant checks. Each validate* method returns the
// collected failures for its category so that callers can report them
// all at once.

func (v *validator) validateRoot() []*Error {
	var failures []*Error
	if err := v.ensureRoot(v.root); err != nil {
		failures = append(failures, err)
	}
	if err := v.ensureNotLeaf(v.root); err != nil {
		failures = append(failures, err)
	}
	if err := v.ensureExclusiveSuccessors(v.root); err != nil {
		failures = append(failures, err)
	}
	return failures
}

func (v *validator) validateMeters() []*Error {
	var failures []*Error
	for _, meter := range v.g.nodes {
		if !meter.Category().IsMeter() {
			continue
		}
		if err := v.ensureOnPredecessors(meter, func(n Node) bool {
			return n.Category().IsGrid() || n.Category().IsMeter()
		}, "Grids or Meters"); err != nil {
			failures = append(failures, err)
		}
		if err := v.ensureOnSuccessors(meter, func(n Node) bool {
			return !n.Category().IsBattery()
		}, "not Batteries"); err != nil {
			failures = append(failures, err)
		}
	}
	return failures
}

func (v *validator) validateInverters() []*Error {
	var failures []*Error
	for _, inverter := range v.g.nodes {
		cat := inverter.Category()
		if !cat.IsInverter() {
			continue
		}

		if err := v.ensureOnPredecessors(inverter, func(n Node) bool {
			return n.Category().IsGrid() || n.Category().IsMeter()
		}, "Grids or Meters"); err != nil {
			failures = append(failures, err)
		}

		treatAsBattery := cat.IsBatteryInverter()
		if cat.IsUnspecifiedInverter() {
			// Construction only lets unspecified inverters through when
			// the configuration allows them.
			if !v.g.cfg.AllowUnspecifiedInverters {
				failures = append(failures, invalidGraphError(
					"Inverter %d has an unspecified inverter type.", inverter.ComponentID()))
				continue
			}
			v.g.log.Warn("inverter type not specified, treating as a battery inverter",
				logging.Uint64("component_id", inverter.ComponentID()))
			treatAsBattery = true
		}

		switch {
		case treatAsBattery:
			if err := v.ensureNotLeaf(inverter); err != nil {
				failures = append(failures, err)
			}
			if err := v.ensureOnSuccessors(inverter, func(n Node) bool {
				return n.Category().IsBattery()
			}, "Batteries"); err != nil {
				failures = append(failures, err)
			}
		case cat.IsPVInverter():
			if err := v.ensureLeaf(inverter); err != nil {
				failures = append(failures, err)
			}
		case cat.IsHybridInverter():
			// Hybrid inverters may be leaves, but any successors must be
			// batteries.
			if err := v.ensureOnSuccessors(inverter, func(n Node) bool {
				return n.Category().IsBattery()
			}, "Batteries"); err != nil {
				failures = append(failures, err)
			}
		}
	}
	return failures
}

func (v *validator) validateBatteries() []*Error {
	var failures []*Error
	for _, battery := range v.g.nodes {
		if !battery.Category().IsBattery() {
			continue
		}
		if err := v.ensureLeaf(battery); err != nil {
			failures = append(failures, err)
		}
		if err := v.ensureOnPredecessors(battery, func(n Node) bool {
			return v.g.cfg.IsBatteryInverter(n.Category()) || n.Category().IsHybridInverter()
		}, "BatteryInverters or HybridInverters"); err != nil {
			failures = append(failures, err)
		}
	}
	return failures
}

func (v *validator) validateEVChargers() []*Error {
	var failures []*Error
	for _, evCharger := range v.g.nodes {
		if !evCharger.Category().IsEVCharger() {
			continue
		}
		if err := v.ensureLeaf(evCharger); err != nil {
			failures = append(failures, err)
		}
		if err := v.ensureOnPredecessors(evCharger, func(n Node) bool {
			return n.Category().IsGrid() || n.Category().IsMeter()
		}, "Grids or Meters"); err != nil {
			failures = append(failures, err)
		}
	}
	return failures
}

func (v *validator) validateCHPs() []*Error {
	var failures []*Error
	for _, chp := range v.g.nodes {
		if !chp.Category().IsCHP() {
			continue
		}
		if err := v.ensureLeaf(chp); err != nil {
			failures = append(failures, err)
		}
		if err := v.ensureOnPredecessors(chp, func(n Node) bool {
			return n.Category().IsGrid() || n.Category().IsMeter()
		}, "Grids or Meters"); err != nil {
			failures = append(failures, err)
		}
	}
	return failures
}

// ensureLeaf checks that the given node has no successors.
func (v *validator) ensureLeaf(node Node) *Error {
	successors, _ := v.g.Successors(node.ComponentID())
	if len(successors) > 0 {
		successor := successors[0]
		return invalidGraphError("%s:%d can't have any successors. Found %s:%d.",
			node.Category(), node.ComponentID(),
			successor.Category(), successor.ComponentID())
	}
	return nil
}

// ensureNotLeaf checks that the given node has at least one successor.
func (v *validator) ensureNotLeaf(node Node) *Error {
	successors, _ := v.g.Successors(node.ComponentID())
	if len(successors) == 0 {
		return invalidGraphError("%s:%d must have at least one successor.",
			node.Category(), node.ComponentID())
	}
	return nil
}

// ensureRoot checks that the given node has no predecessors.
func (v *validator) ensureRoot(node Node) *Error {
	predecessors, _ := v.g.Predecessors(node.ComponentID())
	if len(predecessors) > 0 {
		predecessor := predecessors[0]
		return invalidGraphError("%s:%d can't have any predecessors. Found %s:%d.",
			node.Category(), node.ComponentID(),
			predecessor.Category(), predecessor.ComponentID())
	}
	return nil
}

// ensureOnPredecessors checks that the given predicate holds for all
// predecessors of the given node.
func (v *validator) ensureOnPredecessors(
	node Node, pred func(Node) bool, failureMessage string,
) *Error {
	predecessors, _ := v.g.Predecessors(node.ComponentID())
	for _, predecessor := range predecessors {
		if !pred(predecessor) {
			return invalidGraphError(
				"%s:%d can only have predecessors that are %s. Found %s:%d.",
				node.Category(), node.ComponentID(), failureMessage,
				predecessor.Category(), predecessor.ComponentID())
		}
	}
	return nil
}

// ensureOnSuccessors checks that the given predicate holds for all
// successors of the given node.
func (v *validator) ensureOnSuccessors(
	node Node, pred func(Node) bool, failureMessage string,
) *Error {
	successors, _ := v.g.Successors(node.ComponentID())
	for _, successor := range successors {
		if !pred(successor) {
			return invalidGraphError(
				"%s:%d can only have successors that are %s. Found %s:%d.",
				node.Category(), node.ComponentID(), failureMessage,
				successor.Category(), successor.ComponentID())
		}
	}
	return nil
}

// ensureExclusiveSuccessors checks that none of the node's successors
// have other predecessors. The grid owns its immediate children.
func (v *validator) ensureExclusiveSuccessors(node Node) *Error {
	successors, _ := v.g.Successors(node.ComponentID())
	for _, successor := range successors {
		predecessors, _ := v.g.Predecessors(successor.ComponentID())
		if len(predecessors) > 1 {
			return invalidGraphError(
				"%s:%d can't have successors with multiple predecessors. Found %s:%d.",
				node.Category(), node.ComponentID(),
				successor.Category(), successor.ComponentID())
		}
	}
	return nil
}
