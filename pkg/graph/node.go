package graph

import (
	"github.com/mkaiser-dev/microgrid-graph/pkg/category"
)

// Node is the contract a caller-supplied component must satisfy to be
// stored in a ComponentGraph.
type Node interface {
	// ComponentID returns the id of the component. Ids are stable and
	// unique across the input set.
	ComponentID() uint64
	// Category returns the category of the component.
	Category() category.ComponentCategory
	// IsSupported returns true if the component can be read from and/or
	// controlled. Meters with unsupported successors don't get
	// measurement fallbacks.
	IsSupported() bool
}

// Edge is the contract a caller-supplied connection must satisfy.
type Edge interface {
	// Source returns the component id at the source of the connection.
	Source() uint64
	// Destination returns the component id at the destination of the
	// connection.
	Destination() uint64
}
