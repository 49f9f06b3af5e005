package graph

import (
	"slices"

	mapset "github.com/deckarep/golang-set/v2"
)

// Component returns the component with the given id, if it exists.
func (g *ComponentGraph) Component(componentID uint64) (Node, error) {
	idx, ok := g.index[componentID]
	if !ok {
		return nil, componentNotFoundError("Component with id %d not found.", componentID)
	}
	return g.nodes[idx], nil
}

// Components returns the components in the graph in insertion order.
func (g *ComponentGraph) Components() []Node {
	return slices.Clone(g.nodes)
}

// Connections returns the connections in the graph in insertion order.
// Duplicate connections collapse to the last caller-provided value.
func (g *ComponentGraph) Connections() []Edge {
	connections := make([]Edge, 0, len(g.edgeOrder))
	for _, key := range g.edgeOrder {
		connections = append(connections, g.edges[key])
	}
	return connections
}

// Predecessors returns the components with a connection into the
// component with the given id, newest connection first.
func (g *ComponentGraph) Predecessors(componentID uint64) ([]Node, error) {
	idx, ok := g.index[componentID]
	if !ok {
		return nil, componentNotFoundError("Component with id %d not found.", componentID)
	}
	return g.resolve(g.pred[idx]), nil
}

// Successors returns the components the component with the given id
// connects to, newest connection first.
func (g *ComponentGraph) Successors(componentID uint64) ([]Node, error) {
	idx, ok := g.index[componentID]
	if !ok {
		return nil, componentNotFoundError("Component with id %d not found.", componentID)
	}
	return g.resolve(g.succ[idx]), nil
}

// SiblingsFromPredecessors returns every distinct component other than
// the given one that shares at least one predecessor with it.
func (g *ComponentGraph) SiblingsFromPredecessors(componentID uint64) ([]Node, error) {
	return g.siblings(componentID, g.pred, g.succ)
}

// SiblingsFromSuccessors returns every distinct component other than the
// given one that shares at least one successor with it.
func (g *ComponentGraph) SiblingsFromSuccessors(componentID uint64) ([]Node, error) {
	return g.siblings(componentID, g.succ, g.pred)
}

// siblings walks one step along `out` and one step back along `in`,
// deduplicating by component id.
func (g *ComponentGraph) siblings(componentID uint64, out, in [][]int) ([]Node, error) {
	idx, ok := g.index[componentID]
	if !ok {
		return nil, componentNotFoundError("Component with id %d not found.", componentID)
	}

	seen := mapset.NewThreadUnsafeSet[uint64]()
	var found []Node
	for _, shared := range out[idx] {
		for _, sibling := range in[shared] {
			node := g.nodes[sibling]
			if node.ComponentID() == componentID {
				continue
			}
			if !seen.Add(node.ComponentID()) {
				continue
			}
			found = append(found, node)
		}
	}
	return found, nil
}

// HasSuccessors reports whether the component with the given id has at
// least one successor.
func (g *ComponentGraph) HasSuccessors(componentID uint64) (bool, error) {
	idx, ok := g.index[componentID]
	if !ok {
		return false, componentNotFoundError("Component with id %d not found.", componentID)
	}
	return len(g.succ[idx]) > 0, nil
}

// HasMeterSuccessors reports whether any direct successor of the
// component with the given id is a meter.
func (g *ComponentGraph) HasMeterSuccessors(componentID uint64) (bool, error) {
	idx, ok := g.index[componentID]
	if !ok {
		return false, componentNotFoundError("Component with id %d not found.", componentID)
	}
	for _, s := range g.succ[idx] {
		if g.nodes[s].Category().IsMeter() {
			return true, nil
		}
	}
	return false, nil
}

func (g *ComponentGraph) resolve(indices []int) []Node {
	nodes := make([]Node, 0, len(indices))
	for _, idx := range indices {
		nodes = append(nodes, g.nodes[idx])
	}
	return nodes
}
