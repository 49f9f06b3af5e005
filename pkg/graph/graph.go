// Package graph models the electrical components of a microgrid and the
// connections between them as a validated directed acyclic graph.
//
// A ComponentGraph is built once from caller-supplied components and
// connections with New, validated against the microgrid topology
// invariants, and is read-only afterwards. Concurrent reads need no
// synchronization.
package graph

import (
	"github.com/mkaiser-dev/microgrid-graph/pkg/logging"
)

// connKey addresses an edge by its source and destination vertex
// positions. One edge is kept per ordered pair.
type connKey struct {
	src int
	dst int
}

// ComponentGraph is a graph representation of the electrical components
// of a microgrid and the connections between them.
type ComponentGraph struct {
	// nodes in insertion order; vertex handles are positions here.
	nodes []Node
	// index maps component ids to vertex positions.
	index map[uint64]int
	// successor/predecessor adjacency. Neighbor lists are kept
	// newest-connection-first; formula rendering depends on this order.
	succ [][]int
	pred [][]int
	// edges holds the caller's Edge value per ordered vertex pair.
	// Duplicate connections collapse, the last value wins.
	edges map[connKey]Edge
	// edgeOrder preserves first-insertion order of the distinct pairs.
	edgeOrder []connKey

	rootID uint64
	cfg    Config
	log    logging.Logger
}

// RootID returns the component id of the grid node.
func (g *ComponentGraph) RootID() uint64 {
	return g.rootID
}

// Config returns the configuration the graph was built with.
func (g *ComponentGraph) Config() Config {
	return g.cfg
}
