package graph

import (
	"slices"
	"strconv"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/mkaiser-dev/microgrid-graph/pkg/logging"
)

// validator checks the structural and neighbor-category invariants of a
// freshly assembled ComponentGraph.
type validator struct {
	g    *ComponentGraph
	root Node
}

func (g *ComponentGraph) validate() error {
	root, err := g.Component(g.rootID)
	if err != nil {
		return internalError(
			"Grid component not found with detected component ID: %d.", g.rootID)
	}
	v := &validator{g: g, root: root}

	// Acyclicity is fatal: the remaining checks may not terminate on a
	// cyclic graph.
	if err := v.validateAcyclicity(); err != nil {
		return err
	}
	if err := v.validateConnectivity(); err != nil {
		return err
	}

	var failures []*Error
	failures = append(failures, v.validateRoot()...)
	failures = append(failures, v.validateMeters()...)
	failures = append(failures, v.validateInverters()...)
	failures = append(failures, v.validateBatteries()...)
	failures = append(failures, v.validateEVChargers()...)
	failures = append(failures, v.validateCHPs()...)

	if len(failures) == 0 {
		return nil
	}
	if g.cfg.AllowComponentValidationFailures {
		for _, failure := range failures {
			g.log.Warn("component validation failure",
				logging.String("failure", failure.Description))
		}
		return nil
	}
	if len(failures) == 1 {
		return failures[0]
	}

	var b strings.Builder
	b.WriteString("Multiple validation failures:")
	for _, failure := range failures {
		b.WriteString("\n    ")
		b.WriteString(failure.Error())
	}
	return invalidGraphError("%s", b.String())
}

// validateAcyclicity runs a three-color DFS from the root and reports
// the first back edge as a cycle, naming the nodes along it.
func (v *validator) validateAcyclicity() error {
	const (
		white = 0 // unvisited
		gray  = 1 // on the current path
		black = 2 // fully explored
	)

	g := v.g
	color := make([]int, len(g.nodes))
	var path []uint64

	var visit func(idx int) *Error
	visit = func(idx int) *Error {
		color[idx] = gray
		path = append(path, g.nodes[idx].ComponentID())

		for _, s := range g.succ[idx] {
			switch color[s] {
			case gray:
				sid := g.nodes[s].ComponentID()
				first := slices.Index(path, sid)
				parts := make([]string, 0, len(path)-first+1)
				for _, id := range path[first:] {
					parts = append(parts, strconv.FormatUint(id, 10))
				}
				parts = append(parts, strconv.FormatUint(sid, 10))
				return invalidGraphError("Cycle detected: %s", strings.Join(parts, " -> "))
			case white:
				if err := visit(s); err != nil {
					return err
				}
			}
		}

		color[idx] = black
		path = path[:len(path)-1]
		return nil
	}

	if err := visit(g.index[g.rootID]); err != nil {
		return err
	}
	return nil
}

// validateConnectivity checks that every component is reachable from the
// root by directed traversal.
func (v *validator) validateConnectivity() error {
	g := v.g
	start := g.index[g.rootID]
	visited := mapset.NewThreadUnsafeSet[int]()
	visited.Add(start)
	queue := []int{start}

	for len(queue) > 0 {
		idx := queue[0]
		queue = queue[1:]
		for _, s := range g.succ[idx] {
			if visited.Add(s) {
				queue = append(queue, s)
			}
		}
	}

	var unreached []uint64
	for idx, node := range g.nodes {
		if !visited.Contains(idx) {
			unreached = append(unreached, node.ComponentID())
		}
	}
	if len(unreached) == 0 {
		return nil
	}

	if g.cfg.AllowUnconnectedComponents {
		g.log.Warn("components are not connected to the root",
			logging.Any("component_ids", unreached))
		return nil
	}
	return invalidGraphError("Nodes %s are not connected to the root.", formatIDList(unreached))
}

// formatIDList renders ids as "[a, b, c]".
func formatIDList(ids []uint64) string {
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		parts = append(parts, strconv.FormatUint(id, 10))
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
