package graph

import (
	"slices"

	mapset "github.com/deckarep/golang-set/v2"
)

// FindAll returns the ids of the components matching pred that are
// reachable from the given component by outgoing traversal, in ascending
// order. The start component itself is tested too.
//
// When followAfterMatch is false, traversal does not descend through a
// matched component.
func (g *ComponentGraph) FindAll(
	from uint64,
	pred func(Node) bool,
	followAfterMatch bool,
) ([]uint64, error) {
	start, ok := g.index[from]
	if !ok {
		return nil, componentNotFoundError("Component with id %d not found.", from)
	}

	visited := mapset.NewThreadUnsafeSet[int]()
	visited.Add(start)
	stack := []int{start}
	var found []uint64

	for len(stack) > 0 {
		idx := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		node := g.nodes[idx]
		matched := pred(node)
		if matched {
			found = append(found, node.ComponentID())
		}
		if matched && !followAfterMatch {
			continue
		}
		for _, s := range g.succ[idx] {
			if visited.Add(s) {
				stack = append(stack, s)
			}
		}
	}

	slices.Sort(found)
	return found, nil
}
