package graph

// New creates a ComponentGraph from the given components and connections.
//
// Construction fails when a component category is unspecified, a
// component id repeats, a connection is a self-loop or names a missing
// component, there is not exactly one grid component, or the validation
// of the assembled graph fails.
func New(components []Node, connections []Edge, cfg Config) (*ComponentGraph, error) {
	g := &ComponentGraph{
		index: make(map[uint64]int, len(components)),
		edges: make(map[connKey]Edge, len(connections)),
		cfg:   cfg,
		log:   cfg.logger(),
	}

	if err := g.addComponents(components); err != nil {
		return nil, err
	}

	root, err := g.findRoot()
	if err != nil {
		return nil, err
	}
	g.rootID = root.ComponentID()

	if err := g.addConnections(connections); err != nil {
		return nil, err
	}

	if err := g.validate(); err != nil {
		return nil, err
	}

	return g, nil
}

func (g *ComponentGraph) addComponents(components []Node) error {
	for _, component := range components {
		cid := component.ComponentID()
		cat := component.Category()

		if cat.IsUnspecified() {
			return invalidComponentError("ComponentCategory not specified for component: %d", cid)
		}
		if cat.IsUnspecifiedInverter() && !g.cfg.AllowUnspecifiedInverters {
			return invalidComponentError("InverterType not specified for inverter: %d", cid)
		}
		if _, exists := g.index[cid]; exists {
			return invalidGraphError("Duplicate component ID found: %d", cid)
		}

		g.index[cid] = len(g.nodes)
		g.nodes = append(g.nodes, component)
		g.succ = append(g.succ, nil)
		g.pred = append(g.pred, nil)
	}
	return nil
}

func (g *ComponentGraph) findRoot() (Node, error) {
	var root Node
	for _, node := range g.nodes {
		if !node.Category().IsGrid() {
			continue
		}
		if root != nil {
			return nil, invalidGraphError("Multiple grid components found.")
		}
		root = node
	}
	if root == nil {
		return nil, invalidGraphError("No grid component found.")
	}
	return root, nil
}

func (g *ComponentGraph) addConnections(connections []Edge) error {
	for _, connection := range connections {
		sid := connection.Source()
		did := connection.Destination()

		if sid == did {
			return invalidConnectionError(
				"Connection:(%d, %d) Can't connect a component to itself.", sid, did)
		}
		for _, cid := range [2]uint64{sid, did} {
			if _, ok := g.index[cid]; !ok {
				return invalidConnectionError(
					"Connection:(%d, %d) Can't find a component with ID %d", sid, did, cid)
			}
		}

		key := connKey{src: g.index[sid], dst: g.index[did]}
		if _, seen := g.edges[key]; !seen {
			g.edgeOrder = append(g.edgeOrder, key)
			// Prepend so that neighbor iteration yields the newest
			// connection first.
			g.succ[key.src] = append([]int{key.dst}, g.succ[key.src]...)
			g.pred[key.dst] = append([]int{key.src}, g.pred[key.dst]...)
		}
		g.edges[key] = connection
	}
	return nil
}
