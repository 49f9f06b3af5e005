// Package graphtest provides ready-made Node and Edge implementations
// and a declarative builder for assembling component graphs in tests and
// examples.
package graphtest

import (
	"github.com/mkaiser-dev/microgrid-graph/pkg/category"
	"github.com/mkaiser-dev/microgrid-graph/pkg/graph"
)

// Component is a minimal component record implementing graph.Node.
type Component struct {
	ID          uint64
	Cat         category.ComponentCategory
	Unsupported bool
}

// NewComponent creates a supported component with the given id and
// category.
func NewComponent(id uint64, cat category.ComponentCategory) Component {
	return Component{ID: id, Cat: cat}
}

func (c Component) ComponentID() uint64 { return c.ID }

func (c Component) Category() category.ComponentCategory { return c.Cat }

func (c Component) IsSupported() bool { return !c.Unsupported }

// Connection is a minimal connection record implementing graph.Edge.
type Connection struct {
	Src uint64
	Dst uint64
}

// NewConnection creates a connection from source to destination.
func NewConnection(source, destination uint64) Connection {
	return Connection{Src: source, Dst: destination}
}

func (c Connection) Source() uint64 { return c.Src }

func (c Connection) Destination() uint64 { return c.Dst }

// Handle refers to a component added to a Builder.
type Handle uint64

// ComponentID returns the component id the handle stands for.
func (h Handle) ComponentID() uint64 { return uint64(h) }

// Builder assembles component graphs declaratively. Ids are assigned
// sequentially starting at 0, so the grid is usually component 0.
type Builder struct {
	components  []Component
	connections []Connection
	nextID      uint64
}

// NewBuilder creates an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// AddComponent adds a component with the given category and returns its
// handle.
func (b *Builder) AddComponent(cat category.ComponentCategory) Handle {
	id := b.nextID
	b.nextID++
	b.components = append(b.components, NewComponent(id, cat))
	return Handle(id)
}

// AddUnsupportedComponent adds a component whose readings can't be
// trusted in formulas.
func (b *Builder) AddUnsupportedComponent(cat category.ComponentCategory) Handle {
	h := b.AddComponent(cat)
	b.components[len(b.components)-1].Unsupported = true
	return h
}

func (b *Builder) Grid() Handle { return b.AddComponent(category.Grid()) }

func (b *Builder) Meter() Handle { return b.AddComponent(category.Meter()) }

func (b *Builder) Battery() Handle {
	return b.AddComponent(category.Battery(category.BatteryLiIon))
}

func (b *Builder) BatteryInverter() Handle {
	return b.AddComponent(category.Inverter(category.InverterBattery))
}

func (b *Builder) SolarInverter() Handle {
	return b.AddComponent(category.Inverter(category.InverterSolar))
}

func (b *Builder) HybridInverter() Handle {
	return b.AddComponent(category.Inverter(category.InverterHybrid))
}

func (b *Builder) EVCharger() Handle {
	return b.AddComponent(category.EVCharger(category.EVChargerAC))
}

func (b *Builder) CHP() Handle { return b.AddComponent(category.CHP()) }

// Connect connects two components.
func (b *Builder) Connect(from, to Handle) *Builder {
	b.connections = append(b.connections, NewConnection(uint64(from), uint64(to)))
	return b
}

// MeterBatChain adds a meter with the given number of battery inverters
// behind it, each connected to all of the given number of batteries, and
// returns the meter's handle.
func (b *Builder) MeterBatChain(numInverters, numBatteries int) Handle {
	meter := b.Meter()
	inverters := make([]Handle, 0, numInverters)
	for i := 0; i < numInverters; i++ {
		inverter := b.BatteryInverter()
		b.Connect(meter, inverter)
		inverters = append(inverters, inverter)
	}
	for i := 0; i < numBatteries; i++ {
		battery := b.Battery()
		for _, inverter := range inverters {
			b.Connect(inverter, battery)
		}
	}
	return meter
}

// InvBatChain adds a battery inverter with the given number of batteries
// behind it and returns the inverter's handle.
func (b *Builder) InvBatChain(numBatteries int) Handle {
	inverter := b.BatteryInverter()
	for i := 0; i < numBatteries; i++ {
		battery := b.Battery()
		b.Connect(inverter, battery)
	}
	return inverter
}

// MeterPVChain adds a meter with the given number of solar inverters
// behind it and returns the meter's handle.
func (b *Builder) MeterPVChain(numInverters int) Handle {
	meter := b.Meter()
	for i := 0; i < numInverters; i++ {
		b.Connect(meter, b.SolarInverter())
	}
	return meter
}

// MeterCHPChain adds a meter with the given number of CHPs behind it and
// returns the meter's handle.
func (b *Builder) MeterCHPChain(numCHPs int) Handle {
	meter := b.Meter()
	for i := 0; i < numCHPs; i++ {
		b.Connect(meter, b.CHP())
	}
	return meter
}

// MeterEVChargerChain adds a meter with the given number of EV chargers
// behind it and returns the meter's handle.
func (b *Builder) MeterEVChargerChain(numChargers int) Handle {
	meter := b.Meter()
	for i := 0; i < numChargers; i++ {
		b.Connect(meter, b.EVCharger())
	}
	return meter
}

// Components returns copies of the accumulated components as graph.Node
// values.
func (b *Builder) Components() []graph.Node {
	nodes := make([]graph.Node, 0, len(b.components))
	for _, c := range b.components {
		nodes = append(nodes, c)
	}
	return nodes
}

// Connections returns copies of the accumulated connections as
// graph.Edge values.
func (b *Builder) Connections() []graph.Edge {
	edges := make([]graph.Edge, 0, len(b.connections))
	for _, c := range b.connections {
		edges = append(edges, c)
	}
	return edges
}

// Build assembles the accumulated components and connections into a
// ComponentGraph with the given configuration.
func (b *Builder) Build(cfg graph.Config) (*graph.ComponentGraph, error) {
	return graph.New(b.Components(), b.Connections(), cfg)
}
