package graph

// Meter role identification.
//
// A meter is a "component meter" when all of its successors belong to a
// single component category, so its reading stands for that category's
// aggregate and the category's sum can fall back to it.

// IsPVMeter returns true if the component is a meter whose successors
// are all solar inverters (and it has at least one successor).
func (g *ComponentGraph) IsPVMeter(componentID uint64) (bool, error) {
	return g.isMeterWithExclusiveSuccessors(componentID, func(n Node) bool {
		return n.Category().IsPVInverter()
	})
}

// IsBatteryMeter returns true if the component is a meter whose
// successors are all battery inverters (and it has at least one
// successor). Unspecified inverters count as battery inverters when the
// graph allows them.
func (g *ComponentGraph) IsBatteryMeter(componentID uint64) (bool, error) {
	return g.isMeterWithExclusiveSuccessors(componentID, func(n Node) bool {
		return g.cfg.IsBatteryInverter(n.Category())
	})
}

// IsEVChargerMeter returns true if the component is a meter whose
// successors are all EV chargers (and it has at least one successor).
func (g *ComponentGraph) IsEVChargerMeter(componentID uint64) (bool, error) {
	return g.isMeterWithExclusiveSuccessors(componentID, func(n Node) bool {
		return n.Category().IsEVCharger()
	})
}

// IsCHPMeter returns true if the component is a meter whose successors
// are all CHPs (and it has at least one successor).
func (g *ComponentGraph) IsCHPMeter(componentID uint64) (bool, error) {
	return g.isMeterWithExclusiveSuccessors(componentID, func(n Node) bool {
		return n.Category().IsCHP()
	})
}

// IsComponentMeter returns true if the component is a PV meter, a
// battery meter, an EV charger meter, or a CHP meter.
func (g *ComponentGraph) IsComponentMeter(componentID uint64) (bool, error) {
	for _, role := range []func(uint64) (bool, error){
		g.IsPVMeter, g.IsBatteryMeter, g.IsEVChargerMeter, g.IsCHPMeter,
	} {
		is, err := role(componentID)
		if err != nil {
			return false, err
		}
		if is {
			return true, nil
		}
	}
	return false, nil
}

func (g *ComponentGraph) isMeterWithExclusiveSuccessors(
	componentID uint64,
	pred func(Node) bool,
) (bool, error) {
	component, err := g.Component(componentID)
	if err != nil {
		return false, err
	}
	if !component.Category().IsMeter() {
		return false, nil
	}

	successors, err := g.Successors(componentID)
	if err != nil {
		return false, err
	}
	if len(successors) == 0 {
		return false, nil
	}
	for _, successor := range successors {
		if !pred(successor) {
			return false, nil
		}
	}
	return true, nil
}
