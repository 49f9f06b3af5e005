package formula_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/mkaiser-dev/microgrid-graph/pkg/category"
	"github.com/mkaiser-dev/microgrid-graph/pkg/formula"
	"github.com/mkaiser-dev/microgrid-graph/pkg/graph"
	"github.com/mkaiser-dev/microgrid-graph/pkg/graphtest"
)

type corpusComponent struct {
	ID       uint64 `yaml:"id"`
	Category string `yaml:"category"`
	Type     string `yaml:"type"`
}

type corpusFixture struct {
	Description string            `yaml:"description"`
	Config      corpusConfig      `yaml:"config"`
	Components  []corpusComponent `yaml:"components"`
	Connections [][2]uint64       `yaml:"connections"`
	Formulas    map[string]string `yaml:"formulas"`
}

type corpusConfig struct {
	AllowUnspecifiedInverters bool `yaml:"allow_unspecified_inverters"`
}

func parseCategory(c corpusComponent) (category.ComponentCategory, error) {
	switch c.Category {
	case "grid":
		return category.Grid(), nil
	case "meter":
		return category.Meter(), nil
	case "chp":
		return category.CHP(), nil
	case "electrolyzer":
		return category.Electrolyzer(), nil
	case "battery":
		switch c.Type {
		case "li-ion":
			return category.Battery(category.BatteryLiIon), nil
		case "na-ion":
			return category.Battery(category.BatteryNaIon), nil
		case "", "unspecified":
			return category.Battery(category.BatteryUnspecified), nil
		}
	case "inverter":
		switch c.Type {
		case "solar":
			return category.Inverter(category.InverterSolar), nil
		case "battery":
			return category.Inverter(category.InverterBattery), nil
		case "hybrid":
			return category.Inverter(category.InverterHybrid), nil
		case "", "unspecified":
			return category.Inverter(category.InverterUnspecified), nil
		}
	case "ev_charger":
		switch c.Type {
		case "ac":
			return category.EVCharger(category.EVChargerAC), nil
		case "dc":
			return category.EVCharger(category.EVChargerDC), nil
		case "hybrid":
			return category.EVCharger(category.EVChargerHybrid), nil
		case "", "unspecified":
			return category.EVCharger(category.EVChargerUnspecified), nil
		}
	}
	return category.ComponentCategory{}, fmt.Errorf(
		"unknown category %q (type %q)", c.Category, c.Type)
}

func loadCorpusGraph(t *testing.T, fixture corpusFixture) *graph.ComponentGraph {
	t.Helper()

	components := make([]graph.Node, 0, len(fixture.Components))
	for _, c := range fixture.Components {
		cat, err := parseCategory(c)
		require.NoError(t, err)
		components = append(components, graphtest.NewComponent(c.ID, cat))
	}
	connections := make([]graph.Edge, 0, len(fixture.Connections))
	for _, c := range fixture.Connections {
		connections = append(connections, graphtest.NewConnection(c[0], c[1]))
	}

	g, err := graph.New(components, connections, graph.Config{
		AllowUnspecifiedInverters: fixture.Config.AllowUnspecifiedInverters,
	})
	require.NoError(t, err)
	return g
}

// TestFormulaCorpus checks every generator against the fixtures under
// testdata/.
func TestFormulaCorpus(t *testing.T) {
	paths, err := filepath.Glob(filepath.Join("testdata", "*.yaml"))
	require.NoError(t, err)
	require.NotEmpty(t, paths)

	generators := map[string]func(*graph.ComponentGraph) (string, error){
		"grid":     formula.Grid,
		"consumer": formula.Consumer,
		"producer": formula.Producer,
		"battery": func(g *graph.ComponentGraph) (string, error) {
			return formula.Battery(g, nil)
		},
		"pv": func(g *graph.ComponentGraph) (string, error) {
			return formula.PV(g, nil)
		},
		"chp": func(g *graph.ComponentGraph) (string, error) {
			return formula.CHP(g, nil)
		},
		"ev_charger": func(g *graph.ComponentGraph) (string, error) {
			return formula.EVCharger(g, nil)
		},
	}

	for _, path := range paths {
		t.Run(filepath.Base(path), func(t *testing.T) {
			raw, err := os.ReadFile(path)
			require.NoError(t, err)

			var fixture corpusFixture
			require.NoError(t, yaml.Unmarshal(raw, &fixture))
			require.NotEmpty(t, fixture.Formulas)

			g := loadCorpusGraph(t, fixture)
			for name, want := range fixture.Formulas {
				generator, ok := generators[name]
				require.True(t, ok, "unknown formula %q", name)
				got, err := generator(g)
				require.NoError(t, err)
				assert.Equal(t, want, got, "formula %q", name)
			}
		})
	}
}
