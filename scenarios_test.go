package delaunay

import (
	"io/ioutil"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	yaml "gopkg.in/yaml.v2"
)

type scenarioFixture struct {
	Scenarios []struct {
		Name   string `yaml:"name"`
		Points []struct {
			X float64 `yaml:"x"`
			Y float64 `yaml:"y"`
		} `yaml:"points"`
		Edges []struct {
			A int64 `yaml:"a"`
			B int64 `yaml:"b"`
		} `yaml:"edges"`
	} `yaml:"scenarios"`
}

// TestScenarios drives the end-to-end worked examples from testdata, kept
// as a YAML fixture rather than Go literals so the scenario table reads as
// data.
func TestScenarios(t *testing.T) {
	buf, err := ioutil.ReadFile("testdata/scenarios.yaml")
	require.NoError(t, err)

	var fixture scenarioFixture
	require.NoError(t, yaml.Unmarshal(buf, &fixture))
	require.NotEmpty(t, fixture.Scenarios)

	for _, sc := range fixture.Scenarios {
		sc := sc
		t.Run(sc.Name, func(t *testing.T) {
			points := make([]Point, len(sc.Points))
			for i, p := range sc.Points {
				points[i] = Point{X: p.X, Y: p.Y}
			}
			want := make([]Edge, len(sc.Edges))
			for i, e := range sc.Edges {
				want[i] = Edge{A: e.A, B: e.B}
			}

			got := Triangulate(points)
			assert.ElementsMatch(t, want, got)
		})
	}
}
