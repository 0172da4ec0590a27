package cmd

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/arl/go-delaunay"
	"github.com/arl/go-delaunay/cmd/delaunay/pointsio"
	"github.com/arl/go-delaunay/internal/trace"
	"github.com/spf13/cobra"
)

var (
	randomVal bool
	countVal  int
	inputVal  string
	outVal    string
	timeVal   bool
	configVal string
)

// RootCmd is the base command: triangulate a point set read from a file or
// generated at random, and write the points and resulting edges to a file
// or stdout.
var RootCmd = &cobra.Command{
	Use:   "delaunay",
	Short: "compute the Delaunay triangulation of a 2D point set",
	Long: `delaunay triangulates a set of 2D points with the
divide-and-conquer algorithm and writes the points followed by the
triangulation's edges.

Points are either read from a file (-i/--input, text or .obj) or
generated uniformly at random (-r/--random, the default).`,
	RunE: runRoot,
}

func init() {
	RootCmd.Flags().BoolVarP(&randomVal, "random", "r", true, "generate points randomly in [0, 5n)^2")
	RootCmd.Flags().IntVarP(&countVal, "n", "n", 20, "point count when random")
	RootCmd.Flags().StringVarP(&inputVal, "input", "i", "", "read points from file (overrides --random)")
	RootCmd.Flags().StringVarP(&outVal, "out", "o", "", "write combined points+edges to file (default stdout)")
	RootCmd.Flags().BoolVarP(&timeVal, "time", "t", false, "print algorithm execution time in milliseconds to stderr")
	RootCmd.Flags().StringVarP(&configVal, "config", "c", "", "YAML settings file for random generation")

	RootCmd.SilenceUsage = true
	RootCmd.SilenceErrors = true
}

// Execute runs RootCmd, writing unknown-flag and runtime errors to stderr
// and exiting 1, matching the original command's exit(1) on a bad
// argument.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", RootCmd.Name(), err)
		os.Exit(1)
	}
}

func runRoot(cmd *cobra.Command, args []string) error {
	points, err := loadPoints()
	if err != nil {
		return err
	}

	out := os.Stdout
	if outVal != "" {
		f, err := os.Create(outVal)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	tr := trace.New(timeVal)
	tr.StartTimer("total")
	edges := (delaunay.DivideAndConquer{Trace: tr}).Triangulate(points)
	tr.StopTimer("total")

	if timeVal {
		fmt.Fprintf(os.Stderr, "%d ms\n", tr.Elapsed("total")/time.Millisecond)
	}

	return pointsio.WriteResult(out, points, edges)
}

func loadPoints() ([]delaunay.Point, error) {
	if inputVal != "" {
		f, err := os.Open(inputVal)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		if filepath.Ext(inputVal) == ".obj" {
			return pointsio.ReadOBJ(f)
		}
		return pointsio.ReadText(f)
	}

	var settings Settings
	if configVal != "" {
		if err := unmarshalYAMLFile(configVal, &settings); err != nil {
			return nil, err
		}
	}
	n := countVal
	if settings.Count > 0 {
		n = settings.Count
	}
	bound := settings.Bound
	if bound <= 0 {
		bound = float64(n) * 5
	}
	return randomPoints(n, bound, settings.Seed), nil
}

// randomPoints generates n points uniformly distributed in [0, bound)^2,
// matching the original RandomPoints(n, max=5n) generator. A nonzero seed
// makes the sequence reproducible; a zero seed draws from the current
// time, mirroring the original's std::random_device fallback.
func randomPoints(n int, bound float64, seed int64) []delaunay.Point {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	pts := make([]delaunay.Point, n)
	for i := range pts {
		pts[i] = delaunay.Point{X: rng.Float64() * bound, Y: rng.Float64() * bound}
	}
	return pts
}
