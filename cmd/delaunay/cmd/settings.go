package cmd

// Settings holds the YAML-configurable parameters of the -r/--random point
// generator, mirroring the teacher's build-settings-file pattern
// (cmd/recast/cmd/config.go) applied to this command's own knobs.
type Settings struct {
	// Count is the number of random points to generate, overriding -n
	// when the settings file sets it to a positive value.
	Count int `yaml:"count"`
	// Bound is the half-open upper bound of the [0, Bound)^2 square random
	// points are drawn from. Zero means "derive it from Count" (5*Count),
	// matching the original RandomPoints(n, max=5n) default.
	Bound float64 `yaml:"bound"`
	// Seed makes repeated -r runs reproducible. Zero means "seed from the
	// current time", matching the original's std::random_device use.
	Seed int64 `yaml:"seed"`
}

// defaultSettings mirrors the original RandomPoints(n=20) defaults.
func defaultSettings() Settings {
	return Settings{
		Count: 20,
		Bound: 0,
		Seed:  0,
	}
}
