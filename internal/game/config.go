package game

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation. Used for reproducible map generation.
	// A seed of 0 means a random seed will be generated.
	Seed int64

	// SettingsPath optionally names a YAML file applied over the embedded
	// settings. An empty path uses the defaults.
	SettingsPath string
}
