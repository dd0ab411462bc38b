// Package key defines the configuration keys read through viper.
package key

// Logging
const (
	LogLevel = "log.level"
	LogJSON  = "log.json"
)

// Random color generation
const (
	RandomSeed = "random.seed"
)

// Image palette extraction
const (
	PaletteCount = "palette.count"
)

// Command line output
const (
	CliColored = "cli.colored"
)
