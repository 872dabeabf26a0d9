// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Color Rendering - these keys govern how color output is resolved against terminal capabilities.
const (
	ColorLevel = "color.level"
	ColorForce = "color.force"
)

// Gradient Rendering - these keys define the default interpolation behavior of the gradient engine.
const (
	GradientInterpolation = "gradient.interpolation"
	GradientSpin          = "gradient.hsv_spin"
)

// Cache Capacities - these keys bound the per-concern LRU memoization caches.
const (
	CacheHexCapacity      = "cache.hex_capacity"
	CacheAnsiCapacity     = "cache.ansi_capacity"
	CacheHslCapacity      = "cache.hsl_capacity"
	CacheGradientCapacity = "cache.gradient_capacity"
)

// Recent Colors - these keys configure the persistence of recently used color inputs.
const (
	RecentSaveOnUse       = "recent.save_on_use"
	RecentShowSuggestions = "recent.show_suggestions"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics and auditing system.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these settings govern general CLI behavior.
const (
	CliColored = "cli.colored"
)
