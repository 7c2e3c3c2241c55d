package constants

// Database pool settings
const (
	DatabaseMaxOpenConns    = 25
	DatabaseMaxIdleConns    = 5
	DatabaseConnMaxLifetime = 30 // minutes
)

// Redis keys and channels
const (
	HeatmapSnapshotKeyPrefix  = "heatmap:"
	ResponseChannelPrefix     = "events:"
	ResponseChannelSuffix     = ":responses"
	HeatmapSnapshotTTLMinutes = 60
)

// Asynq task types
const (
	TaskResponseChanged = "response:changed"
)

// Grid defaults. The two observed deployments disagree on the span cap and
// the hour window, so these only seed config and are never read directly by
// domain code.
const (
	DefaultSlotsPerHour = 4
	DefaultDayStartHour = 9
	DefaultDayEndHour   = 21
	DefaultMaxSpanDays  = 7
)
