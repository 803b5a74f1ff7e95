// This package contains all the types for the occurrence database. No I/O imports.
package occurrencedb

const(
	// Labels substituted for missing categorical values. These only ever
	// stand in for grouping columns, never for join keys.
	SentinelSegment        = "INDETERMINADO"
	SentinelOperationPhase = "INDETERMINADA"
	SentinelRecStatus      = "INDETERMINADO"

	// Contributing-factor area the dashboard zooms into by default.
	DefaultFactorArea = "FATOR HUMANO"

	// Occurrences before this year are too sparsely reported to trend.
	FirstTrendYear = 2007
)
