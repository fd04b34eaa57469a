package settings

import "math"

const (
	// Deviation clamps. CTE is limited to the empirical lane extent, heading
	// error to a quarter turn either way.
	MAX_CTE           = 5.0
	MAX_HEADING_ERROR = math.Pi / 2

	// Tick deltas below MIN_TICK_DT are treated as a timing anomaly and
	// replaced with FALLBACK_TICK_DT in diagnostic computations.
	MIN_TICK_DT      = 1e-3 // seconds
	FALLBACK_TICK_DT = 0.1  // seconds

	TO_DEGREES = 180 / math.Pi
)
