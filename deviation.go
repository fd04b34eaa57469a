package main

import (
	"math"

	"github.com/pkg/errors"

	"dbwd/bus"
	"dbwd/geometry"
	"dbwd/settings"
)

// Deviation is the vehicle's lateral and heading offset from the planned
// path. It is recomputed fresh every tick from the current pose and path and
// never persisted.
type Deviation struct {
	Cte          float64
	HeadingError float64
}

// Estimator projects the planned world-frame path into the vehicle frame and
// fits a cubic through it. Cross-track error is the fitted curve at x = 0,
// heading error the arctangent of its slope there.
type Estimator struct {
	// Yaw extracts heading from the pose orientation; injected so tests can
	// substitute a deterministic stub.
	Yaw geometry.YawFunc
	// YawSign is the empirical sign convention applied to the extracted yaw,
	// see settings.DbwSettings.YawSign.
	YawSign float64
}

func NewEstimator(yaw geometry.YawFunc, yawSign float64) *Estimator {
	return &Estimator{Yaw: yaw, YawSign: yawSign}
}

// Estimate returns the clamped deviation, or an error wrapping
// geometry.ErrDegenerateFit when the path cannot support a cubic fit. It is a
// pure function of its inputs.
func (e *Estimator) Estimate(path []bus.Waypoint, pose bus.Pose) (Deviation, error) {
	yaw := e.YawSign * e.Yaw(pose.Orientation)
	sin, cos := math.Sin(yaw), math.Cos(yaw)

	// translate each waypoint to the vehicle, then rotate by the corrected yaw
	xs := make([]float64, len(path))
	ys := make([]float64, len(path))
	for i, wpt := range path {
		dx := wpt.Pose.Position.X - pose.Position.X
		dy := wpt.Pose.Position.Y - pose.Position.Y
		xs[i] = dx*cos - dy*sin
		ys[i] = dx*sin + dy*cos
	}

	fit, err := geometry.FitCubic(xs, ys)
	if err != nil {
		return Deviation{}, errors.Wrap(err, "could not fit path in vehicle frame")
	}

	// The slope at x = 0 stands in for the heading deviation. It is not the
	// tracking yaw rate (that would be v over the curve radius), but
	// downstream consumers depend on this exact behavior.
	headingErr := math.Atan2(fit.SlopeAtZero(), 1.0)
	headingErr = geometry.Clamp(headingErr, -settings.MAX_HEADING_ERROR, settings.MAX_HEADING_ERROR)

	cte := geometry.Clamp(fit.At(0), -settings.MAX_CTE, settings.MAX_CTE)

	return Deviation{Cte: cte, HeadingError: headingErr}, nil
}
