package main

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dbwd/bus"
	"dbwd/geometry"
	"dbwd/settings"
)

func pathAt(points ...[2]float64) []bus.Waypoint {
	wpts := make([]bus.Waypoint, len(points))
	for i, p := range points {
		wpts[i] = bus.Waypoint{Pose: bus.Pose{
			Position:    bus.Vector3{X: p[0], Y: p[1]},
			Orientation: geometry.Quaternion{W: 1},
		}}
	}
	return wpts
}

func poseAt(x, y, yaw float64) bus.Pose {
	return bus.Pose{
		Position:    bus.Vector3{X: x, Y: y},
		Orientation: geometry.YawToQuaternion(yaw),
	}
}

func TestEstimateStraightAhead(t *testing.T) {
	e := NewEstimator(geometry.YawFromQuaternion, -1)
	path := pathAt([2]float64{5, 0}, [2]float64{10, 0}, [2]float64{15, 0}, [2]float64{20, 0})

	dev, err := e.Estimate(path, poseAt(0, 0, 0))
	require.NoError(t, err)
	assert.InDelta(t, 0, dev.Cte, 1e-9)
	assert.InDelta(t, 0, dev.HeadingError, 1e-9)
}

func TestEstimateConstantOffset(t *testing.T) {
	e := NewEstimator(geometry.YawFromQuaternion, -1)
	path := pathAt([2]float64{5, 2}, [2]float64{10, 2}, [2]float64{15, 2}, [2]float64{20, 2}, [2]float64{25, 2})

	dev, err := e.Estimate(path, poseAt(0, 0, 0))
	require.NoError(t, err)
	assert.InDelta(t, 2, dev.Cte, 1e-9)
	assert.InDelta(t, 0, dev.HeadingError, 1e-9)
}

func TestEstimateHeadingFromSlope(t *testing.T) {
	e := NewEstimator(geometry.YawFromQuaternion, -1)
	// path is the line y = x/2 through the vehicle
	path := pathAt([2]float64{2, 1}, [2]float64{4, 2}, [2]float64{6, 3}, [2]float64{8, 4}, [2]float64{10, 5})

	dev, err := e.Estimate(path, poseAt(0, 0, 0))
	require.NoError(t, err)
	assert.InDelta(t, 0, dev.Cte, 1e-9)
	assert.InDelta(t, math.Atan2(0.5, 1), dev.HeadingError, 1e-9)
}

// The extracted yaw is flipped before the rotation. With the vehicle facing
// +Y and the path two metres to its left (world -X), the flipped convention
// must report a positive cross-track error; the unflipped one reports it
// negative.
func TestEstimateYawSignConvention(t *testing.T) {
	path := pathAt([2]float64{-2, 5}, [2]float64{-2, 10}, [2]float64{-2, 15}, [2]float64{-2, 20})
	pose := poseAt(0, 0, math.Pi/2)

	flipped := NewEstimator(geometry.YawFromQuaternion, -1)
	dev, err := flipped.Estimate(path, pose)
	require.NoError(t, err)
	assert.InDelta(t, 2, dev.Cte, 1e-9)

	unflipped := NewEstimator(geometry.YawFromQuaternion, 1)
	dev, err = unflipped.Estimate(path, pose)
	require.NoError(t, err)
	assert.InDelta(t, -2, dev.Cte, 1e-9)
}

func TestEstimateClampsCte(t *testing.T) {
	e := NewEstimator(geometry.YawFromQuaternion, -1)

	left := pathAt([2]float64{5, 12}, [2]float64{10, 12}, [2]float64{15, 12}, [2]float64{20, 12})
	dev, err := e.Estimate(left, poseAt(0, 0, 0))
	require.NoError(t, err)
	assert.Equal(t, settings.MAX_CTE, dev.Cte)

	right := pathAt([2]float64{5, -12}, [2]float64{10, -12}, [2]float64{15, -12}, [2]float64{20, -12})
	dev, err = e.Estimate(right, poseAt(0, 0, 0))
	require.NoError(t, err)
	assert.Equal(t, -settings.MAX_CTE, dev.Cte)
}

func TestEstimateClampsHeading(t *testing.T) {
	e := NewEstimator(geometry.YawFromQuaternion, -1)
	// near-vertical line in the vehicle frame, slope 50
	path := pathAt([2]float64{0.1, 5}, [2]float64{0.2, 10}, [2]float64{0.3, 15}, [2]float64{0.4, 20})

	dev, err := e.Estimate(path, poseAt(0, 0, 0))
	require.NoError(t, err)
	assert.LessOrEqual(t, math.Abs(dev.HeadingError), settings.MAX_HEADING_ERROR)
}

func TestEstimateFailsOnShortPath(t *testing.T) {
	e := NewEstimator(geometry.YawFromQuaternion, -1)
	path := pathAt([2]float64{5, 0}, [2]float64{10, 0}, [2]float64{15, 0})

	_, err := e.Estimate(path, poseAt(0, 0, 0))
	assert.ErrorIs(t, err, geometry.ErrDegenerateFit)
}

func TestEstimateFailsOnCollapsedPath(t *testing.T) {
	e := NewEstimator(geometry.YawFromQuaternion, -1)
	path := pathAt([2]float64{3, 1}, [2]float64{3, 1}, [2]float64{3, 1}, [2]float64{3, 1})

	_, err := e.Estimate(path, poseAt(0, 0, 0))
	assert.ErrorIs(t, err, geometry.ErrDegenerateFit)
}

func TestEstimateUsesInjectedYaw(t *testing.T) {
	stub := func(geometry.Quaternion) float64 { return math.Pi / 2 }
	e := NewEstimator(stub, -1)
	// the orientation is ignored entirely in favor of the stub; facing +Y, a
	// path up the world +Y axis is straight ahead
	path := pathAt([2]float64{0, 5}, [2]float64{0, 10}, [2]float64{0, 15}, [2]float64{0, 20})

	dev, err := e.Estimate(path, bus.Pose{})
	require.NoError(t, err)
	assert.InDelta(t, 0, dev.Cte, 1e-9)
	assert.InDelta(t, 0, dev.HeadingError, 1e-9)
}
