package control

import (
	"math"

	"dbwd/geometry"
)

// YawController converts a commanded angular velocity into a steering wheel
// angle using the bicycle model, limited by lateral acceleration and the
// physical steering range.
type YawController struct {
	WheelBase     float64
	SteerRatio    float64
	MinSpeed      float64
	MaxLatAccel   float64
	MaxSteerAngle float64
}

func (y *YawController) steerFromRadius(radius float64) float64 {
	angle := math.Atan(y.WheelBase/radius) * y.SteerRatio
	return geometry.Clamp(angle, -y.MaxSteerAngle, y.MaxSteerAngle)
}

// GetSteering returns the wheel angle that tracks the proposed angular
// velocity, rescaled to the current speed.
func (y *YawController) GetSteering(targetLinear, targetAngular, currentLinear float64) float64 {
	angular := targetAngular
	if targetLinear > 0 {
		// keep the commanded curvature, not the commanded yaw rate
		angular = targetAngular * currentLinear / targetLinear
	}

	if math.Abs(currentLinear) > 0.1 {
		maxYawRate := math.Abs(y.MaxLatAccel / currentLinear)
		angular = geometry.Clamp(angular, -maxYawRate, maxYawRate)
	}

	if angular == 0 {
		return 0
	}
	speed := math.Max(currentLinear, y.MinSpeed)
	return y.steerFromRadius(speed / angular)
}
