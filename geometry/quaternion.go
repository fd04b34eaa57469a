package geometry

import "math"

// Quaternion is a unit orientation quaternion in (x, y, z, w) order.
type Quaternion struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
	W float64 `json:"w"`
}

// YawFunc extracts a heading angle in radians from an orientation. The daemon
// takes the converter as an injected capability so a deterministic stub can be
// substituted in tests.
type YawFunc func(q Quaternion) float64

// YawFromQuaternion returns the Z-axis Euler angle of q in radians, in
// (-pi, pi].
func YawFromQuaternion(q Quaternion) float64 {
	sinYaw := 2 * (q.W*q.Z + q.X*q.Y)
	cosYaw := 1 - 2*(q.Y*q.Y+q.Z*q.Z)
	return math.Atan2(sinYaw, cosYaw)
}

// YawToQuaternion builds the quaternion for a pure rotation of yaw radians
// around the Z axis.
func YawToQuaternion(yaw float64) Quaternion {
	return Quaternion{
		Z: math.Sin(yaw / 2),
		W: math.Cos(yaw / 2),
	}
}

func Clamp(val, min, max float64) float64 {
	if val > max {
		return max
	}
	if val < min {
		return min
	}
	return val
}
