package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestYawFromQuaternionRoundTrip(t *testing.T) {
	for _, yaw := range []float64{0, 0.5, -0.5, math.Pi / 2, -math.Pi / 2, 3} {
		got := YawFromQuaternion(YawToQuaternion(yaw))
		assert.InDelta(t, yaw, got, 1e-12, "yaw %f", yaw)
	}
}

func TestYawFromQuaternionIdentity(t *testing.T) {
	assert.Equal(t, 0.0, YawFromQuaternion(Quaternion{W: 1}))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 5.0, Clamp(7, -5, 5))
	assert.Equal(t, -5.0, Clamp(-9, -5, 5))
	assert.Equal(t, 1.5, Clamp(1.5, -5, 5))
}
