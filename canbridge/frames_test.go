package canbridge

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"dbwd/bus"
)

func TestThrottleFrameRoundTrip(t *testing.T) {
	cmd := bus.ThrottleCommand{Enable: true, CmdType: bus.CmdTypePercent, PedalCmd: 0.4217}

	f := EncodeThrottle(cmd)
	assert.Equal(t, ThrottleFrameID, f.ID)
	assert.Equal(t, uint8(3), f.Length)

	got := DecodeThrottle(f)
	assert.True(t, got.Enable)
	assert.InDelta(t, cmd.PedalCmd, got.PedalCmd, 1.0/throttleScale)
}

func TestThrottleFrameClampsPedal(t *testing.T) {
	got := DecodeThrottle(EncodeThrottle(bus.ThrottleCommand{PedalCmd: 1.5}))
	assert.Equal(t, 1.0, got.PedalCmd)
	assert.False(t, got.Enable)
}

func TestBrakeFrameRoundTrip(t *testing.T) {
	cmd := bus.BrakeCommand{Enable: true, CmdType: bus.CmdTypeTorque, TorqueNm: 1234.5}

	f := EncodeBrake(cmd)
	assert.Equal(t, BrakeFrameID, f.ID)

	got := DecodeBrake(f)
	assert.True(t, got.Enable)
	assert.Equal(t, cmd.TorqueNm, got.TorqueNm)
}

func TestBrakeFrameClampsNegative(t *testing.T) {
	got := DecodeBrake(EncodeBrake(bus.BrakeCommand{TorqueNm: -50}))
	assert.Equal(t, 0.0, got.TorqueNm)
}

func TestSteeringFrameRoundTrip(t *testing.T) {
	for _, angle := range []float64{0.123, -0.123, 8, -8, 0} {
		cmd := bus.SteeringCommand{Enable: true, WheelAngleRad: angle}
		got := DecodeSteering(EncodeSteering(cmd))
		assert.True(t, got.Enable)
		assert.InDelta(t, angle, got.WheelAngleRad, 1.0/steerScale, "angle %f", angle)
	}
}

func TestSteeringFramePreservesSign(t *testing.T) {
	got := DecodeSteering(EncodeSteering(bus.SteeringCommand{WheelAngleRad: -5}))
	assert.Equal(t, -5.0, got.WheelAngleRad)
}
