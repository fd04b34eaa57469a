// Package canbridge mirrors latched actuation commands onto a socketcan
// interface as fixed-layout frames, for benches that speak CAN instead of the
// message bus.
package canbridge

import (
	"encoding/binary"

	"go.einride.tech/can"

	"dbwd/bus"
	"dbwd/geometry"
)

const (
	ThrottleFrameID uint32 = 0x120
	BrakeFrameID    uint32 = 0x121
	SteeringFrameID uint32 = 0x122
)

// Layout, all frames: byte 0 enable flag, bytes 1-2 value little-endian.
// Throttle is a pedal fraction scaled by 1e4, brake torque Nm scaled by 10,
// steering wheel angle rad scaled by 1e3 (signed).
const (
	throttleScale = 10000
	brakeScale    = 10
	steerScale    = 1000
)

func EncodeThrottle(cmd bus.ThrottleCommand) can.Frame {
	f := can.Frame{ID: ThrottleFrameID, Length: 3}
	if cmd.Enable {
		f.Data[0] = 1
	}
	pedal := geometry.Clamp(cmd.PedalCmd, 0, 1)
	binary.LittleEndian.PutUint16(f.Data[1:3], uint16(pedal*throttleScale))
	return f
}

func DecodeThrottle(f can.Frame) bus.ThrottleCommand {
	return bus.ThrottleCommand{
		Enable:   f.Data[0] == 1,
		CmdType:  bus.CmdTypePercent,
		PedalCmd: float64(binary.LittleEndian.Uint16(f.Data[1:3])) / throttleScale,
	}
}

func EncodeBrake(cmd bus.BrakeCommand) can.Frame {
	f := can.Frame{ID: BrakeFrameID, Length: 3}
	if cmd.Enable {
		f.Data[0] = 1
	}
	torque := geometry.Clamp(cmd.TorqueNm, 0, 6500)
	binary.LittleEndian.PutUint16(f.Data[1:3], uint16(torque*brakeScale))
	return f
}

func DecodeBrake(f can.Frame) bus.BrakeCommand {
	return bus.BrakeCommand{
		Enable:   f.Data[0] == 1,
		CmdType:  bus.CmdTypeTorque,
		TorqueNm: float64(binary.LittleEndian.Uint16(f.Data[1:3])) / brakeScale,
	}
}

func EncodeSteering(cmd bus.SteeringCommand) can.Frame {
	f := can.Frame{ID: SteeringFrameID, Length: 3}
	if cmd.Enable {
		f.Data[0] = 1
	}
	angle := geometry.Clamp(cmd.WheelAngleRad, -30, 30)
	binary.LittleEndian.PutUint16(f.Data[1:3], uint16(int16(angle*steerScale)))
	return f
}

func DecodeSteering(f can.Frame) bus.SteeringCommand {
	raw := int16(binary.LittleEndian.Uint16(f.Data[1:3]))
	return bus.SteeringCommand{
		Enable:        f.Data[0] == 1,
		WheelAngleRad: float64(raw) / steerScale,
	}
}
