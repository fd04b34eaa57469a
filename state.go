package main

import "dbwd/bus"

// VehicleState holds the latest value of every asynchronous input feed. Each
// setter is a plain overwrite with no validation; freshness is tracked
// explicitly so the tick can tell "never received" apart from a zero value.
// All access happens on the tick goroutine (feeds are drained at tick start).
type VehicleState struct {
	Path     []bus.Waypoint
	Pose     bus.Pose
	Velocity bus.Twist
	TwistCmd bus.Twist
	Enabled  bool

	PathReceived     bool
	VelocityReceived bool
}

func (v *VehicleState) SetPath(e bus.PathEvent) {
	v.Path = e.Waypoints
	v.PathReceived = true
}

func (v *VehicleState) SetPose(p bus.Pose) {
	v.Pose = p
}

func (v *VehicleState) SetVelocity(t bus.Twist) {
	v.Velocity = t
	v.VelocityReceived = true
}

func (v *VehicleState) SetTwistCommand(t bus.Twist) {
	v.TwistCmd = t
}

func (v *VehicleState) SetEnabled(e bus.EnableEvent) {
	v.Enabled = e.Enabled
}

// Ready reports whether a path and a velocity have both arrived at least once.
func (v *VehicleState) Ready() bool {
	return v.PathReceived && v.VelocityReceived
}

// Snapshot is the immutable per-tick view of the vehicle state. The path
// slice is shared, never mutated: path updates replace it wholesale.
type Snapshot struct {
	Path     []bus.Waypoint
	Pose     bus.Pose
	Velocity bus.Twist
	TwistCmd bus.Twist
	Enabled  bool
	Ready    bool
}

func (v *VehicleState) Snapshot() Snapshot {
	return Snapshot{
		Path:     v.Path,
		Pose:     v.Pose,
		Velocity: v.Velocity,
		TwistCmd: v.TwistCmd,
		Enabled:  v.Enabled,
		Ready:    v.Ready(),
	}
}
