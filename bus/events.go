package bus

import "dbwd/geometry"

type Vector3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Pose is a world-frame position and orientation.
type Pose struct {
	Position    Vector3             `json:"position"`
	Orientation geometry.Quaternion `json:"orientation"`
}

// Twist is a linear and angular velocity pair. The currentVelocity channel
// carries the measured vehicle-frame twist, the twistCommand channel the
// proposed one.
type Twist struct {
	Linear  Vector3 `json:"linear"`
	Angular Vector3 `json:"angular"`
}

type Waypoint struct {
	Pose Pose `json:"pose"`
}

// PathEvent replaces the previously received path wholesale.
type PathEvent struct {
	Waypoints []Waypoint `json:"waypoints"`
}

type EnableEvent struct {
	Enabled bool `json:"enabled"`
}

// Pedal command type tags, mirroring the gateway's command interface.
const (
	CmdTypePercent = "percent"
	CmdTypeTorque  = "torque"
)

type ThrottleCommand struct {
	Enable   bool    `json:"enable"`
	CmdType  string  `json:"cmd_type"`
	PedalCmd float64 `json:"pedal_cmd"`
}

type BrakeCommand struct {
	Enable   bool    `json:"enable"`
	CmdType  string  `json:"cmd_type"`
	TorqueNm float64 `json:"torque_nm"`
}

type SteeringCommand struct {
	Enable        bool    `json:"enable"`
	WheelAngleRad float64 `json:"wheel_angle_rad"`
}

// DbwState is the per-tick diagnostic output.
type DbwState struct {
	Enabled       bool    `json:"enabled"`
	Cte           float64 `json:"cte"`
	HeadingError  float64 `json:"heading_error"`
	Throttle      float64 `json:"throttle"`
	BrakeTorque   float64 `json:"brake_torque"`
	SteerAngle    float64 `json:"steer_angle"`
	Dt            float64 `json:"dt"`
	DtAverage     float64 `json:"dt_average"`
	DecelMeasured float64 `json:"decel_measured"`
	DecelComputed float64 `json:"decel_computed"`
}

// DbwInput control message types.
const (
	InputReloadSettings = "reloadSettings"
	InputSaveSettings   = "saveSettings"
	InputSetLogLevel    = "setLogLevel"
)

type DbwInput struct {
	Type string  `json:"type"`
	Str  string  `json:"str,omitempty"`
	Num  float64 `json:"num,omitempty"`
	Bool bool    `json:"bool,omitempty"`
}
