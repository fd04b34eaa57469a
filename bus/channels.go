package bus

// Channel names. Input feeds are produced by the planner, localization, and
// the drive-by-wire gateway; command channels are consumed by the gateway.
const (
	PlanPathChannel        = "planPath"
	DbwEnabledChannel      = "dbwEnabled"
	CurrentPoseChannel     = "currentPose"
	CurrentVelocityChannel = "currentVelocity"
	TwistCommandChannel    = "twistCommand"

	ThrottleCommandChannel = "throttleCommand"
	BrakeCommandChannel    = "brakeCommand"
	SteeringCommandChannel = "steeringCommand"

	DbwStateChannel = "dbwState"
	DbwInChannel    = "dbwIn"
)

const DEFAULT_SEGMENT_SIZE = 1024 * 1024

func GetSegmentSize(name string) int64 {
	switch name {
	case PlanPathChannel:
		// paths carry a full waypoint list per event
		return 4 * 1024 * 1024
	default:
		return DEFAULT_SEGMENT_SIZE
	}
}
