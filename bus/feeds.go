package bus

// Typed constructors for every channel the daemon and its tooling touch.

func NewPathSub() Subscriber[PathEvent] {
	return NewSubscriber[PathEvent](PlanPathChannel, true)
}

func NewEnableSub() Subscriber[EnableEvent] {
	return NewSubscriber[EnableEvent](DbwEnabledChannel, true)
}

func NewPoseSub() Subscriber[Pose] {
	return NewSubscriber[Pose](CurrentPoseChannel, true)
}

func NewVelocitySub() Subscriber[Twist] {
	return NewSubscriber[Twist](CurrentVelocityChannel, true)
}

func NewTwistCommandSub() Subscriber[Twist] {
	return NewSubscriber[Twist](TwistCommandChannel, true)
}

func NewInputSub() Subscriber[DbwInput] {
	return NewSubscriber[DbwInput](DbwInChannel, true)
}

func NewStateSub() Subscriber[DbwState] {
	return NewSubscriber[DbwState](DbwStateChannel, true)
}

func NewThrottleSub() Subscriber[ThrottleCommand] {
	return NewSubscriber[ThrottleCommand](ThrottleCommandChannel, true)
}

func NewBrakeSub() Subscriber[BrakeCommand] {
	return NewSubscriber[BrakeCommand](BrakeCommandChannel, true)
}

func NewSteeringSub() Subscriber[SteeringCommand] {
	return NewSubscriber[SteeringCommand](SteeringCommandChannel, true)
}

func NewThrottlePub() Publisher[ThrottleCommand] {
	return NewPublisher[ThrottleCommand](ThrottleCommandChannel)
}

func NewBrakePub() Publisher[BrakeCommand] {
	return NewPublisher[BrakeCommand](BrakeCommandChannel)
}

func NewSteeringPub() Publisher[SteeringCommand] {
	return NewPublisher[SteeringCommand](SteeringCommandChannel)
}

func NewStatePub() Publisher[DbwState] {
	return NewPublisher[DbwState](DbwStateChannel)
}

func NewInputPub() Publisher[DbwInput] {
	return NewPublisher[DbwInput](DbwInChannel)
}

func NewPathPub() Publisher[PathEvent] {
	return NewPublisher[PathEvent](PlanPathChannel)
}

func NewPosePub() Publisher[Pose] {
	return NewPublisher[Pose](CurrentPoseChannel)
}
