package main

import (
	"dbwd/bus"
	"dbwd/utils"
)

// ActuationSink receives actuation commands that survived the latch.
type ActuationSink interface {
	SendThrottle(bus.ThrottleCommand) error
	SendBrake(bus.BrakeCommand) error
	SendSteering(bus.SteeringCommand) error
}

// busSink publishes commands on their bus channels.
type busSink struct {
	throttle bus.Publisher[bus.ThrottleCommand]
	brake    bus.Publisher[bus.BrakeCommand]
	steering bus.Publisher[bus.SteeringCommand]
}

func newBusSink() *busSink {
	return &busSink{
		throttle: bus.NewThrottlePub(),
		brake:    bus.NewBrakePub(),
		steering: bus.NewSteeringPub(),
	}
}

func (s *busSink) SendThrottle(cmd bus.ThrottleCommand) error {
	return s.throttle.Send(cmd)
}

func (s *busSink) SendBrake(cmd bus.BrakeCommand) error {
	return s.brake.Send(cmd)
}

func (s *busSink) SendSteering(cmd bus.SteeringCommand) error {
	return s.steering.Send(cmd)
}

// ActuationPublisher latches the last emitted value of each channel and
// forwards a channel to its sinks only when the value changed. Latches start
// at zero and are deliberately not reset on disable: a re-enable resumes from
// the last commanded values.
type ActuationPublisher struct {
	throttle utils.Tracker
	brake    utils.Tracker
	steer    utils.Tracker
	sinks    []ActuationSink
}

func NewActuationPublisher(sinks ...ActuationSink) *ActuationPublisher {
	return &ActuationPublisher{sinks: sinks}
}

// Publish forwards each changed channel independently. Unchanged channels are
// suppressed to keep chatter off the command bus; the gateway holds the last
// command it saw.
func (p *ActuationPublisher) Publish(throttle, brake, steer float64) {
	if p.throttle.Update(throttle) {
		cmd := bus.ThrottleCommand{Enable: true, CmdType: bus.CmdTypePercent, PedalCmd: throttle}
		for _, s := range p.sinks {
			utils.Loge(s.SendThrottle(cmd))
		}
	}
	if p.brake.Update(brake) {
		cmd := bus.BrakeCommand{Enable: true, CmdType: bus.CmdTypeTorque, TorqueNm: brake}
		for _, s := range p.sinks {
			utils.Loge(s.SendBrake(cmd))
		}
	}
	if p.steer.Update(steer) {
		cmd := bus.SteeringCommand{Enable: true, WheelAngleRad: steer}
		for _, s := range p.sinks {
			utils.Loge(s.SendSteering(cmd))
		}
	}
}
