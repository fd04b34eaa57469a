package main

import "dbwd/bus"

type inputFeeds struct {
	path     bus.Subscriber[bus.PathEvent]
	enable   bus.Subscriber[bus.EnableEvent]
	pose     bus.Subscriber[bus.Pose]
	velocity bus.Subscriber[bus.Twist]
	twistCmd bus.Subscriber[bus.Twist]
}

func newInputFeeds() inputFeeds {
	return inputFeeds{
		path:     bus.NewPathSub(),
		enable:   bus.NewEnableSub(),
		pose:     bus.NewPoseSub(),
		velocity: bus.NewVelocitySub(),
		twistCmd: bus.NewTwistCommandSub(),
	}
}

// Drain applies the newest event of every feed to the store. The subscribers
// conflate, so each read observes at most the latest value and never blocks.
func (f *inputFeeds) Drain(v *VehicleState) {
	if e, ok := f.path.Read(); ok {
		v.SetPath(e)
	}
	if e, ok := f.enable.Read(); ok {
		v.SetEnabled(e)
	}
	if e, ok := f.pose.Read(); ok {
		v.SetPose(e)
	}
	if e, ok := f.velocity.Read(); ok {
		v.SetVelocity(e)
	}
	if e, ok := f.twistCmd.Read(); ok {
		v.SetTwistCommand(e)
	}
}
