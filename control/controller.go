// Package control holds the actuation control law. The daemon only depends on
// the Controller interface; TwistController is the reference implementation.
package control

// Controller maps velocity targets and path deviation to actuation values.
// It is called once per control tick. Implementations must keep any
// accumulated error state frozen or cleared while enabled is false, so that a
// re-enable does not act on windup gathered during manual driving.
type Controller interface {
	Control(proposedLinear, proposedAngular, currentLinear, currentAngular, cte, headingProxy float64, enabled bool) (throttle, brake, steer float64)
}
