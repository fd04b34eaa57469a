package control

// PID is a discrete PID controller with integral clamping.
type PID struct {
	Kp            float64
	Ki            float64
	Kd            float64
	MinOutput     float64
	MaxOutput     float64
	IntegralLimit float64

	integral    float64
	prevError   float64
	initialized bool
}

// Reset clears the accumulated state.
func (p *PID) Reset() {
	p.integral = 0
	p.prevError = 0
	p.initialized = false
}

// Step advances the controller by dt seconds and returns the clamped output.
func (p *PID) Step(err, dt float64) float64 {
	if !p.initialized {
		p.prevError = err
		p.initialized = true
	}

	p.integral += err * dt
	if p.integral > p.IntegralLimit {
		p.integral = p.IntegralLimit
	} else if p.integral < -p.IntegralLimit {
		p.integral = -p.IntegralLimit
	}

	// derivative on error to avoid kick on setpoint changes
	var d float64
	if dt > 0 {
		d = p.Kd * (err - p.prevError) / dt
	}

	out := p.Kp*err + p.Ki*p.integral + d
	if out > p.MaxOutput {
		out = p.MaxOutput
	} else if out < p.MinOutput {
		out = p.MinOutput
	}

	p.prevError = err
	return out
}

// Integral exposes the accumulated integral term for tests and diagnostics.
func (p *PID) Integral() float64 {
	return p.integral
}
