package control

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPIDProportionalOnly(t *testing.T) {
	p := PID{Kp: 0.5, MinOutput: -10, MaxOutput: 10, IntegralLimit: 5}
	assert.InDelta(t, 1.0, p.Step(2, 0.1), 1e-9)
}

func TestPIDNoDerivativeKickOnFirstStep(t *testing.T) {
	p := PID{Kd: 1, MinOutput: -100, MaxOutput: 100, IntegralLimit: 5}
	// first step seeds prevError, so a huge initial error produces no d term
	assert.InDelta(t, 0, p.Step(50, 0.1), 1e-9)
}

func TestPIDDerivativeOnError(t *testing.T) {
	p := PID{Kd: 1, MinOutput: -100, MaxOutput: 100, IntegralLimit: 5}
	p.Step(1, 0.1)
	// error moved by +1 over 0.1 s
	assert.InDelta(t, 10, p.Step(2, 0.1), 1e-9)
}

func TestPIDIntegralClamp(t *testing.T) {
	p := PID{Ki: 1, MinOutput: -100, MaxOutput: 100, IntegralLimit: 2}
	for range 100 {
		p.Step(10, 0.1)
	}
	assert.Equal(t, 2.0, p.Integral())
	assert.InDelta(t, 2, p.Step(0, 0.1), 1e-9)
}

func TestPIDOutputClamp(t *testing.T) {
	p := PID{Kp: 1, MinOutput: -5, MaxOutput: 1, IntegralLimit: 2}
	assert.Equal(t, 1.0, p.Step(100, 0.1))
	assert.Equal(t, -5.0, p.Step(-100, 0.1))
}

func TestPIDReset(t *testing.T) {
	p := PID{Kp: 1, Ki: 1, Kd: 1, MinOutput: -10, MaxOutput: 10, IntegralLimit: 5}
	p.Step(3, 0.1)
	p.Step(4, 0.1)
	p.Reset()
	assert.Equal(t, 0.0, p.Integral())
	// behaves like a fresh controller again, no derivative kick
	assert.InDelta(t, 3*1+3*0.1*1, p.Step(3, 0.1), 1e-9)
}
