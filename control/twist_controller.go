package control

import (
	"dbwd/geometry"
	"dbwd/settings"
)

// TwistController is the reference control law: a velocity PID split into
// throttle and brake torque, plus a bicycle-model steering command corrected
// by a PID on cross-track error.
type TwistController struct {
	cfg      *settings.DbwSettings
	speedPID PID
	steerPID PID
	yaw      YawController
	dt       float64
}

func NewTwistController(cfg *settings.DbwSettings) *TwistController {
	return &TwistController{
		cfg: cfg,
		speedPID: PID{
			Kp:            0.35,
			Ki:            0.1,
			Kd:            0,
			MinOutput:     cfg.DecelLimit,
			MaxOutput:     cfg.AccelLimit,
			IntegralLimit: 2,
		},
		steerPID: PID{
			Kp:            0.15,
			Ki:            0.002,
			Kd:            0.1,
			MinOutput:     -cfg.MaxSteerAngle,
			MaxOutput:     cfg.MaxSteerAngle,
			IntegralLimit: 4,
		},
		yaw: YawController{
			WheelBase:     cfg.WheelBaseM,
			SteerRatio:    cfg.SteerRatio,
			MinSpeed:      cfg.MinSpeedMS,
			MaxLatAccel:   cfg.MaxLatAccel,
			MaxSteerAngle: cfg.MaxSteerAngle,
		},
		dt: cfg.TickPeriod().Seconds(),
	}
}

func (c *TwistController) Control(proposedLinear, proposedAngular, currentLinear, currentAngular, cte, headingProxy float64, enabled bool) (throttle, brake, steer float64) {
	if !enabled {
		// a human is driving; clear accumulated error so a re-enable starts
		// from scratch
		c.speedPID.Reset()
		c.steerPID.Reset()
		return 0, 0, 0
	}

	accel := c.speedPID.Step(proposedLinear-currentLinear, c.dt)
	if accel >= 0 {
		throttle = accel / c.cfg.AccelLimit
	} else if -accel > c.cfg.BrakeDeadband {
		// a = T/(r*m), so T = a*r*m
		brake = -accel * c.cfg.WheelRadiusM * c.cfg.VehicleMassKg
	}

	steer = c.yaw.GetSteering(proposedLinear, proposedAngular, currentLinear)
	// positive CTE means the path sits to the vehicle's left, so the
	// correction adds to the left-turn command
	steer += c.steerPID.Step(cte, c.dt)
	steer = geometry.Clamp(steer, -c.cfg.MaxSteerAngle, c.cfg.MaxSteerAngle)

	return throttle, brake, steer
}

// SpeedIntegral exposes the speed PID integral for tests.
func (c *TwistController) SpeedIntegral() float64 {
	return c.speedPID.Integral()
}
