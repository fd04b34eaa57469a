package main

import (
	"log/slog"
	"time"

	"dbwd/bus"
	"dbwd/control"
	"dbwd/settings"
	"dbwd/utils"
)

// PrevTick is the bookkeeping threaded from one control tick to the next: the
// last two brake and velocity values drive the deceleration diagnostics, and
// the timestamp drives dt.
type PrevTick struct {
	BrakePrev    float64
	BrakeNew     float64
	VelocityPrev float64
	VelocityNew  float64
	Time         time.Time
}

// ControlTick runs the fixed-period control step: estimate deviation, invoke
// the control law, and hand the result to the actuation publisher when
// enabled.
type ControlTick struct {
	estimator  *Estimator
	controller control.Controller
	actuation  *ActuationPublisher
	cfg        *settings.DbwSettings

	prev     PrevTick
	interval utils.UpdateTracker
}

func NewControlTick(estimator *Estimator, controller control.Controller, actuation *ActuationPublisher, cfg *settings.DbwSettings) *ControlTick {
	t := &ControlTick{
		estimator:  estimator,
		controller: controller,
		actuation:  actuation,
		cfg:        cfg,
	}
	t.prev.Time = time.Now()
	t.interval.Init(100)
	return t
}

// Run executes one tick against the given snapshot. It reports false when the
// tick was skipped: state not ready yet, or the deviation estimate failed.
// A skipped tick publishes nothing and the loop simply resumes next period.
func (t *ControlTick) Run(snap Snapshot, now time.Time) (bus.DbwState, bool) {
	if !snap.Ready {
		return bus.DbwState{}, false
	}

	proposedLinear := snap.TwistCmd.Linear.X
	proposedAngular := snap.TwistCmd.Angular.Z
	currentLinear := snap.Velocity.Linear.X
	currentAngular := snap.Velocity.Angular.Z

	dev, err := t.estimator.Estimate(snap.Path, snap.Pose)
	if err != nil {
		slog.Debug("deviation unavailable, skipping actuation", "error", err)
		t.prev.Time = now
		return bus.DbwState{}, false
	}

	// The heading proxy handed to the control law is the proposed yaw rate,
	// which is what the steering path expects; the fitted heading error goes
	// out as a diagnostic.
	throttle, brake, steer := t.controller.Control(
		proposedLinear, proposedAngular,
		currentLinear, currentAngular,
		dev.Cte, proposedAngular,
		snap.Enabled,
	)

	// Diagnostic bookkeeping advances every completed tick, enabled or not,
	// so the deceleration estimates stay meaningful across a disable.
	t.prev.BrakePrev = t.prev.BrakeNew
	t.prev.BrakeNew = brake
	t.prev.VelocityPrev = t.prev.VelocityNew
	t.prev.VelocityNew = currentLinear

	dt := now.Sub(t.prev.Time).Seconds()
	t.prev.Time = now
	t.interval.Update(now)
	if dt < settings.MIN_TICK_DT {
		dt = settings.FALLBACK_TICK_DT
	}

	decelMeasured := (t.prev.VelocityNew - t.prev.VelocityPrev) / dt
	// a = F/m = T/(r*m)
	decelComputed := -t.prev.BrakePrev / (t.cfg.WheelRadiusM * t.cfg.VehicleMassKg)

	if snap.Enabled {
		t.actuation.Publish(throttle, brake, steer)
	}

	return bus.DbwState{
		Enabled:       snap.Enabled,
		Cte:           dev.Cte,
		HeadingError:  dev.HeadingError,
		Throttle:      throttle,
		BrakeTorque:   brake,
		SteerAngle:    steer,
		Dt:            dt,
		DtAverage:     t.interval.DiffMA.Estimate,
		DecelMeasured: decelMeasured,
		DecelComputed: decelComputed,
	}, true
}
