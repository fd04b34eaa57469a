package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dbwd/bus"
	"dbwd/canbridge"
	"dbwd/cli"
	"dbwd/control"
	"dbwd/geometry"
	"dbwd/params"
	"dbwd/settings"
	"dbwd/utils"
)

func main() {
	slog.SetLogLoggerLevel(slog.LevelError)
	params.EnsureParamDirectories()
	settings.Settings.LoadWithRetries(3)
	cli.Handle() // subcommands exit the process; the default action falls through

	run()
}

func run() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := &settings.Settings

	feeds := newInputFeeds()
	inputSub := bus.NewInputSub()
	statePub := bus.NewStatePub()

	sinks := []ActuationSink{newBusSink()}
	if cfg.CanInterface != "" {
		bridge, err := canbridge.New(ctx, cfg.CanInterface)
		if err != nil {
			slog.Warn("can bridge unavailable", "error", err, "interface", cfg.CanInterface)
		} else {
			defer bridge.Close()
			sinks = append(sinks, bridge)
		}
	}

	estimator := NewEstimator(geometry.YawFromQuaternion, cfg.YawSign)
	tick := NewControlTick(estimator, control.NewTwistController(cfg), NewActuationPublisher(sinks...), cfg)

	vehicle := VehicleState{}
	ticker := time.NewTicker(cfg.TickPeriod())
	defer ticker.Stop()

	slog.Info("dbwd started", "tick_rate_hz", cfg.TickRateHz, "can_interface", cfg.CanInterface)
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			if input, ok := inputSub.Read(); ok {
				cfg.Handle(input)
			}
			feeds.Drain(&vehicle)
			if state, ok := tick.Run(vehicle.Snapshot(), now); ok {
				utils.Loge(statePub.Send(state))
			}
		}
	}
}
