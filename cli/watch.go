package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"dbwd/bus"
	"dbwd/settings"
)

type watchModel struct {
	state    bus.DbwState
	valid    bool
	throttle bus.ThrottleCommand
	brake    bus.BrakeCommand
	steering bus.SteeringCommand
}

func (m watchModel) Update(msg tea.Msg, mm *uiModel) (watchModel, tea.Cmd) {
	if s, success := mm.stateSub.Read(); success {
		m.valid = true
		m.state = s
	}
	if c, success := mm.throttleSub.Read(); success {
		m.throttle = c
	}
	if c, success := mm.brakeSub.Read(); success {
		m.brake = c
	}
	if c, success := mm.steeringSub.Read(); success {
		m.steering = c
	}

	return m, nil
}

func (m watchModel) View() string {
	if !m.valid {
		return docStyle.Render("waiting for dbwState...\n")
	}
	return docStyle.Render(fmt.Sprintf(
		"enabled: %t\ncte: %f m\nheading error: %f deg\nthrottle: %f\nbrake: %f Nm\nsteer: %f rad\ndt: %f s (avg %f)\ndecel measured: %f m/s^2\ndecel computed: %f m/s^2\nlast throttle cmd: %f\nlast brake cmd: %f\nlast steering cmd: %f",
		m.state.Enabled,
		m.state.Cte,
		m.state.HeadingError*settings.TO_DEGREES,
		m.state.Throttle,
		m.state.BrakeTorque,
		m.state.SteerAngle,
		m.state.Dt,
		m.state.DtAverage,
		m.state.DecelMeasured,
		m.state.DecelComputed,
		m.throttle.PedalCmd,
		m.brake.TorqueNm,
		m.steering.WheelAngleRad,
	) + "\n")
}
