package cli

import (
	"fmt"
	"strconv"

	"github.com/manifoldco/promptui"

	"dbwd/bus"
	"dbwd/settings"
)

const saveAndReload = "Save & Reload"

// settingsEditor edits the settings param in place and asks a running daemon
// to reload it. Only the knobs that make sense to change on a bench are
// exposed; the vehicle geometry stays in the param file.
func settingsEditor() {
	s := &settings.Settings

	for {
		prompt := promptui.Select{
			Label: "Select Setting",
			Items: []string{
				fmt.Sprintf("Log Level (%s)", s.LogLevel),
				fmt.Sprintf("Tick Rate Hz (%g)", s.TickRateHz),
				fmt.Sprintf("Yaw Sign (%g)", s.YawSign),
				fmt.Sprintf("CAN Interface (%q)", s.CanInterface),
				saveAndReload,
			},
		}

		idx, result, err := prompt.Run()
		if err != nil {
			fmt.Printf("Prompt failed %v\n", err)
			return
		}
		if result == saveAndReload {
			break
		}

		switch idx {
		case 0:
			levels := promptui.Select{
				Label: "Log Level",
				Items: []string{"debug", "info", "warn", "error"},
			}
			_, level, err := levels.Run()
			if err == nil {
				s.LogLevel = level
			}
		case 1:
			if v, ok := promptFloat("Tick Rate Hz"); ok && v > 0 {
				s.TickRateHz = v
			}
		case 2:
			if v, ok := promptFloat("Yaw Sign"); ok && (v == 1 || v == -1) {
				s.YawSign = v
			}
		case 3:
			iface := promptui.Prompt{Label: "CAN Interface (empty to disable)"}
			if v, err := iface.Run(); err == nil {
				s.CanInterface = v
			}
		}
	}

	s.Save()
	pub := bus.NewInputPub()
	if err := pub.Send(bus.DbwInput{Type: bus.InputReloadSettings}); err != nil {
		fmt.Printf("could not notify running instance: %v\n", err)
	}
}

func promptFloat(label string) (float64, bool) {
	prompt := promptui.Prompt{
		Label: label,
		Validate: func(input string) error {
			_, err := strconv.ParseFloat(input, 64)
			return err
		},
	}
	result, err := prompt.Run()
	if err != nil {
		return 0, false
	}
	v, err := strconv.ParseFloat(result, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
