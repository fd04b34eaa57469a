package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"dbwd/bus"
	"dbwd/params"
)

type mainState int

const (
	showMenu mainState = iota
	showWatch
	showSettings
)

var docStyle = lipgloss.NewStyle().Margin(1, 2)

type TickMsg time.Time

func tickEvery() tea.Cmd {
	return tea.Every(50*time.Millisecond, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

type uiModel struct {
	list  list.Model
	state mainState
	watch watchModel

	stateSub    bus.Subscriber[bus.DbwState]
	throttleSub bus.Subscriber[bus.ThrottleCommand]
	brakeSub    bus.Subscriber[bus.BrakeCommand]
	steeringSub bus.Subscriber[bus.SteeringCommand]
}

type item struct {
	title, desc string
	state       mainState
}

func (i item) Title() string       { return i.title }
func (i item) Description() string { return i.desc }
func (i item) FilterValue() string { return i.title }

func initialModel() uiModel {
	items := []list.Item{
		item{title: "Watch", desc: "Watch the live deviation and actuation output from dbwd", state: showWatch},
		item{title: "Settings", desc: "Show the settings an active instance of dbwd runs with", state: showSettings},
	}

	listDelegate := list.NewDefaultDelegate()
	m := uiModel{
		list:        list.New(items, listDelegate, 0, 0),
		stateSub:    bus.NewStateSub(),
		throttleSub: bus.NewThrottleSub(),
		brakeSub:    bus.NewBrakeSub(),
		steeringSub: bus.NewSteeringSub(),
	}
	m.list.Title = "Dbwd Actions"
	return m
}

func (m uiModel) Init() tea.Cmd {
	return tickEvery()
}

func (m uiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if msg.Type == tea.KeyEnter && m.state == showMenu && m.list.FilterState() != list.Filtering {
			it := m.list.SelectedItem().(item)
			m.state = it.state
			return m, nil
		}
		if msg.Type == tea.KeyEsc && m.state != showMenu {
			m.state = showMenu
			return m, nil
		}
	case tea.WindowSizeMsg:
		h, v := docStyle.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v)
	case TickMsg:
		m.watch, _ = m.watch.Update(msg, &m)
		return m, tickEvery()
	}

	var cmd tea.Cmd
	switch m.state {
	case showWatch:
		m.watch, cmd = m.watch.Update(msg, &m)
	case showSettings:
	default:
		m.list, cmd = m.list.Update(msg)
	}
	return m, cmd
}

func (m uiModel) View() string {
	switch m.state {
	case showWatch:
		return m.watch.View()
	case showSettings:
		return settingsView()
	}
	return docStyle.Render(m.list.View())
}

func settingsView() string {
	header := ""
	if names, err := params.GetParams(); err == nil {
		header = "params store: " + strings.Join(names, ", ") + "\n\n"
	}

	data, err := params.GetParam(params.DBW_SETTINGS)
	if err != nil {
		return docStyle.Render(header + "no settings param found\n")
	}
	var pretty map[string]any
	if err := json.Unmarshal(data, &pretty); err != nil {
		return docStyle.Render(header + "settings param is not valid json\n")
	}
	out, _ := json.MarshalIndent(pretty, "", "  ")
	return docStyle.Render(header + string(out) + "\n")
}

func monitor() {
	p := tea.NewProgram(initialModel(), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v", err)
		os.Exit(1)
	}
}
