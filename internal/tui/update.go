package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rgehrsitz/bestinvest/internal/domain"
	"github.com/rgehrsitz/bestinvest/internal/tui/components"
	"github.com/rgehrsitz/bestinvest/internal/tui/tuimsg"
)

// Update handles all messages and updates the model state
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.homeModel.SetSize(msg.Width, msg.Height)
		m.compareModel.SetSize(msg.Width, msg.Height)
		m.parametersModel.SetSize(msg.Width, msg.Height)
		m.assetsModel.SetSize(msg.Width, msg.Height)
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case NavigateMsg:
		m.previousScene = m.currentScene
		m.currentScene = msg.Scene
		return m, nil

	case ConfigLoadedMsg:
		m.config = msg.Config
		m.dataset = msg.Dataset
		m.warning = msg.Warning
		if s, ok := domain.ParseScenario(msg.Config.ViewScenario); ok {
			m.active = s
		}
		m.parametersModel.SetConfiguration(msg.Config)
		m.assetsModel.SetAssets(msg.Dataset.Profiles(), msg.Dataset.Multipliers(), msg.Dataset.Info())
		return m.startCalculation()

	case tuimsg.ParametersChangedMsg:
		m.config = msg.Config
		return m.startCalculation()

	case CalculationStartedMsg:
		m.loading = true
		m.loadingMessage = "Calculating..."
		return m, nil

	case CalculationCompleteMsg:
		m.loading = false
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		m.err = nil
		m.result = msg.Result
		m.refreshScenes()
		return m, nil

	case tuimsg.ScenarioChangedMsg:
		m.setScenario(msg.Scenario)
		return m, nil

	case tuimsg.ErrorMsg:
		m.err = msg.Err
		return m, nil
	}

	return m.updateCurrentScene(msg)
}

func (m Model) startCalculation() (tea.Model, tea.Cmd) {
	if m.config == nil {
		return m, nil
	}
	m.loading = true
	m.loadingMessage = "Calculating..."
	cfg := *m.config
	cfg.ViewScenario = string(m.active)
	return m, tea.Batch(calculateCmd(m.engine, m.parser, &cfg, m.dataset), m.spinner.Tick)
}

func (m *Model) setScenario(s domain.Scenario) {
	m.active = s
	if m.config != nil {
		m.config.ViewScenario = string(s)
	}
	m.refreshScenes()
}

func (m *Model) refreshScenes() {
	m.homeModel.SetResult(m.result, m.active)
	m.compareModel.SetResult(m.result, m.active)
}

// handleKeyPress processes keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.err != nil && msg.String() != "ctrl+c" {
		// any key dismisses the error
		m.err = nil
		return m, nil
	}

	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "?":
		return m.navigate(SceneHelp)

	case "esc":
		if m.currentScene != SceneHome {
			if m.previousScene != m.currentScene {
				return m.navigate(m.previousScene)
			}
			return m.navigate(SceneHome)
		}

	case "tab":
		m.setScenario(components.NextScenario(m.active, 1))
		return m, nil

	case "shift+tab":
		m.setScenario(components.NextScenario(m.active, -1))
		return m, nil

	case "1", "2", "3":
		m.setScenario(domain.AllScenarios[int(msg.String()[0]-'1')])
		return m, nil

	case "h":
		return m.navigate(SceneHome)
	case "c":
		return m.navigate(SceneCompare)
	case "p":
		return m.navigate(SceneParameters)
	case "a":
		return m.navigate(SceneAssets)
	}

	return m.updateCurrentScene(msg)
}

func (m Model) navigate(s Scene) (tea.Model, tea.Cmd) {
	if m.currentScene == s {
		return m, nil
	}
	return m, func() tea.Msg { return NavigateMsg{Scene: s} }
}

// updateCurrentScene delegates updates to the current scene's model
func (m Model) updateCurrentScene(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.currentScene {
	case SceneCompare:
		m.compareModel, cmd = m.compareModel.Update(msg)
	case SceneParameters:
		m.parametersModel, cmd = m.parametersModel.Update(msg)
	case SceneAssets:
		m.assetsModel, cmd = m.assetsModel.Update(msg)
	}
	return m, cmd
}
