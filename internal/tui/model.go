package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rgehrsitz/bestinvest/internal/calculation"
	"github.com/rgehrsitz/bestinvest/internal/compare"
	"github.com/rgehrsitz/bestinvest/internal/config"
	"github.com/rgehrsitz/bestinvest/internal/domain"
	"github.com/rgehrsitz/bestinvest/internal/marketdata"
	"github.com/rgehrsitz/bestinvest/internal/tui/scenes"
	"github.com/rgehrsitz/bestinvest/internal/tui/tuistyles"
)

// Model represents the entire application state
type Model struct {
	currentScene  Scene
	previousScene Scene

	width  int
	height int

	// configPath may be empty, in which case the defaults are used
	configPath string
	assetsPath string
	config     *domain.Configuration
	dataset    *marketdata.Dataset
	warning    string

	parser *config.InputParser
	engine *compare.CompareEngine
	result *compare.Result
	active domain.Scenario

	homeModel       *scenes.HomeModel
	compareModel    *scenes.CompareModel
	parametersModel *scenes.ParametersModel
	assetsModel     *scenes.AssetsModel

	spinner spinner.Model

	err            error
	loading        bool
	loadingMessage string
}

// NewModel creates a new application model
func NewModel(configPath, assetsPath string) Model {
	s := spinner.New(spinner.WithSpinner(spinner.Dot))
	s.Style = s.Style.Foreground(tuistyles.ColorPrimary)

	return Model{
		currentScene:    SceneHome,
		configPath:      configPath,
		assetsPath:      assetsPath,
		parser:          config.NewInputParser(),
		engine:          compare.NewCompareEngine(calculation.NewCalculationEngine()),
		active:          domain.ScenarioModerate,
		homeModel:       scenes.NewHomeModel(),
		compareModel:    scenes.NewCompareModel(),
		parametersModel: scenes.NewParametersModel(),
		assetsModel:     scenes.NewAssetsModel(),
		spinner:         s,
		loading:         true,
		loadingMessage:  "Loading configuration...",
		width:           80,
		height:          24,
	}
}

// Init initializes the model (required by tea.Model interface)
func (m Model) Init() tea.Cmd {
	return tea.Batch(loadConfigCmd(m.parser, m.configPath, m.assetsPath), m.spinner.Tick)
}

// loadConfigCmd returns a command that loads the configuration and dataset
func loadConfigCmd(parser *config.InputParser, path, assetsPath string) tea.Cmd {
	return func() tea.Msg {
		cfg := domain.DefaultConfiguration()
		loaded := &cfg
		if path != "" {
			var err error
			loaded, err = parser.LoadFromFile(path)
			if err != nil {
				return CalculationCompleteMsg{Err: err}
			}
		}

		if assetsPath == "" {
			assetsPath = loaded.Investment.AssetsFile
		}

		msg := ConfigLoadedMsg{Config: loaded}
		if assetsPath == "" {
			msg.Dataset = marketdata.EmbeddedDataset()
			return msg
		}
		ds, err := marketdata.LoadOrEmbedded(assetsPath)
		if err != nil {
			msg.Warning = fmt.Sprintf("using embedded dataset: %v", err)
		}
		msg.Dataset = ds
		return msg
	}
}

// calculateCmd returns a command that runs the comparison
func calculateCmd(engine *compare.CompareEngine, parser *config.InputParser, cfg *domain.Configuration, ds *marketdata.Dataset) tea.Cmd {
	return func() tea.Msg {
		result, err := engine.CompareConfiguration(context.Background(), parser, cfg, ds)
		return CalculationCompleteMsg{Result: result, Err: err}
	}
}

// Result returns the most recent comparison, if any
func (m Model) Result() *compare.Result {
	return m.result
}

// ActiveScenario returns the scenario tab currently shown
func (m Model) ActiveScenario() domain.Scenario {
	return m.active
}

// CurrentScene returns the displayed scene
func (m Model) CurrentScene() Scene {
	return m.currentScene
}
