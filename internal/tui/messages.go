package tui

import (
	"github.com/rgehrsitz/bestinvest/internal/compare"
	"github.com/rgehrsitz/bestinvest/internal/domain"
	"github.com/rgehrsitz/bestinvest/internal/marketdata"
)

// Scene represents different screens in the TUI
type Scene int

const (
	SceneHome Scene = iota
	SceneCompare
	SceneParameters
	SceneAssets
	SceneHelp
)

// String returns a human-readable name for a scene
func (s Scene) String() string {
	switch s {
	case SceneHome:
		return "Home"
	case SceneCompare:
		return "Compare"
	case SceneParameters:
		return "Parameters"
	case SceneAssets:
		return "Assets"
	case SceneHelp:
		return "Help"
	default:
		return "Unknown"
	}
}

// NavigateMsg switches to a different scene
type NavigateMsg struct {
	Scene Scene
}

// ConfigLoadedMsg signals the configuration and dataset have been loaded
type ConfigLoadedMsg struct {
	Config  *domain.Configuration
	Dataset *marketdata.Dataset
	// Warning is set when the dataset file could not be read and the
	// embedded copy is used instead
	Warning string
}

// CalculationStartedMsg signals a calculation has begun
type CalculationStartedMsg struct{}

// CalculationCompleteMsg signals a calculation has finished
type CalculationCompleteMsg struct {
	Result *compare.Result
	Err    error
}
