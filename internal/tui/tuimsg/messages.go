// Package tuimsg defines messages shared between the root model and its scenes.
package tuimsg

import (
	"github.com/rgehrsitz/bestinvest/internal/domain"
)

// ScenarioChangedMsg signals the active market scenario tab changed
type ScenarioChangedMsg struct {
	Scenario domain.Scenario
}

// ParametersChangedMsg carries an edited configuration to recalculate
type ParametersChangedMsg struct {
	Config *domain.Configuration
}

// ErrorMsg displays an error to the user
type ErrorMsg struct {
	Err error
}
