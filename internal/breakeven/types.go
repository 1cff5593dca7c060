package breakeven

import (
	"fmt"
	"math"
)

// SolverOptions configures the IRR bisection
type SolverOptions struct {
	Lower         float64 // lower bracket for the periodic rate
	Upper         float64 // upper bracket for the periodic rate
	Tolerance     float64 // |NPV| below which the midpoint is accepted
	MaxIterations int
}

// DefaultSolverOptions returns the bracket and budget used for monthly IRR
func DefaultSolverOptions() SolverOptions {
	return SolverOptions{
		Lower:         -0.999,
		Upper:         2.0,
		Tolerance:     1e-10,
		MaxIterations: 120,
	}
}

// Validate checks that the options describe a usable bracket
func (o SolverOptions) Validate() error {
	if math.IsNaN(o.Lower) || math.IsNaN(o.Upper) {
		return &BreakEvenError{
			Operation: "validate_options",
			Message:   "bracket bounds must be numbers",
		}
	}
	if o.Lower <= -1 {
		return &BreakEvenError{
			Operation: "validate_options",
			Message:   fmt.Sprintf("lower bound %g must be greater than -1", o.Lower),
		}
	}
	if o.Lower >= o.Upper {
		return &BreakEvenError{
			Operation: "validate_options",
			Message:   "lower bound must be below upper bound",
		}
	}
	if o.MaxIterations <= 0 {
		return &BreakEvenError{
			Operation: "validate_options",
			Message:   "max iterations must be positive",
		}
	}
	if o.Tolerance <= 0 {
		return &BreakEvenError{
			Operation: "validate_options",
			Message:   "tolerance must be positive",
		}
	}
	return nil
}

// SolveResult reports the outcome of a root search
type SolveResult struct {
	Rate       float64 `json:"rate"`
	Found      bool    `json:"found"`     // false when the bracket holds no sign change
	Converged  bool    `json:"converged"` // false when the iteration budget ran out
	Iterations int     `json:"iterations"`
	Residual   float64 `json:"residual"` // NPV at Rate
}

// BreakEvenError represents errors from the break-even solver
type BreakEvenError struct {
	Operation string
	Message   string
	Cause     error
}

func (e *BreakEvenError) Error() string {
	if e.Cause != nil {
		return e.Operation + ": " + e.Message + ": " + e.Cause.Error()
	}
	return e.Operation + ": " + e.Message
}

func (e *BreakEvenError) Unwrap() error {
	return e.Cause
}
