package calculation

import "errors"

// ErrInfeasibleLoan is returned when the scheduled payment does not cover
// the month's interest
var ErrInfeasibleLoan = errors.New("payment does not cover interest")

// CalculationError wraps a failure with the operation that produced it
type CalculationError struct {
	Operation string
	Message   string
	Cause     error
}

func (e *CalculationError) Error() string {
	if e.Cause != nil {
		return e.Operation + ": " + e.Message + ": " + e.Cause.Error()
	}
	return e.Operation + ": " + e.Message
}

func (e *CalculationError) Unwrap() error {
	return e.Cause
}
