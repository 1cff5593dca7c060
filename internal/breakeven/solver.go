package breakeven

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Solver finds the periodic internal rate of return of a cash-flow series
type Solver struct {
	Options SolverOptions
}

// NewSolver creates a solver with the given options
func NewSolver(options SolverOptions) *Solver {
	return &Solver{Options: options}
}

// NewDefaultSolver creates a solver with default options
func NewDefaultSolver() *Solver {
	return NewSolver(DefaultSolverOptions())
}

// NPV returns the net present value of cashflows discounted at the periodic
// rate. Index 0 is undiscounted.
func NPV(cashflows []float64, rate float64) float64 {
	terms := make([]float64, len(cashflows))
	base := 1 + rate
	for i, cf := range cashflows {
		terms[i] = cf / math.Pow(base, float64(i))
	}
	return floats.Sum(terms)
}

// Solve bisects the NPV over the configured bracket. A bracket without a
// sign change, or with a non-finite endpoint, yields Found=false.
// When the budget runs out the midpoint of the last bracket is returned with
// Converged=false.
func (s *Solver) Solve(cashflows []float64) (SolveResult, error) {
	if err := s.Options.Validate(); err != nil {
		return SolveResult{}, err
	}

	lo, hi := s.Options.Lower, s.Options.Upper
	fLo := NPV(cashflows, lo)
	fHi := NPV(cashflows, hi)
	if !finite(fLo) || !finite(fHi) || fLo*fHi > 0 {
		return SolveResult{}, nil
	}

	for i := 1; i <= s.Options.MaxIterations; i++ {
		mid := (lo + hi) / 2
		fMid := NPV(cashflows, mid)
		if math.Abs(fMid) < s.Options.Tolerance {
			return SolveResult{Rate: mid, Found: true, Converged: true, Iterations: i, Residual: fMid}, nil
		}
		if fLo*fMid <= 0 {
			hi = mid
		} else {
			lo = mid
			fLo = fMid
		}
	}

	rate := (lo + hi) / 2
	return SolveResult{
		Rate:       rate,
		Found:      true,
		Iterations: s.Options.MaxIterations,
		Residual:   NPV(cashflows, rate),
	}, nil
}

// SolveIRR returns the monthly IRR of cashflows using the default options.
// ok is false when no root is bracketed.
func SolveIRR(cashflows []float64) (rate float64, ok bool) {
	res, err := NewDefaultSolver().Solve(cashflows)
	if err != nil || !res.Found {
		return 0, false
	}
	return res.Rate, true
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
