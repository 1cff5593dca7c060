package domain

// LoanTerms describes a fixed-rate amortizing loan at the start of the analysis window
type LoanTerms struct {
	Balance    float64 `json:"balance" yaml:"balance"`
	AnnualRate float64 `json:"annualRate" yaml:"annual_rate"` // decimal, e.g. 0.06 for 6%
	Months     int     `json:"months" yaml:"months"`          // remaining scheduled months
}

// MonthlyRate returns the nominal monthly rate used by the schedule
func (t LoanTerms) MonthlyRate() float64 {
	return t.AnnualRate / 12
}

// Years returns the analysis horizon in years
func (t LoanTerms) Years() float64 {
	return float64(t.Months) / 12
}

// PrepaymentRequest is the input to the prepayment evaluator
type PrepaymentRequest struct {
	Terms LoanTerms `json:"terms"`

	// ExtraPrincipal is the lump sum applied to principal at the start
	ExtraPrincipal float64 `json:"extraPrincipal"`

	// TaxShieldRate is the fraction of each interest dollar recovered via deduction
	TaxShieldRate float64 `json:"taxShieldRate"`

	// MonthlyPMI is a flat charge for every scheduled month; no cancellation is modeled
	MonthlyPMI float64 `json:"monthlyPMI"`
}

// AmortizationRecord is a single month of a simulated schedule
type AmortizationRecord struct {
	Month           int     `json:"month"`
	BalanceStart    float64 `json:"balanceStart"`
	Interest        float64 `json:"interest"`
	Principal       float64 `json:"principal"`
	PMI             float64 `json:"pmi"`
	PaymentActual   float64 `json:"paymentActual"`
	TaxShield       float64 `json:"taxShield"`
	AfterTaxOutflow float64 `json:"afterTaxOutflow"`
}

// BalanceEnd returns the balance remaining after the month's principal
func (r AmortizationRecord) BalanceEnd() float64 {
	return r.BalanceStart - r.Principal
}

// AmortizationResult is a complete simulated schedule with aggregate totals
type AmortizationResult struct {
	Records              []AmortizationRecord `json:"records"`
	ScheduledPayment     float64              `json:"scheduledPayment"`
	MonthsToPayoff       int                  `json:"monthsToPayoff"`
	TotalInterest        float64              `json:"totalInterest"`
	TotalPMI             float64              `json:"totalPMI"`
	TotalAfterTaxOutflow float64              `json:"totalAfterTaxOutflow"`
}

// OutflowAt returns the after-tax outflow for the zero-based month index,
// or 0 once the schedule has ended
func (r *AmortizationResult) OutflowAt(i int) float64 {
	if r == nil || i < 0 || i >= len(r.Records) {
		return 0
	}
	return r.Records[i].AfterTaxOutflow
}

// CashflowSeries is an ordered list of monthly amounts. Index 0 is the
// initial outlay (negative), later entries are monthly savings.
type CashflowSeries []float64

// MortgageEquivalentResult expresses a prepayment as an investment return
type MortgageEquivalentResult struct {
	AnnualEquivalent        float64 `json:"annualEquivalent"`
	MonthlyEquivalent       float64 `json:"monthlyEquivalent"`
	FutureValue             float64 `json:"futureValue"`
	InterestSaved           float64 `json:"interestSaved"`
	PMISaved                float64 `json:"pmiSaved"`
	MonthsSaved             int     `json:"monthsSaved"`
	LifetimeAfterTaxSavings float64 `json:"lifetimeAfterTaxSavings"`
	HurdleRate              float64 `json:"hurdleRate"`

	// Approximated is set when no IRR root was bracketed and the annual
	// equivalent fell back to rate × (1 − tax shield)
	Approximated bool `json:"approximated"`

	Baseline       AmortizationResult `json:"baseline"`
	WithPrepayment AmortizationResult `json:"withPrepayment"`
	Cashflows      CashflowSeries     `json:"cashflows"`
}
