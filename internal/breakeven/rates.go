package breakeven

import "math"

// AnnualizeMonthly compounds a monthly rate to an effective annual rate
func AnnualizeMonthly(monthly float64) float64 {
	return math.Pow(1+monthly, 12) - 1
}

// HurdleRate returns the annual return an investment needs to match
// futureValue from amount over years. Zero when amount or years is not positive.
func HurdleRate(futureValue, amount, years float64) float64 {
	if amount <= 0 || years <= 0 {
		return 0
	}
	return math.Pow(futureValue/amount, 1/years) - 1
}

// FutureValue compounds amount at a periodic rate for n periods
func FutureValue(amount, rate float64, periods int) float64 {
	return amount * math.Pow(1+rate, float64(periods))
}
