package calculation

import (
	"math"

	"github.com/rgehrsitz/bestinvest/internal/domain"
)

// ProjectionInput parameterizes a buy-and-hold projection
type ProjectionInput struct {
	Principal          float64
	Years              float64
	AnnualTotalReturn  float64 // price return plus dividend yield
	DividendYield      float64
	IncludeDividends   bool // reinvest net dividends; otherwise they accrue as cash
	QdivTaxRate        float64
	LtcgTaxRate        float64
	LiquidateAtHorizon bool
	InflationRate      float64
}

// ProjectInvestment compounds principal monthly, taxing dividends as they are
// paid and the gain over basis once at liquidation.
func ProjectInvestment(in ProjectionInput) domain.ProjectionResult {
	months := int(math.Max(1, math.Round(in.Years*12)))
	divYield := math.Max(in.DividendYield, 0)
	monthlyPriceRate := math.Pow(1+in.AnnualTotalReturn-divYield, 1.0/12) - 1
	monthlyDivRate := divYield / 12

	value := in.Principal
	basis := in.Principal
	dividendCash := 0.0

	for m := 0; m < months; m++ {
		value *= 1 + monthlyPriceRate

		grossDiv := value * monthlyDivRate
		netDiv := grossDiv - grossDiv*in.QdivTaxRate

		if in.IncludeDividends {
			value += netDiv
			basis += netDiv
		} else {
			dividendCash += netDiv
		}
	}

	post := value
	liquidationTax := 0.0
	if in.LiquidateAtHorizon {
		if gain := value - basis; gain > 0 {
			liquidationTax = gain * in.LtcgTaxRate
			post = value - liquidationTax
		}
	}

	nominal := post + dividendCash
	return domain.ProjectionResult{
		NominalAfterTax:         nominal,
		RealAfterTax:            nominal / math.Pow(1+in.InflationRate, in.Years),
		EffectiveAfterTaxAnnual: math.Pow(nominal/in.Principal, 1/in.Years) - 1,
		LiquidationTax:          liquidationTax,
		DividendCash:            dividendCash,
	}
}
