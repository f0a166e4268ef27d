package projection

import (
	"github.com/shopspring/decimal"

	"wealth-objective/domain"
)

const (
	MonthsPerYear = 12

	// rateSearchIterations bounds the bisection of RequiredRate.
	rateSearchIterations = 100
	// rateFloorSteps bounds how far the lower bracket moves toward -1.
	rateFloorSteps       = 30
	rateTolerance        = "0.0000000001"
	ratePlaces           = 12
	factorPlaces         = 18
)

var (
	hundred       = decimal.NewFromInt(100)
	monthsPerYear = decimal.NewFromInt(MonthsPerYear)
	two           = decimal.NewFromInt(2)

	// Intervalo de búsqueda de la tasa mensual.
	minMonthlyRate = decimal.RequireFromString("-0.5")
	maxMonthlyRate = decimal.NewFromInt(1)
)

// MonthlyRate converts an annual percentage (7 = 7%) into a monthly fraction.
func MonthlyRate(annualPercent decimal.Decimal) decimal.Decimal {
	return annualPercent.Div(hundred).Div(monthsPerYear)
}

// TargetWealth is the capital whose yearly distribution at withdrawalPercent
// covers twelve months of spending.
func TargetWealth(monthlySpending, withdrawalPercent decimal.Decimal) (decimal.Decimal, error) {
	if !withdrawalPercent.IsPositive() {
		return decimal.Zero, NewInvalidInput(ConstraintRate, "tasa de retirada inválida: %s%%", withdrawalPercent)
	}
	yearly := monthlySpending.Mul(monthsPerYear)
	return yearly.Div(withdrawalPercent.Div(hundred)).Round(CentPlaces), nil
}

// FutureValue projects pv plus a monthly contribution for the given years at
// a monthly rate. Zero years returns pv.
func FutureValue(pv, monthlyContribution decimal.Decimal, years int, monthlyRate decimal.Decimal) (decimal.Decimal, error) {
	if years == 0 {
		if pv.IsNegative() {
			return decimal.Zero, NewInvalidInput(ConstraintPrincipal, "capital inicial negativo: %s", pv)
		}
		return pv, nil
	}
	res, err := Project(domain.ProjectionInput{
		Principal:            pv,
		PeriodicContribution: monthlyContribution,
		PeriodicRate:         monthlyRate,
		HorizonPeriods:       years * MonthsPerYear,
	})
	if err != nil {
		return decimal.Zero, err
	}
	return res.FinalBalance(), nil
}

// RequiredRate is RequiredMonthlyRate annualised as (1+m)^12 - 1.
func RequiredRate(pv, target decimal.Decimal, years int, monthlyContribution decimal.Decimal) (*decimal.Decimal, error) {
	m, err := RequiredMonthlyRate(pv, target, years, monthlyContribution)
	if err != nil || m == nil {
		return nil, err
	}
	annual := Annualize(*m)
	return &annual, nil
}

// RequiredMonthlyRate finds by bisection the smallest monthly rate for which
// the projection reaches target within years. It returns nil when even the
// highest searched rate falls short. When the lower bound already reaches the
// target it is moved halfway toward -1 until it no longer does; if the target
// is reached arbitrarily close to -1 the closest searched rate is returned.
func RequiredMonthlyRate(pv, target decimal.Decimal, years int, monthlyContribution decimal.Decimal) (*decimal.Decimal, error) {
	reaches := func(m decimal.Decimal) (bool, error) {
		fv, err := FutureValue(pv, monthlyContribution, years, m)
		if err != nil {
			return false, err
		}
		return fv.GreaterThanOrEqual(target), nil
	}

	if years < 1 {
		return nil, NewInvalidInput(ConstraintHorizon, "horizonte inválido: %d años (mínimo 1)", years)
	}

	ok, err := reaches(maxMonthlyRate)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	lo, hi := minMonthlyRate, maxMonthlyRate
	for step := 0; ; step++ {
		ok, err := reaches(lo)
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		if step == rateFloorSteps {
			return &lo, nil
		}
		hi, lo = lo, lo.Sub(one).Div(two).Round(ratePlaces)
	}

	tol := decimal.RequireFromString(rateTolerance)
	for i := 0; i < rateSearchIterations && hi.Sub(lo).GreaterThan(tol); i++ {
		mid := lo.Add(hi).Div(two).Round(ratePlaces)
		ok, err := reaches(mid)
		if err != nil {
			return nil, err
		}
		if ok {
			hi = mid
		} else {
			lo = mid
		}
	}

	return &hi, nil
}

// RequiredContribution returns the monthly payment that takes pv to target
// in years at the annual percentage rate. The result is never negative: when
// pv alone grows past the target no saving is needed.
func RequiredContribution(pv, target decimal.Decimal, years int, annualPercent decimal.Decimal) (decimal.Decimal, error) {
	if years < 1 {
		return decimal.Zero, NewInvalidInput(ConstraintHorizon, "horizonte inválido: %d años (mínimo 1)", years)
	}
	if pv.IsNegative() {
		return decimal.Zero, NewInvalidInput(ConstraintPrincipal, "capital inicial negativo: %s", pv)
	}
	r := MonthlyRate(annualPercent)
	if r.LessThanOrEqual(one.Neg()) {
		return decimal.Zero, NewInvalidInput(ConstraintRate, "tasa inválida: %s%%", annualPercent)
	}

	n := years * MonthsPerYear
	var pmt decimal.Decimal
	if r.IsZero() {
		pmt = target.Sub(pv).Div(decimal.NewFromInt(int64(n)))
	} else {
		f := Compound(r, n)
		pmt = target.Sub(pv.Mul(f)).Mul(r).Div(f.Sub(one))
	}

	if pmt.IsNegative() {
		return decimal.Zero, nil
	}
	return pmt.Round(CentPlaces), nil
}

// Compound returns (1 + rate)^n.
func Compound(rate decimal.Decimal, n int) decimal.Decimal {
	growth := one.Add(rate)
	f := one
	for i := 0; i < n; i++ {
		f = f.Mul(growth).Round(factorPlaces)
	}
	return f
}

// Annualize converts a monthly rate into the equivalent annual rate.
func Annualize(monthlyRate decimal.Decimal) decimal.Decimal {
	return Compound(monthlyRate, MonthsPerYear).Sub(one).Round(ratePlaces)
}

// Deflate expresses value in today's money given a yearly inflation percent.
func Deflate(value decimal.Decimal, inflationPercent decimal.Decimal, years int) decimal.Decimal {
	f := Compound(inflationPercent.Div(hundred), years)
	if f.IsZero() {
		return value
	}
	return value.Div(f).Round(CentPlaces)
}

// YearlyBalances returns the balance at the end of each year 0..years of a
// monthly projection.
func YearlyBalances(pv, monthlyContribution decimal.Decimal, years int, monthlyRate decimal.Decimal) ([]decimal.Decimal, error) {
	if years == 0 {
		fv, err := FutureValue(pv, monthlyContribution, 0, monthlyRate)
		if err != nil {
			return nil, err
		}
		return []decimal.Decimal{fv}, nil
	}
	res, err := Project(domain.ProjectionInput{
		Principal:            pv,
		PeriodicContribution: monthlyContribution,
		PeriodicRate:         monthlyRate,
		HorizonPeriods:       years * MonthsPerYear,
	})
	if err != nil {
		return nil, err
	}
	out := make([]decimal.Decimal, years+1)
	for y := 0; y <= years; y++ {
		out[y] = res.Points[y*MonthsPerYear].Balance
	}
	return out, nil
}
