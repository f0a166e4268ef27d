// Package projection implements the compounding arithmetic of the planner.
// All functions are pure; balances are decimals rounded to cents.
package projection

import (
	"github.com/shopspring/decimal"

	"wealth-objective/domain"
)

// CentPlaces is the minimum precision every period balance is rounded to.
const CentPlaces = 2

var one = decimal.NewFromInt(1)

// Validate checks the input domain of Project.
func Validate(input domain.ProjectionInput) error {
	if input.HorizonPeriods < 1 {
		return NewInvalidInput(ConstraintHorizon, "horizonte inválido: %d periodos (mínimo 1)", input.HorizonPeriods)
	}
	if input.PeriodicRate.LessThanOrEqual(one.Neg()) {
		return NewInvalidInput(ConstraintRate, "tasa inválida: %s (debe ser mayor que -1)", input.PeriodicRate)
	}
	if input.Principal.IsNegative() {
		return NewInvalidInput(ConstraintPrincipal, "capital inicial negativo: %s", input.Principal)
	}
	return nil
}

// Project computes the period-end balances of the series. The contribution
// is added at the end of each period, after growth:
//
//	balance[p] = round2(balance[p-1] * (1 + rate) + contribution)
//
// balance[0] is the principal, unrounded. Later balances are rounded to
// cents, or to the principal's own precision when it carries more decimals.
func Project(input domain.ProjectionInput) (domain.ProjectionResult, error) {
	if err := Validate(input); err != nil {
		return domain.ProjectionResult{}, err
	}

	growth := one.Add(input.PeriodicRate)
	places := balancePlaces(input.Principal)
	points := make([]domain.ProjectionPoint, input.HorizonPeriods+1)
	points[0] = domain.ProjectionPoint{Period: 0, Balance: input.Principal}

	balance := input.Principal
	for p := 1; p <= input.HorizonPeriods; p++ {
		balance = balance.Mul(growth).Add(input.PeriodicContribution).Round(places)
		points[p] = domain.ProjectionPoint{Period: p, Balance: balance}
	}

	result := domain.ProjectionResult{Points: points}
	if input.Target != nil {
		result.TargetReachedAtPeriod = firstReached(points, *input.Target)
	}
	return result, nil
}

// balancePlaces keeps the principal representable so rounding never moves
// a balance below it.
func balancePlaces(principal decimal.Decimal) int32 {
	if exp := -principal.Exponent(); exp > CentPlaces {
		return exp
	}
	return CentPlaces
}

func firstReached(points []domain.ProjectionPoint, target decimal.Decimal) *int {
	for _, pt := range points {
		if pt.Balance.GreaterThanOrEqual(target) {
			period := pt.Period
			return &period
		}
	}
	return nil
}
