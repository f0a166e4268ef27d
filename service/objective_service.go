package service

import (
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"wealth-objective/domain"
	"wealth-objective/projection"
)

type ObjectiveService struct {
	logger   *zap.Logger
	baseYear int
}

// NewObjectiveService creates an ObjectiveService. A zero baseYear means the
// current calendar year.
func NewObjectiveService(logger *zap.Logger, baseYear int) *ObjectiveService {
	return &ObjectiveService{logger: logger, baseYear: baseYear}
}

func inRange(v decimal.Decimal, lo, hi float64) bool {
	return v.GreaterThanOrEqual(decimal.NewFromFloat(lo)) && v.LessThanOrEqual(decimal.NewFromFloat(hi))
}

func validateObjective(input domain.ObjectiveInput) error {
	if input.PresentValue.IsNegative() {
		return projection.NewInvalidInput(projection.ConstraintPrincipal, "patrimonio actual negativo: %s", input.PresentValue)
	}
	if input.MonthlyContribution.IsNegative() {
		return projection.NewInvalidInput("contribution", "aportación mensual negativa: %s", input.MonthlyContribution)
	}
	if input.Years < MinYears || input.Years > MaxYears {
		return projection.NewInvalidInput(projection.ConstraintHorizon, "horizonte inválido: %d años (entre %d y %d)", input.Years, MinYears, MaxYears)
	}
	if input.MonthlySpending.LessThan(decimal.NewFromFloat(MinMonthlySpending)) {
		return projection.NewInvalidInput("spending", "gasto mensual inválido: %s (mínimo %.0f)", input.MonthlySpending, MinMonthlySpending)
	}
	if !inRange(input.WithdrawalRate, MinWithdrawalRate, MaxWithdrawalRate) {
		return projection.NewInvalidInput("withdrawal_rate", "rentabilidad de distribución fuera de rango: %s%%", input.WithdrawalRate)
	}
	if !inRange(input.Inflation, 0, MaxInflationRate) {
		return projection.NewInvalidInput("inflation", "inflación fuera de rango: %s%%", input.Inflation)
	}
	if !inRange(input.ReferenceRate, 0, MaxReferenceRate) {
		return projection.NewInvalidInput(projection.ConstraintRate, "rentabilidad de referencia fuera de rango: %s%%", input.ReferenceRate)
	}
	return nil
}

// Analyze answers the two planning questions for the objective: which return
// reaches the target with the current savings, and which savings reach it at
// the reference return. It also builds the yearly scenario series.
func (s *ObjectiveService) Analyze(input domain.ObjectiveInput) (domain.ObjectiveResult, error) {
	if err := validateObjective(input); err != nil {
		return domain.ObjectiveResult{}, err
	}
	if input.GoalName == "" {
		input.GoalName = DefaultGoalName
	}
	if input.BaseYear == 0 {
		input.BaseYear = s.baseYear
		if input.BaseYear == 0 {
			input.BaseYear = time.Now().Year()
		}
	}

	pv, contrib, years := input.PresentValue, input.MonthlyContribution, input.Years

	target, err := projection.TargetWealth(input.MonthlySpending, input.WithdrawalRate)
	if err != nil {
		return domain.ObjectiveResult{}, err
	}

	// Escenario A: rentabilidad necesaria manteniendo el ahorro actual
	requiredMonthly, err := projection.RequiredMonthlyRate(pv, target, years, contrib)
	if err != nil {
		return domain.ObjectiveResult{}, err
	}
	var requiredRate *decimal.Decimal
	if requiredMonthly != nil {
		annual := projection.Annualize(*requiredMonthly)
		requiredRate = &annual
	}

	// Escenario B: ahorro necesario a la rentabilidad de referencia
	requiredContribution, err := projection.RequiredContribution(pv, target, years, input.ReferenceRate)
	if err != nil {
		return domain.ObjectiveResult{}, err
	}

	referenceMonthly := projection.MonthlyRate(input.ReferenceRate)
	market, err := projection.YearlyBalances(pv, contrib, years, referenceMonthly)
	if err != nil {
		return domain.ObjectiveResult{}, err
	}

	var ideal []decimal.Decimal
	if requiredMonthly != nil {
		ideal, err = projection.YearlyBalances(pv, contrib, years, *requiredMonthly)
		if err != nil {
			return domain.ObjectiveResult{}, err
		}
	}

	yearlyContribution := contrib.Mul(decimal.NewFromInt(projection.MonthsPerYear))
	series := make([]domain.YearPoint, years+1)
	for y := 0; y <= years; y++ {
		pt := domain.YearPoint{
			Year:     y,
			Market:   market[y],
			Ideal:    target,
			CashOnly: pv.Add(yearlyContribution.Mul(decimal.NewFromInt(int64(y)))),
		}
		if ideal != nil {
			pt.Ideal = ideal[y]
		}
		series[y] = pt
	}

	final := market[years]
	result := domain.ObjectiveResult{
		Input:                input,
		TargetWealth:         target,
		RequiredRate:         requiredRate,
		RequiredContribution: requiredContribution,
		ContributionGap:      requiredContribution.Sub(contrib),
		FinalProjection:      final,
		Surplus:              final.Sub(target),
		RealFinalProjection:  projection.Deflate(final, input.Inflation, years),
		Series:               series,
	}

	s.logger.Debug("objective analyzed",
		zap.String("goal", input.GoalName),
		zap.Stringer("target", target),
		zap.Bool("feasible", result.Feasible()),
	)
	return result, nil
}
