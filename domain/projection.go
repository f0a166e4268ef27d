package domain

import "github.com/shopspring/decimal"

// ProjectionInput describes a compounding series. Rates are fractions per
// period (0.005 = 0.5%). Target is optional.
type ProjectionInput struct {
	Principal            decimal.Decimal  `json:"principal"`
	PeriodicContribution decimal.Decimal  `json:"periodic_contribution"`
	PeriodicRate         decimal.Decimal  `json:"periodic_rate"`
	HorizonPeriods       int              `json:"horizon_periods"`
	Target               *decimal.Decimal `json:"target,omitempty"`
}

type ProjectionPoint struct {
	Period  int             `json:"period"`
	Balance decimal.Decimal `json:"balance"`
}

type ProjectionResult struct {
	Points                []ProjectionPoint `json:"points"`
	TargetReachedAtPeriod *int              `json:"target_reached_at_period,omitempty"`
}

// FinalBalance returns the balance of the last period.
func (r ProjectionResult) FinalBalance() decimal.Decimal {
	if len(r.Points) == 0 {
		return decimal.Zero
	}
	return r.Points[len(r.Points)-1].Balance
}
