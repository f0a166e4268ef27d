package domain

import "github.com/shopspring/decimal"

// ObjectiveInput holds the planner inputs. Percent fields are expressed as
// percentages (7 = 7%), as entered by the user.
type ObjectiveInput struct {
	GoalName            string          `json:"goal_name"`
	PresentValue        decimal.Decimal `json:"present_value"`
	MonthlyContribution decimal.Decimal `json:"monthly_contribution"`
	Years               int             `json:"years"`
	MonthlySpending     decimal.Decimal `json:"monthly_spending"`
	WithdrawalRate      decimal.Decimal `json:"withdrawal_rate"`
	Inflation           decimal.Decimal `json:"inflation"`
	ReferenceRate       decimal.Decimal `json:"reference_rate"`
	BaseYear            int             `json:"base_year,omitempty"`
}

// YearPoint is one row of the yearly scenario series.
type YearPoint struct {
	Year     int             `json:"year"`
	Market   decimal.Decimal `json:"market"`
	Ideal    decimal.Decimal `json:"ideal"`
	CashOnly decimal.Decimal `json:"cash_only"`
}

type ObjectiveResult struct {
	Input                ObjectiveInput   `json:"input"`
	TargetWealth         decimal.Decimal  `json:"target_wealth"`
	RequiredRate         *decimal.Decimal `json:"required_rate,omitempty"` // anual, fracción
	RequiredContribution decimal.Decimal  `json:"required_contribution"`
	ContributionGap      decimal.Decimal  `json:"contribution_gap"`
	FinalProjection      decimal.Decimal  `json:"final_projection"`
	Surplus              decimal.Decimal  `json:"surplus"`
	RealFinalProjection  decimal.Decimal  `json:"real_final_projection"`
	Series               []YearPoint      `json:"series"`
}

// Feasible reports whether some return rate reaches the target.
func (r ObjectiveResult) Feasible() bool {
	return r.RequiredRate != nil
}
