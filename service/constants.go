package service

const (
	MaxHorizonPeriods = 1200 // 100 años en meses
	MinYears          = 1
	MaxYears          = 50

	MinMonthlySpending = 500.0

	// Porcentajes anuales
	MinWithdrawalRate = 1.0
	MaxWithdrawalRate = 8.0
	MaxInflationRate  = 10.0
	MaxReferenceRate  = 20.0

	DefaultGoalName     = "Libertad Financiera"
	DefaultHistoryLimit = 20
	MaxHistoryLimit     = 100
	MaxHoldingsRows     = 10_000

	// Años iniciales mostrados en el informe, además del último
	ReportHeadYears = 5
)
