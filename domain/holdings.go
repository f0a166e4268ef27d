package domain

import "github.com/shopspring/decimal"

type Holding struct {
	Asset string          `json:"asset"`
	Value decimal.Decimal `json:"value"`
}

type HoldingsResult struct {
	AssetColumn string          `json:"asset_column"`
	ValueColumn string          `json:"value_column"`
	Holdings    []Holding       `json:"holdings"`
	Total       decimal.Decimal `json:"total"`
}
