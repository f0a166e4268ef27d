package service

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"wealth-objective/domain"
	"wealth-objective/projection"
)

const constraintHoldings = "holdings"

var nonNumeric = regexp.MustCompile(`[^\d.-]`)

// HoldingsOptions overrides the detected columns of a holdings export.
type HoldingsOptions struct {
	AssetColumn string
	ValueColumn string
}

type HoldingsService struct {
	logger *zap.Logger
}

func NewHoldingsService(logger *zap.Logger) *HoldingsService {
	return &HoldingsService{logger: logger}
}

// Import sums the value column of a CSV export of assets (Kubera and similar).
func (s *HoldingsService) Import(r io.Reader, opts HoldingsOptions) (domain.HoldingsResult, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	headers, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return domain.HoldingsResult{}, projection.NewInvalidInput(constraintHoldings, "CSV vacío")
		}
		return domain.HoldingsResult{}, projection.NewInvalidInput(constraintHoldings, "no se pudo leer la cabecera: %v", err)
	}
	if len(headers) < 2 && opts.ValueColumn == "" {
		return domain.HoldingsResult{}, projection.NewInvalidInput(constraintHoldings, "se necesitan al menos dos columnas")
	}

	assetIdx, err := columnIndex(headers, opts.AssetColumn, []string{"Asset", "Name"}, 0)
	if err != nil {
		return domain.HoldingsResult{}, err
	}
	valueIdx, err := columnIndex(headers, opts.ValueColumn, []string{"Value", "Balance", "Valor"}, 1)
	if err != nil {
		return domain.HoldingsResult{}, err
	}

	result := domain.HoldingsResult{
		AssetColumn: headers[assetIdx],
		ValueColumn: headers[valueIdx],
		Holdings:    []domain.Holding{},
		Total:       decimal.Zero,
	}

	for line := 2; ; line++ {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return domain.HoldingsResult{}, projection.NewInvalidInput(constraintHoldings, "fila %d: %v", line, err)
		}
		if len(result.Holdings) >= MaxHoldingsRows {
			return domain.HoldingsResult{}, projection.NewInvalidInput(constraintHoldings, "el CSV excede el máximo de %d filas", MaxHoldingsRows)
		}

		value, err := parseAmount(cell(row, valueIdx))
		if err != nil {
			return domain.HoldingsResult{}, projection.NewInvalidInput(constraintHoldings, "fila %d: valor %q no numérico", line, cell(row, valueIdx))
		}

		result.Holdings = append(result.Holdings, domain.Holding{
			Asset: cell(row, assetIdx),
			Value: value,
		})
		result.Total = result.Total.Add(value)
	}

	s.logger.Info("holdings imported",
		zap.Int("rows", len(result.Holdings)),
		zap.String("value_column", result.ValueColumn),
		zap.Stringer("total", result.Total),
	)
	return result, nil
}

// columnIndex resolves an explicit column name, or the first header that
// contains one of the hints, or fallback.
func columnIndex(headers []string, explicit string, hints []string, fallback int) (int, error) {
	if explicit != "" {
		for i, h := range headers {
			if strings.TrimSpace(h) == explicit {
				return i, nil
			}
		}
		return 0, projection.NewInvalidInput(constraintHoldings, "columna %q no encontrada", explicit)
	}
	for i, h := range headers {
		for _, hint := range hints {
			if strings.Contains(h, hint) {
				return i, nil
			}
		}
	}
	if fallback >= len(headers) {
		return 0, projection.NewInvalidInput(constraintHoldings, "columna %d no existe", fallback)
	}
	return fallback, nil
}

func cell(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// parseAmount drops currency symbols and thousands separators other than '.'.
func parseAmount(raw string) (decimal.Decimal, error) {
	cleaned := nonNumeric.ReplaceAllString(raw, "")
	if cleaned == "" {
		return decimal.Zero, nil
	}
	v, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parse amount %q: %w", raw, err)
	}
	return v, nil
}
