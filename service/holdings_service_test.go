package service

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"wealth-objective/projection"
)

func TestImport_DetectsColumns(t *testing.T) {
	csv := "Type,Asset Name,Current Value\n" +
		"stock,Index Fund,\"€12,500.50\"\n" +
		"cash,Savings,3000\n" +
		"debt,Mortgage,-1500.25\n"

	service := NewHoldingsService(zap.NewNop())
	res, err := service.Import(strings.NewReader(csv), HoldingsOptions{})
	require.NoError(t, err)

	assert.Equal(t, "Asset Name", res.AssetColumn)
	assert.Equal(t, "Current Value", res.ValueColumn)
	require.Len(t, res.Holdings, 3)
	assert.Equal(t, "Index Fund", res.Holdings[0].Asset)
	assert.Equal(t, "12500.5", res.Holdings[0].Value.String())
	assert.Equal(t, "14000.25", res.Total.StringFixed(2))
}

func TestImport_FallbackColumns(t *testing.T) {
	csv := "Cuenta,Importe\nBroker,100\nBanco,50\n"

	res, err := NewHoldingsService(zap.NewNop()).Import(strings.NewReader(csv), HoldingsOptions{})
	require.NoError(t, err)
	assert.Equal(t, "Cuenta", res.AssetColumn)
	assert.Equal(t, "Importe", res.ValueColumn)
	assert.Equal(t, "150", res.Total.String())
}

func TestImport_ExplicitColumns(t *testing.T) {
	csv := "Name,Value,Balance\nA,1,10\nB,2,20\n"

	res, err := NewHoldingsService(zap.NewNop()).Import(strings.NewReader(csv), HoldingsOptions{ValueColumn: "Balance"})
	require.NoError(t, err)
	assert.Equal(t, "30", res.Total.String())
}

func TestImport_EmptyCellsCountAsZero(t *testing.T) {
	csv := "Name,Value\nA,\nB,n/a\nC,5\n"

	res, err := NewHoldingsService(zap.NewNop()).Import(strings.NewReader(csv), HoldingsOptions{})
	require.NoError(t, err)
	assert.Len(t, res.Holdings, 3)
	assert.Equal(t, "5", res.Total.String())
}

func TestImport_Errors(t *testing.T) {
	tests := []struct {
		name string
		csv  string
		opts HoldingsOptions
	}{
		{"empty", "", HoldingsOptions{}},
		{"single column", "Value\n1\n", HoldingsOptions{}},
		{"unknown column", "Name,Value\nA,1\n", HoldingsOptions{ValueColumn: "Total"}},
		{"garbage value", "Name,Value\nA,1.2.3\n", HoldingsOptions{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewHoldingsService(zap.NewNop()).Import(strings.NewReader(tt.csv), tt.opts)
			require.Error(t, err)
			assert.True(t, errors.Is(err, projection.ErrInvalidInput), "got %v", err)
		})
	}
}
