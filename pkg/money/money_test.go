package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateFees(t *testing.T) {
	tests := []struct {
		name    string
		amount  int64
		rateBps int64
		fee     int64
		net     int64
	}{
		{"ten percent of 5000.00", 500_000, 1000, 50_000, 450_000},
		{"truncates toward zero", 1001, 1000, 100, 901},
		{"tiny amount rounds fee to zero", 9, 1000, 0, 9},
		{"zero rate", 500_000, 0, 0, 500_000},
		{"zero amount", 0, 1000, 0, 0},
		{"fifteen percent", 200_000, 1500, 30_000, 170_000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateFees(tt.amount, tt.rateBps)
			assert.Equal(t, tt.fee, got.PlatformFeeCents)
			assert.Equal(t, tt.net, got.NetAmountCents)
			assert.Equal(t, tt.amount, got.PlatformFeeCents+got.NetAmountCents)
		})
	}
}

func TestParseAmount(t *testing.T) {
	cents, err := ParseAmount("5000.00")
	require.NoError(t, err)
	assert.Equal(t, int64(500_000), cents)

	cents, err = ParseAmount("0.01")
	require.NoError(t, err)
	assert.Equal(t, int64(1), cents)

	cents, err = ParseAmount("12")
	require.NoError(t, err)
	assert.Equal(t, int64(1_200), cents)

	for _, bad := range []string{"abc", "-5.00", "1.005", ""} {
		_, err := ParseAmount(bad)
		assert.ErrorIs(t, err, ErrBadAmount, "input %q", bad)
	}
}

func TestToCentsRejectsSubCent(t *testing.T) {
	_, err := ToCents(decimal.RequireFromString("0.001"))
	assert.ErrorIs(t, err, ErrBadAmount)
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "5000.00", Format(500_000))
	assert.Equal(t, "0.01", Format(1))
	assert.Equal(t, "0.00", Format(0))
	assert.Equal(t, "-12.34", Format(-1234))
}
