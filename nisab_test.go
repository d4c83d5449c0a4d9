package zakat

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNisabThreshold(t *testing.T) {
	prices := MetalPrices{Gold: d("62.5"), Silver: d("0.78")}

	tests := []struct {
		name  string
		metal Metal
		want  string
	}{
		{"silver", Silver, "477.6408"},
		{"gold", Gold, "5467.5"},
		{"zero value is silver", Metal(0), "477.6408"},
		{"unknown metal falls back to silver", Metal(7), "477.6408"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertDecimal(t, tt.want, NisabThreshold(prices, tt.metal))
		})
	}
}

func TestNisabThreshold_ScalesWithPrice(t *testing.T) {
	for _, price := range []string{"0", "1", "0.5", "1234.5678"} {
		prices := MetalPrices{Gold: d(price), Silver: d(price)}
		assertDecimal(t, GoldNisabGrams().Mul(d(price)).String(), NisabThreshold(prices, Gold))
		assertDecimal(t, SilverNisabGrams().Mul(d(price)).String(), NisabThreshold(prices, Silver))
	}
	assertDecimal(t, "87.48", GoldNisabGrams())
	assertDecimal(t, "612.36", SilverNisabGrams())
}

func TestNewMetalPrices(t *testing.T) {
	prices, err := NewMetalPrices("62.50", "0.78")
	require.NoError(t, err)
	assertDecimal(t, "62.5", prices.Gold)
	assertDecimal(t, "0.78", prices.Silver)

	_, err = NewMetalPrices("x", "0.78")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gold price")

	_, err = NewMetalPrices("62.5", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "silver price")
}

func TestDefaultMetalPrices(t *testing.T) {
	prices := DefaultMetalPrices()
	assertDecimal(t, "62.5", prices.Gold)
	assertDecimal(t, "0.78", prices.Silver)
}

func TestParseMetal(t *testing.T) {
	tests := []struct {
		input   string
		want    Metal
		wantErr bool
	}{
		{"silver", Silver, false},
		{"Gold", Gold, false},
		{" GOLD ", Gold, false},
		{"", Silver, false},
		{"platinum", Silver, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseMetal(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				var parseErr *ParseError
				require.True(t, errors.As(err, &parseErr))
				assert.Equal(t, "Metal", parseErr.Type)
				assert.False(t, errors.Is(err, ErrInvalidArgument))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMetal_Text(t *testing.T) {
	assert.Equal(t, "silver", Silver.String())
	assert.Equal(t, "gold", Gold.String())
	assert.Equal(t, "unknown", Metal(9).String())

	text, err := Gold.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "gold", string(text))

	_, err = Metal(9).MarshalText()
	require.Error(t, err)

	var m Metal
	require.NoError(t, m.UnmarshalText([]byte("gold")))
	assert.Equal(t, Gold, m)
	require.Error(t, m.UnmarshalText([]byte("bronze")))
}
