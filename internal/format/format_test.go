package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMoney(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		want   string
	}{
		{"whole", 45750, "$45,750.00"},
		{"cents", 1234.5, "$1,234.50"},
		{"rounds to cent", 0.005, "$0.01"},
		{"negative", -2500, "-$2,500.00"},
		{"zero", 0, "$0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Money(tt.amount))
		})
	}
}

func TestSignedMoney(t *testing.T) {
	assert.Equal(t, "+$3,750.00", SignedMoney(3750))
	assert.Equal(t, "-$120.00", SignedMoney(-120))
	assert.Equal(t, "$0.00", SignedMoney(0))
}

func TestPercent(t *testing.T) {
	assert.Equal(t, "8.9%", Percent(8.928571))
	assert.Equal(t, "+8.9%", SignedPercent(8.928571))
	assert.Equal(t, "-4.0%", SignedPercent(-4))
	assert.Equal(t, "120.0%", Percent(120))
}

func TestBTC(t *testing.T) {
	assert.Equal(t, "0.7521 BTC", BTC(0.75214))
}
