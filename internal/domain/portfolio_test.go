package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func month(y int, m time.Month) time.Time {
	return time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)
}

func TestValidateSeries(t *testing.T) {
	tests := []struct {
		name    string
		series  []PortfolioPoint
		wantErr bool
		errMsg  string
	}{
		{
			name:    "empty series",
			series:  nil,
			wantErr: true,
			errMsg:  "at least one point",
		},
		{
			name:   "single point",
			series: []PortfolioPoint{{Period: month(2024, 1), Invested: 5000, Value: 6200}},
		},
		{
			name: "value may fall while invested grows",
			series: []PortfolioPoint{
				{Period: month(2024, 1), Invested: 5000, Value: 6200},
				{Period: month(2024, 2), Invested: 10000, Value: 9000},
				{Period: month(2024, 3), Invested: 10000, Value: -10},
			},
		},
		{
			name: "duplicate month",
			series: []PortfolioPoint{
				{Period: month(2024, 1), Invested: 5000, Value: 6200},
				{Period: month(2024, 1).Add(48 * time.Hour), Invested: 6000, Value: 6200},
			},
			wantErr: true,
			errMsg:  "does not follow",
		},
		{
			name: "out of order",
			series: []PortfolioPoint{
				{Period: month(2024, 3), Invested: 5000, Value: 6200},
				{Period: month(2024, 2), Invested: 6000, Value: 6200},
			},
			wantErr: true,
			errMsg:  "does not follow",
		},
		{
			name: "invested decreases",
			series: []PortfolioPoint{
				{Period: month(2024, 1), Invested: 5000, Value: 6200},
				{Period: month(2024, 2), Invested: 4000, Value: 6200},
			},
			wantErr: true,
			errMsg:  "invested decreases at Feb 2024",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSeries(tt.series)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidInput)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestWindow_Months(t *testing.T) {
	assert.Equal(t, 3, Window3M.Months())
	assert.Equal(t, 6, Window6M.Months())
	assert.Equal(t, 12, Window1Y.Months())
	assert.Equal(t, 0, WindowAll.Months())
	assert.Equal(t, 0, Window("5Y").Months())
}

func TestPortfolioPoint_Label(t *testing.T) {
	p := PortfolioPoint{Period: month(2024, 11)}
	assert.Equal(t, "Nov 2024", p.Label())
}
