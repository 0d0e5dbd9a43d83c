package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestLot_Validate(t *testing.T) {
	tests := []struct {
		name    string
		lot     Lot
		wantErr bool
		errMsg  string
	}{
		{
			name: "completed DCA lot",
			lot: Lot{
				ID: uuid.New(), Date: time.Now(), Kind: LotKindDCA,
				Amount: 2500, Quantity: 0.0372, Price: 67200, Fee: 12.5,
				Status: LotStatusCompleted,
			},
		},
		{
			name: "scheduled lot has no fill yet",
			lot: Lot{
				ID: uuid.New(), Date: time.Now(), Kind: LotKindDCA,
				Amount: 2500, Status: LotStatusScheduled,
			},
		},
		{
			name: "completed lot without price",
			lot: Lot{
				ID: uuid.New(), Kind: LotKindOneTime, Amount: 5000, Quantity: 0.0789,
				Status: LotStatusCompleted,
			},
			wantErr: true,
			errMsg:  "completed lot needs quantity and price",
		},
		{
			name:    "zero amount",
			lot:     Lot{ID: uuid.New(), Kind: LotKindDCA, Status: LotStatusPending},
			wantErr: true,
			errMsg:  "lot amount must be positive",
		},
		{
			name:    "negative fee",
			lot:     Lot{ID: uuid.New(), Kind: LotKindDCA, Amount: 10, Fee: -1, Status: LotStatusPending},
			wantErr: true,
			errMsg:  "lot fee cannot be negative",
		},
		{
			name:    "unknown status",
			lot:     Lot{ID: uuid.New(), Kind: LotKindDCA, Amount: 10, Status: "lost"},
			wantErr: true,
			errMsg:  "unknown lot status",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.lot.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidInput)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
