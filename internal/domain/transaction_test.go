package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTransaction_Validate(t *testing.T) {
	tests := []struct {
		name    string
		tx      Transaction
		wantErr bool
		errMsg  string
	}{
		{
			name: "Valid retail transaction should pass",
			tx: Transaction{
				ID:           "txn-1",
				Date:         time.Now(),
				Amount:       decimal.NewFromInt(100),
				StateCode:    "TX",
				CustomerType: CustomerRetail,
				PricingModel: PricingTaxExclusive,
			},
			wantErr: false,
		},
		{
			name: "Zero amount should pass",
			tx: Transaction{
				ID:           "txn-2",
				Amount:       decimal.Zero,
				StateCode:    "CA",
				CustomerType: CustomerRetail,
				PricingModel: PricingTaxExclusive,
			},
			wantErr: false,
		},
		{
			name: "Missing ID should fail",
			tx: Transaction{
				Amount:       decimal.NewFromInt(100),
				StateCode:    "TX",
				CustomerType: CustomerRetail,
				PricingModel: PricingTaxExclusive,
			},
			wantErr: true,
			errMsg:  "transaction ID cannot be empty",
		},
		{
			name: "Missing state code should fail",
			tx: Transaction{
				ID:           "txn-3",
				Amount:       decimal.NewFromInt(100),
				CustomerType: CustomerRetail,
				PricingModel: PricingTaxExclusive,
			},
			wantErr: true,
			errMsg:  "transaction state code cannot be empty",
		},
		{
			name: "Negative amount should fail",
			tx: Transaction{
				ID:           "txn-4",
				Amount:       decimal.NewFromInt(-50),
				StateCode:    "TX",
				CustomerType: CustomerRetail,
				PricingModel: PricingTaxExclusive,
			},
			wantErr: true,
			errMsg:  "transaction amount cannot be negative",
		},
		{
			name: "Invalid customer type should fail",
			tx: Transaction{
				ID:           "txn-5",
				Amount:       decimal.NewFromInt(100),
				StateCode:    "TX",
				CustomerType: CustomerType("vip"),
				PricingModel: PricingTaxExclusive,
			},
			wantErr: true,
			errMsg:  "customer type must be retail, wholesale, or exempt",
		},
		{
			name: "Invalid pricing model should fail",
			tx: Transaction{
				ID:           "txn-6",
				Amount:       decimal.NewFromInt(100),
				StateCode:    "TX",
				CustomerType: CustomerRetail,
				PricingModel: PricingModel("bundled"),
			},
			wantErr: true,
			errMsg:  "pricing model must be exclusive or inclusive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.tx.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				if tt.errMsg != "" {
					assert.Contains(t, err.Error(), tt.errMsg)
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
