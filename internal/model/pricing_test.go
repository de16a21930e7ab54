package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeTotals(t *testing.T) {
	tests := []struct {
		name         string
		items        []OrderItemRequest
		wantSubtotal int
		wantShipping int
		wantTotal    int
	}{
		{
			name:         "empty order",
			items:        nil,
			wantSubtotal: 0,
			wantShipping: FlatShippingFee,
			wantTotal:    FlatShippingFee,
		},
		{
			name: "below free shipping threshold",
			items: []OrderItemRequest{
				{ProductID: "A", Price: 500, Quantity: 2},
			},
			wantSubtotal: 1000,
			wantShipping: 100,
			wantTotal:    1100,
		},
		{
			name: "exactly at threshold still pays shipping",
			items: []OrderItemRequest{
				{ProductID: "A", Price: 1999, Quantity: 1},
			},
			wantSubtotal: 1999,
			wantShipping: 100,
			wantTotal:    2099,
		},
		{
			name: "one rupee over threshold ships free",
			items: []OrderItemRequest{
				{ProductID: "A", Price: 2000, Quantity: 1},
			},
			wantSubtotal: 2000,
			wantShipping: 0,
			wantTotal:    2000,
		},
		{
			name: "multiple lines sum before the threshold check",
			items: []OrderItemRequest{
				{ProductID: "A", Price: 1200, Quantity: 2},
				{ProductID: "B", Price: 450, Quantity: 1},
			},
			wantSubtotal: 2850,
			wantShipping: 0,
			wantTotal:    2850,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			totals := ComputeTotals(tt.items)
			assert.Equal(t, tt.wantSubtotal, totals.Subtotal)
			assert.Equal(t, 0, totals.Discount)
			assert.Equal(t, tt.wantShipping, totals.Shipping)
			assert.Equal(t, tt.wantTotal, totals.Total)
			assert.Equal(t, totals.Subtotal-totals.Discount+totals.Shipping, totals.Total)
		})
	}
}
