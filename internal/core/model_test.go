package core_test

import (
	"testing"

	"supplychain-console/internal/core"
)

func TestShipmentStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from, to core.ShipmentStatus
		want     bool
	}{
		{core.ShipmentPending, core.ShipmentInTransit, true},
		{core.ShipmentPending, core.ShipmentCancelled, true},
		{core.ShipmentPending, core.ShipmentDelivered, false},
		{core.ShipmentInTransit, core.ShipmentDelivered, true},
		{core.ShipmentInTransit, core.ShipmentCancelled, true},
		{core.ShipmentInTransit, core.ShipmentPending, false},
		{core.ShipmentDelivered, core.ShipmentCancelled, false},
		{core.ShipmentCancelled, core.ShipmentInTransit, false},
	}
	for _, tt := range tests {
		if got := tt.from.CanTransitionTo(tt.to); got != tt.want {
			t.Errorf("%s → %s = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestValidShipmentStatusFilter(t *testing.T) {
	for _, s := range []string{"", "All", "PENDING", "IN_TRANSIT", "DELIVERED", "CANCELLED"} {
		if !core.ValidShipmentStatusFilter(s) {
			t.Errorf("ValidShipmentStatusFilter(%q) = false, want true", s)
		}
	}
	for _, s := range []string{"pending", "LOW_STOCK", "SHIPPED", "all "} {
		if core.ValidShipmentStatusFilter(s) {
			t.Errorf("ValidShipmentStatusFilter(%q) = true, want false", s)
		}
	}
}
