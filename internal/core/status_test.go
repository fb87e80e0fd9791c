package core_test

import (
	"testing"

	"supplychain-console/internal/core"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		qty  int
		want core.Status
	}{
		{"negative drift", -5, core.OutOfStock},
		{"exactly zero", 0, core.OutOfStock},
		{"one unit", 1, core.LowStock},
		{"just below ceiling", 9, core.LowStock},
		{"exactly at ceiling", 10, core.InStock},
		{"well stocked", 1000, core.InStock},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := core.Classify(tt.qty); got != tt.want {
				t.Errorf("Classify(%d) = %s, want %s", tt.qty, got, tt.want)
			}
		})
	}
}

func TestValidStatusFilter(t *testing.T) {
	valid := []string{"", "All", "IN_STOCK", "LOW_STOCK", "OUT_OF_STOCK"}
	for _, s := range valid {
		if !core.ValidStatusFilter(s) {
			t.Errorf("ValidStatusFilter(%q) = false, want true", s)
		}
	}
	invalid := []string{"all", "in_stock", "INSTOCK", "LOW", "everything"}
	for _, s := range invalid {
		if core.ValidStatusFilter(s) {
			t.Errorf("ValidStatusFilter(%q) = true, want false", s)
		}
	}
}
