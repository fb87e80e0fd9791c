package core_test

import (
	"encoding/json"
	"testing"

	"supplychain-console/internal/core"
)

func TestQuantity_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantValue int
		wantRaw   string
	}{
		{"plain number", `42`, 42, ""},
		{"negative number", `-3`, -3, ""},
		{"quoted number", `"17"`, 17, ""},
		{"quoted with spaces", `" 8 "`, 8, ""},
		{"float truncated", `12.9`, 12, ""},
		{"quoted float", `"12.9"`, 12, ""},
		{"null", `null`, 0, ""},
		{"garbage string", `"lots"`, 0, "lots"},
		{"empty string", `""`, 0, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var q core.Quantity
			if err := json.Unmarshal([]byte(tt.input), &q); err != nil {
				t.Fatalf("Unmarshal(%s) returned error: %v", tt.input, err)
			}
			if q.Value != tt.wantValue {
				t.Errorf("Value = %d, want %d", q.Value, tt.wantValue)
			}
			if q.Raw != tt.wantRaw {
				t.Errorf("Raw = %q, want %q", q.Raw, tt.wantRaw)
			}
		})
	}
}

func TestQuantity_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(core.Quantity{Value: 7, Raw: "seven"})
	if err != nil {
		t.Fatalf("Marshal returned error: %v", err)
	}
	if string(b) != "7" {
		t.Errorf("Marshal = %s, want 7", b)
	}
}
