package services

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestValidateClientName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid", "João Silva", false},
		{"padded", "  Ana  ", false},
		{"empty", "", true},
		{"only spaces", "   ", true},
		{"only tabs and newlines", "\t\n", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateClientName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateClientName(%q) error = %v, wantErr = %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateItem(t *testing.T) {
	tests := []struct {
		name    string
		desc    string
		price   string
		qty     int
		wantErr bool
	}{
		{"valid", "Instalação", "100", 1, false},
		{"fractional price", "Parafuso", "0.05", 100, false},
		{"blank description", " ", "10", 1, true},
		{"zero price", "A", "0", 1, true},
		{"negative price", "A", "-5", 1, true},
		{"zero quantity", "A", "10", 0, true},
		{"negative quantity", "A", "10", -2, true},
		{"largest storable quantity", "A", "10", MaxQuantity, false},
		{"quantity beyond int32", "A", "10", MaxQuantity + 1, true},
		{"quantity that wraps to 1 in int32", "A", "10", 1<<32 + 1, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateItem(tt.desc, decimal.RequireFromString(tt.price), tt.qty)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateItem error = %v, wantErr = %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateItemCount(t *testing.T) {
	tests := []struct {
		name    string
		n       int
		wantErr bool
	}{
		{"none", 0, false},
		{"at the limit", MaxItems, false},
		{"over the limit", MaxItems + 1, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := ValidateItemCount(tt.n); (err != nil) != tt.wantErr {
				t.Fatalf("ValidateItemCount(%d) error = %v, wantErr = %v", tt.n, err, tt.wantErr)
			}
		})
	}
}
