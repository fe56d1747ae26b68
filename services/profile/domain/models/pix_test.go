package models

import "testing"

func TestDetectPixType(t *testing.T) {
	tests := []struct {
		key   string
		want  PixType
		label string
	}{
		{"joao@example.com", PixTypeEmail, "E-mail"},
		{"11.222.333/0001-81", PixTypeCNPJ, "CNPJ"},
		{"11222333000181", PixTypeCNPJ, "CNPJ"},
		{"(11) 98765-4321", PixTypePhone, "Celular"},
		{"21987654321", PixTypePhone, "Celular"},
		{"123.456.789-01", PixTypeCPF, "CPF"},
		{"10987654321", PixTypeCPF, "CPF"},
		{"11887654321", PixTypeCPF, "CPF"},
		{"123e4567-e89b-12d3-a456-426614174000", PixTypeRandom, "Chave Aleatória"},
		{"12345", PixTypeUnknown, "Chave Pix"},
		{"", PixTypeUnknown, "Chave Pix"},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got := DetectPixType(tt.key)
			if got != tt.want {
				t.Fatalf("DetectPixType(%q) = %q, want %q", tt.key, got, tt.want)
			}
			if got.Label() != tt.label {
				t.Fatalf("label: got %q, want %q", got.Label(), tt.label)
			}
		})
	}
}

func TestFormatPixKey(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"joao@example.com", "joao@example.com"},
		{"11222333000181", "11.222.333/0001-81"},
		{"112223330001819999", "11.222.333/0001-81"},
		{"1122233300", "112.223.330-0"},
		{"11987654321", "(11) 98765-4321"},
		{"119876", "(11) 9876"},
		{"119", "(11) 9"},
		{"12345678901", "123.456.789-01"},
		{"1234567", "123.456.7"},
		{"123", "123"},
		{"", ""},
		{"abc", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := FormatPixKey(tt.in); got != tt.want {
				t.Fatalf("FormatPixKey(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
