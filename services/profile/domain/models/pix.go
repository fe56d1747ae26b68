package models

import (
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// PixType classifies a PIX key. The zero value is an unrecognised key.
type PixType string

const (
	PixTypeUnknown PixType = ""
	PixTypeCPF     PixType = "cpf"
	PixTypeCNPJ    PixType = "cnpj"
	PixTypeEmail   PixType = "email"
	PixTypePhone   PixType = "phone"
	PixTypeRandom  PixType = "random"
)

// Label returns the pt-BR name shown next to the key.
func (t PixType) Label() string {
	switch t {
	case PixTypeCPF:
		return "CPF"
	case PixTypeCNPJ:
		return "CNPJ"
	case PixTypeEmail:
		return "E-mail"
	case PixTypePhone:
		return "Celular"
	case PixTypeRandom:
		return "Chave Aleatória"
	default:
		return "Chave Pix"
	}
}

// DetectPixType guesses the key type from its shape. Only the digits of key
// are considered for the numeric types, so formatted and raw keys agree.
func DetectPixType(key string) PixType {
	key = strings.TrimSpace(key)
	if strings.Contains(key, "@") {
		return PixTypeEmail
	}
	if _, err := uuid.Parse(key); err == nil && len(key) == 36 {
		return PixTypeRandom
	}

	digits := onlyDigits(key)
	switch {
	case len(digits) > 11:
		return PixTypeCNPJ
	case len(digits) == 11:
		if looksLikeMobile(digits) {
			return PixTypePhone
		}
		return PixTypeCPF
	default:
		return PixTypeUnknown
	}
}

// FormatPixKey applies the display mask for the key's apparent type while it
// is being typed: CNPJ 00.000.000/0000-00, mobile (00) 00000-0000 and
// CPF 000.000.000-00. E-mail keys are returned unchanged.
func FormatPixKey(key string) string {
	if strings.Contains(key, "@") {
		return key
	}

	digits := onlyDigits(key)
	switch {
	case len(digits) > 11:
		return truncate(mask(digits, map[int]string{2: ".", 5: ".", 8: "/", 12: "-"}), 18)
	case looksLikeMobile(digits):
		rest := digits[2:]
		if len(rest) > 5 {
			rest = rest[:5] + "-" + rest[5:]
		}
		return truncate("("+digits[:2]+") "+rest, 15)
	default:
		return truncate(mask(digits, map[int]string{3: ".", 6: ".", 9: "-"}), 14)
	}
}

// looksLikeMobile reports a valid area code (11 or above) followed by a 9.
func looksLikeMobile(digits string) bool {
	if len(digits) < 3 {
		return false
	}
	ddd, err := strconv.Atoi(digits[:2])
	return err == nil && ddd >= 11 && digits[2] == '9'
}

// mask inserts seps[i] before the digit at index i.
func mask(digits string, seps map[int]string) string {
	var b strings.Builder
	for i, r := range digits {
		if sep, ok := seps[i]; ok {
			b.WriteString(sep)
		}
		b.WriteRune(r)
	}
	return b.String()
}

func onlyDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func truncate(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}
