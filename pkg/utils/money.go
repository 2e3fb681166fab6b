package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatAmount formata um total monetário com separador de milhar,
// sem casas decimais forçadas. Zero é renderizado como "0", nunca vazio.
func FormatAmount(d decimal.Decimal) string {
	s := d.String()

	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	intPart := s
	fracPart := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, fracPart = s[:i], s[i:]
	}

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}

	lead := len(intPart) % 3
	if lead > 0 {
		b.WriteString(intPart[:lead])
		if len(intPart) > lead {
			b.WriteByte(',')
		}
	}
	for i := lead; i < len(intPart); i += 3 {
		b.WriteString(intPart[i : i+3])
		if i+3 < len(intPart) {
			b.WriteByte(',')
		}
	}

	b.WriteString(fracPart)
	return b.String()
}
