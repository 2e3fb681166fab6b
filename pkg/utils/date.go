package utils

import "time"

// ExpandShortYear expande um ano de dois dígitos para o ano completo.
// Política fixa do bot: "25" vira 2025. Ponto único de troca caso o
// século assumido precise mudar um dia.
func ExpandShortYear(yy int) int {
	return 2000 + yy
}

// StartOfMonth retorna o dia 01 do mês informado, em UTC.
func StartOfMonth(year int, month time.Month) time.Time {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
}

// EndOfMonth retorna o último dia do mês informado, em UTC.
// O dia zero do mês seguinte normaliza para o último dia do mês corrente.
func EndOfMonth(year int, month time.Month) time.Time {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC)
}
