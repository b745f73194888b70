package domain

import (
	"fmt"
	"time"
)

// ComparisonPeriod é o período imediatamente anterior ao período principal,
// com a mesma quantidade de dias e sem sobreposição
type ComparisonPeriod struct {
	StartDate time.Time
	EndDate   time.Time
}

// ResolveComparisonPeriod calcula o período de comparação para um período principal.
// O período retornado termina exatamente um dia antes de primaryStart e tem o mesmo
// número de dias (contagem inclusiva) do período principal. Aritmética puramente de
// calendário, correta em viradas de mês e de ano.
func ResolveComparisonPeriod(primaryStart, primaryEnd time.Time) (ComparisonPeriod, error) {
	if primaryStart.After(primaryEnd) {
		return ComparisonPeriod{}, fmt.Errorf(
			"período principal inválido: início %s posterior ao fim %s",
			primaryStart.Format(time.DateOnly),
			primaryEnd.Format(time.DateOnly),
		)
	}

	lengthDays := int(primaryEnd.Sub(primaryStart).Hours() / 24)

	end := primaryStart.AddDate(0, 0, -1)
	start := end.AddDate(0, 0, -lengthDays)

	return ComparisonPeriod{StartDate: start, EndDate: end}, nil
}
