package service

import "github.com/KashAmir418/Numerio-sub000/internal/domain"

/*
========================
 Desglose viral
========================
*/

var lustDays = []int{5, 6, 8, 9, 11}

func dayIn(set []int, days ...int) bool {
	for _, d := range days {
		for _, s := range set {
			if d == s {
				return true
			}
		}
	}
	return false
}

// computeViral arma los tres porcentajes compartibles como listas de reglas
// aditivas, cada uno con su propio recorte, y elige la frase con un árbol
// de decisión donde gana la primera rama que aplique. Las constantes son
// sabor afinado a mano: no buscarles teoría.
func computeViral(a, b domain.NumericProfile, parts scoreParts) domain.ViralBreakdown {
	lust := 40
	if dayIn(lustDays, a.ReducedDay, b.ReducedDay) {
		lust += 20
	}
	if pairIs(a.LifePath, b.LifePath, 6, 9) {
		lust += 40
	}
	if parts.day >= 85 {
		lust += 10
	}
	if hasLifePath(a, b, 5) {
		lust += 10
	}
	lust = clamp(lust, 10, 99)

	logic := 35
	if hasLifePath(a, b, 1, 7, 8) {
		logic += 25
	}
	if parts.month >= 90 {
		logic += 15
	}
	if a.Attitude == b.Attitude {
		logic += 10
	}
	if hasLifePath(a, b, 4, 22) {
		logic += 10
	}
	logic = clamp(logic, 5, 99)

	toxic := 20
	if parts.lifePath == 30 {
		toxic += 25
	}
	if parts.karmic {
		toxic += 15
	}
	if pairIs(a.LifePath, b.LifePath, 1, 8) || pairIs(a.LifePath, b.LifePath, 4, 5) {
		toxic += 20
	}
	if parts.chaos < 0 {
		toxic += 10
	}
	if parts.day == 40 {
		toxic += 10
	}
	toxic = clamp(toxic, 5, 99)

	return domain.ViralBreakdown{
		Lust:    lust,
		Logic:   logic,
		Toxic:   toxic,
		Insight: viralInsight(lust, logic, toxic),
	}
}

// viralInsight: ramas mutuamente excluyentes por construcción de los
// umbrales, evaluadas en orden de fuente.
func viralInsight(lust, logic, toxic int) string {
	switch {
	case toxic >= 70:
		return "This is the pairing group chats were invented to discuss."
	case lust >= 80 && logic < 40:
		return "The chemistry is writing checks the communication can't cash."
	case logic >= 75 && lust < 40:
		return "Reads like a board meeting that occasionally holds hands."
	case lust >= 70 && logic >= 60:
		return "Dangerously functional: attraction with a project plan."
	default:
		return "A slow-reveal pairing; the stats warm up after the third act."
	}
}
