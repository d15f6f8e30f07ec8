package service

import (
	"math"

	"github.com/KashAmir418/Numerio-sub000/internal/content"
	"github.com/KashAmir418/Numerio-sub000/internal/domain"
)

/*
========================
 Puntaje de pareja
========================
*/

// scoreParts conserva los sub-puntajes intermedios que consumen los
// generadores derivados. Inmutable una vez devuelto por scorePair.
type scoreParts struct {
	lifePath int
	day      int
	month    int
	matrix   int
	chaos    int
	karmic   bool
}

var karmicDebtDays = []int{13, 14, 16, 19}

func isKarmicDay(day int) bool {
	for _, d := range karmicDebtDays {
		if d == day {
			return true
		}
	}
	return false
}

// scorePair combina dos perfiles en el bloque de puntajes. Pesos fijos:
// camino de vida 0.4, día 0.3, mes 0.1, matriz 0.2; luego varianza de caos,
// bono kármico y recorte a [0,100].
func scorePair(a, b domain.NumericProfile) (domain.Scores, scoreParts) {
	parts := scoreParts{
		lifePath: lifePathScore(a.LifePath, b.LifePath),
		day:      dayScore(a.ReducedDay, b.ReducedDay),
		month:    monthScore(a.ReducedMonth, b.ReducedMonth),
		matrix:   matrixScore(a.Matrix, b.Matrix),
		chaos:    chaosVariance(a.Date, b.Date),
		karmic:   isKarmicDay(a.Date.Day) && isKarmicDay(b.Date.Day),
	}

	raw := float64(parts.lifePath)*0.4 +
		float64(parts.day)*0.3 +
		float64(parts.month)*0.1 +
		float64(parts.matrix)*0.2
	raw += float64(parts.chaos)
	if parts.karmic {
		raw += 5 // vínculo de trauma
	}

	total := clamp(int(math.Round(raw)), 0, 100)
	label, vibe := classifyLabel(total, a.LifePath, b.LifePath)

	return domain.Scores{
		Total:     total,
		Mental:    mentalScore(parts, a, b),
		Emotional: emotionalScore(parts, a, b),
		Physical:  physicalScore(parts, a, b),
		Soul:      soulScore(parts, a, b),
		Label:     label,
		Vibe:      vibe,
	}, parts
}

func lifePathScore(lpA, lpB int) int {
	if lpA == lpB {
		return 80
	}
	if content.IsFriendly(lpA, lpB) {
		return 90
	}
	return 30
}

func dayScore(rdA, rdB int) int {
	if rdA == rdB {
		return 85
	}
	if content.IsFriendly(rdA, rdB) {
		return 95
	}
	return 40
}

// monthScore usa las tríadas fijas más la regla de polaridad: opuestos
// exactos por 6 también atraen.
func monthScore(rmA, rmB int) int {
	if content.SameTriad(rmA, rmB) {
		return 90
	}
	if rmA-rmB == 6 || rmB-rmA == 6 {
		return 80
	}
	return 60
}

func matrixScore(ma, mb domain.MatrixAnchors) int {
	switch sum := ma.Center + mb.Center; {
	case ma.Center == mb.Center:
		return 100
	case sum == 22:
		return 95
	case sum == 9 || sum == 18:
		return 85
	default:
		return 60
	}
}

// chaosVariance es el desplazamiento pseudoaleatorio determinista en
// [-6,+6]. La fórmula exacta es parte del contrato: dos parejas que caen en
// la misma categoría deben poder puntuar distinto.
func chaosVariance(da, db domain.BirthDate) int {
	return ((da.Day*13+da.Month*7)+(db.Day*11+db.Month*3))%13 - 6
}

/*
========================
 Sub-puntajes de despliegue
========================
*/

func mentalScore(p scoreParts, a, b domain.NumericProfile) int {
	s := p.lifePath
	if p.month >= 90 {
		s += 10
	}
	if hasLifePath(a, b, 3, 7, 11) {
		s += 15
	}
	return clamp(s, 0, 100)
}

func emotionalScore(p scoreParts, a, b domain.NumericProfile) int {
	s := p.day
	if p.matrix >= 95 {
		s += 10
	}
	if hasLifePath(a, b, 2, 6, 9) {
		s += 10
	}
	return clamp(s, 0, 100)
}

func physicalScore(p scoreParts, a, b domain.NumericProfile) int {
	s := p.day
	if hasLifePath(a, b, 8) {
		s += 20
	}
	if a.ReducedDay == 5 || a.ReducedDay == 9 || b.ReducedDay == 5 || b.ReducedDay == 9 {
		s += 10
	}
	return clamp(s, 0, 100)
}

func soulScore(p scoreParts, a, b domain.NumericProfile) int {
	s := p.matrix
	if a.LifePath == b.LifePath {
		s += 10
	}
	if hasLifePath(a, b, 11, 22, 33) {
		s += 15
	}
	return clamp(s, 0, 100)
}

func hasLifePath(a, b domain.NumericProfile, values ...int) bool {
	for _, v := range values {
		if a.LifePath == v || b.LifePath == v {
			return true
		}
	}
	return false
}

/*
========================
 Clasificación
========================
*/

// classifyLabel aplica primero los overrides de pares específicos en la
// banda baja y luego la escalera genérica, en ese orden exacto: los rangos
// no son exhaustivos y se solapan en los bordes.
func classifyLabel(total, lpA, lpB int) (string, string) {
	if total < 70 {
		if pairIs(lpA, lpB, 4, 5) {
			return "Chaos & Order", "Volatile"
		}
		if (lpA == 1 && lpB == 1) || (lpA == 8 && lpB == 8) {
			return "Ego Collision", "Explosive"
		}
	}

	switch {
	case total >= 95:
		return "Twin Flames", "Ethereal"
	case total >= 85:
		return "Soulmate Energy", "Electric"
	case total >= 75:
		return "Power Couple", "Magnetic"
	case total >= 65:
		return "Slow Burn", "Tender"
	case total >= 55:
		return "Work In Progress", "Unsettled"
	case total >= 45:
		return "Karmic Lesson", "Turbulent"
	case total >= 31:
		return "Cosmic Friction", "Stormy"
	default:
		return "Toxic Magnetism", "Dangerous"
	}
}

func pairIs(lpA, lpB, x, y int) bool {
	return (lpA == x && lpB == y) || (lpA == y && lpB == x)
}

func clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}
