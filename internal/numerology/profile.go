package numerology

import (
	"time"

	"github.com/KashAmir418/Numerio-sub000/internal/domain"
)

/*
========================
 Perfil numérico
========================
*/

// ComputeProfile deriva el perfil completo de una fecha de nacimiento.
// "now" se pasa explícito para que los números de pronóstico sean fijables
// en tests; se captura una sola vez por petición para no cruzar medianoche
// a mitad de cálculo.
func ComputeProfile(d domain.BirthDate, now time.Time) domain.NumericProfile {
	rd := Reduce(d.Day, true)
	rm := Reduce(d.Month, true)
	ry := Reduce(d.Year, true)

	matrix := computeMatrix(d)

	p := domain.NumericProfile{
		Date:         d,
		LifePath:     lifePath(d),
		ReducedDay:   rd,
		ReducedMonth: rm,
		ReducedYear:  ry,
		Attitude:     Reduce(rd+rm, true),
		Matrix:       matrix,
		Lines:        computeLines(matrix),
		Challenges:   computeChallenges(rd, rm, ry),
		Forecast:     computeForecast(d, now),
	}
	p.Pinnacles, p.PinnacleAges = computePinnacles(p.LifePath, rd, rm, ry)
	return p
}

// lifePath reduce la suma de todos los dígitos de la fecha, preservando
// maestros. Equivale a sumar los dígitos de la cadena DDMMYYYY.
func lifePath(d domain.BirthDate) int {
	sum := SumDigits(d.Day) + SumDigits(d.Month) + SumDigits(d.Year)
	return Reduce(sum, true)
}

// computeMatrix construye los cinco anclajes interconectados, todos en
// [1,22] por el reductor de matriz.
func computeMatrix(d domain.BirthDate) domain.MatrixAnchors {
	day := ReduceToMatrixRange(d.Day)
	month := ReduceToMatrixRange(d.Month)
	year := ReduceToMatrixRange(SumDigits(d.Year))
	lower := ReduceToMatrixRange(day + month + year)
	center := ReduceToMatrixRange(day + month + year + lower)
	return domain.MatrixAnchors{
		Day:    day,
		Month:  month,
		Year:   year,
		Lower:  lower,
		Center: center,
	}
}

// computeLines deriva las seis líneas extra a partir de los anclajes.
func computeLines(m domain.MatrixAnchors) domain.MatrixLines {
	sky := ReduceToMatrixRange(m.Day + m.Year)
	earth := ReduceToMatrixRange(m.Month + m.Lower)
	male := ReduceToMatrixRange(m.Day + m.Month)
	female := ReduceToMatrixRange(m.Year + m.Lower)
	return domain.MatrixLines{
		Sky:    sky,
		Earth:  earth,
		Male:   male,
		Female: female,
		Love:   ReduceToMatrixRange(m.Center + female),
		Money:  ReduceToMatrixRange(m.Center + earth),
	}
}

// computeChallenges usa diferencias absolutas del triplete reducido. Aquí
// no hay maestros: un desafío siempre es un dígito simple.
func computeChallenges(rd, rm, ry int) [3]int {
	c1 := Reduce(absInt(rd-rm), false)
	c2 := Reduce(absInt(rd-ry), false)
	c3 := Reduce(absInt(c1-c2), false)
	return [3]int{c1, c2, c3}
}

// computePinnacles arma los cuatro pináculos y sus tres edades de corte.
// La primera edad sale del camino de vida (maestros plegados solo para la
// edad) y las siguientes avanzan en bandas fijas de 9 años.
func computePinnacles(lp, rd, rm, ry int) ([4]int, [3]int) {
	p1 := Reduce(rd+rm, true)
	p2 := Reduce(rd+ry, true)
	p3 := Reduce(p1+p2, true)
	p4 := Reduce(rm+ry, true)

	base := lp
	if base > 9 {
		base = SumDigits(base)
	}
	first := 36 - base
	return [4]int{p1, p2, p3, p4}, [3]int{first, first + 9, first + 18}
}

// computeForecast calcula año/mes/día personal contra la fecha actual y el
// día universal que comparten todas las personas.
func computeForecast(d domain.BirthDate, now time.Time) domain.Forecast {
	cy, cm, cd := now.Year(), int(now.Month()), now.Day()

	personalYear := Reduce(Reduce(d.Month, true)+Reduce(d.Day, true)+Reduce(cy, true), true)
	personalMonth := Reduce(personalYear+cm, true)
	personalDay := Reduce(personalMonth+cd, true)
	universalDay := Reduce(SumDigits(cd)+SumDigits(cm)+SumDigits(cy), true)

	return domain.Forecast{
		PersonalYear:  personalYear,
		PersonalMonth: personalMonth,
		PersonalDay:   personalDay,
		UniversalDay:  universalDay,
	}
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
