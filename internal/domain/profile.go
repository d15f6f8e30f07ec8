package domain

import "fmt"

// BirthDate es una fecha ya validada (día 1-31, mes 1-12, año 1900-2099).
// El motor trata las fechas como fuente de dígitos: 29 de febrero es válido
// en cualquier año.
type BirthDate struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`
}

// String devuelve la forma ISO YYYY-MM-DD.
func (d BirthDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// MatrixAnchors son los cinco anclajes de la matriz, cada uno en [1,22].
type MatrixAnchors struct {
	Day    int `json:"day"`
	Month  int `json:"month"`
	Year   int `json:"year"`
	Lower  int `json:"lower"`
	Center int `json:"center"`
}

// MatrixLines son las líneas derivadas de los anclajes, cada una en [1,22].
type MatrixLines struct {
	Sky    int `json:"sky"`
	Earth  int `json:"earth"`
	Male   int `json:"male"`
	Female int `json:"female"`
	Love   int `json:"love"`
	Money  int `json:"money"`
}

// Forecast agrupa los números que dependen de la fecha actual, no solo de la
// de nacimiento. Se recalculan contra un único "now" capturado por petición.
type Forecast struct {
	PersonalYear  int `json:"personal_year"`
	PersonalMonth int `json:"personal_month"`
	PersonalDay   int `json:"personal_day"`
	UniversalDay  int `json:"universal_day"`
}

// NumericProfile es el perfil numérico completo de una persona. Inmutable
// una vez calculado.
type NumericProfile struct {
	Date         BirthDate     `json:"date"`
	LifePath     int           `json:"life_path"`
	ReducedDay   int           `json:"reduced_day"`
	ReducedMonth int           `json:"reduced_month"`
	ReducedYear  int           `json:"reduced_year"`
	Attitude     int           `json:"attitude"`
	Matrix       MatrixAnchors `json:"matrix"`
	Lines        MatrixLines   `json:"lines"`
	Challenges   [3]int        `json:"challenges"`
	Pinnacles    [4]int        `json:"pinnacles"`
	PinnacleAges [3]int        `json:"pinnacle_ages"`
	Forecast     Forecast      `json:"forecast"`
}
