// Package content es la base de contenido estática del motor: tablas de
// afinidad, narrativas por par de caminos de vida, perfiles de pelea y
// arreglos de relleno. El núcleo la trata como configuración de solo
// lectura y no valida su completitud.
package content

// Friendly es la tabla de afinidad entre caminos de vida. Simétrica por
// construcción y sin pertenencia propia: la identidad se puntúa aparte.
var Friendly = map[int][]int{
	1:  {3, 5, 9},
	2:  {4, 6, 8, 11},
	3:  {1, 5, 7, 9},
	4:  {2, 8, 22},
	5:  {1, 3, 7},
	6:  {2, 9, 11, 33},
	7:  {3, 5},
	8:  {2, 4, 22},
	9:  {1, 3, 6, 11, 33},
	11: {2, 6, 9, 22},
	22: {4, 8, 11},
	33: {6, 9},
}

// IsFriendly consulta la tabla en ambas direcciones, en ese orden, para que
// el contrato de resolución quede visible aunque la tabla sea simétrica.
func IsFriendly(a, b int) bool {
	for _, n := range Friendly[a] {
		if n == b {
			return true
		}
	}
	for _, n := range Friendly[b] {
		if n == a {
			return true
		}
	}
	return false
}

// Triads son las tres tríadas fijas de meses del puntaje mensual.
var Triads = [3][3]int{
	{1, 5, 7},
	{2, 4, 8},
	{3, 6, 9},
}

// TriadOf devuelve el índice de tríada de n, o -1 si no pertenece a ninguna.
func TriadOf(n int) int {
	for i, tr := range Triads {
		for _, m := range tr {
			if m == n {
				return i
			}
		}
	}
	return -1
}

// SameTriad indica si ambos valores caen en la misma tríada.
func SameTriad(a, b int) bool {
	ta := TriadOf(a)
	return ta != -1 && ta == TriadOf(b)
}
