package numerology

// Las dos únicas semánticas de reducción del motor. Todo número de nivel
// superior debe rastrearse a una de las dos; mezclarlas es la fuente clásica
// de bugs sutiles, así que cada call site se cubre con tests explícitos.

// SumDigits suma los dígitos decimales de n. Para n negativo devuelve 0.
func SumDigits(n int) int {
	if n <= 0 {
		return 0
	}
	sum := 0
	for n > 0 {
		sum += n % 10
		n /= 10
	}
	return sum
}

// Reduce aplica SumDigits mientras n > 9. Con preserveMaster activo, un
// valor intermedio 11, 22 o 33 se devuelve tal cual sin seguir reduciendo.
// Reduce(0, *) = 0.
func Reduce(n int, preserveMaster bool) int {
	for n > 9 {
		if preserveMaster && (n == 11 || n == 22 || n == 33) {
			return n
		}
		n = SumDigits(n)
	}
	return n
}

// ReduceToMatrixRange aplica SumDigits mientras n > 22. Nunca preserva
// maestros: es el reductor exclusivo de los anclajes de matriz y sus líneas.
func ReduceToMatrixRange(n int) int {
	for n > 22 {
		n = SumDigits(n)
	}
	return n
}
