package numerology

import "strconv"

// SelectVariant elige una variante narrativa estable para un día dado:
// mismas entradas el mismo día ⇒ mismo índice; otro día puede rotar.
// El hash es polinomial base 31 sobre fecha+semilla, con envoltura firmada
// de 32 bits en cada paso. La aritmética int32 de Go reproduce exactamente
// esa envoltura; no sustituir por una librería de hashing, los índices no
// coincidirían.
func SelectVariant(seed int, date string, count int) int {
	if count < 1 {
		return 0
	}
	s := date + strconv.Itoa(seed)

	var h int32
	for _, r := range s {
		h = h*31 + int32(r)
	}

	idx := int(h)
	if idx < 0 {
		idx = -idx
	}
	return idx % count
}
