package domain

import "errors"

// Errores centinela del motor. Se comparan con errors.Is.
var (
	// ErrInvalidDateFormat indica que la fecha no tiene forma YYYY-MM-DD.
	ErrInvalidDateFormat = errors.New("invalid date format")
	// ErrDateOutOfRange indica día/mes/año fuera de los límites del calendario.
	ErrDateOutOfRange = errors.New("date out of range")
	// ErrMissingContentEntry indica que una tabla de contenido no cubre la clave
	// ni siquiera tras el fallback por reducción. No es fatal: el campo opcional
	// afectado se omite del resultado.
	ErrMissingContentEntry = errors.New("missing content entry")
)
