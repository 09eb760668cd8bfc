package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	// ErrInvalidInput payload estructuralmente inválido que llegó hasta
	// la capa de persistencia saltándose la validación del borde.
	ErrInvalidInput = errors.New("entrada inválida")
)
