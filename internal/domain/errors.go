// Package domain define el modelo y los errores de negocio (sin dependencias externas).
package domain

import "errors"

// Errores de dominio. Los handlers los traducen a códigos HTTP:
// ErrInvalidInput -> 400, ErrInvalidCredentials -> 401, ErrNotFound -> 404,
// cualquier otro -> 500. El 403 lo responde el middleware de roles directo.
var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotFound           = errors.New("not found")
)
