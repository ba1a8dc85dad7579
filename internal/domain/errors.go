package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	// ErrUnauthorized credenciales inválidas. Deliberadamente genérico: nunca
	// distingue "RUT desconocido" de "secreto incorrecto" (resistencia a
	// enumeración de usuarios).
	ErrUnauthorized = errors.New("credenciales inválidas")
	ErrForbidden    = errors.New("acceso denegado")
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrDuplicate    = errors.New("recurso duplicado")
)
