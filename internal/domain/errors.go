package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrFetchFailed        = errors.New("no se pudo obtener la colección remota")
	ErrActivationDisposed = errors.New("activación descartada")
	ErrInvalidTransition  = errors.New("transición de edición inválida")
	ErrSessionNotFound    = errors.New("sesión de edición no encontrada")
)
