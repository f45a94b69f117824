package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrInsufficientStock  = errors.New("stock insuficiente")
	ErrConflict           = errors.New("la transacción fue abortada; seguro reintentar")
	ErrStorageUnavailable = errors.New("almacenamiento no disponible")
)
