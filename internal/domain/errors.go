package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrForbidden         = errors.New("acceso denegado")
	ErrConflict          = errors.New("conflicto con el estado actual")
	ErrInvalidFieldValue = errors.New("valor de campo inválido")
	ErrPublishInFlight   = errors.New("ya hay una publicación en curso")
	ErrInvalidTransition = errors.New("transición de estado no permitida")
	ErrCategoryInUse     = errors.New("la categoría tiene platos asociados")
	ErrReservedCategory  = errors.New("la categoría es reservada")
	ErrEmptyCart         = errors.New("el pedido no tiene artículos")
)
