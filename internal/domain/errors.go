package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound         = errors.New("recurso no encontrado")
	ErrInvalidInput     = errors.New("entrada inválida")
	ErrDuplicate        = errors.New("recurso duplicado")
	ErrUnauthorized     = errors.New("no autorizado")
	ErrForbidden        = errors.New("acceso denegado")
	ErrConflict         = errors.New("conflicto con el estado actual")
	ErrSessionEnded     = errors.New("la sesión terminó: el negocio ya no existe")
	ErrPlanRequired     = errors.New("función disponible solo en el plan PRO")
	ErrPlanLimit        = errors.New("límite del plan alcanzado")
	ErrLastCategory     = errors.New("el negocio debe conservar al menos una categoría")
	ErrOrderingDisabled = errors.New("este negocio no acepta pedidos a domicilio")
	ErrEmptyCart        = errors.New("el carrito está vacío")
)
