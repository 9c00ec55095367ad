package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrInsufficientStock  = errors.New("stock insuficiente")
)

// StockShortfallError identifica el producto y el faltante cuando una salida
// dejaría el stock en negativo. Unwrap devuelve ErrInsufficientStock para que
// los handlers puedan clasificarlo con errors.Is.
type StockShortfallError struct {
	ProductID string
	SKU       string
	Requested int64
	Available int64
}

func (e *StockShortfallError) Error() string {
	return fmt.Sprintf("stock insuficiente para producto %s (SKU %s): solicitado %d, disponible %d",
		e.ProductID, e.SKU, e.Requested, e.Available)
}

func (e *StockShortfallError) Unwrap() error { return ErrInsufficientStock }

// Shortfall devuelve las unidades faltantes.
func (e *StockShortfallError) Shortfall() int64 { return e.Requested - e.Available }
