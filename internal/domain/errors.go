package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
// Las clases (ErrValidation, ErrConflict) agrupan errores concretos para que la capa HTTP
// pueda clasificar con errors.Is sin conocer cada caso.
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrValidation         = errors.New("entrada inválida")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrDuplicate          = fmt.Errorf("%w: recurso duplicado", ErrConflict)
	ErrEmailAlreadyExists = fmt.Errorf("%w: el email ya está registrado", ErrConflict)

	ErrCircularReference = fmt.Errorf("%w: referencia circular en la jerarquía de categorías", ErrConflict)
	ErrHasChildren       = fmt.Errorf("%w: la categoría tiene subcategorías", ErrConflict)
	ErrSlotFull          = fmt.Errorf("%w: el horario seleccionado no está disponible", ErrConflict)
	ErrAlreadyReviewed   = fmt.Errorf("%w: ya publicaste una reseña para este producto", ErrConflict)
	ErrInvalidTransition = fmt.Errorf("%w: el estado actual no permite esta operación", ErrConflict)
	ErrOutOfStock        = fmt.Errorf("%w: producto sin stock", ErrConflict)
	ErrPastDate          = fmt.Errorf("%w: la fecha debe ser futura", ErrValidation)

	ErrPaymentFailed = errors.New("la pasarela de pagos rechazó la operación")
)
