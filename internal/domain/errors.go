package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrUserNotFound = errors.New("usuario no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrUnauthorized = errors.New("no autorizado")
	ErrForbidden    = errors.New("acceso denegado")
)

// Clases de violación de restricciones del esquema. Toda escritura rechazada
// por la capa de integridad termina en una de estas; errors.Is contra el
// sentinel identifica la clase.
var (
	ErrUniquenessViolation = errors.New("violación de unicidad")
	ErrDomainViolation     = errors.New("valor fuera del dominio permitido")
	ErrRangeViolation      = errors.New("valor fuera de rango")
	ErrReferenceViolation  = errors.New("referencia inexistente")
	ErrLengthViolation     = errors.New("longitud fuera de límites")
)

// ConstraintViolation envuelve una clase de violación con el campo que la causó.
type ConstraintViolation struct {
	Kind   error  // uno de los sentinelas de violación
	Field  string // columna que violó la restricción
	Detail string
}

func (e *ConstraintViolation) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Field, e.Kind.Error(), e.Detail)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Kind.Error())
}

// Unwrap permite errors.Is(err, ErrUniquenessViolation) y similares.
func (e *ConstraintViolation) Unwrap() error { return e.Kind }

// NewViolation construye una ConstraintViolation sobre un campo.
func NewViolation(kind error, field, detail string) *ConstraintViolation {
	return &ConstraintViolation{Kind: kind, Field: field, Detail: detail}
}

// ViolatedField devuelve el campo afectado si err es una ConstraintViolation.
func ViolatedField(err error) string {
	var cv *ConstraintViolation
	if errors.As(err, &cv) {
		return cv.Field
	}
	return ""
}
