package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/yhorman/productos-api/internal/application/dto"
	"github.com/yhorman/productos-api/internal/domain"
)

// violationResponse mapea una ConstraintViolation a respuesta HTTP.
// Devuelve false si err no es una violación de restricción.
func violationResponse(c *fiber.Ctx, err error) (bool, error) {
	field := domain.ViolatedField(err)
	switch {
	case errors.Is(err, domain.ErrUniquenessViolation):
		return true, c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Code: "DUPLICATE", Message: err.Error(), Field: field,
		})
	case errors.Is(err, domain.ErrReferenceViolation):
		// La referencia apunta a una entidad externa inexistente: 404, como
		// "proveedor con ID X no existe" del contrato original.
		return true, c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Code: "REFERENCE_NOT_FOUND", Message: err.Error(), Field: field,
		})
	case errors.Is(err, domain.ErrDomainViolation),
		errors.Is(err, domain.ErrRangeViolation),
		errors.Is(err, domain.ErrLengthViolation):
		return true, c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDATION", Message: err.Error(), Field: field,
		})
	}
	return false, nil
}
