// Package integrity implementa la capa de integridad respaldada por el
// esquema: acepta o rechaza candidatos Usuario/Producto según las
// restricciones declaradas en las tablas, antes de que lleguen al storage.
// Las verificaciones son stateless y se reevalúan en cada escritura; deben
// ejecutarse dentro de la misma transacción que el insert/update para que
// unicidad y referencias sean atómicas.
package integrity

import (
	"fmt"
	"time"

	"github.com/yhorman/productos-api/internal/domain"
	"github.com/yhorman/productos-api/internal/domain/entity"
	"github.com/yhorman/productos-api/internal/domain/repository"
	"github.com/yhorman/productos-api/pkg/normalize"
)

// UsuarioValidator valida candidatos Usuario contra la tabla usuarios.
type UsuarioValidator struct {
	usuarios repository.UsuarioRepository
}

// NewUsuarioValidator construye el validador con el repo de usuarios.
func NewUsuarioValidator(usuarios repository.UsuarioRepository) *UsuarioValidator {
	return &UsuarioValidator{usuarios: usuarios}
}

// Validar acepta el candidato o devuelve la primera ConstraintViolation.
// Si u.ID > 0 (update), la unicidad excluye la propia fila.
func (v *UsuarioValidator) Validar(u *entity.Usuario) error {
	if err := requerido("username", u.Username, entity.MaxUsernameLen); err != nil {
		return err
	}
	if err := requerido("email", u.Email, entity.MaxEmailLen); err != nil {
		return err
	}
	if err := requerido("hashed_password", u.HashedPassword, entity.MaxHashedPasswordLen); err != nil {
		return err
	}

	existente, err := v.usuarios.GetByUsername(u.Username)
	if err != nil {
		return fmt.Errorf("verificar username: %w", err)
	}
	if existente != nil && existente.ID != u.ID {
		return domain.NewViolation(domain.ErrUniquenessViolation, "username", u.Username)
	}

	existente, err = v.usuarios.GetByEmail(u.Email)
	if err != nil {
		return fmt.Errorf("verificar email: %w", err)
	}
	if existente != nil && existente.ID != u.ID {
		return domain.NewViolation(domain.ErrUniquenessViolation, "email", u.Email)
	}
	return nil
}

// ProductoValidator valida candidatos Producto contra la tabla productos y
// las referencias externas (proveedores, impuestos).
type ProductoValidator struct {
	productos   repository.ProductoRepository
	referencias repository.ReferenciaRepository
}

// NewProductoValidator construye el validador con sus repos.
func NewProductoValidator(productos repository.ProductoRepository, referencias repository.ReferenciaRepository) *ProductoValidator {
	return &ProductoValidator{productos: productos, referencias: referencias}
}

// Validar acepta el candidato o devuelve la primera ConstraintViolation.
// El candidato debe llegar con Estado ya normalizado (ver normalize.Key).
// Si p.ID > 0 (update), la unicidad de nombre excluye la propia fila.
func (v *ProductoValidator) Validar(p *entity.Producto) error {
	if err := requerido("nombre", p.Nombre, entity.MaxNombreLen); err != nil {
		return err
	}
	if len([]rune(p.Descripcion)) > entity.MaxDescripcionLen {
		return domain.NewViolation(domain.ErrLengthViolation, "descripcion",
			fmt.Sprintf("máximo %d caracteres", entity.MaxDescripcionLen))
	}
	if !entity.EstadoValido(p.Estado) {
		return domain.NewViolation(domain.ErrDomainViolation, "estado",
			fmt.Sprintf("%q no es %q ni %q", p.Estado, entity.EstadoActivo, entity.EstadoDescontinuado))
	}
	if p.NivelMinimoStock <= 0 {
		return domain.NewViolation(domain.ErrRangeViolation, "nivel_minimo_stock", "debe ser mayor a 0")
	}
	if p.FechaEntrada.IsZero() {
		return domain.NewViolation(domain.ErrRangeViolation, "fecha_entrada", "es requerida")
	}
	if diaDe(p.FechaEntrada).After(diaDe(time.Now())) {
		return domain.NewViolation(domain.ErrRangeViolation, "fecha_entrada", "no puede ser futura")
	}

	existente, err := v.productos.GetByNombre(p.Nombre)
	if err != nil {
		return fmt.Errorf("verificar nombre: %w", err)
	}
	if existente != nil && existente.ID != p.ID {
		return domain.NewViolation(domain.ErrUniquenessViolation, "nombre", p.Nombre)
	}

	ok, err := v.referencias.ProveedorExiste(p.ProveedorID)
	if err != nil {
		return fmt.Errorf("verificar proveedor: %w", err)
	}
	if !ok {
		return domain.NewViolation(domain.ErrReferenceViolation, "proveedor_id",
			fmt.Sprintf("proveedor %d no existe", p.ProveedorID))
	}
	ok, err = v.referencias.ImpuestoExiste(p.ImpuestoID)
	if err != nil {
		return fmt.Errorf("verificar impuesto: %w", err)
	}
	if !ok {
		return domain.NewViolation(domain.ErrReferenceViolation, "impuesto_id",
			fmt.Sprintf("impuesto %d no existe", p.ImpuestoID))
	}
	return nil
}

// requerido verifica no-vacío (tras normalizar) y longitud máxima en caracteres.
func requerido(campo, valor string, max int) error {
	if normalize.Key(valor) == "" {
		return domain.NewViolation(domain.ErrLengthViolation, campo, "es requerido")
	}
	if len([]rune(valor)) > max {
		return domain.NewViolation(domain.ErrLengthViolation, campo,
			fmt.Sprintf("máximo %d caracteres", max))
	}
	return nil
}

func diaDe(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
