package repository

import "github.com/yhorman/productos-api/internal/domain/entity"

// ProductoFilter filtros y paginación para listados de productos.
type ProductoFilter struct {
	Estado      string // filtra por estado exacto si no está vacío
	ProveedorID int64  // filtra por proveedor si es > 0
	Search      string // búsqueda en nombre y descripción (insensible a mayúsculas)
	Limit       int
	Offset      int
}

// ProductoRepository define el puerto de persistencia para Producto (DIP).
// Create asigna el ID generado por la base al entity recibido.
type ProductoRepository interface {
	Create(p *entity.Producto) error
	GetByID(id int64) (*entity.Producto, error)
	GetByNombre(nombre string) (*entity.Producto, error)
	Update(p *entity.Producto) error
	List(f ProductoFilter) ([]*entity.Producto, error)
	Delete(id int64) error
}
