package entity

import "time"

// Estados válidos para Producto (check constraint de la tabla productos).
const (
	EstadoActivo        = "activo"
	EstadoDescontinuado = "descontinuado"
)

// Límites de columna de la tabla productos.
const (
	MaxNombreLen      = 255
	MaxDescripcionLen = 1000
)

// Producto representa un producto del inventario (tabla productos).
// ProveedorID e ImpuestoID son claves foráneas lógicas: apuntan a entidades
// externas (proveedores, impuestos) que este sistema no administra.
type Producto struct {
	ID               int64
	Nombre           string    // único, máx 255
	Descripcion      string    // opcional
	Estado           string    // activo | descontinuado
	FechaEntrada     time.Time // solo fecha (sin hora)
	NivelMinimoStock int       // estrictamente > 0
	ProveedorID      int64
	ImpuestoID       int64
	CreatedAt        time.Time
	UpdatedAt        time.Time // se refresca en cada mutación (sin trigger en DB)
}

// EstadoValido indica si s es uno de los dos estados permitidos.
func EstadoValido(s string) bool {
	return s == EstadoActivo || s == EstadoDescontinuado
}
