package dto

import "time"

// CrearProductoRequest entrada para crear un producto.
type CrearProductoRequest struct {
	Nombre           string `json:"nombre" validate:"required,min=1,max=255"`
	Descripcion      string `json:"descripcion" validate:"max=1000"`
	Estado           string `json:"estado" validate:"required,oneof=activo descontinuado"`
	FechaEntrada     Fecha  `json:"fecha_entrada" validate:"required"`
	NivelMinimoStock int    `json:"nivel_minimo_stock" validate:"required,gt=0"`
	ProveedorID      int64  `json:"proveedor_id" validate:"required"`
	ImpuestoID       int64  `json:"impuesto_id" validate:"required"`
}

// ActualizarProductoRequest entrada para actualizar un producto (reemplazo
// completo, mismas restricciones que al crear).
type ActualizarProductoRequest = CrearProductoRequest

// ProductoResponse salida de un producto.
type ProductoResponse struct {
	ID               int64     `json:"id"`
	Nombre           string    `json:"nombre"`
	Descripcion      string    `json:"descripcion"`
	Estado           string    `json:"estado"`
	FechaEntrada     Fecha     `json:"fecha_entrada"`
	NivelMinimoStock int       `json:"nivel_minimo_stock"`
	ProveedorID      int64     `json:"proveedor_id"`
	ImpuestoID       int64     `json:"impuesto_id"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// ProductoListResponse lista paginada de productos.
type ProductoListResponse struct {
	Items []ProductoResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
