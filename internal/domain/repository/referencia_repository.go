package repository

// ReferenciaRepository verifica claves foráneas lógicas hacia tablas externas
// (proveedores, impuestos). Si la tabla referenciada no existe en la base,
// la verificación se considera satisfecha: la referencia es lógica, no
// impuesta por el esquema.
type ReferenciaRepository interface {
	ProveedorExiste(id int64) (bool, error)
	ImpuestoExiste(id int64) (bool, error)
}
