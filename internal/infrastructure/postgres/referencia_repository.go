package postgres

import (
	"context"
	"fmt"

	"github.com/yhorman/productos-api/internal/domain/repository"
)

var _ repository.ReferenciaRepository = (*ReferenciaRepo)(nil)

// ReferenciaRepo verifica claves foráneas lógicas contra las tablas externas
// proveedores e impuestos. Si la tabla no existe en la base, la verificación
// se omite: el esquema no impone estas referencias.
type ReferenciaRepo struct {
	q Querier
}

// NewReferenciaRepository construye el verificador de referencias. Pasar pool o tx (Querier).
func NewReferenciaRepository(q Querier) *ReferenciaRepo {
	return &ReferenciaRepo{q: q}
}

// ProveedorExiste verifica que exista un proveedor con ese ID.
func (r *ReferenciaRepo) ProveedorExiste(id int64) (bool, error) {
	return r.existeEn("proveedores", id)
}

// ImpuestoExiste verifica que exista un impuesto con ese ID.
func (r *ReferenciaRepo) ImpuestoExiste(id int64) (bool, error) {
	return r.existeEn("impuestos", id)
}

// existeEn consulta la tabla indicada por id. tabla viene de constantes
// internas, nunca de entrada del usuario.
func (r *ReferenciaRepo) existeEn(tabla string, id int64) (bool, error) {
	ctx := context.Background()

	var reg *string
	if err := r.q.QueryRow(ctx, `SELECT to_regclass($1)::text`, tabla).Scan(&reg); err != nil {
		return false, fmt.Errorf("verificar tabla %s: %w", tabla, err)
	}
	if reg == nil {
		// Tabla ausente: referencia lógica, se considera satisfecha.
		return true, nil
	}

	var existe bool
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE id = $1)`, tabla)
	if err := r.q.QueryRow(ctx, query, id).Scan(&existe); err != nil {
		return false, fmt.Errorf("consultar %s: %w", tabla, err)
	}
	return existe, nil
}
