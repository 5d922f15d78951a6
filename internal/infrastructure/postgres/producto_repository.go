package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/yhorman/productos-api/internal/domain"
	"github.com/yhorman/productos-api/internal/domain/entity"
	"github.com/yhorman/productos-api/internal/domain/repository"
)

var _ repository.ProductoRepository = (*ProductoRepo)(nil)

const productoColumns = `id, nombre, descripcion, estado, fecha_entrada, nivel_minimo_stock, proveedor_id, impuesto_id, created_at, updated_at`

// ProductoRepo implementación del puerto ProductoRepository sobre PostgreSQL (usable con pool o tx).
type ProductoRepo struct {
	q Querier
}

// NewProductoRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductoRepository(q Querier) *ProductoRepo {
	return &ProductoRepo{q: q}
}

// Create persiste un nuevo producto y asigna el ID generado por la base.
func (r *ProductoRepo) Create(p *entity.Producto) error {
	query := `
		INSERT INTO productos (nombre, descripcion, estado, fecha_entrada, nivel_minimo_stock, proveedor_id, impuesto_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		p.Nombre, p.Descripcion, p.Estado, p.FechaEntrada, p.NivelMinimoStock,
		p.ProveedorID, p.ImpuestoID, p.CreatedAt, p.UpdatedAt,
	).Scan(&p.ID)
	if err != nil {
		if v := uniqueViolation(err); v != nil {
			return v
		}
		return fmt.Errorf("insert producto: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID. Devuelve nil si no existe.
func (r *ProductoRepo) GetByID(id int64) (*entity.Producto, error) {
	return r.get(`SELECT `+productoColumns+` FROM productos WHERE id = $1`, id)
}

// GetByNombre obtiene un producto por nombre, comparando sin distinguir
// mayúsculas (la unicidad de nombre es por clave normalizada). Devuelve nil
// si no existe.
func (r *ProductoRepo) GetByNombre(nombre string) (*entity.Producto, error) {
	return r.get(`SELECT `+productoColumns+` FROM productos WHERE lower(nombre) = lower($1)`, nombre)
}

func (r *ProductoRepo) get(query string, arg any) (*entity.Producto, error) {
	var p entity.Producto
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&p.ID, &p.Nombre, &p.Descripcion, &p.Estado, &p.FechaEntrada, &p.NivelMinimoStock,
		&p.ProveedorID, &p.ImpuestoID, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get producto: %w", err)
	}
	return &p, nil
}

// Update reemplaza todas las columnas mutables, incluido updated_at (el
// refresco lo decide el use case: la base no tiene trigger).
func (r *ProductoRepo) Update(p *entity.Producto) error {
	query := `
		UPDATE productos
		SET nombre = $2, descripcion = $3, estado = $4, fecha_entrada = $5,
		    nivel_minimo_stock = $6, proveedor_id = $7, impuesto_id = $8, updated_at = $9
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		p.ID, p.Nombre, p.Descripcion, p.Estado, p.FechaEntrada,
		p.NivelMinimoStock, p.ProveedorID, p.ImpuestoID, p.UpdatedAt,
	)
	if err != nil {
		if v := uniqueViolation(err); v != nil {
			return v
		}
		return fmt.Errorf("update producto: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista productos ordenados por ID con filtros opcionales y paginación.
// La búsqueda usa ILIKE sobre nombre y descripción.
func (r *ProductoRepo) List(f repository.ProductoFilter) ([]*entity.Producto, error) {
	var sb strings.Builder
	sb.WriteString(`SELECT ` + productoColumns + ` FROM productos WHERE 1=1`)
	args := make([]any, 0, 5)

	if f.Estado != "" {
		args = append(args, f.Estado)
		fmt.Fprintf(&sb, " AND estado = $%d", len(args))
	}
	if f.ProveedorID > 0 {
		args = append(args, f.ProveedorID)
		fmt.Fprintf(&sb, " AND proveedor_id = $%d", len(args))
	}
	if f.Search != "" {
		args = append(args, "%"+f.Search+"%")
		fmt.Fprintf(&sb, " AND (nombre ILIKE $%d OR descripcion ILIKE $%d)", len(args), len(args))
	}
	args = append(args, f.Limit)
	fmt.Fprintf(&sb, " ORDER BY id LIMIT $%d", len(args))
	args = append(args, f.Offset)
	fmt.Fprintf(&sb, " OFFSET $%d", len(args))

	rows, err := r.q.Query(context.Background(), sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("list productos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Producto
	for rows.Next() {
		var p entity.Producto
		if err := rows.Scan(&p.ID, &p.Nombre, &p.Descripcion, &p.Estado, &p.FechaEntrada,
			&p.NivelMinimoStock, &p.ProveedorID, &p.ImpuestoID, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan producto: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Delete elimina un producto por ID. Devuelve domain.ErrNotFound si no existía.
func (r *ProductoRepo) Delete(id int64) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM productos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete producto: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
