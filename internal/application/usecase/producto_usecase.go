package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/yhorman/productos-api/internal/application/dto"
	"github.com/yhorman/productos-api/internal/application/integrity"
	"github.com/yhorman/productos-api/internal/domain"
	"github.com/yhorman/productos-api/internal/domain/entity"
	"github.com/yhorman/productos-api/internal/domain/repository"
	"github.com/yhorman/productos-api/pkg/normalize"
)

// TxRunner ejecuta fn con repos de productos y referencias atados a una
// transacción: unicidad de nombre, verificación de FKs lógicas y escritura
// se deciden atómicamente.
type TxRunner interface {
	RunProductos(ctx context.Context, fn func(productos repository.ProductoRepository, referencias repository.ReferenciaRepository) error) error
}

// ProductoUseCase casos de uso CRUD para productos.
type ProductoUseCase struct {
	productos repository.ProductoRepository
	tx        TxRunner
}

// NewProductoUseCase construye el caso de uso.
func NewProductoUseCase(productos repository.ProductoRepository, tx TxRunner) *ProductoUseCase {
	return &ProductoUseCase{productos: productos, tx: tx}
}

// Create valida el candidato contra la capa de integridad y lo persiste.
func (uc *ProductoUseCase) Create(in dto.CrearProductoRequest) (*dto.ProductoResponse, error) {
	now := time.Now()
	p := &entity.Producto{
		Nombre:           strings.TrimSpace(in.Nombre),
		Descripcion:      in.Descripcion,
		Estado:           normalize.Key(in.Estado),
		FechaEntrada:     in.FechaEntrada.Time,
		NivelMinimoStock: in.NivelMinimoStock,
		ProveedorID:      in.ProveedorID,
		ImpuestoID:       in.ImpuestoID,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	err := uc.tx.RunProductos(context.Background(), func(productos repository.ProductoRepository, referencias repository.ReferenciaRepository) error {
		if err := integrity.NewProductoValidator(productos, referencias).Validar(p); err != nil {
			return err
		}
		return productos.Create(p)
	})
	if err != nil {
		return nil, err
	}
	return toProductoResponse(p), nil
}

// GetByID obtiene un producto por ID. Devuelve nil si no existe.
func (uc *ProductoUseCase) GetByID(id int64) (*dto.ProductoResponse, error) {
	p, err := uc.productos.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	return toProductoResponse(p), nil
}

// List lista productos con paginación, filtros por estado/proveedor y búsqueda.
func (uc *ProductoUseCase) List(f repository.ProductoFilter) (*dto.ProductoListResponse, error) {
	if f.Estado != "" {
		f.Estado = normalize.Key(f.Estado)
	}
	list, err := uc.productos.List(f)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductoResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductoResponse(p))
	}
	return &dto.ProductoListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: f.Limit, Offset: f.Offset},
	}, nil
}

// Update reemplaza un producto existente revalidando las mismas restricciones
// que al crear (la unicidad de nombre excluye la propia fila) y refresca
// updated_at. Devuelve domain.ErrNotFound si el producto no existe.
func (uc *ProductoUseCase) Update(id int64, in dto.ActualizarProductoRequest) (*dto.ProductoResponse, error) {
	var out *entity.Producto
	err := uc.tx.RunProductos(context.Background(), func(productos repository.ProductoRepository, referencias repository.ReferenciaRepository) error {
		existente, err := productos.GetByID(id)
		if err != nil {
			return err
		}
		if existente == nil {
			return domain.ErrNotFound
		}
		p := &entity.Producto{
			ID:               id,
			Nombre:           strings.TrimSpace(in.Nombre),
			Descripcion:      in.Descripcion,
			Estado:           normalize.Key(in.Estado),
			FechaEntrada:     in.FechaEntrada.Time,
			NivelMinimoStock: in.NivelMinimoStock,
			ProveedorID:      in.ProveedorID,
			ImpuestoID:       in.ImpuestoID,
			CreatedAt:        existente.CreatedAt,
			UpdatedAt:        time.Now(),
		}
		if err := integrity.NewProductoValidator(productos, referencias).Validar(p); err != nil {
			return err
		}
		if err := productos.Update(p); err != nil {
			return err
		}
		out = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toProductoResponse(out), nil
}

// Delete elimina un producto. Devuelve domain.ErrNotFound si no existe.
func (uc *ProductoUseCase) Delete(id int64) error {
	return uc.productos.Delete(id)
}

func toProductoResponse(p *entity.Producto) *dto.ProductoResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductoResponse{
		ID:               p.ID,
		Nombre:           p.Nombre,
		Descripcion:      p.Descripcion,
		Estado:           p.Estado,
		FechaEntrada:     dto.FechaDe(p.FechaEntrada),
		NivelMinimoStock: p.NivelMinimoStock,
		ProveedorID:      p.ProveedorID,
		ImpuestoID:       p.ImpuestoID,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}
