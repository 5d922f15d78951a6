package usecase

import (
	"github.com/yhorman/productos-api/internal/application/dto"
	"github.com/yhorman/productos-api/internal/domain"
	"github.com/yhorman/productos-api/internal/domain/entity"
	"github.com/yhorman/productos-api/internal/domain/repository"
)

// UsuarioUseCase administración de usuarios: listado y baja lógica.
// No hay borrado físico: la política de baja es is_active = false.
type UsuarioUseCase struct {
	usuarios repository.UsuarioRepository
}

// NewUsuarioUseCase construye el caso de uso.
func NewUsuarioUseCase(usuarios repository.UsuarioRepository) *UsuarioUseCase {
	return &UsuarioUseCase{usuarios: usuarios}
}

// GetByID obtiene un usuario por ID. Devuelve nil si no existe.
func (uc *UsuarioUseCase) GetByID(id int64) (*dto.UsuarioResponse, error) {
	u, err := uc.usuarios.GetByID(id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, nil
	}
	return usuarioToResponse(u), nil
}

// List lista usuarios con paginación.
func (uc *UsuarioUseCase) List(limit, offset int) (*dto.UsuarioListResponse, error) {
	list, err := uc.usuarios.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UsuarioResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *usuarioToResponse(u))
	}
	return &dto.UsuarioListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Desactivar marca un usuario como inactivo. Devuelve domain.ErrNotFound si
// no existe; desactivar dos veces es idempotente.
func (uc *UsuarioUseCase) Desactivar(id int64) (*dto.UsuarioResponse, error) {
	u, err := uc.usuarios.GetByID(id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrNotFound
	}
	if u.IsActive {
		u.IsActive = false
		if err := uc.usuarios.Update(u); err != nil {
			return nil, err
		}
	}
	return usuarioToResponse(u), nil
}

func usuarioToResponse(u *entity.Usuario) *dto.UsuarioResponse {
	return &dto.UsuarioResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
	}
}
