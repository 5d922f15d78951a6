package repository

import "github.com/yhorman/productos-api/internal/domain/entity"

// UsuarioRepository define el puerto de persistencia para Usuario (DIP).
// Create asigna el ID generado por la base al entity recibido.
type UsuarioRepository interface {
	Create(u *entity.Usuario) error
	GetByID(id int64) (*entity.Usuario, error)
	GetByUsername(username string) (*entity.Usuario, error)
	GetByEmail(email string) (*entity.Usuario, error)
	Update(u *entity.Usuario) error
	List(limit, offset int) ([]*entity.Usuario, error)
}
