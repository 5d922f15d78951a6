package auth

import (
	"context"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/yhorman/productos-api/internal/application/dto"
	"github.com/yhorman/productos-api/internal/application/integrity"
	"github.com/yhorman/productos-api/internal/domain"
	"github.com/yhorman/productos-api/internal/domain/entity"
	"github.com/yhorman/productos-api/internal/domain/repository"
	"github.com/yhorman/productos-api/pkg/jwt"
)

// MinPasswordLen longitud mínima de la contraseña en texto plano.
const MinPasswordLen = 6

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// TxRunner ejecuta fn con un repo de usuarios atado a una transacción, de modo
// que la verificación de unicidad y el insert sean atómicos.
type TxRunner interface {
	RunUsuarios(ctx context.Context, fn func(usuarios repository.UsuarioRepository) error) error
}

// AuthUseCase casos de uso de autenticación: registro, login y usuario actual.
type AuthUseCase struct {
	usuarios repository.UsuarioRepository
	tx       TxRunner
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(usuarios repository.UsuarioRepository, tx TxRunner, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{usuarios: usuarios, tx: tx, jwtCfg: jwtCfg}
}

// Register crea un usuario: valida contra la capa de integridad, hashea el
// password con bcrypt y persiste. La validación corre dentro de la misma
// transacción que el insert.
func (uc *AuthUseCase) Register(in dto.RegistroRequest) (*dto.UsuarioResponse, error) {
	if len(in.Password) < MinPasswordLen {
		return nil, domain.NewViolation(domain.ErrLengthViolation, "password", "mínimo 6 caracteres")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	u := &entity.Usuario{
		Username:       strings.TrimSpace(in.Username),
		Email:          strings.TrimSpace(in.Email),
		HashedPassword: string(hash),
		IsActive:       true,
		CreatedAt:      time.Now(),
	}
	err = uc.tx.RunUsuarios(context.Background(), func(usuarios repository.UsuarioRepository) error {
		if err := integrity.NewUsuarioValidator(usuarios).Validar(u); err != nil {
			return err
		}
		return usuarios.Create(u)
	})
	if err != nil {
		return nil, err
	}
	return toUsuarioResponse(u), nil
}

// Login verifica username/password y genera un JWT.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.usuarios.GetByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if !user.IsActive {
		return nil, domain.ErrForbidden
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Username, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{AccessToken: token, TokenType: "bearer"}, nil
}

// CurrentUser devuelve el usuario identificado por el token (para /me).
func (uc *AuthUseCase) CurrentUser(id int64) (*dto.UsuarioResponse, error) {
	user, err := uc.usuarios.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return toUsuarioResponse(user), nil
}

func toUsuarioResponse(u *entity.Usuario) *dto.UsuarioResponse {
	if u == nil {
		return nil
	}
	return &dto.UsuarioResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
	}
}
