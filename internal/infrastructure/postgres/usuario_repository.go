package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/yhorman/productos-api/internal/domain/entity"
	"github.com/yhorman/productos-api/internal/domain/repository"
)

var _ repository.UsuarioRepository = (*UsuarioRepo)(nil)

// UsuarioRepo implementación del puerto UsuarioRepository sobre PostgreSQL (usable con pool o tx).
type UsuarioRepo struct {
	q Querier
}

// NewUsuarioRepository construye el adaptador de persistencia para usuarios. Pasar pool o tx (Querier).
func NewUsuarioRepository(q Querier) *UsuarioRepo {
	return &UsuarioRepo{q: q}
}

// Create persiste un nuevo usuario y asigna el ID generado por la base.
func (r *UsuarioRepo) Create(u *entity.Usuario) error {
	query := `
		INSERT INTO usuarios (username, email, hashed_password, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		u.Username, u.Email, u.HashedPassword, u.IsActive, u.CreatedAt,
	).Scan(&u.ID)
	if err != nil {
		if v := uniqueViolation(err); v != nil {
			return v
		}
		return fmt.Errorf("insert usuario: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID. Devuelve nil si no existe.
func (r *UsuarioRepo) GetByID(id int64) (*entity.Usuario, error) {
	return r.get(`SELECT id, username, email, hashed_password, is_active, created_at
		FROM usuarios WHERE id = $1`, id)
}

// GetByUsername obtiene un usuario por username, comparando sin distinguir
// mayúsculas (la unicidad de username es por clave normalizada). Devuelve
// nil si no existe.
func (r *UsuarioRepo) GetByUsername(username string) (*entity.Usuario, error) {
	return r.get(`SELECT id, username, email, hashed_password, is_active, created_at
		FROM usuarios WHERE lower(username) = lower($1)`, username)
}

// GetByEmail obtiene un usuario por email, comparando sin distinguir
// mayúsculas. Devuelve nil si no existe.
func (r *UsuarioRepo) GetByEmail(email string) (*entity.Usuario, error) {
	return r.get(`SELECT id, username, email, hashed_password, is_active, created_at
		FROM usuarios WHERE lower(email) = lower($1)`, email)
}

func (r *UsuarioRepo) get(query string, arg any) (*entity.Usuario, error) {
	var u entity.Usuario
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&u.ID, &u.Username, &u.Email, &u.HashedPassword, &u.IsActive, &u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get usuario: %w", err)
	}
	return &u, nil
}

// Update actualiza un usuario. created_at es inmutable y no se toca.
func (r *UsuarioRepo) Update(u *entity.Usuario) error {
	query := `
		UPDATE usuarios SET username = $2, email = $3, hashed_password = $4, is_active = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		u.ID, u.Username, u.Email, u.HashedPassword, u.IsActive,
	)
	if err != nil {
		if v := uniqueViolation(err); v != nil {
			return v
		}
		return fmt.Errorf("update usuario: %w", err)
	}
	return nil
}

// List lista usuarios ordenados por ID con paginación.
func (r *UsuarioRepo) List(limit, offset int) ([]*entity.Usuario, error) {
	query := `
		SELECT id, username, email, hashed_password, is_active, created_at
		FROM usuarios ORDER BY id LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list usuarios: %w", err)
	}
	defer rows.Close()
	var list []*entity.Usuario
	for rows.Next() {
		var u entity.Usuario
		if err := rows.Scan(&u.ID, &u.Username, &u.Email, &u.HashedPassword, &u.IsActive, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan usuario: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}
