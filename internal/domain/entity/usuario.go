package entity

import "time"

// Límites de columna de la tabla usuarios.
const (
	MaxUsernameLen       = 50
	MaxEmailLen          = 255
	MaxHashedPasswordLen = 255
)

// Usuario representa una cuenta del sistema (tabla usuarios).
// HashedPassword es opaco para el dominio: siempre llega ya hasheado (bcrypt).
type Usuario struct {
	ID             int64
	Username       string // único, máx 50
	Email          string // único, máx 255
	HashedPassword string
	IsActive       bool
	CreatedAt      time.Time // asignado al crear, inmutable
}
