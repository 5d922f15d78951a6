package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/yhorman/productos-api/internal/domain"
)

// Querier abstrae *pgxpool.Pool y pgx.Tx: los repositorios funcionan igual
// sobre el pool que dentro de una transacción.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// uniqueViolation mapea un error 23505 de PostgreSQL a la ConstraintViolation
// de dominio, derivando el campo desde el nombre del constraint
// (usuarios_username_key -> username). Devuelve nil si err no es un 23505.
func uniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != "23505" {
		return nil
	}
	return domain.NewViolation(domain.ErrUniquenessViolation, fieldFromConstraint(pgErr.ConstraintName), pgErr.Detail)
}

func fieldFromConstraint(constraint string) string {
	switch constraint {
	case "usuarios_username_key":
		return "username"
	case "usuarios_email_key":
		return "email"
	case "productos_nombre_key":
		return "nombre"
	default:
		return constraint
	}
}
