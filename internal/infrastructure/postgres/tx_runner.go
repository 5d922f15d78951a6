package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yhorman/productos-api/internal/application/auth"
	"github.com/yhorman/productos-api/internal/application/usecase"
	"github.com/yhorman/productos-api/internal/domain/repository"
)

var _ usecase.TxRunner = (*TxRunner)(nil)
var _ auth.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL, con los
// repos atados a la tx. Así la validación de integridad y la escritura se
// confirman o descartan juntas.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunProductos inicia una transacción con repos de productos y referencias.
func (r *TxRunner) RunProductos(ctx context.Context, fn func(
	productos repository.ProductoRepository,
	referencias repository.ReferenciaRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewProductoRepository(tx), NewReferenciaRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunUsuarios inicia una transacción con el repo de usuarios.
func (r *TxRunner) RunUsuarios(ctx context.Context, fn func(
	usuarios repository.UsuarioRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewUsuarioRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
