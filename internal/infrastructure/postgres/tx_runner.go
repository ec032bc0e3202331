package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/omigec/plateforme-api/internal/application/usecase"
	"github.com/omigec/plateforme-api/internal/domain/repository"
)

var _ usecase.TxRunner = (*TxRunner)(nil)

// TxRunner exécute des callbacks dans une transaction PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construit le runner sur le pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run démarre une transaction, exécute fn avec des repos attachés à la tx,
// puis Commit (ou Rollback si fn retourne une erreur).
func (r *TxRunner) Run(ctx context.Context, fn func(
	abRepo repository.AbonnementRepository,
	offreRepo repository.OffreRepository,
	entRepo repository.EntrepriseRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	abRepo := NewAbonnementRepository(tx)
	offreRepo := NewOffreRepository(tx)
	entRepo := NewEntrepriseRepository(tx)

	if err := fn(abRepo, offreRepo, entRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
