package postgres

import (
	"context"
	"fmt"

	"github.com/omigec/plateforme-api/internal/domain"
	"github.com/omigec/plateforme-api/internal/domain/entity"
	"github.com/omigec/plateforme-api/internal/domain/repository"
)

var _ repository.VerificationRepository = (*VerificationRepo)(nil)

const verificationColumns = `id, demandeur_id, parrain_id, statut, motif, created_at, responded_at`

// VerificationRepo persistance des demandes de parrainage.
type VerificationRepo struct {
	q Querier
}

// NewVerificationRepository construit l'adaptateur.
func NewVerificationRepository(q Querier) *VerificationRepo {
	return &VerificationRepo{q: q}
}

// Create insère une demande. L'index partiel unique sur (demandeur_id) WHERE statut='pending'
// ferme la fenêtre de course : deux demandes concurrentes ne peuvent pas coexister.
func (r *VerificationRepo) Create(v *entity.Verification) error {
	query := `
		INSERT INTO verifications (` + verificationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		v.ID, v.DemandeurID, v.ParrainID, v.Statut, v.Motif, v.CreatedAt, v.RespondedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrPendingExists
		}
		return fmt.Errorf("insert verification: %w", err)
	}
	return nil
}

// GetByID obtient une demande par ID (nil si absente).
func (r *VerificationRepo) GetByID(id string) (*entity.Verification, error) {
	query := `SELECT ` + verificationColumns + ` FROM verifications WHERE id = $1`
	var v entity.Verification
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&v.ID, &v.DemandeurID, &v.ParrainID, &v.Statut, &v.Motif, &v.CreatedAt, &v.RespondedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get verification: %w", err)
	}
	return &v, nil
}

// GetPendingByDemandeur retourne la demande ouverte du demandeur (nil si aucune).
func (r *VerificationRepo) GetPendingByDemandeur(demandeurID string) (*entity.Verification, error) {
	query := `SELECT ` + verificationColumns + `
		FROM verifications WHERE demandeur_id = $1 AND statut = 'pending'`
	var v entity.Verification
	err := r.q.QueryRow(context.Background(), query, demandeurID).Scan(
		&v.ID, &v.DemandeurID, &v.ParrainID, &v.Statut, &v.Motif, &v.CreatedAt, &v.RespondedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get pending verification: %w", err)
	}
	return &v, nil
}

// ListByParrain retourne les demandes adressées à un parrain, les ouvertes d'abord.
func (r *VerificationRepo) ListByParrain(parrainID string, limit, offset int) ([]*entity.Verification, error) {
	query := `SELECT ` + verificationColumns + `
		FROM verifications WHERE parrain_id = $1
		ORDER BY (statut = 'pending') DESC, created_at DESC
		LIMIT $2 OFFSET $3`
	return r.queryMany(query, parrainID, limit, offset)
}

// ListByDemandeur retourne l'historique des demandes d'un ingénieur.
func (r *VerificationRepo) ListByDemandeur(demandeurID string, limit, offset int) ([]*entity.Verification, error) {
	query := `SELECT ` + verificationColumns + `
		FROM verifications WHERE demandeur_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`
	return r.queryMany(query, demandeurID, limit, offset)
}

func (r *VerificationRepo) queryMany(query string, args ...any) ([]*entity.Verification, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("query verifications: %w", err)
	}
	defer rows.Close()

	var out []*entity.Verification
	for rows.Next() {
		var v entity.Verification
		if err := rows.Scan(
			&v.ID, &v.DemandeurID, &v.ParrainID, &v.Statut, &v.Motif, &v.CreatedAt, &v.RespondedAt,
		); err != nil {
			return nil, fmt.Errorf("scan verification: %w", err)
		}
		out = append(out, &v)
	}
	return out, rows.Err()
}

// Update met à jour le statut et la réponse d'une demande.
func (r *VerificationRepo) Update(v *entity.Verification) error {
	query := `
		UPDATE verifications SET statut = $2, motif = $3, responded_at = $4
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query, v.ID, v.Statut, v.Motif, v.RespondedAt)
	if err != nil {
		return fmt.Errorf("update verification: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
