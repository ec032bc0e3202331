package postgres

import (
	"context"
	"fmt"

	"github.com/omigec/plateforme-api/internal/domain"
	"github.com/omigec/plateforme-api/internal/domain/entity"
	"github.com/omigec/plateforme-api/internal/domain/repository"
)

var _ repository.CandidatureRepository = (*CandidatureRepo)(nil)

const candidatureColumns = `id, offre_id, ingenieur_id, lettre, cv_path, statut, created_at, updated_at`

// CandidatureRepo persistance des candidatures.
type CandidatureRepo struct {
	q Querier
}

// NewCandidatureRepository construit l'adaptateur.
func NewCandidatureRepository(q Querier) *CandidatureRepo {
	return &CandidatureRepo{q: q}
}

// Create insère une candidature. La contrainte unique (offre_id, ingenieur_id)
// garantit au plus une candidature par paire, même sous concurrence.
func (r *CandidatureRepo) Create(c *entity.Candidature) error {
	query := `
		INSERT INTO candidatures (` + candidatureColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.OffreID, c.IngenieurID, c.Lettre, c.CVPath, c.Statut, c.CreatedAt, c.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrAlreadyApplied
		}
		return fmt.Errorf("insert candidature: %w", err)
	}
	return nil
}

// GetByID obtient une candidature par ID (nil si absente).
func (r *CandidatureRepo) GetByID(id string) (*entity.Candidature, error) {
	query := `SELECT ` + candidatureColumns + ` FROM candidatures WHERE id = $1`
	var c entity.Candidature
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.OffreID, &c.IngenieurID, &c.Lettre, &c.CVPath, &c.Statut, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get candidature: %w", err)
	}
	return &c, nil
}

// ListByOffre retourne les candidatures d'une offre, les plus récentes d'abord.
func (r *CandidatureRepo) ListByOffre(offreID string, limit, offset int) ([]*entity.Candidature, error) {
	query := `SELECT ` + candidatureColumns + `
		FROM candidatures WHERE offre_id = $1
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	return r.queryMany(query, offreID, limit, offset)
}

// ListByIngenieur retourne les candidatures d'un ingénieur.
func (r *CandidatureRepo) ListByIngenieur(ingenieurID string, limit, offset int) ([]*entity.Candidature, error) {
	query := `SELECT ` + candidatureColumns + `
		FROM candidatures WHERE ingenieur_id = $1
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	return r.queryMany(query, ingenieurID, limit, offset)
}

func (r *CandidatureRepo) queryMany(query string, args ...any) ([]*entity.Candidature, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("query candidatures: %w", err)
	}
	defer rows.Close()

	var out []*entity.Candidature
	for rows.Next() {
		var c entity.Candidature
		if err := rows.Scan(
			&c.ID, &c.OffreID, &c.IngenieurID, &c.Lettre, &c.CVPath, &c.Statut, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan candidature: %w", err)
		}
		out = append(out, &c)
	}
	return out, rows.Err()
}

// Update met à jour le statut d'une candidature.
func (r *CandidatureRepo) Update(c *entity.Candidature) error {
	query := `UPDATE candidatures SET statut = $2, updated_at = now() WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query, c.ID, c.Statut)
	if err != nil {
		return fmt.Errorf("update candidature: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
