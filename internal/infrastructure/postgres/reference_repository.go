package postgres

import (
	"context"
	"fmt"

	"github.com/omigec/plateforme-api/internal/domain"
	"github.com/omigec/plateforme-api/internal/domain/entity"
	"github.com/omigec/plateforme-api/internal/domain/repository"
)

var _ repository.ReferenceRepository = (*ReferenceRepo)(nil)

// ReferenceRepo persistance de la liste des parrains (references_list).
type ReferenceRepo struct {
	q Querier
}

// NewReferenceRepository construit l'adaptateur.
func NewReferenceRepository(q Querier) *ReferenceRepo {
	return &ReferenceRepo{q: q}
}

// Add ajoute un ingénieur à la liste des parrains.
func (r *ReferenceRepo) Add(item *entity.ReferenceListItem) error {
	query := `
		INSERT INTO references_list (id, ingenieur_id, added_by_id, created_at)
		VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.IngenieurID, item.AddedByID, item.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert reference: %w", err)
	}
	return nil
}

// Remove retire un ingénieur de la liste des parrains.
func (r *ReferenceRepo) Remove(ingenieurID string) error {
	tag, err := r.q.Exec(context.Background(),
		`DELETE FROM references_list WHERE ingenieur_id = $1`, ingenieurID)
	if err != nil {
		return fmt.Errorf("delete reference: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Exists indique si l'ingénieur appartient à la liste des parrains.
func (r *ReferenceRepo) Exists(ingenieurID string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM references_list WHERE ingenieur_id = $1)`
	var ok bool
	if err := r.q.QueryRow(context.Background(), query, ingenieurID).Scan(&ok); err != nil {
		return false, fmt.Errorf("exists reference: %w", err)
	}
	return ok, nil
}

// ListIngenieurs retourne les profils des parrains (jointure sur ingenieurs).
func (r *ReferenceRepo) ListIngenieurs() ([]*entity.Ingenieur, error) {
	query := `
		SELECT i.id, i.nni, i.nom, i.email, i.telephone, i.password_hash,
			i.diplome_titre, i.annee_diplome, i.universite, i.pays, i.domaines, i.modes_exercice,
			i.diplome_path, i.cni_path, i.recu_paiement_path,
			i.statut, i.is_admin, i.abonnement_expire, i.valide_via, i.created_at, i.updated_at
		FROM references_list rl
		JOIN ingenieurs i ON i.id = rl.ingenieur_id
		ORDER BY i.nom`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list references: %w", err)
	}
	defer rows.Close()

	var out []*entity.Ingenieur
	for rows.Next() {
		var ing entity.Ingenieur
		if err := rows.Scan(
			&ing.ID, &ing.NNI, &ing.Nom, &ing.Email, &ing.Telephone, &ing.PasswordHash,
			&ing.DiplomeTitre, &ing.AnneeDiplome, &ing.Universite, &ing.Pays, &ing.Domaines, &ing.ModesExercice,
			&ing.DiplomePath, &ing.CNIPath, &ing.RecuPaiementPath,
			&ing.Statut, &ing.IsAdmin, &ing.AbonnementExpire, &ing.ValideVia, &ing.CreatedAt, &ing.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan reference: %w", err)
		}
		out = append(out, &ing)
	}
	return out, rows.Err()
}
