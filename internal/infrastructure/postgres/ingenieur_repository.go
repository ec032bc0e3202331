package postgres

import (
	"context"
	"fmt"

	"github.com/omigec/plateforme-api/internal/domain"
	"github.com/omigec/plateforme-api/internal/domain/entity"
	"github.com/omigec/plateforme-api/internal/domain/repository"
	"github.com/omigec/plateforme-api/pkg/normalize"
)

// Assure que IngenieurRepo implémente repository.IngenieurRepository.
var _ repository.IngenieurRepository = (*IngenieurRepo)(nil)

const ingenieurColumns = `id, nni, nom, email, telephone, password_hash,
	diplome_titre, annee_diplome, universite, pays, domaines, modes_exercice,
	diplome_path, cni_path, recu_paiement_path,
	statut, is_admin, abonnement_expire, valide_via, created_at, updated_at`

// IngenieurRepo implémentation du port IngenieurRepository sur PostgreSQL.
type IngenieurRepo struct {
	q Querier
}

// NewIngenieurRepository construit l'adaptateur de persistance des ingénieurs.
func NewIngenieurRepository(q Querier) *IngenieurRepo {
	return &IngenieurRepo{q: q}
}

// Create persiste un nouvel ingénieur. La colonne nom_recherche (nom replié,
// sans accents) est maintenue ici pour la recherche publique par nom.
func (r *IngenieurRepo) Create(ing *entity.Ingenieur) error {
	query := `
		INSERT INTO ingenieurs (id, nni, nom, nom_recherche, email, telephone, password_hash,
			diplome_titre, annee_diplome, universite, pays, domaines, modes_exercice,
			diplome_path, cni_path, recu_paiement_path,
			statut, is_admin, abonnement_expire, valide_via, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13,
			$14, $15, $16, $17, $18, $19, $20, $21, $22)`
	_, err := r.q.Exec(context.Background(), query,
		ing.ID, ing.NNI, ing.Nom, normalize.Fold(ing.Nom), ing.Email, ing.Telephone, ing.PasswordHash,
		ing.DiplomeTitre, ing.AnneeDiplome, ing.Universite, ing.Pays, ing.Domaines, ing.ModesExercice,
		ing.DiplomePath, ing.CNIPath, ing.RecuPaiementPath,
		ing.Statut, ing.IsAdmin, ing.AbonnementExpire, ing.ValideVia, ing.CreatedAt, ing.UpdatedAt,
	)
	if err != nil {
		switch uniqueConstraint(err) {
		case "ingenieurs_email_key":
			return domain.ErrEmailExists
		case "ingenieurs_nni_key":
			return domain.ErrNNIExists
		}
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert ingenieur: %w", err)
	}
	return nil
}

// GetByID obtient un ingénieur par ID (nil si absent).
func (r *IngenieurRepo) GetByID(id string) (*entity.Ingenieur, error) {
	query := `SELECT ` + ingenieurColumns + ` FROM ingenieurs WHERE id = $1`
	return r.getOne(query, id)
}

// GetByEmail obtient un ingénieur par email (nil si absent).
func (r *IngenieurRepo) GetByEmail(email string) (*entity.Ingenieur, error) {
	query := `SELECT ` + ingenieurColumns + ` FROM ingenieurs WHERE email = $1`
	return r.getOne(query, email)
}

// GetByNNI obtient un ingénieur par NNI (nil si absent).
func (r *IngenieurRepo) GetByNNI(nni string) (*entity.Ingenieur, error) {
	query := `SELECT ` + ingenieurColumns + ` FROM ingenieurs WHERE nni = $1`
	return r.getOne(query, nni)
}

func (r *IngenieurRepo) getOne(query string, arg any) (*entity.Ingenieur, error) {
	var ing entity.Ingenieur
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&ing.ID, &ing.NNI, &ing.Nom, &ing.Email, &ing.Telephone, &ing.PasswordHash,
		&ing.DiplomeTitre, &ing.AnneeDiplome, &ing.Universite, &ing.Pays, &ing.Domaines, &ing.ModesExercice,
		&ing.DiplomePath, &ing.CNIPath, &ing.RecuPaiementPath,
		&ing.Statut, &ing.IsAdmin, &ing.AbonnementExpire, &ing.ValideVia, &ing.CreatedAt, &ing.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get ingenieur: %w", err)
	}
	return &ing, nil
}

// Update met à jour l'ingénieur (toutes colonnes mutables, nom_recherche recalculé).
func (r *IngenieurRepo) Update(ing *entity.Ingenieur) error {
	query := `
		UPDATE ingenieurs SET
			nom = $2, nom_recherche = $3, telephone = $4, password_hash = $5,
			diplome_titre = $6, annee_diplome = $7, universite = $8, pays = $9,
			domaines = $10, modes_exercice = $11,
			diplome_path = $12, cni_path = $13, recu_paiement_path = $14,
			statut = $15, is_admin = $16, abonnement_expire = $17, valide_via = $18,
			updated_at = now()
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		ing.ID, ing.Nom, normalize.Fold(ing.Nom), ing.Telephone, ing.PasswordHash,
		ing.DiplomeTitre, ing.AnneeDiplome, ing.Universite, ing.Pays,
		ing.Domaines, ing.ModesExercice,
		ing.DiplomePath, ing.CNIPath, ing.RecuPaiementPath,
		ing.Statut, ing.IsAdmin, ing.AbonnementExpire, ing.ValideVia,
	)
	if err != nil {
		return fmt.Errorf("update ingenieur: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List retourne les ingénieurs, filtrés par statut ("" = tous), paginés.
func (r *IngenieurRepo) List(statut string, limit, offset int) ([]*entity.Ingenieur, error) {
	query := `SELECT ` + ingenieurColumns + ` FROM ingenieurs`
	args := []any{}
	if statut != "" {
		query += ` WHERE statut = $1`
		args = append(args, statut)
	}
	query += fmt.Sprintf(` ORDER BY created_at DESC LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
	args = append(args, limit, offset)
	return r.queryMany(query, args...)
}

// SearchByNom recherche par préfixe ou sous-chaîne sur le nom replié.
func (r *IngenieurRepo) SearchByNom(nomFold string, limit int) ([]*entity.Ingenieur, error) {
	query := `SELECT ` + ingenieurColumns + `
		FROM ingenieurs
		WHERE nom_recherche LIKE '%' || $1 || '%'
		ORDER BY nom
		LIMIT $2`
	return r.queryMany(query, nomFold, limit)
}

func (r *IngenieurRepo) queryMany(query string, args ...any) ([]*entity.Ingenieur, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("query ingenieurs: %w", err)
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
			return nil, fmt.Errorf("scan ingenieur: %w", err)
		}
		out = append(out, &ing)
	}
	return out, rows.Err()
}

// Delete supprime l'ingénieur ; références, vérifications, candidatures et vues
// tombent par ON DELETE CASCADE.
func (r *IngenieurRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM ingenieurs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete ingenieur: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
