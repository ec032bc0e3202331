package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/omigec/plateforme-api/internal/domain"
	"github.com/omigec/plateforme-api/internal/domain/entity"
	"github.com/omigec/plateforme-api/internal/domain/repository"
)

var _ repository.OffreRepository = (*OffreRepo)(nil)

// Les colonnes sont préfixées o. pour composer avec la sous-requête de comptage.
const offreColumns = `o.id, o.entreprise_id, o.titre, o.description, o.domaines, o.type_contrat,
	o.lieu, o.salaire_min, o.salaire_max, o.date_limite, o.is_active, o.vues, o.created_at, o.updated_at`

// OffreRepo persistance des offres d'emploi.
type OffreRepo struct {
	q Querier
}

// NewOffreRepository construit l'adaptateur. Passer le pool ou une tx.
func NewOffreRepository(q Querier) *OffreRepo {
	return &OffreRepo{q: q}
}

// Create persiste une nouvelle offre.
func (r *OffreRepo) Create(o *entity.OffreEmploi) error {
	query := `
		INSERT INTO offres (id, entreprise_id, titre, description, domaines, type_contrat,
			lieu, salaire_min, salaire_max, date_limite, is_active, vues, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(context.Background(), query,
		o.ID, o.EntrepriseID, o.Titre, o.Description, o.Domaines, o.TypeContrat,
		o.Lieu, o.SalaireMin, o.SalaireMax, o.DateLimite, o.IsActive, o.Vues,
		o.CreatedAt, o.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert offre: %w", err)
	}
	return nil
}

// GetByID obtient une offre avec son nombre de candidatures (nil si absente).
func (r *OffreRepo) GetByID(id string) (*entity.OffreEmploi, error) {
	query := `
		SELECT ` + offreColumns + `,
			(SELECT count(*) FROM candidatures c WHERE c.offre_id = o.id) AS nb_candidatures
		FROM offres o WHERE o.id = $1`
	var o entity.OffreEmploi
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&o.ID, &o.EntrepriseID, &o.Titre, &o.Description, &o.Domaines, &o.TypeContrat,
		&o.Lieu, &o.SalaireMin, &o.SalaireMax, &o.DateLimite, &o.IsActive, &o.Vues,
		&o.CreatedAt, &o.UpdatedAt, &o.NbCandidatures,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get offre: %w", err)
	}
	return &o, nil
}

// Update met à jour une offre.
func (r *OffreRepo) Update(o *entity.OffreEmploi) error {
	query := `
		UPDATE offres SET
			titre = $2, description = $3, domaines = $4, type_contrat = $5,
			lieu = $6, salaire_min = $7, salaire_max = $8, date_limite = $9,
			is_active = $10, updated_at = now()
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		o.ID, o.Titre, o.Description, o.Domaines, o.TypeContrat,
		o.Lieu, o.SalaireMin, o.SalaireMax, o.DateLimite, o.IsActive,
	)
	if err != nil {
		return fmt.Errorf("update offre: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List retourne les offres selon le filtre (clauses composées dynamiquement).
func (r *OffreRepo) List(f repository.OffreFilter) ([]*entity.OffreEmploi, error) {
	var where []string
	var args []any
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if f.OnlyActive {
		where = append(where, "o.is_active = true")
		where = append(where, "(o.date_limite IS NULL OR o.date_limite >= now())")
	}
	if f.EntrepriseID != "" {
		where = append(where, "o.entreprise_id = "+arg(f.EntrepriseID))
	}
	if len(f.Domaines) > 0 {
		// chevauchement de tableaux : au moins un domaine en commun
		where = append(where, "o.domaines && "+arg(f.Domaines))
	}
	if f.Search != "" {
		p := arg("%" + f.Search + "%")
		where = append(where, fmt.Sprintf("(o.titre ILIKE %s OR o.description ILIKE %s)", p, p))
	}

	query := `
		SELECT ` + offreColumns + `,
			(SELECT count(*) FROM candidatures c WHERE c.offre_id = o.id) AS nb_candidatures
		FROM offres o`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += fmt.Sprintf(" ORDER BY o.created_at DESC LIMIT %s OFFSET %s", arg(f.Limit), arg(f.Offset))

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list offres: %w", err)
	}
	defer rows.Close()

	var out []*entity.OffreEmploi
	for rows.Next() {
		var o entity.OffreEmploi
		if err := rows.Scan(
			&o.ID, &o.EntrepriseID, &o.Titre, &o.Description, &o.Domaines, &o.TypeContrat,
			&o.Lieu, &o.SalaireMin, &o.SalaireMax, &o.DateLimite, &o.IsActive, &o.Vues,
			&o.CreatedAt, &o.UpdatedAt, &o.NbCandidatures,
		); err != nil {
			return nil, fmt.Errorf("scan offre: %w", err)
		}
		out = append(out, &o)
	}
	return out, rows.Err()
}

// CountActivesByEntreprise compte les offres actives d'une entreprise (contrôle de quota).
func (r *OffreRepo) CountActivesByEntreprise(entrepriseID string) (int, error) {
	query := `SELECT count(*) FROM offres WHERE entreprise_id = $1 AND is_active = true`
	var n int
	if err := r.q.QueryRow(context.Background(), query, entrepriseID).Scan(&n); err != nil {
		return 0, fmt.Errorf("count offres actives: %w", err)
	}
	return n, nil
}

// DeactivateAllByEntreprise désactive toutes les offres d'une entreprise
// (appelé dans la transaction de suspension).
func (r *OffreRepo) DeactivateAllByEntreprise(entrepriseID string) error {
	query := `UPDATE offres SET is_active = false, updated_at = now()
		WHERE entreprise_id = $1 AND is_active = true`
	if _, err := r.q.Exec(context.Background(), query, entrepriseID); err != nil {
		return fmt.Errorf("deactivate offres: %w", err)
	}
	return nil
}

// RegisterView insère la vue (offre, ingénieur) et incrémente le compteur en une seule
// instruction : le ON CONFLICT DO NOTHING rend l'opération idempotente par paire,
// et le compteur n'avance que si la ligne a réellement été insérée.
func (r *OffreRepo) RegisterView(offreID, ingenieurID string) error {
	query := `
		WITH ins AS (
			INSERT INTO job_views (offre_id, ingenieur_id, viewed_at)
			VALUES ($1, $2, now())
			ON CONFLICT (offre_id, ingenieur_id) DO NOTHING
			RETURNING 1
		)
		UPDATE offres SET vues = vues + (SELECT count(*) FROM ins)
		WHERE id = $1`
	if _, err := r.q.Exec(context.Background(), query, offreID, ingenieurID); err != nil {
		return fmt.Errorf("register view: %w", err)
	}
	return nil
}
