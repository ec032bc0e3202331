package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/omigec/plateforme-api/internal/domain"
	"github.com/omigec/plateforme-api/internal/domain/entity"
	"github.com/omigec/plateforme-api/internal/domain/repository"
)

var _ repository.AbonnementRepository = (*AbonnementRepo)(nil)

const abonnementColumns = `id, entreprise_id, plan, prix_mensuel, starts_at, expires_at,
	is_active, payment_status, recu_url, notes, verified_by_id, verified_at, created_at, updated_at`

// AbonnementRepo persistance des abonnements entreprise.
type AbonnementRepo struct {
	q Querier
}

// NewAbonnementRepository construit l'adaptateur. Passer le pool ou une tx.
func NewAbonnementRepository(q Querier) *AbonnementRepo {
	return &AbonnementRepo{q: q}
}

// Create insère une demande pending+inactive. L'index partiel unique sur
// (entreprise_id) WHERE payment_status='pending' AND NOT is_active garantit
// au plus une demande ouverte par entreprise, même sous concurrence.
func (r *AbonnementRepo) Create(a *entity.Abonnement) error {
	query := `
		INSERT INTO abonnements (` + abonnementColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(context.Background(), query,
		a.ID, a.EntrepriseID, a.Plan, a.PrixMensuel, a.StartsAt, a.ExpiresAt,
		a.IsActive, a.PaymentStatus, a.RecuURL, a.Notes, a.VerifiedByID, a.VerifiedAt,
		a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrPendingExists
		}
		return fmt.Errorf("insert abonnement: %w", err)
	}
	return nil
}

// GetByID obtient un abonnement par ID (nil si absent).
func (r *AbonnementRepo) GetByID(id string) (*entity.Abonnement, error) {
	return r.getOne(`SELECT `+abonnementColumns+` FROM abonnements WHERE id = $1`, id)
}

// GetActiveByEntreprise retourne la ligne is_active=true de l'entreprise (nil si aucune).
// L'appelant vérifie encore IsActif(now) : l'expiration est passive.
func (r *AbonnementRepo) GetActiveByEntreprise(entrepriseID string) (*entity.Abonnement, error) {
	query := `SELECT ` + abonnementColumns + `
		FROM abonnements WHERE entreprise_id = $1 AND is_active = true`
	return r.getOne(query, entrepriseID)
}

// GetOpenByEntreprise retourne la demande ouverte de l'entreprise (nil si aucune).
func (r *AbonnementRepo) GetOpenByEntreprise(entrepriseID string) (*entity.Abonnement, error) {
	query := `SELECT ` + abonnementColumns + `
		FROM abonnements
		WHERE entreprise_id = $1 AND payment_status = 'pending' AND is_active = false`
	return r.getOne(query, entrepriseID)
}

func (r *AbonnementRepo) getOne(query string, arg any) (*entity.Abonnement, error) {
	var a entity.Abonnement
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&a.ID, &a.EntrepriseID, &a.Plan, &a.PrixMensuel, &a.StartsAt, &a.ExpiresAt,
		&a.IsActive, &a.PaymentStatus, &a.RecuURL, &a.Notes, &a.VerifiedByID, &a.VerifiedAt,
		&a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get abonnement: %w", err)
	}
	return &a, nil
}

// ListByEntreprise retourne l'historique des abonnements d'une entreprise.
func (r *AbonnementRepo) ListByEntreprise(entrepriseID string, limit, offset int) ([]*entity.Abonnement, error) {
	query := `SELECT ` + abonnementColumns + `
		FROM abonnements WHERE entreprise_id = $1
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	return r.queryMany(query, entrepriseID, limit, offset)
}

// ListByPaymentStatus retourne les abonnements par statut de paiement (file de revue admin).
func (r *AbonnementRepo) ListByPaymentStatus(status string, limit, offset int) ([]*entity.Abonnement, error) {
	query := `SELECT ` + abonnementColumns + `
		FROM abonnements WHERE payment_status = $1
		ORDER BY created_at ASC LIMIT $2 OFFSET $3`
	return r.queryMany(query, status, limit, offset)
}

func (r *AbonnementRepo) queryMany(query string, args ...any) ([]*entity.Abonnement, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("query abonnements: %w", err)
	}
	defer rows.Close()

	var out []*entity.Abonnement
	for rows.Next() {
		var a entity.Abonnement
		if err := rows.Scan(
			&a.ID, &a.EntrepriseID, &a.Plan, &a.PrixMensuel, &a.StartsAt, &a.ExpiresAt,
			&a.IsActive, &a.PaymentStatus, &a.RecuURL, &a.Notes, &a.VerifiedByID, &a.VerifiedAt,
			&a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan abonnement: %w", err)
		}
		out = append(out, &a)
	}
	return out, rows.Err()
}

// Update met à jour un abonnement (activation, rejet, désactivation).
func (r *AbonnementRepo) Update(a *entity.Abonnement) error {
	query := `
		UPDATE abonnements SET
			plan = $2, prix_mensuel = $3, starts_at = $4, expires_at = $5,
			is_active = $6, payment_status = $7, recu_url = $8, notes = $9,
			verified_by_id = $10, verified_at = $11, updated_at = now()
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		a.ID, a.Plan, a.PrixMensuel, a.StartsAt, a.ExpiresAt,
		a.IsActive, a.PaymentStatus, a.RecuURL, a.Notes,
		a.VerifiedByID, a.VerifiedAt,
	)
	if err != nil {
		return fmt.Errorf("update abonnement: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeactivateAllByEntreprise force is_active=false et borne expires_at à now sur
// toutes les lignes actives de l'entreprise. Toujours appelé dans la même
// transaction que l'activation du nouvel abonnement.
func (r *AbonnementRepo) DeactivateAllByEntreprise(entrepriseID string, now time.Time) error {
	query := `
		UPDATE abonnements
		SET is_active = false, expires_at = LEAST(expires_at, $2), updated_at = now()
		WHERE entreprise_id = $1 AND is_active = true`
	if _, err := r.q.Exec(context.Background(), query, entrepriseID, now); err != nil {
		return fmt.Errorf("deactivate abonnements: %w", err)
	}
	return nil
}
