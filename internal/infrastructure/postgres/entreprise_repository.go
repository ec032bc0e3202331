package postgres

import (
	"context"
	"fmt"

	"github.com/omigec/plateforme-api/internal/domain"
	"github.com/omigec/plateforme-api/internal/domain/entity"
	"github.com/omigec/plateforme-api/internal/domain/repository"
)

var _ repository.EntrepriseRepository = (*EntrepriseRepo)(nil)

const entrepriseColumns = `id, nif, nom, secteur, email, telephone, password_hash,
	logo_path, description, statut, created_at, updated_at`

// EntrepriseRepo implémentation du port EntrepriseRepository sur PostgreSQL.
type EntrepriseRepo struct {
	q Querier
}

// NewEntrepriseRepository construit l'adaptateur de persistance des entreprises.
func NewEntrepriseRepository(q Querier) *EntrepriseRepo {
	return &EntrepriseRepo{q: q}
}

// Create persiste une nouvelle entreprise.
func (r *EntrepriseRepo) Create(ent *entity.Entreprise) error {
	query := `
		INSERT INTO entreprises (` + entrepriseColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		ent.ID, ent.NIF, ent.Nom, ent.Secteur, ent.Email, ent.Telephone, ent.PasswordHash,
		ent.LogoPath, ent.Description, ent.Statut, ent.CreatedAt, ent.UpdatedAt,
	)
	if err != nil {
		switch uniqueConstraint(err) {
		case "entreprises_email_key":
			return domain.ErrEmailExists
		case "entreprises_nif_key":
			return domain.ErrNIFExists
		}
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert entreprise: %w", err)
	}
	return nil
}

// GetByID obtient une entreprise par ID (nil si absente).
func (r *EntrepriseRepo) GetByID(id string) (*entity.Entreprise, error) {
	return r.getOne(`SELECT `+entrepriseColumns+` FROM entreprises WHERE id = $1`, id)
}

// GetByEmail obtient une entreprise par email (nil si absente).
func (r *EntrepriseRepo) GetByEmail(email string) (*entity.Entreprise, error) {
	return r.getOne(`SELECT `+entrepriseColumns+` FROM entreprises WHERE email = $1`, email)
}

// GetByNIF obtient une entreprise par NIF (nil si absente).
func (r *EntrepriseRepo) GetByNIF(nif string) (*entity.Entreprise, error) {
	return r.getOne(`SELECT `+entrepriseColumns+` FROM entreprises WHERE nif = $1`, nif)
}

func (r *EntrepriseRepo) getOne(query string, arg any) (*entity.Entreprise, error) {
	var e entity.Entreprise
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&e.ID, &e.NIF, &e.Nom, &e.Secteur, &e.Email, &e.Telephone, &e.PasswordHash,
		&e.LogoPath, &e.Description, &e.Statut, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get entreprise: %w", err)
	}
	return &e, nil
}

// Update met à jour l'entreprise.
func (r *EntrepriseRepo) Update(ent *entity.Entreprise) error {
	query := `
		UPDATE entreprises SET
			nom = $2, secteur = $3, telephone = $4, password_hash = $5,
			logo_path = $6, description = $7, statut = $8, updated_at = now()
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		ent.ID, ent.Nom, ent.Secteur, ent.Telephone, ent.PasswordHash,
		ent.LogoPath, ent.Description, ent.Statut,
	)
	if err != nil {
		return fmt.Errorf("update entreprise: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List retourne les entreprises, filtrées par statut ("" = toutes), paginées.
func (r *EntrepriseRepo) List(statut string, limit, offset int) ([]*entity.Entreprise, error) {
	query := `SELECT ` + entrepriseColumns + ` FROM entreprises`
	args := []any{}
	if statut != "" {
		query += ` WHERE statut = $1`
		args = append(args, statut)
	}
	query += fmt.Sprintf(` ORDER BY created_at DESC LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list entreprises: %w", err)
	}
	defer rows.Close()

	var out []*entity.Entreprise
	for rows.Next() {
		var e entity.Entreprise
		if err := rows.Scan(
			&e.ID, &e.NIF, &e.Nom, &e.Secteur, &e.Email, &e.Telephone, &e.PasswordHash,
			&e.LogoPath, &e.Description, &e.Statut, &e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan entreprise: %w", err)
		}
		out = append(out, &e)
	}
	return out, rows.Err()
}

// Delete supprime l'entreprise ; abonnements, offres et candidatures tombent par cascade.
func (r *EntrepriseRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM entreprises WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete entreprise: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
