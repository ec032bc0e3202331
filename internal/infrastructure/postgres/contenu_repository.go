package postgres

import (
	"context"
	"fmt"

	"github.com/omigec/plateforme-api/internal/domain"
	"github.com/omigec/plateforme-api/internal/domain/entity"
	"github.com/omigec/plateforme-api/internal/domain/repository"
)

var _ repository.ArticleRepository = (*ArticleRepo)(nil)
var _ repository.PartenaireRepository = (*PartenaireRepo)(nil)
var _ repository.ContactRepository = (*ContactRepo)(nil)

// ArticleRepo persistance des actualités.
type ArticleRepo struct {
	q Querier
}

func NewArticleRepository(q Querier) *ArticleRepo {
	return &ArticleRepo{q: q}
}

func (r *ArticleRepo) Create(a *entity.Article) error {
	query := `
		INSERT INTO articles (id, titre, contenu, image_path, author_id, published_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		a.ID, a.Titre, a.Contenu, a.ImagePath, a.AuthorID, a.PublishedAt, a.CreatedAt, a.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert article: %w", err)
	}
	return nil
}

func (r *ArticleRepo) GetByID(id string) (*entity.Article, error) {
	query := `
		SELECT id, titre, contenu, image_path, author_id, published_at, created_at, updated_at
		FROM articles WHERE id = $1`
	var a entity.Article
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&a.ID, &a.Titre, &a.Contenu, &a.ImagePath, &a.AuthorID, &a.PublishedAt, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get article: %w", err)
	}
	return &a, nil
}

func (r *ArticleRepo) List(limit, offset int) ([]*entity.Article, error) {
	query := `
		SELECT id, titre, contenu, image_path, author_id, published_at, created_at, updated_at
		FROM articles ORDER BY published_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	defer rows.Close()

	var out []*entity.Article
	for rows.Next() {
		var a entity.Article
		if err := rows.Scan(
			&a.ID, &a.Titre, &a.Contenu, &a.ImagePath, &a.AuthorID, &a.PublishedAt, &a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan article: %w", err)
		}
		out = append(out, &a)
	}
	return out, rows.Err()
}

func (r *ArticleRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM articles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete article: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// PartenaireRepo persistance des partenaires.
type PartenaireRepo struct {
	q Querier
}

func NewPartenaireRepository(q Querier) *PartenaireRepo {
	return &PartenaireRepo{q: q}
}

func (r *PartenaireRepo) Create(p *entity.Partenaire) error {
	query := `
		INSERT INTO partenaires (id, nom, logo_path, site_url, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query, p.ID, p.Nom, p.LogoPath, p.SiteURL, p.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert partenaire: %w", err)
	}
	return nil
}

func (r *PartenaireRepo) List() ([]*entity.Partenaire, error) {
	query := `SELECT id, nom, logo_path, site_url, created_at FROM partenaires ORDER BY nom`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list partenaires: %w", err)
	}
	defer rows.Close()

	var out []*entity.Partenaire
	for rows.Next() {
		var p entity.Partenaire
		if err := rows.Scan(&p.ID, &p.Nom, &p.LogoPath, &p.SiteURL, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan partenaire: %w", err)
		}
		out = append(out, &p)
	}
	return out, rows.Err()
}

func (r *PartenaireRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM partenaires WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete partenaire: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ContactRepo persistance des messages de contact.
type ContactRepo struct {
	q Querier
}

func NewContactRepository(q Querier) *ContactRepo {
	return &ContactRepo{q: q}
}

func (r *ContactRepo) Create(m *entity.MessageContact) error {
	query := `
		INSERT INTO messages_contact (id, nom, email, sujet, message, lu, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.Nom, m.Email, m.Sujet, m.Message, m.Lu, m.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert message contact: %w", err)
	}
	return nil
}

func (r *ContactRepo) List(limit, offset int) ([]*entity.MessageContact, error) {
	query := `
		SELECT id, nom, email, sujet, message, lu, created_at
		FROM messages_contact ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list messages contact: %w", err)
	}
	defer rows.Close()

	var out []*entity.MessageContact
	for rows.Next() {
		var m entity.MessageContact
		if err := rows.Scan(&m.ID, &m.Nom, &m.Email, &m.Sujet, &m.Message, &m.Lu, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan message contact: %w", err)
		}
		out = append(out, &m)
	}
	return out, rows.Err()
}

func (r *ContactRepo) MarquerLu(id string) error {
	tag, err := r.q.Exec(context.Background(),
		`UPDATE messages_contact SET lu = true WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("marquer lu: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
