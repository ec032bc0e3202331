package repository

import "github.com/omigec/plateforme-api/internal/domain/entity"

// ArticleRepository persistance des actualités.
type ArticleRepository interface {
	Create(a *entity.Article) error
	GetByID(id string) (*entity.Article, error)
	List(limit, offset int) ([]*entity.Article, error)
	Delete(id string) error
}

// PartenaireRepository persistance des partenaires/sponsors.
type PartenaireRepository interface {
	Create(p *entity.Partenaire) error
	List() ([]*entity.Partenaire, error)
	Delete(id string) error
}

// ContactRepository persistance des messages du formulaire de contact.
type ContactRepository interface {
	Create(m *entity.MessageContact) error
	List(limit, offset int) ([]*entity.MessageContact, error)
	MarquerLu(id string) error
}
