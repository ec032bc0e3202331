package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/omigec/plateforme-api/internal/application/dto"
	"github.com/omigec/plateforme-api/internal/domain"
	"github.com/omigec/plateforme-api/internal/domain/entity"
	"github.com/omigec/plateforme-api/internal/domain/repository"
)

// ContenuUseCase contenu simple du site : actualités, partenaires, messages de contact.
type ContenuUseCase struct {
	articleRepo    repository.ArticleRepository
	partenaireRepo repository.PartenaireRepository
	contactRepo    repository.ContactRepository
}

// NewContenuUseCase construit le cas d'usage.
func NewContenuUseCase(
	articleRepo repository.ArticleRepository,
	partenaireRepo repository.PartenaireRepository,
	contactRepo repository.ContactRepository,
) *ContenuUseCase {
	return &ContenuUseCase{articleRepo: articleRepo, partenaireRepo: partenaireRepo, contactRepo: contactRepo}
}

// CreateArticle publication d'une actualité (admin).
func (uc *ContenuUseCase) CreateArticle(authorID string, in dto.CreateArticleRequest) (*dto.ArticleResponse, error) {
	now := time.Now()
	a := &entity.Article{
		ID:          uuid.New().String(),
		Titre:       in.Titre,
		Contenu:     in.Contenu,
		AuthorID:    authorID,
		PublishedAt: now,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if in.ImagePath != "" {
		img := in.ImagePath
		a.ImagePath = &img
	}
	if err := uc.articleRepo.Create(a); err != nil {
		return nil, err
	}
	return toArticleResponse(a), nil
}

// GetArticle détail d'une actualité.
func (uc *ContenuUseCase) GetArticle(id string) (*dto.ArticleResponse, error) {
	a, err := uc.articleRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, domain.ErrNotFound
	}
	return toArticleResponse(a), nil
}

// ListArticles actualités publiées, les plus récentes d'abord.
func (uc *ContenuUseCase) ListArticles(limit, offset int) ([]dto.ArticleResponse, error) {
	list, err := uc.articleRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ArticleResponse, 0, len(list))
	for _, a := range list {
		out = append(out, *toArticleResponse(a))
	}
	return out, nil
}

// DeleteArticle suppression admin.
func (uc *ContenuUseCase) DeleteArticle(id string) error {
	a, err := uc.articleRepo.GetByID(id)
	if err != nil {
		return err
	}
	if a == nil {
		return domain.ErrNotFound
	}
	return uc.articleRepo.Delete(id)
}

// CreatePartenaire ajout d'un partenaire (admin).
func (uc *ContenuUseCase) CreatePartenaire(in dto.CreatePartenaireRequest) (*dto.PartenaireResponse, error) {
	p := &entity.Partenaire{
		ID:        uuid.New().String(),
		Nom:       in.Nom,
		CreatedAt: time.Now(),
	}
	if in.LogoPath != "" {
		logo := in.LogoPath
		p.LogoPath = &logo
	}
	if in.SiteURL != "" {
		site := in.SiteURL
		p.SiteURL = &site
	}
	if err := uc.partenaireRepo.Create(p); err != nil {
		return nil, err
	}
	return toPartenaireResponse(p), nil
}

// ListPartenaires partenaires affichés publiquement.
func (uc *ContenuUseCase) ListPartenaires() ([]dto.PartenaireResponse, error) {
	list, err := uc.partenaireRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.PartenaireResponse, 0, len(list))
	for _, p := range list {
		out = append(out, *toPartenaireResponse(p))
	}
	return out, nil
}

// DeletePartenaire suppression admin.
func (uc *ContenuUseCase) DeletePartenaire(id string) error {
	return uc.partenaireRepo.Delete(id)
}

// CreateMessage message du formulaire public de contact.
func (uc *ContenuUseCase) CreateMessage(in dto.ContactRequest) (*dto.MessageContactResponse, error) {
	m := &entity.MessageContact{
		ID:        uuid.New().String(),
		Nom:       in.Nom,
		Email:     in.Email,
		Sujet:     in.Sujet,
		Message:   in.Message,
		CreatedAt: time.Now(),
	}
	if err := uc.contactRepo.Create(m); err != nil {
		return nil, err
	}
	return toMessageResponse(m), nil
}

// ListMessages messages reçus (back-office admin).
func (uc *ContenuUseCase) ListMessages(limit, offset int) ([]dto.MessageContactResponse, error) {
	list, err := uc.contactRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MessageContactResponse, 0, len(list))
	for _, m := range list {
		out = append(out, *toMessageResponse(m))
	}
	return out, nil
}

// MarquerLu marque un message comme lu (admin).
func (uc *ContenuUseCase) MarquerLu(id string) error {
	return uc.contactRepo.MarquerLu(id)
}

func toArticleResponse(a *entity.Article) *dto.ArticleResponse {
	return &dto.ArticleResponse{
		ID:          a.ID,
		Titre:       a.Titre,
		Contenu:     a.Contenu,
		ImagePath:   a.ImagePath,
		PublishedAt: a.PublishedAt,
	}
}

func toPartenaireResponse(p *entity.Partenaire) *dto.PartenaireResponse {
	return &dto.PartenaireResponse{
		ID:       p.ID,
		Nom:      p.Nom,
		LogoPath: p.LogoPath,
		SiteURL:  p.SiteURL,
	}
}

func toMessageResponse(m *entity.MessageContact) *dto.MessageContactResponse {
	return &dto.MessageContactResponse{
		ID:        m.ID,
		Nom:       m.Nom,
		Email:     m.Email,
		Sujet:     m.Sujet,
		Message:   m.Message,
		Lu:        m.Lu,
		CreatedAt: m.CreatedAt,
	}
}
