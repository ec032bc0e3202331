package dto

import "time"

// CreateArticleRequest publication d'une actualité (admin).
type CreateArticleRequest struct {
	Titre     string `json:"titre" validate:"required,min=3,max=300"`
	Contenu   string `json:"contenu" validate:"required"`
	ImagePath string `json:"image_path" validate:"omitempty,max=500"`
}

// ArticleResponse actualité publiée.
type ArticleResponse struct {
	ID          string    `json:"id"`
	Titre       string    `json:"titre"`
	Contenu     string    `json:"contenu"`
	ImagePath   *string   `json:"image_path,omitempty"`
	PublishedAt time.Time `json:"published_at"`
}

// CreatePartenaireRequest ajout d'un partenaire (admin).
type CreatePartenaireRequest struct {
	Nom      string `json:"nom" validate:"required,max=200"`
	LogoPath string `json:"logo_path" validate:"omitempty,max=500"`
	SiteURL  string `json:"site_url" validate:"omitempty,url"`
}

// PartenaireResponse partenaire affiché publiquement.
type PartenaireResponse struct {
	ID       string  `json:"id"`
	Nom      string  `json:"nom"`
	LogoPath *string `json:"logo_path,omitempty"`
	SiteURL  *string `json:"site_url,omitempty"`
}

// ContactRequest message du formulaire public.
type ContactRequest struct {
	Nom     string `json:"nom" validate:"required,max=200"`
	Email   string `json:"email" validate:"required,email"`
	Sujet   string `json:"sujet" validate:"required,max=300"`
	Message string `json:"message" validate:"required,max=5000"`
}

// MessageContactResponse message listé côté admin.
type MessageContactResponse struct {
	ID        string    `json:"id"`
	Nom       string    `json:"nom"`
	Email     string    `json:"email"`
	Sujet     string    `json:"sujet"`
	Message   string    `json:"message"`
	Lu        bool      `json:"lu"`
	CreatedAt time.Time `json:"created_at"`
}
