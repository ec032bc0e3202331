package entity

import "time"

// Article actualité publiée par l'administration de l'ordre.
type Article struct {
	ID          string
	Titre       string
	Contenu     string
	ImagePath   *string
	AuthorID    string
	PublishedAt time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Partenaire sponsor/partenaire affiché sur le site public.
type Partenaire struct {
	ID        string
	Nom       string
	LogoPath  *string
	SiteURL   *string
	CreatedAt time.Time
}

// MessageContact message du formulaire public de contact.
type MessageContact struct {
	ID        string
	Nom       string
	Email     string
	Sujet     string
	Message   string
	Lu        bool
	CreatedAt time.Time
}
