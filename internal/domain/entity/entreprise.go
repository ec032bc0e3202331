package entity

import "time"

// Statuts du cycle de vie d'une entreprise.
const (
	EntrepriseEnAttente = "en_attente"
	EntrepriseValide    = "valide"
	EntrepriseSuspendue = "suspendu"
)

// Entreprise représente une entreprise inscrite (1:1 avec une identité d'authentification).
type Entreprise struct {
	ID           string
	NIF          string // identifiant fiscal unique
	Nom          string
	Secteur      string
	Email        string
	Telephone    string
	PasswordHash string
	LogoPath     *string
	Description  string
	Statut       string // voir constantes Entreprise*
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// PeutPublier indique si l'entreprise a le droit de demander un abonnement ou de publier.
// La suspension révoque ce droit et désactive ses offres (géré côté use case).
func (e *Entreprise) PeutPublier() bool {
	return e.Statut == EntrepriseValide
}
