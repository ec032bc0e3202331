package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Types de contrat usuels (liste indicative, non contrainte en DB).
const (
	ContratCDI     = "cdi"
	ContratCDD     = "cdd"
	ContratStage   = "stage"
	ContratMission = "mission"
)

// OffreEmploi est une offre publiée par une entreprise validée et abonnée.
// La suppression est logique (IsActive=false) ; la suspension de l'entreprise désactive ses offres.
type OffreEmploi struct {
	ID             string
	EntrepriseID   string
	Titre          string
	Description    string
	Domaines       []string
	TypeContrat    string
	Lieu           string
	SalaireMin     *decimal.Decimal
	SalaireMax     *decimal.Decimal
	DateLimite     *time.Time
	IsActive       bool
	Vues           int
	NbCandidatures int // dérivé, peuplé par la couche repository
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// EstOuverte indique si l'offre accepte encore des candidatures.
func (o *OffreEmploi) EstOuverte(now time.Time) bool {
	if !o.IsActive {
		return false
	}
	if o.DateLimite != nil && o.DateLimite.Before(now) {
		return false
	}
	return true
}
