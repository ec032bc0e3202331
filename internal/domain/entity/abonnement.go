package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Plans d'abonnement entreprise (doivent correspondre au CHECK de la table abonnements).
const (
	PlanStarter  = "starter"
	PlanBusiness = "business"
	PlanPremium  = "premium"
)

// Statuts de paiement d'une demande d'abonnement.
const (
	PaiementPending  = "pending"
	PaiementVerified = "verified"
	PaiementRejected = "rejected"
)

// PlanInfo décrit un plan : prix mensuel fixe et quota d'offres actives simultanées.
// MaxOffres < 0 signifie illimité.
type PlanInfo struct {
	Nom         string
	PrixMensuel decimal.Decimal
	MaxOffres   int
	DureeJours  int
}

var plans = map[string]PlanInfo{
	PlanStarter:  {Nom: PlanStarter, PrixMensuel: decimal.NewFromInt(25000), MaxOffres: 3, DureeJours: 30},
	PlanBusiness: {Nom: PlanBusiness, PrixMensuel: decimal.NewFromInt(50000), MaxOffres: 10, DureeJours: 30},
	PlanPremium:  {Nom: PlanPremium, PrixMensuel: decimal.NewFromInt(90000), MaxOffres: -1, DureeJours: 30},
}

// LookupPlan retourne la définition d'un plan, ok=false si le nom est inconnu.
func LookupPlan(nom string) (PlanInfo, bool) {
	p, ok := plans[nom]
	return p, ok
}

// Abonnement représente une période de facturation demandée/activée pour une entreprise.
// Au plus une ligne active par entreprise (index partiel unique côté DB).
type Abonnement struct {
	ID            string
	EntrepriseID  string
	Plan          string // voir constantes Plan*
	PrixMensuel   decimal.Decimal
	StartsAt      time.Time
	ExpiresAt     time.Time
	IsActive      bool
	PaymentStatus string  // voir constantes Paiement*
	RecuURL       *string // reçu de paiement vérifié manuellement par l'admin
	Notes         string
	VerifiedByID  *string
	VerifiedAt    *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// IsActif calcule l'activité dérivée : flag actif ET période non échue.
// L'expiration est passive ; chaque consommateur doit passer par ici, jamais par IsActive seul.
func (a *Abonnement) IsActif(now time.Time) bool {
	return a.IsActive && a.ExpiresAt.After(now)
}

// EstOuvert indique une demande en attente de revue admin.
func (a *Abonnement) EstOuvert() bool {
	return a.PaymentStatus == PaiementPending && !a.IsActive
}

// QuotaRestant retourne le nombre d'offres encore publiables sous ce plan,
// compte tenu du nombre d'offres actuellement actives. Illimité => MaxInt sémantique (-1 jamais retourné).
func (a *Abonnement) QuotaRestant(offresActives int) int {
	p, ok := LookupPlan(a.Plan)
	if !ok {
		return 0
	}
	if p.MaxOffres < 0 {
		return int(^uint(0) >> 1)
	}
	restant := p.MaxOffres - offresActives
	if restant < 0 {
		return 0
	}
	return restant
}
