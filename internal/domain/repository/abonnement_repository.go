package repository

import (
	"time"

	"github.com/omigec/plateforme-api/internal/domain/entity"
)

// AbonnementRepository définit le port de persistance pour les abonnements entreprise.
type AbonnementRepository interface {
	// Create insère une demande pending+inactive. Retourne domain.ErrPendingExists
	// si une demande ouverte existe déjà pour l'entreprise (index partiel unique).
	Create(a *entity.Abonnement) error
	GetByID(id string) (*entity.Abonnement, error)
	// GetActiveByEntreprise retourne la ligne is_active=true, nil si aucune.
	// L'appelant doit encore vérifier IsActif(now) : l'expiration est passive.
	GetActiveByEntreprise(entrepriseID string) (*entity.Abonnement, error)
	GetOpenByEntreprise(entrepriseID string) (*entity.Abonnement, error)
	ListByEntreprise(entrepriseID string, limit, offset int) ([]*entity.Abonnement, error)
	ListByPaymentStatus(status string, limit, offset int) ([]*entity.Abonnement, error)
	Update(a *entity.Abonnement) error
	// DeactivateAllByEntreprise force is_active=false et expires_at=now sur toutes les
	// lignes actives de l'entreprise. Appelé dans la même transaction que l'activation.
	DeactivateAllByEntreprise(entrepriseID string, now time.Time) error
}
