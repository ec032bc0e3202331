package usecase

import (
	"context"
	"time"

	"github.com/omigec/plateforme-api/internal/domain/entity"
	"github.com/omigec/plateforme-api/internal/domain/repository"
)

// Uploader port vers le stockage objet : le core ne conserve que le chemin retourné.
type Uploader interface {
	UploadBytes(ctx context.Context, folder, filename string, b []byte) (string, error)
}

// Notifier port de notification sortante, découplé du cycle requête/réponse :
// l'appel n'échoue jamais côté use case, les échecs d'envoi sont journalisés par
// l'implémentation.
type Notifier interface {
	Notify(to, subject, message string)
}

// AttestationGenerator produit l'attestation d'inscription PDF d'un ingénieur actif.
type AttestationGenerator interface {
	Generate(ing *entity.Ingenieur, now time.Time) ([]byte, error)
}

// TxRunner exécute un callback dans une transaction, avec des repos attachés à la tx.
// Utilisé pour les séquences multi-écritures (activation d'abonnement, suspension d'entreprise).
type TxRunner interface {
	Run(ctx context.Context, fn func(
		abRepo repository.AbonnementRepository,
		offreRepo repository.OffreRepository,
		entRepo repository.EntrepriseRepository,
	) error) error
}
