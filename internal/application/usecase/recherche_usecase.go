package usecase

import (
	"time"

	"github.com/omigec/plateforme-api/internal/application/dto"
	"github.com/omigec/plateforme-api/internal/domain/entity"
	"github.com/omigec/plateforme-api/internal/domain/repository"
	"github.com/omigec/plateforme-api/pkg/normalize"
)

// nniMinLen en dessous de cette longueur de chiffres, la requête est traitée comme un nom.
const nniMinLen = 6

// RechercheUseCase vérification publique : un NNI (ou un nom) n'est "trouvé" que si le
// profil est dérivé-actif. L'extérieur ne distingue pas "inconnu" de "inactif" — un
// validé dont la cotisation est expirée répond not_found.
type RechercheUseCase struct {
	ingRepo repository.IngenieurRepository
}

// NewRechercheUseCase construit le cas d'usage.
func NewRechercheUseCase(ingRepo repository.IngenieurRepository) *RechercheUseCase {
	return &RechercheUseCase{ingRepo: ingRepo}
}

// Search résout q comme un NNI si la saisie contient assez de chiffres, sinon comme
// un nom (comparaison repliée, insensible aux accents).
func (uc *RechercheUseCase) Search(q string) (*dto.RechercheResponse, error) {
	notFound := &dto.RechercheResponse{Found: false, Status: "not_found"}
	now := time.Now()

	if digits := normalize.Digits(q); len(digits) >= nniMinLen {
		ing, err := uc.ingRepo.GetByNNI(digits)
		if err != nil {
			return nil, err
		}
		if ing == nil || !ing.IsActif(now) {
			return notFound, nil
		}
		return found(ing), nil
	}

	list, err := uc.ingRepo.SearchByNom(normalize.Fold(q), 10)
	if err != nil {
		return nil, err
	}
	for _, ing := range list {
		if ing.IsActif(now) {
			return found(ing), nil
		}
	}
	return notFound, nil
}

func found(ing *entity.Ingenieur) *dto.RechercheResponse {
	return &dto.RechercheResponse{
		Found:  true,
		Status: "active",
		Ingenieur: &dto.RecherchePublicProfil{
			NNI:        ing.NNI,
			Nom:        ing.Nom,
			Domaines:   ing.Domaines,
			Universite: ing.Universite,
			Pays:       ing.Pays,
		},
	}
}
