package repository

import "github.com/omigec/plateforme-api/internal/domain/entity"

// EntrepriseRepository définit le port de persistance pour Entreprise (DIP).
type EntrepriseRepository interface {
	Create(e *entity.Entreprise) error
	GetByID(id string) (*entity.Entreprise, error)
	GetByEmail(email string) (*entity.Entreprise, error)
	GetByNIF(nif string) (*entity.Entreprise, error)
	Update(e *entity.Entreprise) error
	List(statut string, limit, offset int) ([]*entity.Entreprise, error)
	Delete(id string) error
}
