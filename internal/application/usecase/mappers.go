package usecase

import (
	"github.com/omigec/plateforme-api/internal/application/dto"
	"github.com/omigec/plateforme-api/internal/domain/entity"
)

func toIngenieurResponse(i *entity.Ingenieur) *dto.IngenieurResponse {
	if i == nil {
		return nil
	}
	return &dto.IngenieurResponse{
		ID:               i.ID,
		NNI:              i.NNI,
		Nom:              i.Nom,
		Email:            i.Email,
		Telephone:        i.Telephone,
		DiplomeTitre:     i.DiplomeTitre,
		AnneeDiplome:     i.AnneeDiplome,
		Universite:       i.Universite,
		Pays:             i.Pays,
		Domaines:         i.Domaines,
		ModesExercice:    i.ModesExercice,
		DiplomePath:      i.DiplomePath,
		CNIPath:          i.CNIPath,
		RecuPaiementPath: i.RecuPaiementPath,
		Statut:           i.Statut,
		AbonnementExpire: i.AbonnementExpire,
		ValideVia:        i.ValideVia,
		CreatedAt:        i.CreatedAt,
		UpdatedAt:        i.UpdatedAt,
	}
}

func toEntrepriseResponse(e *entity.Entreprise) *dto.EntrepriseResponse {
	if e == nil {
		return nil
	}
	return &dto.EntrepriseResponse{
		ID:          e.ID,
		NIF:         e.NIF,
		Nom:         e.Nom,
		Secteur:     e.Secteur,
		Email:       e.Email,
		Telephone:   e.Telephone,
		LogoPath:    e.LogoPath,
		Description: e.Description,
		Statut:      e.Statut,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func toAbonnementResponse(a *entity.Abonnement) *dto.AbonnementResponse {
	if a == nil {
		return nil
	}
	return &dto.AbonnementResponse{
		ID:            a.ID,
		EntrepriseID:  a.EntrepriseID,
		Plan:          a.Plan,
		PrixMensuel:   a.PrixMensuel.StringFixed(2),
		StartsAt:      a.StartsAt,
		ExpiresAt:     a.ExpiresAt,
		IsActive:      a.IsActive,
		PaymentStatus: a.PaymentStatus,
		RecuURL:       a.RecuURL,
		Notes:         a.Notes,
		VerifiedByID:  a.VerifiedByID,
		VerifiedAt:    a.VerifiedAt,
		CreatedAt:     a.CreatedAt,
	}
}

func toOffreResponse(o *entity.OffreEmploi) *dto.OffreResponse {
	if o == nil {
		return nil
	}
	out := &dto.OffreResponse{
		ID:             o.ID,
		EntrepriseID:   o.EntrepriseID,
		Titre:          o.Titre,
		Description:    o.Description,
		Domaines:       o.Domaines,
		TypeContrat:    o.TypeContrat,
		Lieu:           o.Lieu,
		DateLimite:     o.DateLimite,
		IsActive:       o.IsActive,
		Vues:           o.Vues,
		NbCandidatures: o.NbCandidatures,
		CreatedAt:      o.CreatedAt,
	}
	if o.SalaireMin != nil {
		s := o.SalaireMin.StringFixed(0)
		out.SalaireMin = &s
	}
	if o.SalaireMax != nil {
		s := o.SalaireMax.StringFixed(0)
		out.SalaireMax = &s
	}
	return out
}

func toCandidatureResponse(c *entity.Candidature) *dto.CandidatureResponse {
	if c == nil {
		return nil
	}
	return &dto.CandidatureResponse{
		ID:          c.ID,
		OffreID:     c.OffreID,
		IngenieurID: c.IngenieurID,
		Lettre:      c.Lettre,
		CVPath:      c.CVPath,
		Statut:      c.Statut,
		CreatedAt:   c.CreatedAt,
	}
}
