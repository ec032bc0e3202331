package auth

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/omigec/plateforme-api/internal/application/dto"
	"github.com/omigec/plateforme-api/internal/domain"
	"github.com/omigec/plateforme-api/internal/domain/entity"
	"github.com/omigec/plateforme-api/internal/domain/repository"
	"github.com/omigec/plateforme-api/pkg/jwt"
	"github.com/omigec/plateforme-api/pkg/normalize"
)

// JWTConfig configuration pour la génération de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase cas d'usage d'authentification : inscriptions et login commun.
type AuthUseCase struct {
	ingRepo repository.IngenieurRepository
	entRepo repository.EntrepriseRepository
	jwtCfg  JWTConfig
}

// NewAuthUseCase construit le cas d'usage auth.
func NewAuthUseCase(ingRepo repository.IngenieurRepository, entRepo repository.EntrepriseRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{ingRepo: ingRepo, entRepo: entRepo, jwtCfg: jwtCfg}
}

// RegisterIngenieur crée un ingénieur en pending_docs. Hash bcrypt du password.
// Retourne domain.ErrNNIExists / domain.ErrEmailExists sur doublon.
func (uc *AuthUseCase) RegisterIngenieur(in dto.RegisterIngenieurRequest) (*dto.IngenieurResponse, error) {
	nni := normalize.Digits(in.NNI)
	if nni == "" {
		return nil, domain.ErrInvalidInput
	}
	if existing, err := uc.ingRepo.GetByNNI(nni); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, domain.ErrNNIExists
	}
	if existing, err := uc.ingRepo.GetByEmail(in.Email); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, domain.ErrEmailExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	ing := &entity.Ingenieur{
		ID:            uuid.New().String(),
		NNI:           nni,
		Nom:           in.Nom,
		Email:         in.Email,
		Telephone:     in.Telephone,
		PasswordHash:  string(hash),
		DiplomeTitre:  in.DiplomeTitre,
		AnneeDiplome:  in.AnneeDiplome,
		Universite:    in.Universite,
		Pays:          in.Pays,
		Domaines:      in.Domaines,
		ModesExercice: in.ModesExercice,
		Statut:        entity.StatutPendingDocs,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.ingRepo.Create(ing); err != nil {
		return nil, err
	}
	return ToIngenieurResponse(ing), nil
}

// RegisterEntreprise crée une entreprise en en_attente de validation admin.
// Retourne domain.ErrNIFExists / domain.ErrEmailExists sur doublon.
func (uc *AuthUseCase) RegisterEntreprise(in dto.RegisterEntrepriseRequest) (*dto.EntrepriseResponse, error) {
	nif := normalize.Digits(in.NIF)
	if nif == "" {
		return nil, domain.ErrInvalidInput
	}
	if existing, err := uc.entRepo.GetByNIF(nif); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, domain.ErrNIFExists
	}
	if existing, err := uc.entRepo.GetByEmail(in.Email); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, domain.ErrEmailExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	ent := &entity.Entreprise{
		ID:           uuid.New().String(),
		NIF:          nif,
		Nom:          in.Nom,
		Secteur:      in.Secteur,
		Email:        in.Email,
		Telephone:    in.Telephone,
		PasswordHash: string(hash),
		Description:  in.Description,
		Statut:       entity.EntrepriseEnAttente,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.entRepo.Create(ent); err != nil {
		return nil, err
	}
	return ToEntrepriseResponse(ent), nil
}

// Login vérifie email/password côté ingénieurs puis côté entreprises, et génère le JWT.
// Le rôle admin est porté par les ingénieurs ayant le flag is_admin.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	ing, err := uc.ingRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if ing != nil {
		if err := bcrypt.CompareHashAndPassword([]byte(ing.PasswordHash), []byte(in.Password)); err != nil {
			return nil, domain.ErrUnauthorized
		}
		role := jwt.RoleIngenieur
		if ing.IsAdmin {
			role = jwt.RoleAdmin
		}
		token, err := jwt.Generate(uc.jwtCfg.Secret, ing.ID, role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
		if err != nil {
			return nil, err
		}
		return &dto.LoginResponse{Token: token, Role: role, UserID: ing.ID, Nom: ing.Nom, Statut: ing.Statut}, nil
	}

	ent, err := uc.entRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if ent == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(ent.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, ent.ID, jwt.RoleEntreprise, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, Role: jwt.RoleEntreprise, UserID: ent.ID, Nom: ent.Nom, Statut: ent.Statut}, nil
}

// ToIngenieurResponse mappe l'entité vers le DTO (sans password).
func ToIngenieurResponse(i *entity.Ingenieur) *dto.IngenieurResponse {
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

// ToEntrepriseResponse mappe l'entité vers le DTO (sans password).
func ToEntrepriseResponse(e *entity.Entreprise) *dto.EntrepriseResponse {
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
