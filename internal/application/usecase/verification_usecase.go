package usecase

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/omigec/plateforme-api/internal/application/dto"
	"github.com/omigec/plateforme-api/internal/domain"
	"github.com/omigec/plateforme-api/internal/domain/entity"
	"github.com/omigec/plateforme-api/internal/domain/repository"
)

// dureeCotisation durée de validité de la cotisation stampée à la validation.
const dureeCotisation = 365 * 24 * time.Hour

// FileUpload document reçu en multipart, transmis tel quel au stockage objet.
type FileUpload struct {
	Name string
	Data []byte
}

// DocumentsUpload lot de documents d'un dépôt (chaque champ est optionnel,
// mais au moins un doit être présent).
type DocumentsUpload struct {
	Diplome      *FileUpload
	CNI          *FileUpload
	RecuPaiement *FileUpload
}

// VerificationUseCase workflow de vérification : dépôt de documents, revue admin,
// sélection de parrain, réponse du parrain, gestion de la liste des références.
type VerificationUseCase struct {
	ingRepo   repository.IngenieurRepository
	refRepo   repository.ReferenceRepository
	verifRepo repository.VerificationRepository
	uploader  Uploader
	notifier  Notifier
}

// NewVerificationUseCase construit le cas d'usage.
func NewVerificationUseCase(
	ingRepo repository.IngenieurRepository,
	refRepo repository.ReferenceRepository,
	verifRepo repository.VerificationRepository,
	uploader Uploader,
	notifier Notifier,
) *VerificationUseCase {
	return &VerificationUseCase{
		ingRepo:   ingRepo,
		refRepo:   refRepo,
		verifRepo: verifRepo,
		uploader:  uploader,
		notifier:  notifier,
	}
}

// UploadDocuments dépose/remplace les documents du dossier et repasse le statut à
// pending_docs quel que soit l'état antérieur : tout changement de document impose
// une nouvelle revue.
func (uc *VerificationUseCase) UploadDocuments(ctx context.Context, ingenieurID string, docs DocumentsUpload) (*dto.UploadDocumentsResult, error) {
	ing, err := uc.ingRepo.GetByID(ingenieurID)
	if err != nil {
		return nil, err
	}
	if ing == nil {
		return nil, domain.ErrNotFound
	}
	if docs.Diplome == nil && docs.CNI == nil && docs.RecuPaiement == nil {
		return nil, domain.ErrInvalidInput
	}
	// Le stockage objet est optionnel au démarrage ; sans lui, le dépôt est refusé
	// proprement au lieu de déréférencer un port absent.
	if uc.uploader == nil {
		return nil, domain.ErrUploadsDisabled
	}

	folder := fmt.Sprintf("documents/%s", ing.ID)
	if docs.Diplome != nil {
		path, err := uc.uploader.UploadBytes(ctx, folder, uploadName("diplome", docs.Diplome.Name), docs.Diplome.Data)
		if err != nil {
			return nil, err
		}
		ing.DiplomePath = &path
	}
	if docs.CNI != nil {
		path, err := uc.uploader.UploadBytes(ctx, folder, uploadName("cni", docs.CNI.Name), docs.CNI.Data)
		if err != nil {
			return nil, err
		}
		ing.CNIPath = &path
	}
	if docs.RecuPaiement != nil {
		path, err := uc.uploader.UploadBytes(ctx, folder, uploadName("recu", docs.RecuPaiement.Name), docs.RecuPaiement.Data)
		if err != nil {
			return nil, err
		}
		ing.RecuPaiementPath = &path
	}

	ing.Statut = entity.StatutPendingDocs
	ing.UpdatedAt = time.Now()
	if err := uc.ingRepo.Update(ing); err != nil {
		return nil, err
	}
	return &dto.UploadDocumentsResult{
		DiplomePath:      ing.DiplomePath,
		CNIPath:          ing.CNIPath,
		RecuPaiementPath: ing.RecuPaiementPath,
		Statut:           ing.Statut,
	}, nil
}

// VerifyDocs revue admin d'un dossier en pending_docs.
//   - approve : validation directe, cotisation d'un an, voie admin_approval.
//   - approve_with_reference : passage en pending_reference, le parrainage reste requis.
//   - reject : statut inchangé, le demandeur est notifié avec le motif.
//
// Ré-approuver un profil déjà validé est un ErrInvalidState, pas un no-op.
func (uc *VerificationUseCase) VerifyDocs(in dto.VerifyDocsRequest) (*dto.IngenieurResponse, error) {
	ing, err := uc.ingRepo.GetByID(in.IngenieurID)
	if err != nil {
		return nil, err
	}
	if ing == nil {
		return nil, domain.ErrNotFound
	}
	if ing.Statut != entity.StatutPendingDocs {
		return nil, domain.ErrInvalidState
	}

	now := time.Now()
	switch in.Decision {
	case dto.DecisionApprove:
		via := entity.ValideViaAdmin
		expire := now.Add(dureeCotisation)
		ing.Statut = entity.StatutValidated
		ing.ValideVia = &via
		ing.AbonnementExpire = &expire
		ing.UpdatedAt = now
		if err := uc.ingRepo.Update(ing); err != nil {
			return nil, err
		}
		uc.notifier.Notify(ing.Email, "Dossier approuvé",
			"Votre dossier a été approuvé. Votre inscription à l'ordre est validée pour un an.")

	case dto.DecisionApproveWithReference:
		ing.Statut = entity.StatutPendingReference
		ing.UpdatedAt = now
		if err := uc.ingRepo.Update(ing); err != nil {
			return nil, err
		}
		uc.notifier.Notify(ing.Email, "Documents vérifiés",
			"Vos documents ont été vérifiés. Veuillez maintenant choisir un parrain dans la liste des références pour finaliser votre inscription.")

	case dto.DecisionReject:
		// Le statut reste pending_docs ; seul le motif est communiqué.
		msg := "Votre dossier a été refusé. Veuillez soumettre de nouveaux documents."
		if in.Motif != "" {
			msg = fmt.Sprintf("Votre dossier a été refusé : %s. Veuillez soumettre de nouveaux documents.", in.Motif)
		}
		uc.notifier.Notify(ing.Email, "Dossier refusé", msg)

	default:
		return nil, domain.ErrInvalidInput
	}

	return toIngenieurResponse(ing), nil
}

// SelectReference crée une demande de parrainage pour un demandeur en pending_reference.
// Le parrain doit figurer dans la liste des références ; une seule demande pending par
// demandeur (ErrPendingExists, garanti par index partiel).
func (uc *VerificationUseCase) SelectReference(demandeurID string, in dto.SelectReferenceRequest) (*dto.VerificationResponse, error) {
	demandeur, err := uc.ingRepo.GetByID(demandeurID)
	if err != nil {
		return nil, err
	}
	if demandeur == nil {
		return nil, domain.ErrNotFound
	}
	if demandeur.Statut != entity.StatutPendingReference {
		return nil, domain.ErrInvalidState
	}

	isSponsor, err := uc.refRepo.Exists(in.ParrainID)
	if err != nil {
		return nil, err
	}
	if !isSponsor {
		return nil, domain.ErrNotSponsor
	}

	v := &entity.Verification{
		ID:          uuid.New().String(),
		DemandeurID: demandeur.ID,
		ParrainID:   in.ParrainID,
		Statut:      entity.VerificationPending,
		CreatedAt:   time.Now(),
	}
	if err := uc.verifRepo.Create(v); err != nil {
		return nil, err
	}

	if parrain, _ := uc.ingRepo.GetByID(in.ParrainID); parrain != nil {
		uc.notifier.Notify(parrain.Email, "Demande de parrainage",
			fmt.Sprintf("L'ingénieur %s (NNI %s) vous a choisi comme référence. Veuillez confirmer ou rejeter sa demande sur la plateforme.", demandeur.Nom, demandeur.NNI))
	}

	return toVerificationResponse(v), nil
}

// RespondReference réponse du parrain à une demande pending. L'appelant doit être le
// parrain assigné sur la ligne ET figurer encore dans la liste des références.
// confirm valide le demandeur (voie sponsor_confirmation, cotisation d'un an) ;
// reject enregistre le motif et invite le demandeur à se présenter au siège.
func (uc *VerificationUseCase) RespondReference(parrainID string, in dto.RespondReferenceRequest) (*dto.VerificationResponse, error) {
	v, err := uc.verifRepo.GetByID(in.VerificationID)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, domain.ErrNotFound
	}
	if v.ParrainID != parrainID {
		return nil, domain.ErrForbidden
	}
	isSponsor, err := uc.refRepo.Exists(parrainID)
	if err != nil {
		return nil, err
	}
	if !isSponsor {
		return nil, domain.ErrForbidden
	}
	if v.Statut != entity.VerificationPending {
		return nil, domain.ErrInvalidState
	}

	demandeur, err := uc.ingRepo.GetByID(v.DemandeurID)
	if err != nil {
		return nil, err
	}
	if demandeur == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	switch in.Decision {
	case "confirm":
		v.Statut = entity.VerificationConfirmed
		v.RespondedAt = &now
		if err := uc.verifRepo.Update(v); err != nil {
			return nil, err
		}
		via := entity.ValideViaParrain
		expire := now.Add(dureeCotisation)
		demandeur.Statut = entity.StatutValidated
		demandeur.ValideVia = &via
		demandeur.AbonnementExpire = &expire
		demandeur.UpdatedAt = now
		if err := uc.ingRepo.Update(demandeur); err != nil {
			return nil, err
		}
		uc.notifier.Notify(demandeur.Email, "Parrainage confirmé",
			"Votre parrain a confirmé votre demande. Votre inscription à l'ordre est validée pour un an.")

	case "reject":
		v.Statut = entity.VerificationRejected
		v.RespondedAt = &now
		if in.Motif != "" {
			motif := in.Motif
			v.Motif = &motif
		}
		if err := uc.verifRepo.Update(v); err != nil {
			return nil, err
		}
		uc.notifier.Notify(demandeur.Email, "Parrainage rejeté",
			"Votre demande de parrainage a été rejetée. Veuillez vous présenter au siège de l'ordre pour la suite de votre dossier.")

	default:
		return nil, domain.ErrInvalidInput
	}

	return toVerificationResponse(v), nil
}

// ListForParrain demandes adressées au parrain connecté.
func (uc *VerificationUseCase) ListForParrain(parrainID string, limit, offset int) ([]dto.VerificationResponse, error) {
	list, err := uc.verifRepo.ListByParrain(parrainID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.VerificationResponse, 0, len(list))
	for _, v := range list {
		out = append(out, *toVerificationResponse(v))
	}
	return out, nil
}

// ListForDemandeur historique des demandes émises par le demandeur connecté.
func (uc *VerificationUseCase) ListForDemandeur(demandeurID string, limit, offset int) ([]dto.VerificationResponse, error) {
	list, err := uc.verifRepo.ListByDemandeur(demandeurID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.VerificationResponse, 0, len(list))
	for _, v := range list {
		out = append(out, *toVerificationResponse(v))
	}
	return out, nil
}

// DemandeEnCours retourne la demande pending du demandeur, nil si aucune.
func (uc *VerificationUseCase) DemandeEnCours(demandeurID string) (*dto.VerificationResponse, error) {
	v, err := uc.verifRepo.GetPendingByDemandeur(demandeurID)
	if err != nil {
		return nil, err
	}
	return toVerificationResponse(v), nil
}

// AddReference ajoute un ingénieur validé à la liste des parrains (admin).
func (uc *VerificationUseCase) AddReference(adminID string, in dto.AddReferenceRequest) error {
	ing, err := uc.ingRepo.GetByID(in.IngenieurID)
	if err != nil {
		return err
	}
	if ing == nil {
		return domain.ErrNotFound
	}
	if ing.Statut != entity.StatutValidated {
		return domain.ErrInvalidState
	}
	return uc.refRepo.Add(&entity.ReferenceListItem{
		ID:          uuid.New().String(),
		IngenieurID: ing.ID,
		AddedByID:   adminID,
		CreatedAt:   time.Now(),
	})
}

// RemoveReference retire un parrain de la liste (admin). Les vérifications déjà
// confirmées ne sont pas touchées.
func (uc *VerificationUseCase) RemoveReference(ingenieurID string) error {
	exists, err := uc.refRepo.Exists(ingenieurID)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrNotFound
	}
	return uc.refRepo.Remove(ingenieurID)
}

// ListReferences parrains disponibles pour l'écran de sélection.
func (uc *VerificationUseCase) ListReferences() ([]dto.ReferenceResponse, error) {
	list, err := uc.refRepo.ListIngenieurs()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ReferenceResponse, 0, len(list))
	for _, ing := range list {
		out = append(out, dto.ReferenceResponse{
			IngenieurID: ing.ID,
			Nom:         ing.Nom,
			Domaines:    ing.Domaines,
			Universite:  ing.Universite,
		})
	}
	return out, nil
}

func uploadName(prefix, original string) string {
	ext := filepath.Ext(original)
	return prefix + ext
}

func toVerificationResponse(v *entity.Verification) *dto.VerificationResponse {
	if v == nil {
		return nil
	}
	return &dto.VerificationResponse{
		ID:          v.ID,
		DemandeurID: v.DemandeurID,
		ParrainID:   v.ParrainID,
		Statut:      v.Statut,
		Motif:       v.Motif,
		CreatedAt:   v.CreatedAt,
		RespondedAt: v.RespondedAt,
	}
}
