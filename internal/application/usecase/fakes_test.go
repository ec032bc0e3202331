package usecase_test

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/omigec/plateforme-api/internal/domain"
	"github.com/omigec/plateforme-api/internal/domain/entity"
	"github.com/omigec/plateforme-api/internal/domain/repository"
	"github.com/omigec/plateforme-api/pkg/normalize"
)

// ──────────────────────────────────────────────────────────────────────────────
// Doublures en mémoire des ports de persistance. Même contrat que les
// implémentations Postgres : nil (et non une erreur) quand la ligne n'existe
// pas, sentinelles de domaine sur violation de contrainte, copies à la lecture
// pour que seuls les Update soient visibles.
// ──────────────────────────────────────────────────────────────────────────────

type fakeIngenieurRepo struct {
	items map[string]*entity.Ingenieur
}

func newFakeIngenieurRepo() *fakeIngenieurRepo {
	return &fakeIngenieurRepo{items: map[string]*entity.Ingenieur{}}
}

func copyIng(i *entity.Ingenieur) *entity.Ingenieur {
	if i == nil {
		return nil
	}
	c := *i
	return &c
}

func (r *fakeIngenieurRepo) Create(ing *entity.Ingenieur) error {
	for _, it := range r.items {
		if it.Email == ing.Email {
			return domain.ErrEmailExists
		}
		if it.NNI == ing.NNI {
			return domain.ErrNNIExists
		}
	}
	r.items[ing.ID] = copyIng(ing)
	return nil
}

func (r *fakeIngenieurRepo) GetByID(id string) (*entity.Ingenieur, error) {
	return copyIng(r.items[id]), nil
}

func (r *fakeIngenieurRepo) GetByEmail(email string) (*entity.Ingenieur, error) {
	for _, it := range r.items {
		if it.Email == email {
			return copyIng(it), nil
		}
	}
	return nil, nil
}

func (r *fakeIngenieurRepo) GetByNNI(nni string) (*entity.Ingenieur, error) {
	for _, it := range r.items {
		if it.NNI == nni {
			return copyIng(it), nil
		}
	}
	return nil, nil
}

func (r *fakeIngenieurRepo) Update(ing *entity.Ingenieur) error {
	if _, ok := r.items[ing.ID]; !ok {
		return domain.ErrNotFound
	}
	r.items[ing.ID] = copyIng(ing)
	return nil
}

func (r *fakeIngenieurRepo) List(statut string, limit, offset int) ([]*entity.Ingenieur, error) {
	out := make([]*entity.Ingenieur, 0)
	for _, it := range r.items {
		if statut == "" || it.Statut == statut {
			out = append(out, copyIng(it))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return pageSlice(out, limit, offset), nil
}

func (r *fakeIngenieurRepo) SearchByNom(nomFold string, limit int) ([]*entity.Ingenieur, error) {
	out := make([]*entity.Ingenieur, 0)
	for _, it := range r.items {
		if strings.Contains(normalize.Fold(it.Nom), nomFold) {
			out = append(out, copyIng(it))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Nom < out[j].Nom })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeIngenieurRepo) Delete(id string) error {
	if _, ok := r.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

type fakeReferenceRepo struct {
	items map[string]*entity.ReferenceListItem // clé : ingenieur_id
	ings  *fakeIngenieurRepo
}

func newFakeReferenceRepo(ings *fakeIngenieurRepo) *fakeReferenceRepo {
	return &fakeReferenceRepo{items: map[string]*entity.ReferenceListItem{}, ings: ings}
}

func (r *fakeReferenceRepo) Add(item *entity.ReferenceListItem) error {
	if _, ok := r.items[item.IngenieurID]; ok {
		return domain.ErrDuplicate
	}
	r.items[item.IngenieurID] = item
	return nil
}

func (r *fakeReferenceRepo) Remove(ingenieurID string) error {
	delete(r.items, ingenieurID)
	return nil
}

func (r *fakeReferenceRepo) Exists(ingenieurID string) (bool, error) {
	_, ok := r.items[ingenieurID]
	return ok, nil
}

func (r *fakeReferenceRepo) ListIngenieurs() ([]*entity.Ingenieur, error) {
	out := make([]*entity.Ingenieur, 0, len(r.items))
	for id := range r.items {
		if ing := r.ings.items[id]; ing != nil {
			out = append(out, copyIng(ing))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Nom < out[j].Nom })
	return out, nil
}

type fakeVerificationRepo struct {
	items map[string]*entity.Verification
}

func newFakeVerificationRepo() *fakeVerificationRepo {
	return &fakeVerificationRepo{items: map[string]*entity.Verification{}}
}

func copyVerif(v *entity.Verification) *entity.Verification {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func (r *fakeVerificationRepo) Create(v *entity.Verification) error {
	for _, it := range r.items {
		if it.DemandeurID == v.DemandeurID && it.Statut == entity.VerificationPending {
			return domain.ErrPendingExists
		}
	}
	r.items[v.ID] = copyVerif(v)
	return nil
}

func (r *fakeVerificationRepo) GetByID(id string) (*entity.Verification, error) {
	return copyVerif(r.items[id]), nil
}

func (r *fakeVerificationRepo) GetPendingByDemandeur(demandeurID string) (*entity.Verification, error) {
	for _, it := range r.items {
		if it.DemandeurID == demandeurID && it.Statut == entity.VerificationPending {
			return copyVerif(it), nil
		}
	}
	return nil, nil
}

func (r *fakeVerificationRepo) ListByParrain(parrainID string, limit, offset int) ([]*entity.Verification, error) {
	out := make([]*entity.Verification, 0)
	for _, it := range r.items {
		if it.ParrainID == parrainID {
			out = append(out, copyVerif(it))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return pageSlice(out, limit, offset), nil
}

func (r *fakeVerificationRepo) ListByDemandeur(demandeurID string, limit, offset int) ([]*entity.Verification, error) {
	out := make([]*entity.Verification, 0)
	for _, it := range r.items {
		if it.DemandeurID == demandeurID {
			out = append(out, copyVerif(it))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return pageSlice(out, limit, offset), nil
}

func (r *fakeVerificationRepo) Update(v *entity.Verification) error {
	if _, ok := r.items[v.ID]; !ok {
		return domain.ErrNotFound
	}
	r.items[v.ID] = copyVerif(v)
	return nil
}

type fakeEntrepriseRepo struct {
	items map[string]*entity.Entreprise
}

func newFakeEntrepriseRepo() *fakeEntrepriseRepo {
	return &fakeEntrepriseRepo{items: map[string]*entity.Entreprise{}}
}

func copyEnt(e *entity.Entreprise) *entity.Entreprise {
	if e == nil {
		return nil
	}
	c := *e
	return &c
}

func (r *fakeEntrepriseRepo) Create(e *entity.Entreprise) error {
	for _, it := range r.items {
		if it.Email == e.Email {
			return domain.ErrEmailExists
		}
		if it.NIF == e.NIF {
			return domain.ErrNIFExists
		}
	}
	r.items[e.ID] = copyEnt(e)
	return nil
}

func (r *fakeEntrepriseRepo) GetByID(id string) (*entity.Entreprise, error) {
	return copyEnt(r.items[id]), nil
}

func (r *fakeEntrepriseRepo) GetByEmail(email string) (*entity.Entreprise, error) {
	for _, it := range r.items {
		if it.Email == email {
			return copyEnt(it), nil
		}
	}
	return nil, nil
}

func (r *fakeEntrepriseRepo) GetByNIF(nif string) (*entity.Entreprise, error) {
	for _, it := range r.items {
		if it.NIF == nif {
			return copyEnt(it), nil
		}
	}
	return nil, nil
}

func (r *fakeEntrepriseRepo) Update(e *entity.Entreprise) error {
	if _, ok := r.items[e.ID]; !ok {
		return domain.ErrNotFound
	}
	r.items[e.ID] = copyEnt(e)
	return nil
}

func (r *fakeEntrepriseRepo) List(statut string, limit, offset int) ([]*entity.Entreprise, error) {
	out := make([]*entity.Entreprise, 0)
	for _, it := range r.items {
		if statut == "" || it.Statut == statut {
			out = append(out, copyEnt(it))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return pageSlice(out, limit, offset), nil
}

func (r *fakeEntrepriseRepo) Delete(id string) error {
	delete(r.items, id)
	return nil
}

type fakeAbonnementRepo struct {
	items   map[string]*entity.Abonnement
	openErr error // injecté pour simuler une panne lors du pré-contrôle de doublon
}

func newFakeAbonnementRepo() *fakeAbonnementRepo {
	return &fakeAbonnementRepo{items: map[string]*entity.Abonnement{}}
}

func copyAb(a *entity.Abonnement) *entity.Abonnement {
	if a == nil {
		return nil
	}
	c := *a
	return &c
}

func (r *fakeAbonnementRepo) Create(a *entity.Abonnement) error {
	for _, it := range r.items {
		if it.EntrepriseID == a.EntrepriseID && it.EstOuvert() {
			return domain.ErrPendingExists
		}
	}
	r.items[a.ID] = copyAb(a)
	return nil
}

func (r *fakeAbonnementRepo) GetByID(id string) (*entity.Abonnement, error) {
	return copyAb(r.items[id]), nil
}

func (r *fakeAbonnementRepo) GetActiveByEntreprise(entrepriseID string) (*entity.Abonnement, error) {
	for _, it := range r.items {
		if it.EntrepriseID == entrepriseID && it.IsActive {
			return copyAb(it), nil
		}
	}
	return nil, nil
}

func (r *fakeAbonnementRepo) GetOpenByEntreprise(entrepriseID string) (*entity.Abonnement, error) {
	if r.openErr != nil {
		return nil, r.openErr
	}
	for _, it := range r.items {
		if it.EntrepriseID == entrepriseID && it.EstOuvert() {
			return copyAb(it), nil
		}
	}
	return nil, nil
}

func (r *fakeAbonnementRepo) ListByEntreprise(entrepriseID string, limit, offset int) ([]*entity.Abonnement, error) {
	out := make([]*entity.Abonnement, 0)
	for _, it := range r.items {
		if it.EntrepriseID == entrepriseID {
			out = append(out, copyAb(it))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return pageSlice(out, limit, offset), nil
}

func (r *fakeAbonnementRepo) ListByPaymentStatus(status string, limit, offset int) ([]*entity.Abonnement, error) {
	out := make([]*entity.Abonnement, 0)
	for _, it := range r.items {
		if it.PaymentStatus == status {
			out = append(out, copyAb(it))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return pageSlice(out, limit, offset), nil
}

func (r *fakeAbonnementRepo) Update(a *entity.Abonnement) error {
	if _, ok := r.items[a.ID]; !ok {
		return domain.ErrNotFound
	}
	r.items[a.ID] = copyAb(a)
	return nil
}

func (r *fakeAbonnementRepo) DeactivateAllByEntreprise(entrepriseID string, now time.Time) error {
	for _, it := range r.items {
		if it.EntrepriseID == entrepriseID && it.IsActive {
			it.IsActive = false
			if now.Before(it.ExpiresAt) {
				it.ExpiresAt = now
			}
		}
	}
	return nil
}

type fakeOffreRepo struct {
	items map[string]*entity.OffreEmploi
	vues  map[string]map[string]bool // offre -> ingénieurs ayant vu
}

func newFakeOffreRepo() *fakeOffreRepo {
	return &fakeOffreRepo{items: map[string]*entity.OffreEmploi{}, vues: map[string]map[string]bool{}}
}

func copyOffre(o *entity.OffreEmploi) *entity.OffreEmploi {
	if o == nil {
		return nil
	}
	c := *o
	return &c
}

func (r *fakeOffreRepo) Create(o *entity.OffreEmploi) error {
	r.items[o.ID] = copyOffre(o)
	return nil
}

func (r *fakeOffreRepo) GetByID(id string) (*entity.OffreEmploi, error) {
	return copyOffre(r.items[id]), nil
}

func (r *fakeOffreRepo) Update(o *entity.OffreEmploi) error {
	if _, ok := r.items[o.ID]; !ok {
		return domain.ErrNotFound
	}
	r.items[o.ID] = copyOffre(o)
	return nil
}

func (r *fakeOffreRepo) List(f repository.OffreFilter) ([]*entity.OffreEmploi, error) {
	now := time.Now()
	out := make([]*entity.OffreEmploi, 0)
	for _, it := range r.items {
		if f.EntrepriseID != "" && it.EntrepriseID != f.EntrepriseID {
			continue
		}
		if f.OnlyActive {
			if !it.IsActive {
				continue
			}
			if it.DateLimite != nil && it.DateLimite.Before(now) {
				continue
			}
		}
		if f.Search != "" && !strings.Contains(strings.ToLower(it.Titre+" "+it.Description), strings.ToLower(f.Search)) {
			continue
		}
		if len(f.Domaines) > 0 && !overlap(it.Domaines, f.Domaines) {
			continue
		}
		out = append(out, copyOffre(it))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return pageSlice(out, f.Limit, f.Offset), nil
}

func (r *fakeOffreRepo) CountActivesByEntreprise(entrepriseID string) (int, error) {
	n := 0
	for _, it := range r.items {
		if it.EntrepriseID == entrepriseID && it.IsActive {
			n++
		}
	}
	return n, nil
}

func (r *fakeOffreRepo) DeactivateAllByEntreprise(entrepriseID string) error {
	for _, it := range r.items {
		if it.EntrepriseID == entrepriseID {
			it.IsActive = false
		}
	}
	return nil
}

func (r *fakeOffreRepo) RegisterView(offreID, ingenieurID string) error {
	o, ok := r.items[offreID]
	if !ok {
		return domain.ErrNotFound
	}
	seen := r.vues[offreID]
	if seen == nil {
		seen = map[string]bool{}
		r.vues[offreID] = seen
	}
	if !seen[ingenieurID] {
		seen[ingenieurID] = true
		o.Vues++
	}
	return nil
}

type fakeCandidatureRepo struct {
	items map[string]*entity.Candidature
}

func newFakeCandidatureRepo() *fakeCandidatureRepo {
	return &fakeCandidatureRepo{items: map[string]*entity.Candidature{}}
}

func copyCand(c *entity.Candidature) *entity.Candidature {
	if c == nil {
		return nil
	}
	cc := *c
	return &cc
}

func (r *fakeCandidatureRepo) Create(c *entity.Candidature) error {
	for _, it := range r.items {
		if it.OffreID == c.OffreID && it.IngenieurID == c.IngenieurID {
			return domain.ErrAlreadyApplied
		}
	}
	r.items[c.ID] = copyCand(c)
	return nil
}

func (r *fakeCandidatureRepo) GetByID(id string) (*entity.Candidature, error) {
	return copyCand(r.items[id]), nil
}

func (r *fakeCandidatureRepo) ListByOffre(offreID string, limit, offset int) ([]*entity.Candidature, error) {
	out := make([]*entity.Candidature, 0)
	for _, it := range r.items {
		if it.OffreID == offreID {
			out = append(out, copyCand(it))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return pageSlice(out, limit, offset), nil
}

func (r *fakeCandidatureRepo) ListByIngenieur(ingenieurID string, limit, offset int) ([]*entity.Candidature, error) {
	out := make([]*entity.Candidature, 0)
	for _, it := range r.items {
		if it.IngenieurID == ingenieurID {
			out = append(out, copyCand(it))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return pageSlice(out, limit, offset), nil
}

func (r *fakeCandidatureRepo) Update(c *entity.Candidature) error {
	if _, ok := r.items[c.ID]; !ok {
		return domain.ErrNotFound
	}
	r.items[c.ID] = copyCand(c)
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Doublures des ports d'infrastructure
// ──────────────────────────────────────────────────────────────────────────────

type fakeUploader struct {
	uploads []string // "folder/filename"
}

func (u *fakeUploader) UploadBytes(_ context.Context, folder, filename string, _ []byte) (string, error) {
	p := fmt.Sprintf("https://cdn.test/%s/%s", folder, filename)
	u.uploads = append(u.uploads, p)
	return p, nil
}

type sentNotification struct {
	To      string
	Subject string
	Message string
}

type fakeNotifier struct {
	sent []sentNotification
}

func (n *fakeNotifier) Notify(to, subject, message string) {
	n.sent = append(n.sent, sentNotification{To: to, Subject: subject, Message: message})
}

func (n *fakeNotifier) last() *sentNotification {
	if len(n.sent) == 0 {
		return nil
	}
	return &n.sent[len(n.sent)-1]
}

// fakeTxRunner exécute le callback directement sur les repos partagés : les tests
// vérifient l'état final, pas l'atomicité SQL.
type fakeTxRunner struct {
	ab    *fakeAbonnementRepo
	offre *fakeOffreRepo
	ent   *fakeEntrepriseRepo
}

func (t *fakeTxRunner) Run(_ context.Context, fn func(
	abRepo repository.AbonnementRepository,
	offreRepo repository.OffreRepository,
	entRepo repository.EntrepriseRepository,
) error) error {
	return fn(t.ab, t.offre, t.ent)
}

func pageSlice[T any](in []T, limit, offset int) []T {
	if offset >= len(in) {
		return []T{}
	}
	in = in[offset:]
	if limit > 0 && len(in) > limit {
		in = in[:limit]
	}
	return in
}

func overlap(a, b []string) bool {
	for _, x := range a {
		for _, y := range b {
			if x == y {
				return true
			}
		}
	}
	return false
}
