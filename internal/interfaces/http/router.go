package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/omigec/plateforme-api/internal/application/auth"
	"github.com/omigec/plateforme-api/internal/application/usecase"
	"github.com/omigec/plateforme-api/pkg/jwt"
)

// RouterDeps dépendances du router.
type RouterDeps struct {
	AuthUC         *auth.AuthUseCase
	IngenieurUC    *usecase.IngenieurUseCase
	EntrepriseUC   *usecase.EntrepriseUseCase
	VerificationUC *usecase.VerificationUseCase
	AbonnementUC   *usecase.AbonnementUseCase
	OffreUC        *usecase.OffreUseCase
	CandidatureUC  *usecase.CandidatureUseCase
	RechercheUC    *usecase.RechercheUseCase
	ContenuUC      *usecase.ContenuUseCase
	JWTSecret      string
}

// Router enregistre les routes de l'API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	authHandler := NewAuthHandler(deps.AuthUC)
	ingHandler := NewIngenieurHandler(deps.IngenieurUC, deps.VerificationUC)
	entHandler := NewEntrepriseHandler(deps.EntrepriseUC)
	verifHandler := NewVerificationHandler(deps.VerificationUC)
	abHandler := NewAbonnementHandler(deps.AbonnementUC)
	offreHandler := NewOffreHandler(deps.OffreUC)
	candHandler := NewCandidatureHandler(deps.CandidatureUC)
	rechercheHandler := NewRechercheHandler(deps.RechercheUC)
	contenuHandler := NewContenuHandler(deps.ContenuUC)

	// Public
	authGroup := api.Group("/auth")
	authGroup.Post("/register/ingenieur", authHandler.RegisterIngenieur)
	authGroup.Post("/register/entreprise", authHandler.RegisterEntreprise)
	authGroup.Post("/login", authHandler.Login)

	api.Get("/recherche", rechercheHandler.Search)
	api.Get("/offres", offreHandler.List)
	api.Get("/offres/:id", offreHandler.GetByID)
	api.Get("/articles", contenuHandler.ListArticles)
	api.Get("/articles/:id", contenuHandler.GetArticle)
	api.Get("/partenaires", contenuHandler.ListPartenaires)
	api.Post("/contact", contenuHandler.CreateMessage)

	// Authentifié (tous rôles)
	authed := api.Group("/", AuthMiddleware(deps.JWTSecret))
	authed.Get("/references", verifHandler.ListReferences)

	// Ingénieur (l'admin est lui-même un ingénieur)
	ing := authed.Group("/ingenieurs", RequireRole(jwt.RoleIngenieur, jwt.RoleAdmin))
	ing.Get("/me", ingHandler.Me)
	ing.Put("/me", ingHandler.UpdateMe)
	ing.Post("/me/documents", ingHandler.UploadDocuments)
	ing.Get("/me/attestation", ingHandler.Attestation)

	verif := authed.Group("/verifications", RequireRole(jwt.RoleIngenieur, jwt.RoleAdmin))
	verif.Post("/", verifHandler.SelectReference)
	verif.Post("/repondre", verifHandler.RespondReference)
	verif.Get("/recues", verifHandler.ListForParrain)
	verif.Get("/mes-demandes", verifHandler.ListForDemandeur)
	verif.Get("/en-cours", verifHandler.DemandeEnCours)

	authed.Get("/candidatures", RequireRole(jwt.RoleIngenieur, jwt.RoleAdmin), candHandler.ListMine)
	authed.Post("/offres/:id/vue", RequireRole(jwt.RoleIngenieur, jwt.RoleAdmin), offreHandler.RegisterView)
	authed.Post("/offres/:id/candidatures", RequireRole(jwt.RoleIngenieur, jwt.RoleAdmin), candHandler.Apply)

	// Entreprise
	ent := authed.Group("/entreprises", RequireRole(jwt.RoleEntreprise))
	ent.Get("/me", entHandler.Me)
	ent.Put("/me", entHandler.UpdateMe)
	ent.Post("/me/logo", entHandler.UploadLogo)
	ent.Get("/me/offres", offreHandler.ListMine)

	ab := authed.Group("/abonnements", RequireRole(jwt.RoleEntreprise))
	ab.Post("/", abHandler.Request)
	ab.Get("/", abHandler.ListMine)
	ab.Get("/actif", abHandler.GetActif)

	authed.Post("/offres", RequireRole(jwt.RoleEntreprise), offreHandler.Create)
	authed.Put("/offres/:id", RequireRole(jwt.RoleEntreprise), offreHandler.Update)
	authed.Delete("/offres/:id", RequireRole(jwt.RoleEntreprise), offreHandler.Delete)
	authed.Get("/offres/:id/candidatures", RequireRole(jwt.RoleEntreprise), candHandler.ListByOffre)
	authed.Put("/candidatures/:id", RequireRole(jwt.RoleEntreprise), candHandler.UpdateStatus)

	// Back-office admin
	admin := authed.Group("/admin", RequireRole(jwt.RoleAdmin))
	admin.Get("/ingenieurs", ingHandler.List)
	admin.Get("/ingenieurs/:id", ingHandler.GetByID)
	admin.Post("/ingenieurs/:id/suspendre", ingHandler.Suspend)
	admin.Delete("/ingenieurs/:id", ingHandler.Delete)
	admin.Post("/verifications/documents", verifHandler.VerifyDocs)
	admin.Post("/references", verifHandler.AddReference)
	admin.Delete("/references/:id", verifHandler.RemoveReference)
	admin.Get("/entreprises", entHandler.List)
	admin.Post("/entreprises/:id/valider", entHandler.Validate)
	admin.Post("/entreprises/:id/suspendre", entHandler.Suspend)
	admin.Delete("/entreprises/:id", entHandler.Delete)
	admin.Get("/abonnements/pending", abHandler.ListPending)
	admin.Post("/abonnements/:id/approuver", abHandler.Approve)
	admin.Post("/abonnements/:id/rejeter", abHandler.Reject)
	admin.Post("/abonnements/:id/desactiver", abHandler.Deactivate)
	admin.Post("/articles", contenuHandler.CreateArticle)
	admin.Delete("/articles/:id", contenuHandler.DeleteArticle)
	admin.Post("/partenaires", contenuHandler.CreatePartenaire)
	admin.Delete("/partenaires/:id", contenuHandler.DeletePartenaire)
	admin.Get("/contact", contenuHandler.ListMessages)
	admin.Post("/contact/:id/lu", contenuHandler.MarquerLu)
}
