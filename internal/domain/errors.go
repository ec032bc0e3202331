package domain

import "errors"

// Erreurs de domaine (sans dépendances externes).
var (
	ErrNotFound           = errors.New("ressource introuvable")
	ErrDuplicate          = errors.New("ressource dupliquée")
	ErrInvalidInput       = errors.New("entrée invalide")
	ErrUnauthorized       = errors.New("non autorisé")
	ErrForbidden          = errors.New("accès refusé")
	ErrConflict           = errors.New("conflit avec l'état courant")
	ErrInvalidState       = errors.New("état incompatible avec l'opération")
	ErrEmailExists        = errors.New("email déjà enregistré")
	ErrNNIExists          = errors.New("NNI déjà enregistré")
	ErrNIFExists          = errors.New("NIF déjà enregistré")
	ErrNotSponsor         = errors.New("l'ingénieur n'est pas dans la liste des références")
	ErrPendingExists      = errors.New("une demande en attente existe déjà")
	ErrAlreadyApplied     = errors.New("candidature déjà soumise pour cette offre")
	ErrQuotaExceeded      = errors.New("quota d'offres actives atteint")
	ErrNoActiveAbonnement = errors.New("aucun abonnement actif")
	ErrDeadlinePassed     = errors.New("la date limite de l'offre est dépassée")
	ErrUploadsDisabled    = errors.New("stockage de fichiers non configuré")
)
