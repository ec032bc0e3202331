package dto

// UpdateIngenieurRequest mise à jour du profil par l'ingénieur lui-même.
// NNI, email et documents passent par leurs endpoints dédiés.
type UpdateIngenieurRequest struct {
	Nom           string   `json:"nom" validate:"required,min=2,max=200"`
	Telephone     string   `json:"telephone" validate:"omitempty,max=30"`
	Domaines      []string `json:"domaines" validate:"required,min=1,dive,max=100"`
	ModesExercice []string `json:"modes_exercice" validate:"omitempty,dive,oneof=personne_physique personne_morale fonctionnaire salarie_prive"`
}

// UpdateEntrepriseRequest mise à jour du profil par l'entreprise elle-même.
type UpdateEntrepriseRequest struct {
	Nom         string `json:"nom" validate:"required,min=2,max=200"`
	Secteur     string `json:"secteur" validate:"required,max=200"`
	Telephone   string `json:"telephone" validate:"omitempty,max=30"`
	Description string `json:"description" validate:"omitempty,max=2000"`
}
