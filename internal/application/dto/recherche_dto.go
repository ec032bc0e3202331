package dto

// RechercheResponse résultat de la vérification publique d'un ingénieur.
// found=false couvre aussi le profil validé dont la cotisation est expirée :
// l'extérieur ne distingue pas "inconnu" de "inactif".
type RechercheResponse struct {
	Found     bool                   `json:"found"`
	Status    string                 `json:"status"` // "active" | "not_found"
	Ingenieur *RecherchePublicProfil `json:"ingenieur,omitempty"`
}

// RecherchePublicProfil sous-ensemble public du profil (pas de contact direct, pas de documents).
type RecherchePublicProfil struct {
	NNI        string   `json:"nni"`
	Nom        string   `json:"nom"`
	Domaines   []string `json:"domaines"`
	Universite string   `json:"universite"`
	Pays       string   `json:"pays"`
}
