package dto

import "github.com/go-playground/validator/v10"

var validate = validator.New()

// Validate exécute les tags `validate` d'un DTO. Retourne la première erreur rencontrée.
func Validate(s any) error {
	return validate.Struct(s)
}
