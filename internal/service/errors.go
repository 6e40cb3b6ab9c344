package service

import "errors"

var (
	// ErrRecipeNotFound is returned when the referenced recipe id does not exist
	ErrRecipeNotFound = errors.New("recipe not found")

	// ErrInvalidType is returned when a type filter is not one of food or drink.
	// An invalid type is a validation failure, not an empty result set.
	ErrInvalidType = errors.New("invalid type parameter")
)
