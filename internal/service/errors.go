package service

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation is the base of every input-validation failure; wrap it
	// with the field detail so handlers can map the whole family to 400.
	ErrValidation = errors.New("validation failed")

	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrEmailTaken           = errors.New("an account with this email already exists")
	ErrForbidden            = errors.New("not allowed to modify this resource")
	ErrEquipmentUnavailable = errors.New("equipment is not available for rent")
)

func validationErr(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}
