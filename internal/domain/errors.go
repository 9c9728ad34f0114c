package domain

import "errors"

var (
	// ErrNegativeAmount is returned when an income or rent figure is below zero
	ErrNegativeAmount = errors.New("amount cannot be negative")
	// ErrInvalidRules wraps every rules validation failure
	ErrInvalidRules = errors.New("invalid PAYE rules")
	// ErrDeclarationNotFound is returned when a named declaration is missing
	ErrDeclarationNotFound = errors.New("declaration not found")
)
