package domain

import (
	"errors"
	"sort"
	"strings"
)

// EntityType is the discriminator reported in every API representation.
type EntityType string

const (
	EntityTypeIssuer     EntityType = "Issuer"
	EntityTypeBadgeClass EntityType = "BadgeClass"
	EntityTypeAssertion  EntityType = "Assertion"
)

var ErrIssuerNotFound = errors.New("issuer not found")
var ErrBadgeClassNotFound = errors.New("badgeclass not found")
var ErrAssertionNotFound = errors.New("assertion not found")
var ErrAlreadyRevoked = errors.New("assertion already revoked")
var ErrForbidden = errors.New("access forbidden")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")

// FieldErrors is a validation failure keyed by external field name. It is the
// only error type that reaches clients with per-field detail; everything else
// maps to a generic envelope.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+": "+e[f])
	}
	return strings.Join(parts, "; ")
}

// NewFieldError builds a single-field validation error.
func NewFieldError(field, message string) FieldErrors {
	return FieldErrors{field: message}
}
