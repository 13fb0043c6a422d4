package domain

import "errors"

// Domain errors.
var (
	ErrLocaleNotLoaded  = errors.New("locale non chargée")
	ErrDocumentNotFound = errors.New("document de traduction introuvable")
	ErrInvalidDocument  = errors.New("document de traduction invalide")
)
