package domain

import "errors"

// Domain errors. Callers wrap them with context and match with errors.Is.
var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrInvalidTarget       = errors.New("invalid target amount")
	ErrInvalidContribution = errors.New("invalid monthly contribution")
	ErrNotFound            = errors.New("not found")
	ErrAlreadyExists       = errors.New("already exists")
	ErrFetch               = errors.New("price fetch failed")
	ErrRefreshInFlight     = errors.New("price refresh already in flight")
	ErrFormClosed          = errors.New("goal form is closed")
	ErrInvalidTransition   = errors.New("invalid step transition")
	ErrUnauthenticated     = errors.New("no active session")
)
