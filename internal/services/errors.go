package services

import "errors"

var (
	// ErrEmailDelivery means the activation mail could not be sent and
	// the just-created user row was rolled back.
	ErrEmailDelivery = errors.New("failed to deliver activation email")

	// ErrInvalidActivation covers both a wrong token and an already
	// active account; callers must not distinguish the two.
	ErrInvalidActivation = errors.New("account is either active or the token is invalid")
)
