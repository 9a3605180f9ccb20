package usecase

import "errors"

var (
	ErrNotFound  = errors.New("not found")
	ErrConflict  = errors.New("conflict")
	ErrForbidden = errors.New("forbidden")
	ErrExpired   = errors.New("expired")

	ErrInvalidInvite = errors.New("invalid invitation")
)
