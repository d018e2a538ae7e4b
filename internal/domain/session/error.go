package session

import "errors"

var (
	ErrEmptyCredential  = errors.New("credential is empty")
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrUnauthorized     = errors.New("credential rejected by remote api")
	ErrNotFound         = errors.New("session not found")
)
