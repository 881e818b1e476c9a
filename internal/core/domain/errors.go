package domain

import "errors"

var ErrTokenMalformed = errors.New("malformed bearer token")
var ErrSessionExpired = errors.New("session expired")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrInvalidTransition = errors.New("invalid status transition")
var ErrNotFound = errors.New("resource not found")
var ErrForbidden = errors.New("access forbidden")
