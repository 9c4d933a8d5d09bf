package adapter

import "errors"

// Sentinel errors mapped from HTTP status codes by mapHTTPError. Client-side
// services match against them with [errors.Is] to stay transport-agnostic.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("access denied")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
)
