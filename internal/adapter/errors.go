package adapter

import "errors"

// Sentinel errors mapped from HTTP status codes by mapHTTPError. Callers use
// [errors.Is] to branch on them without knowing about status codes.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrValidation          = errors.New("validation failed")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")

	// ErrFileTooLarge is a client-side rejection: the file exceeds the
	// configured upload ceiling and no request was issued.
	ErrFileTooLarge = errors.New("file exceeds upload size limit")
)
