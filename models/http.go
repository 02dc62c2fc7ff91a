package models

// APIError is the error envelope the backend returns for 4xx/5xx responses.
// Detail is human-readable and is what forms display inline.
type APIError struct {
	Detail string `json:"detail"`
}
