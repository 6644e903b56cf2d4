package domain

import "errors"

var (
	ErrEmptySpecURL   = errors.New("openapi spec url cannot be empty")
	ErrInvalidSpecURL = errors.New("openapi spec url must be an http(s) URL, a file:// URL or a local path")
)
