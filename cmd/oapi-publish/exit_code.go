package main

import (
	"errors"

	"github.com/na2na-p/oapi-publish/internal/config"
	"github.com/na2na-p/oapi-publish/internal/domain"
	"github.com/na2na-p/oapi-publish/internal/usecase"
)

const (
	exitOK           = 0
	exitFailure      = 1
	exitInvalidInput = 2
	exitUnauthorized = 3
	exitDownstream   = 4
)

func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, usecase.ErrInvalidInput), errors.Is(err, config.ErrInvalidConfig):
		return exitInvalidInput
	case errors.Is(err, domain.ErrUnauthorized),
		errors.Is(err, domain.ErrMalformedAllowlist),
		errors.Is(err, usecase.ErrAllowlistUnavailable),
		errors.Is(err, usecase.ErrCallerUnresolved):
		return exitUnauthorized
	case errors.Is(err, usecase.ErrDownstreamFailure),
		errors.Is(err, usecase.ErrSpecFetchFailed),
		errors.Is(err, usecase.ErrInvalidSpec),
		errors.Is(err, usecase.ErrNoPublishCredential),
		errors.Is(err, usecase.ErrHealthCheckFailed):
		return exitDownstream
	default:
		return exitFailure
	}
}

// failureStage はジョブサマリーに表示する失敗段階
func failureStage(err error) string {
	switch exitCode(err) {
	case exitInvalidInput:
		return "Invalid input"
	case exitUnauthorized:
		return "Authorization"
	case exitDownstream:
		switch {
		case errors.Is(err, usecase.ErrSpecFetchFailed), errors.Is(err, usecase.ErrInvalidSpec):
			return "OpenAPI document"
		case errors.Is(err, usecase.ErrHealthCheckFailed):
			return "Preflight"
		default:
			return "Generate and publish"
		}
	default:
		return "Unexpected error"
	}
}
