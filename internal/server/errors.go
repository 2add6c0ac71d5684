// Package server provides the HTTP REST API for the interview coach.
package server

import (
	"errors"
	"net/http"

	"github.com/jonathan/interview-coach/internal/gateway"
	"github.com/jonathan/interview-coach/internal/session"
)

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, session.ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, session.ErrSessionBusy),
		errors.Is(err, session.ErrSessionNotActive):
		return http.StatusConflict
	}

	var (
		sessionValidation *session.ValidationError
		gatewayValidation *gateway.ValidationError
		apiCall           *gateway.APICallError
		parse             *gateway.ParseError
	)
	switch {
	case errors.As(err, &sessionValidation), errors.As(err, &gatewayValidation):
		return http.StatusBadRequest
	case errors.As(err, &apiCall), errors.As(err, &parse):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
