package http

import (
	"errors"
	"net/http"

	"backoffice/internal/core/domain/model/order"
	"backoffice/internal/pkg/errs"
)

// statusCodeFor classifies an application error into an HTTP status.
// Transition errors are checked first: they describe a valid request the order cannot accept.
func statusCodeFor(err error) int {
	switch {
	case errors.Is(err, order.ErrInvalidTransition):
		return http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, errs.ErrStoreUnavailable):
		return http.StatusServiceUnavailable
	case errors.Is(err, errs.ErrDataIsCorrupted):
		return http.StatusInternalServerError
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
