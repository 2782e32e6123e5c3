package http

import (
	"errors"

	"deepwork-scheduler/internal/scheduler"
	pkgErrors "deepwork-scheduler/pkg/errors"
)

// errSessionNotFound is delivery-local: the domain has no notion of session
// lookup, only the HTTP surface does.
var errSessionNotFound = errors.New("scheduling session not found or expired")

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, scheduler.ErrMissingDate),
		errors.Is(err, scheduler.ErrInvalidSlot),
		errors.Is(err, scheduler.ErrEmptySelection):
		return pkgErrors.NewHTTPError(400, err.Error())
	case errors.Is(err, errSessionNotFound):
		return pkgErrors.NewHTTPError(404, err.Error())
	case errors.Is(err, scheduler.ErrCommitFailed):
		return pkgErrors.NewHTTPError(502, err.Error())
	default:
		return pkgErrors.NewHTTPError(500, "internal error")
	}
}
