package http

import (
	"shift-calendar-sync/internal/roster"
	pkgErrors "shift-calendar-sync/pkg/errors"
)

// mapError translates domain errors into HTTP errors.
func (h *handler) mapError(err error) error {
	switch err {
	case roster.ErrLoginFailed:
		return pkgErrors.NewUnauthorizedError("Login failed!")
	case roster.ErrNoSession:
		return pkgErrors.NewUnauthorizedError("not logged in: call /login first")
	case roster.ErrRotaUnavailable:
		return pkgErrors.NewUpstreamError("Failed to get rota ID.")
	case roster.ErrScheduleUnavailable:
		return pkgErrors.NewUpstreamError("Failed to fetch schedule!")
	default:
		return pkgErrors.NewInternalError("internal error")
	}
}
