package http

import (
	"errors"

	"shift-calendar-sync/internal/calsync"
	"shift-calendar-sync/internal/roster"
	pkgErrors "shift-calendar-sync/pkg/errors"
)

// mapError translates domain errors into HTTP errors. The
// service-account path reuses the roster use case, so its errors
// surface here as well.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, calsync.ErrMissingAccessToken):
		return pkgErrors.NewUnauthorizedError("Access token is missing!")
	case errors.Is(err, calsync.ErrNoToken):
		return pkgErrors.NewUnauthorizedError("no stored credentials: complete Google authorization first")
	case errors.Is(err, calsync.ErrBadState):
		return pkgErrors.NewBadRequestError("invalid state parameter")
	case errors.Is(err, calsync.ErrExchangeFailed):
		return pkgErrors.NewUpstreamError("Google authorization failed")
	case errors.Is(err, roster.ErrNoSession):
		return pkgErrors.NewUnauthorizedError("not logged in: call /login first")
	case errors.Is(err, roster.ErrRotaUnavailable):
		return pkgErrors.NewUpstreamError("Failed to get rota ID.")
	case errors.Is(err, roster.ErrScheduleUnavailable):
		return pkgErrors.NewUpstreamError("Failed to fetch schedule!")
	default:
		return pkgErrors.NewInternalError("internal error")
	}
}
