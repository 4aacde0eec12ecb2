package http

import (
	"errors"

	"krishimitra-backend/internal/advisory"
	"krishimitra-backend/internal/cropindex"
	pkgErrors "krishimitra-backend/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, advisory.ErrEmptyQuery),
		errors.Is(err, advisory.ErrEmptyAadhaar):
		return pkgErrors.NewHTTPError(400, err.Error())
	case errors.Is(err, advisory.ErrFarmerNotFound):
		return pkgErrors.NewHTTPError(404, "no farmer registered with this aadhaar number")
	case errors.Is(err, advisory.ErrNoSoilRecords):
		return pkgErrors.NewHTTPError(404, "no soil health card on record for this farmer")
	case errors.Is(err, advisory.ErrUnknownSurvey):
		return pkgErrors.NewHTTPError(400, "survey number does not match any plot on record")
	case errors.Is(err, advisory.ErrCropNotFound):
		return pkgErrors.NewHTTPError(422, "crop not recognized, please check the spelling")
	case errors.Is(err, cropindex.ErrEncoding):
		return pkgErrors.NewHTTPError(422, "insufficient or invalid soil data for a recommendation")
	default:
		return pkgErrors.NewHTTPError(500, "something went wrong, please try again")
	}
}
