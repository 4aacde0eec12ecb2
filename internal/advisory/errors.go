package advisory

import "errors"

// Domain-specific errors for the advisory package.
var (
	ErrEmptyQuery     = errors.New("query text is empty")
	ErrEmptyAadhaar   = errors.New("aadhaar number is empty")
	ErrFarmerNotFound = errors.New("farmer not found")
	ErrNoSoilRecords  = errors.New("no soil records for farmer")
	ErrUnknownSurvey  = errors.New("chosen survey number not found")
	ErrCropNotFound   = errors.New("crop not recognized")
)
