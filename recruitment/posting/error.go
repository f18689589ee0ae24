package posting

import (
	"net/http"

	"github.com/Abraxas-365/recruitboard/pkg/errx"
)

// Error Registry
var ErrRegistry = errx.NewRegistry("POSTING")

// Error codes
var (
	CodePostingNotFound = ErrRegistry.Register("NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Posting not found")
	CodeInvalidSite     = ErrRegistry.Register("INVALID_SITE", errx.TypeValidation, http.StatusBadRequest, "Unknown site")
	CodeInvalidPosition = ErrRegistry.Register("INVALID_POSITION", errx.TypeValidation, http.StatusBadRequest, "Unknown position")
	CodeInvalidStatus   = ErrRegistry.Register("INVALID_STATUS", errx.TypeValidation, http.StatusBadRequest, "Unknown posting status")
	CodeInvalidDate     = ErrRegistry.Register("INVALID_DATE", errx.TypeValidation, http.StatusBadRequest, "Dates must be YYYY-MM-DD")
	CodeInvalidPeriod   = ErrRegistry.Register("INVALID_PERIOD", errx.TypeValidation, http.StatusBadRequest, "End date is before start date")
	CodeWriteFailed     = ErrRegistry.Register("WRITE_FAILED", errx.TypeInternal, http.StatusInternalServerError, "Failed to save posting")
	CodeReadFailed      = ErrRegistry.Register("READ_FAILED", errx.TypeInternal, http.StatusInternalServerError, "Failed to load postings")
)

// Helper functions
func ErrPostingNotFound() *errx.Error {
	return ErrRegistry.New(CodePostingNotFound)
}

func ErrInvalidSite() *errx.Error {
	return ErrRegistry.New(CodeInvalidSite)
}

func ErrInvalidPosition() *errx.Error {
	return ErrRegistry.New(CodeInvalidPosition)
}

func ErrInvalidStatus() *errx.Error {
	return ErrRegistry.New(CodeInvalidStatus)
}

func ErrInvalidDate() *errx.Error {
	return ErrRegistry.New(CodeInvalidDate)
}

func ErrInvalidPeriod() *errx.Error {
	return ErrRegistry.New(CodeInvalidPeriod)
}

func ErrWriteFailed() *errx.Error {
	return ErrRegistry.New(CodeWriteFailed)
}

func ErrReadFailed() *errx.Error {
	return ErrRegistry.New(CodeReadFailed)
}
