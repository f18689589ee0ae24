package applicant

import (
	"net/http"

	"github.com/Abraxas-365/recruitboard/pkg/errx"
)

// Error Registry
var ErrRegistry = errx.NewRegistry("APPLICANT")

// Error codes
var (
	CodeApplicantNotFound = ErrRegistry.Register("NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Applicant not found")
	CodeInvalidStatus     = ErrRegistry.Register("INVALID_STATUS", errx.TypeValidation, http.StatusBadRequest, "Unknown applicant status")
	CodeInvalidGender     = ErrRegistry.Register("INVALID_GENDER", errx.TypeValidation, http.StatusBadRequest, "Unknown gender")
	CodeInvalidDate       = ErrRegistry.Register("INVALID_DATE", errx.TypeValidation, http.StatusBadRequest, "Dates must be YYYY-MM-DD")
	CodePostingNotFound   = ErrRegistry.Register("POSTING_NOT_FOUND", errx.TypeValidation, http.StatusBadRequest, "Applied posting does not exist")
	CodeWriteFailed       = ErrRegistry.Register("WRITE_FAILED", errx.TypeInternal, http.StatusInternalServerError, "Failed to save applicant")
	CodeReadFailed        = ErrRegistry.Register("READ_FAILED", errx.TypeInternal, http.StatusInternalServerError, "Failed to load applicants")
)

// Helper functions
func ErrApplicantNotFound() *errx.Error {
	return ErrRegistry.New(CodeApplicantNotFound)
}

func ErrInvalidStatus() *errx.Error {
	return ErrRegistry.New(CodeInvalidStatus)
}

func ErrInvalidGender() *errx.Error {
	return ErrRegistry.New(CodeInvalidGender)
}

func ErrInvalidDate() *errx.Error {
	return ErrRegistry.New(CodeInvalidDate)
}

func ErrPostingNotFound() *errx.Error {
	return ErrRegistry.New(CodePostingNotFound)
}

func ErrWriteFailed() *errx.Error {
	return ErrRegistry.New(CodeWriteFailed)
}

func ErrReadFailed() *errx.Error {
	return ErrRegistry.New(CodeReadFailed)
}
