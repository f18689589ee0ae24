package viewrecord

import (
	"net/http"

	"github.com/Abraxas-365/recruitboard/pkg/errx"
)

// Error Registry
var ErrRegistry = errx.NewRegistry("VIEW_RECORD")

// Error codes
var (
	CodeRecordNotFound  = ErrRegistry.Register("NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "View record not found")
	CodeInvalidDate     = ErrRegistry.Register("INVALID_DATE", errx.TypeValidation, http.StatusBadRequest, "Dates must be YYYY-MM-DD")
	CodePostingNotFound = ErrRegistry.Register("POSTING_NOT_FOUND", errx.TypeValidation, http.StatusBadRequest, "Posting does not exist")
	CodeBatchFailed     = ErrRegistry.Register("BATCH_FAILED", errx.TypeInternal, http.StatusInternalServerError, "Failed to save daily view counts")
	CodeWriteFailed     = ErrRegistry.Register("WRITE_FAILED", errx.TypeInternal, http.StatusInternalServerError, "Failed to save view record")
	CodeReadFailed      = ErrRegistry.Register("READ_FAILED", errx.TypeInternal, http.StatusInternalServerError, "Failed to load view records")
)

// Helper functions
func ErrRecordNotFound() *errx.Error {
	return ErrRegistry.New(CodeRecordNotFound)
}

func ErrInvalidDate() *errx.Error {
	return ErrRegistry.New(CodeInvalidDate)
}

func ErrPostingNotFound() *errx.Error {
	return ErrRegistry.New(CodePostingNotFound)
}

func ErrBatchFailed() *errx.Error {
	return ErrRegistry.New(CodeBatchFailed)
}

func ErrWriteFailed() *errx.Error {
	return ErrRegistry.New(CodeWriteFailed)
}

func ErrReadFailed() *errx.Error {
	return ErrRegistry.New(CodeReadFailed)
}
