package dashboard

import (
	"net/http"

	"github.com/Abraxas-365/recruitboard/pkg/errx"
)

// Error Registry
var ErrRegistry = errx.NewRegistry("DASHBOARD")

// Error codes
var (
	CodePreferencesNotFound = ErrRegistry.Register("PREFERENCES_NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "No saved preferences")
	CodeInvalidGroupBy      = ErrRegistry.Register("INVALID_GROUP_BY", errx.TypeValidation, http.StatusBadRequest, "Unknown grouping")
	CodeInvalidSort         = ErrRegistry.Register("INVALID_SORT", errx.TypeValidation, http.StatusBadRequest, "Unknown sort order")
	CodeInvalidDate         = ErrRegistry.Register("INVALID_DATE", errx.TypeValidation, http.StatusBadRequest, "Dates must be YYYY-MM-DD")
	CodeReadFailed          = ErrRegistry.Register("READ_FAILED", errx.TypeInternal, http.StatusInternalServerError, "Failed to load dashboard data")
	CodePreferencesFailed   = ErrRegistry.Register("PREFERENCES_FAILED", errx.TypeInternal, http.StatusInternalServerError, "Failed to save preferences")
	CodeArchiveFailed       = ErrRegistry.Register("ARCHIVE_FAILED", errx.TypeExternal, http.StatusBadGateway, "Failed to archive report")
	CodeArchiveDisabled     = ErrRegistry.Register("ARCHIVE_DISABLED", errx.TypeBusiness, http.StatusConflict, "Report archive is not configured")
)

// Helper functions
func ErrPreferencesNotFound() *errx.Error {
	return ErrRegistry.New(CodePreferencesNotFound)
}

func ErrInvalidGroupBy() *errx.Error {
	return ErrRegistry.New(CodeInvalidGroupBy)
}

func ErrInvalidSort() *errx.Error {
	return ErrRegistry.New(CodeInvalidSort)
}

func ErrInvalidDate() *errx.Error {
	return ErrRegistry.New(CodeInvalidDate)
}

func ErrReadFailed() *errx.Error {
	return ErrRegistry.New(CodeReadFailed)
}

func ErrPreferencesFailed() *errx.Error {
	return ErrRegistry.New(CodePreferencesFailed)
}

func ErrArchiveFailed() *errx.Error {
	return ErrRegistry.New(CodeArchiveFailed)
}

func ErrArchiveDisabled() *errx.Error {
	return ErrRegistry.New(CodeArchiveDisabled)
}
