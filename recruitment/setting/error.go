package setting

import (
	"net/http"

	"github.com/Abraxas-365/recruitboard/pkg/errx"
)

// Error Registry
var ErrRegistry = errx.NewRegistry("SETTING")

// Error codes
var (
	CodeGoalNotFound        = ErrRegistry.Register("GOAL_NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Goal not found")
	CodeSiteSettingNotFound = ErrRegistry.Register("SITE_SETTING_NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Site setting not found")
	CodeInvalidYearMonth    = ErrRegistry.Register("INVALID_YEAR_MONTH", errx.TypeValidation, http.StatusBadRequest, "Month must be YYYY-MM")
	CodeInvalidSite         = ErrRegistry.Register("INVALID_SITE", errx.TypeValidation, http.StatusBadRequest, "Unknown site")
	CodeInvalidDate         = ErrRegistry.Register("INVALID_DATE", errx.TypeValidation, http.StatusBadRequest, "Dates must be YYYY-MM-DD")
	CodeWriteFailed         = ErrRegistry.Register("WRITE_FAILED", errx.TypeInternal, http.StatusInternalServerError, "Failed to save settings")
	CodeReadFailed          = ErrRegistry.Register("READ_FAILED", errx.TypeInternal, http.StatusInternalServerError, "Failed to load settings")
)

// Helper functions
func ErrGoalNotFound() *errx.Error {
	return ErrRegistry.New(CodeGoalNotFound)
}

func ErrSiteSettingNotFound() *errx.Error {
	return ErrRegistry.New(CodeSiteSettingNotFound)
}

func ErrInvalidYearMonth() *errx.Error {
	return ErrRegistry.New(CodeInvalidYearMonth)
}

func ErrInvalidSite() *errx.Error {
	return ErrRegistry.New(CodeInvalidSite)
}

func ErrInvalidDate() *errx.Error {
	return ErrRegistry.New(CodeInvalidDate)
}

func ErrWriteFailed() *errx.Error {
	return ErrRegistry.New(CodeWriteFailed)
}

func ErrReadFailed() *errx.Error {
	return ErrRegistry.New(CodeReadFailed)
}
