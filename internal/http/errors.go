package httpx

import (
	"errors"
	"net/http"

	apperrors "github.com/pulsehub/activity-feed-api/internal/errors"
)

// WriteAppError maps the application error taxonomy onto HTTP statuses and
// writes the JSON error body. Retention violations get 402 so clients can
// distinguish "upgrade your plan" from a plain bad request; integrity faults
// stay 500 because a missing tenant on an authenticated path is a server-side
// inconsistency, not a caller mistake.
func WriteAppError(w http.ResponseWriter, err error) {
	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "internal", Err: err})
		return
	}

	WriteError(w, ErrorParams{Code: statusForCode(appErr.Code), ErrCode: string(appErr.Code), Err: appErr})
}

func statusForCode(code apperrors.ErrorCode) int {
	switch code {
	case apperrors.ErrCodeValidation:
		return http.StatusBadRequest
	case apperrors.ErrCodeRetention:
		return http.StatusPaymentRequired
	case apperrors.ErrCodeNotFound:
		return http.StatusNotFound
	case apperrors.ErrCodeTimeout:
		return http.StatusGatewayTimeout
	case apperrors.ErrCodeCanceled:
		return http.StatusServiceUnavailable
	case apperrors.ErrCodeIntegrity, apperrors.ErrCodeInternal:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
