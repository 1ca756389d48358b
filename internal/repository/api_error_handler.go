package repository

import (
	"errors"
	"net/http"

	"google.golang.org/api/googleapi"

	apperrors "github.com/Taichi-iskw/yt-channel/internal/errors"
)

// HandleAPIError converts YouTube Data API and transport errors to an EXTERNAL_ERROR AppError.
// Details carry the upstream error payload when the API returned one, otherwise the transport message.
func HandleAPIError(err error, operation string) *apperrors.AppError {
	if err == nil {
		return nil
	}

	// Check if it's an API error response
	var apiErr *googleapi.Error
	if !errors.As(err, &apiErr) {
		// Transport failure: no upstream payload to forward
		return apperrors.Wrap(err, apperrors.CodeExternal, operation).WithDetails(err.Error())
	}

	details := apiErr.Body
	if details == "" {
		details = apiErr.Message
	}
	if details == "" {
		details = err.Error()
	}

	return apperrors.Wrap(err, apperrors.CodeExternal, describeAPIError(apiErr, operation)).WithDetails(details)
}

// describeAPIError provides specific messages for common YouTube Data API failures
func describeAPIError(apiErr *googleapi.Error, operation string) string {
	switch apiErr.Code {
	case http.StatusBadRequest:
		if hasReason(apiErr, "keyInvalid") {
			return operation + ": API key is invalid"
		}
		return operation + ": request rejected by YouTube Data API"

	case http.StatusForbidden:
		switch {
		case hasReason(apiErr, "quotaExceeded"), hasReason(apiErr, "dailyLimitExceeded"):
			return operation + ": YouTube Data API quota exceeded"
		case hasReason(apiErr, "accessNotConfigured"):
			return operation + ": YouTube Data API is not enabled for this key"
		default:
			return operation + ": access to YouTube Data API denied"
		}

	case http.StatusNotFound:
		return operation + ": resource not found upstream"

	default:
		if apiErr.Code >= http.StatusInternalServerError {
			return operation + ": YouTube Data API unavailable"
		}
		return operation
	}
}

func hasReason(apiErr *googleapi.Error, reason string) bool {
	for _, item := range apiErr.Errors {
		if item.Reason == reason {
			return true
		}
	}
	return false
}
