package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/exolab/exoplanet-api/internal/models"
	"github.com/exolab/exoplanet-api/internal/predict"
	"github.com/exolab/exoplanet-api/internal/schema"
)

// Stable error codes an API client can branch on.
const (
	CodeValidationError = "VALIDATION_ERROR"
	CodeMissingField    = "MISSING_FIELD"
	CodeInvalidType     = "INVALID_TYPE"
	CodeOutOfRange      = "OUT_OF_RANGE"
	CodeModelError      = "MODEL_ERROR"
	CodeModelNotLoaded  = "MODEL_NOT_LOADED"
	CodeInternalError   = "INTERNAL_ERROR"
)

// apiError pairs an HTTP status with the envelope error body. Every failure
// path renders through one of these, so nothing escapes unformatted.
type apiError struct {
	Status  int
	Code    string
	Message string
	Details *models.ErrorDetail
}

// toAPIError is the total mapping from failure kind to (status, code).
// It is the single boundary point between internal errors and the wire.
func toAPIError(err error) *apiError {
	var fieldErr *schema.FieldError
	if errors.As(err, &fieldErr) {
		return fieldAPIError(fieldErr)
	}

	if errors.Is(err, predict.ErrModelNotLoaded) {
		return &apiError{
			Status:  http.StatusServiceUnavailable,
			Code:    CodeModelNotLoaded,
			Message: "Model not initialized",
			Details: &models.ErrorDetail{Reason: "Model has not been loaded"},
		}
	}

	var modelErr *predict.ModelError
	if errors.As(err, &modelErr) {
		return &apiError{
			Status:  http.StatusInternalServerError,
			Code:    CodeModelError,
			Message: "Model prediction failed",
			Details: &models.ErrorDetail{Reason: "Model inference failed"},
		}
	}

	return internalAPIError()
}

func fieldAPIError(fe *schema.FieldError) *apiError {
	switch fe.Kind {
	case schema.Missing:
		return &apiError{
			Status:  http.StatusBadRequest,
			Code:    CodeMissingField,
			Message: fmt.Sprintf("Required field missing: %s", fe.Field),
			Details: &models.ErrorDetail{
				Field:      fe.Field,
				Constraint: fe.Constraint,
				Reason:     "Field is required",
			},
		}
	case schema.WrongType:
		return &apiError{
			Status:  http.StatusBadRequest,
			Code:    CodeInvalidType,
			Message: fmt.Sprintf("Field '%s' has invalid type. Expected number", fe.Field),
			Details: &models.ErrorDetail{
				Field:      fe.Field,
				Constraint: fe.Constraint,
				Value:      fe.Value,
				Received:   fe.Value,
			},
		}
	case schema.OutOfRange:
		return &apiError{
			Status:  http.StatusBadRequest,
			Code:    CodeOutOfRange,
			Message: fmt.Sprintf("Value for '%s' is out of range", fe.Field),
			Details: &models.ErrorDetail{
				Field:      fe.Field,
				Constraint: fe.Constraint,
				Value:      fe.Value,
				Received:   fe.Value,
			},
		}
	default:
		return &apiError{
			Status:  http.StatusBadRequest,
			Code:    CodeValidationError,
			Message: "Invalid parameter value",
			Details: &models.ErrorDetail{Field: fe.Field, Constraint: fe.Constraint},
		}
	}
}

// invalidBodyError covers requests whose body is not a JSON object at all.
func invalidBodyError(err error) *apiError {
	return &apiError{
		Status:  http.StatusBadRequest,
		Code:    CodeValidationError,
		Message: "Invalid request body",
		Details: &models.ErrorDetail{Reason: err.Error()},
	}
}

func internalAPIError() *apiError {
	return &apiError{
		Status:  http.StatusInternalServerError,
		Code:    CodeInternalError,
		Message: "An unexpected error occurred",
		Details: &models.ErrorDetail{Reason: "Internal server error"},
	}
}
