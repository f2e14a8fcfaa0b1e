package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"

	"airport-booking/internal/apperror"
	"airport-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// handleServiceError maps the apperror kinds to a status code and writes the envelope.
func handleServiceError(log *zap.Logger, w http.ResponseWriter, err error, operation string) {
	var (
		rangeErr      *apperror.RangeValidationError
		validationErr *apperror.ValidationError
		conflictErr   *apperror.ConflictError
		notFoundErr   *apperror.NotFoundError
		authzErr      *apperror.AuthorizationError
	)

	switch {
	case errors.Is(err, apperror.ErrEmptyOrder):
		log.Warn(operation+" failed - empty order", zap.String("operation", operation))
		utils.ResponseBadRequest(w, err.Error(), map[string]string{"tickets": err.Error()})

	case errors.As(err, &rangeErr):
		log.Warn(operation+" failed - seat out of range", zap.Error(err), zap.String("operation", operation))
		utils.ResponseBadRequest(w, "Validation failed", rangeErr.Fields())

	case errors.As(err, &validationErr):
		log.Warn(operation+" validation failed", zap.Error(err), zap.String("operation", operation))
		utils.ResponseBadRequest(w, "Validation failed", validationErr.Fields())

	case errors.As(err, &authzErr):
		log.Warn(operation+" failed - forbidden", zap.Error(err), zap.String("operation", operation))
		utils.ResponseForbidden(w, err.Error())

	case errors.As(err, &notFoundErr):
		log.Warn(operation+" failed - not found", zap.Error(err), zap.String("operation", operation))
		utils.ResponseNotFound(w, err.Error(), notFoundErr.Fields())

	case errors.As(err, &conflictErr):
		log.Warn(operation+" failed - conflict", zap.Error(err), zap.String("operation", operation))
		utils.ResponseConflict(w, err.Error(), conflictErr.Fields())

	default:
		log.Error(operation+" failed - internal error", zap.Error(err), zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}

// decodeAndValidate reads a JSON body into dst and runs its validate tags.
// It writes the 400 response itself and reports false when the request is unusable.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return false
	}

	if validationErrors := utils.ValidateStruct(dst); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return false
	}
	return true
}

// pathID parses the {id} URL parameter.
func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := utils.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid id", map[string]string{"id": err.Error()})
		return 0, false
	}
	return id, true
}
