// Package httperr maps domain error kinds onto HTTP responses.
package httperr

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/GlebRadaev/rewardledger/internal/domain"
	"github.com/GlebRadaev/rewardledger/pkg/utils"
)

// Status returns the HTTP status for err and the message safe to show to the client.
func Status(err error) (int, string) {
	var capErr *domain.ProfitCapError
	switch {
	case errors.As(err, &capErr):
		return http.StatusUnprocessableEntity, capErr.Error()
	case errors.Is(err, domain.ErrInsufficientBalance):
		return http.StatusPaymentRequired, err.Error()
	case errors.Is(err, domain.ErrValidation):
		return http.StatusUnprocessableEntity, err.Error()
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, domain.ErrInvalidState):
		return http.StatusConflict, err.Error()
	case errors.Is(err, domain.ErrStoreUnavailable):
		return http.StatusServiceUnavailable, "Service temporarily unavailable"
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}

func Respond(w http.ResponseWriter, err error) {
	code, msg := Status(err)
	if code >= http.StatusInternalServerError {
		zap.L().Error("request failed", zap.Int("status", code), zap.Error(err))
	}
	utils.RespondWithError(w, code, msg)
}
