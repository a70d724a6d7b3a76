package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-marketplace/internal/httperr"
	"github.com/BruksfildServices01/barber-marketplace/internal/logger"
	"github.com/BruksfildServices01/barber-marketplace/internal/middleware"
)

var businessStatus = map[string]int{
	"unauthorized":          http.StatusUnauthorized,
	"not_a_customer":        http.StatusForbidden,
	"not_a_barber":          http.StatusForbidden,
	"not_an_admin":          http.StatusForbidden,
	"slot_taken":            http.StatusConflict,
	"email_taken":           http.StatusConflict,
	"appointment_not_found": http.StatusNotFound,
	"barber_not_found":      http.StatusNotFound,
	"service_not_found":     http.StatusNotFound,
}

// respondError renders business errors with their mapped status and hides
// anything else behind a 500 with the given message, logging the cause.
func respondError(c *gin.Context, err error, failCode, failMessage string) {
	if code, ok := httperr.BusinessCode(err); ok {
		status, found := businessStatus[code]
		if !found {
			status = http.StatusBadRequest
		}
		httperr.Write(c, status, code, httperr.Message(code))
		return
	}

	logger.L().Error().
		Err(err).
		Str("request_id", middleware.GetRequestID(c)).
		Str("path", c.FullPath()).
		Uint("user_id", middleware.CurrentIdentity(c).UserID).
		Msg(failCode)

	httperr.Internal(c, failCode, failMessage)
}
