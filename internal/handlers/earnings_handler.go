package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-marketplace/internal/httpresp"
	"github.com/BruksfildServices01/barber-marketplace/internal/middleware"
	ucEarnings "github.com/BruksfildServices01/barber-marketplace/internal/usecase/earnings"
)

type EarningsHandler struct {
	summary *ucEarnings.GetEarningsSummary
}

func NewEarningsHandler(summary *ucEarnings.GetEarningsSummary) *EarningsHandler {
	return &EarningsHandler{summary: summary}
}

// GET /api/barber/earnings
func (h *EarningsHandler) Get(c *gin.Context) {
	out, err := h.summary.Execute(c.Request.Context(), middleware.CurrentIdentity(c))
	if err != nil {
		respondError(c, err, "earnings_failed", "Failed to fetch earnings")
		return
	}

	httpresp.OK(c, out)
}
