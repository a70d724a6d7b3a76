package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/barber-marketplace/internal/httperr"
	"github.com/BruksfildServices01/barber-marketplace/internal/httpresp"
	"github.com/BruksfildServices01/barber-marketplace/internal/middleware"
	ucAdmin "github.com/BruksfildServices01/barber-marketplace/internal/usecase/admin"
	ucPayout "github.com/BruksfildServices01/barber-marketplace/internal/usecase/payout"
)

type AdminHandler struct {
	stats  *ucAdmin.GetPlatformStats
	record *ucPayout.RecordPayout
}

func NewAdminHandler(
	stats *ucAdmin.GetPlatformStats,
	record *ucPayout.RecordPayout,
) *AdminHandler {
	return &AdminHandler{stats: stats, record: record}
}

type RecordPayoutRequest struct {
	BarberID  uint            `json:"barberId" binding:"required"`
	Amount    decimal.Decimal `json:"amount"`
	Status    string          `json:"status" binding:"required"`
	Reference string          `json:"reference"`
}

// GET /api/admin/stats
func (h *AdminHandler) Stats(c *gin.Context) {
	out, err := h.stats.Execute(c.Request.Context(), middleware.CurrentIdentity(c))
	if err != nil {
		respondError(c, err, "stats_failed", "Failed to fetch stats")
		return
	}

	httpresp.OK(c, out)
}

// POST /api/admin/payouts
func (h *AdminHandler) RecordPayout(c *gin.Context) {
	var req RecordPayoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid payout payload.")
		return
	}

	out, err := h.record.Execute(c.Request.Context(), middleware.CurrentIdentity(c), ucPayout.RecordPayoutInput{
		BarberID:  req.BarberID,
		Amount:    req.Amount,
		Status:    req.Status,
		Reference: req.Reference,
	})
	if err != nil {
		respondError(c, err, "payout_failed", "Failed to record payout")
		return
	}

	httpresp.Created(c, out)
}
