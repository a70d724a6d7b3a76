package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-marketplace/internal/httpresp"
	"github.com/BruksfildServices01/barber-marketplace/internal/middleware"
	ucPayout "github.com/BruksfildServices01/barber-marketplace/internal/usecase/payout"
)

type PayoutHandler struct {
	list *ucPayout.ListPayouts
}

func NewPayoutHandler(list *ucPayout.ListPayouts) *PayoutHandler {
	return &PayoutHandler{list: list}
}

// GET /api/barber/payouts
func (h *PayoutHandler) List(c *gin.Context) {
	out, err := h.list.Execute(c.Request.Context(), middleware.CurrentIdentity(c).UserID)
	if err != nil {
		respondError(c, err, "payouts_failed", "Failed to fetch payouts")
		return
	}

	httpresp.List(c, out)
}
