package handler

import (
	"net/http"
	"time"

	"tiendapos/internal/dto"
	"tiendapos/internal/repository"

	"github.com/gin-gonic/gin"
)

// listingCap is the hard cap on ledger and audit listings — the UI shows the
// 50 most recent rows and there is no pagination on these views.
const listingCap = 50

// LedgerHandler serves the read-only kardex and audit listings.
type LedgerHandler struct {
	movements repository.StockMovementRepository
	audit     repository.AuditRepository
}

func NewLedgerHandler(movements repository.StockMovementRepository, audit repository.AuditRepository) *LedgerHandler {
	return &LedgerHandler{movements: movements, audit: audit}
}

// Movements godoc
// @Summary      Últimos 50 movimientos de inventario
// @Tags         ledger
// @Produce      json
// @Success      200 {array} dto.StockMovementResponse
// @Router       /ledger [get]
func (h *LedgerHandler) Movements(c *gin.Context) {
	movements, err := h.movements.ListRecent(c.Request.Context(), listingCap)
	if err != nil {
		respondError(c, err)
		return
	}
	resp := make([]dto.StockMovementResponse, 0, len(movements))
	for _, m := range movements {
		resp = append(resp, dto.StockMovementResponse{
			ID:          m.ID.String(),
			ProductID:   m.ProductID.String(),
			ProductName: m.ProductName,
			Kind:        m.Kind,
			Reason:      m.Reason,
			Quantity:    m.Quantity,
			StockBefore: m.StockBefore,
			StockAfter:  m.StockAfter,
			CreatedAt:   m.CreatedAt.Format(time.RFC3339),
		})
	}
	c.JSON(http.StatusOK, resp)
}

// AuditLog godoc
// @Summary      Últimas 50 entradas de auditoría
// @Tags         ledger
// @Produce      json
// @Success      200 {array} dto.AuditEntryResponse
// @Router       /audit-log [get]
func (h *LedgerHandler) AuditLog(c *gin.Context) {
	entries, err := h.audit.ListRecent(c.Request.Context(), listingCap)
	if err != nil {
		respondError(c, err)
		return
	}
	resp := make([]dto.AuditEntryResponse, 0, len(entries))
	for _, e := range entries {
		resp = append(resp, dto.AuditEntryResponse{
			ID:        e.ID.String(),
			Action:    e.Action,
			Detail:    e.Detail,
			CreatedAt: e.CreatedAt.Format(time.RFC3339),
		})
	}
	c.JSON(http.StatusOK, resp)
}
