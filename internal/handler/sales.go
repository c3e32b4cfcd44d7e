package handler

import (
	"net/http"

	"tiendapos/internal/dto"
	"tiendapos/internal/service"

	"github.com/gin-gonic/gin"
)

type SalesHandler struct{ svc service.SaleService }

func NewSalesHandler(svc service.SaleService) *SalesHandler { return &SalesHandler{svc: svc} }

// Register godoc
// @Summary      Registrar una venta
// @Description  Persiste la venta, descuenta stock por ítem de catálogo y escribe las entradas SALIDA/VENTA del kardex en una sola transacción.
// @Tags         sales
// @Accept       json
// @Produce      json
// @Param        body body dto.RegisterSaleRequest true "Detalle de la venta"
// @Success      201 {object} dto.SaleResponse
// @Failure      400 {object} apierror.APIError
// @Router       /sales [post]
func (h *SalesHandler) Register(c *gin.Context) {
	var req dto.RegisterSaleRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.RegisterSale(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}
