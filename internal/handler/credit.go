package handler

import (
	"net/http"

	"tiendapos/internal/dto"
	"tiendapos/internal/service"

	"github.com/gin-gonic/gin"
)

// CreditHandler serves the fiado endpoints: charging a cart to a customer's
// account and recording payments against it.
type CreditHandler struct {
	sales     service.SaleService
	customers service.CustomerService
}

func NewCreditHandler(sales service.SaleService, customers service.CustomerService) *CreditHandler {
	return &CreditHandler{sales: sales, customers: customers}
}

// Bulk godoc
// @Summary      Registrar una venta al fiado
// @Description  Crea una entrada DEUDA por ítem más el efecto de stock/kardex para ítems de catálogo. No crea registro de venta.
// @Tags         credit
// @Accept       json
// @Produce      json
// @Param        body body dto.RegisterCreditSaleRequest true "Detalle del fiado"
// @Success      201
// @Failure      404 {object} apierror.APIError
// @Router       /credit/bulk [post]
func (h *CreditHandler) Bulk(c *gin.Context) {
	var req dto.RegisterCreditSaleRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.sales.RegisterCreditSale(c.Request.Context(), req); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusCreated)
}

// Payment godoc
// @Summary      Registrar un abono
// @Description  Registra un PAGO limitado a la deuda pendiente; el excedente vuelve como vuelto en la respuesta.
// @Tags         credit
// @Accept       json
// @Produce      json
// @Param        body body dto.RegisterPaymentRequest true "Abono"
// @Success      201 {object} dto.PaymentResponse
// @Failure      400 {object} apierror.APIError
// @Router       /credit/payment [post]
func (h *CreditHandler) Payment(c *gin.Context) {
	var req dto.RegisterPaymentRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.customers.RegisterPayment(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}
