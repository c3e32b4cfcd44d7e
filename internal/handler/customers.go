package handler

import (
	"net/http"

	"tiendapos/internal/apierror"
	"tiendapos/internal/dto"
	"tiendapos/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CustomersHandler struct{ svc service.CustomerService }

func NewCustomersHandler(svc service.CustomerService) *CustomersHandler {
	return &CustomersHandler{svc: svc}
}

// ListDebts godoc
// @Summary      Listar clientes con su deuda
// @Description  El saldo es derivado del ledger de fiados en cada lectura; nunca se persiste.
// @Tags         customers
// @Produce      json
// @Success      200 {array} dto.CustomerDebtResponse
// @Router       /customers/debts [get]
func (h *CustomersHandler) ListDebts(c *gin.Context) {
	resp, err := h.svc.ListWithDebts(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Create godoc
// @Summary      Registrar cliente
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        body body dto.CreateCustomerRequest true "Cliente"
// @Success      201 {object} dto.CustomerResponse
// @Failure      400 {object} apierror.APIError "Nombre duplicado (case-insensitive)"
// @Router       /customers [post]
func (h *CustomersHandler) Create(c *gin.Context) {
	var req dto.CreateCustomerRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Delete godoc
// @Summary      Eliminar cliente
// @Description  Elimina el cliente y sus movimientos de fiado en cascada, dentro de una transacción.
// @Tags         customers
// @Param        id path string true "UUID del cliente"
// @Success      204
// @Failure      404 {object} apierror.APIError
// @Router       /customers/{id} [delete]
func (h *CustomersHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Movements godoc
// @Summary      Movimientos de fiado de un cliente
// @Tags         customers
// @Produce      json
// @Param        id path string true "UUID del cliente"
// @Success      200 {array} dto.CreditEntryResponse
// @Router       /customers/{id}/movements [get]
func (h *CustomersHandler) Movements(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	resp, err := h.svc.Movements(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
