package handler

import (
	"net/http"

	"tiendapos/internal/apierror"
	"tiendapos/internal/dto"
	"tiendapos/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type ReportsHandler struct{ svc service.ReportService }

func NewReportsHandler(svc service.ReportService) *ReportsHandler {
	return &ReportsHandler{svc: svc}
}

// Sales godoc
// @Summary      Reporte de ventas por rango de fechas
// @Description  Rango inclusivo; "to" cubre el día completo. Filtro opcional por categoría de los ítems.
// @Tags         reports
// @Produce      json
// @Param        from     query string true  "YYYY-MM-DD"
// @Param        to       query string true  "YYYY-MM-DD"
// @Param        category query string false "Categoría; vacía o TODAS = todas"
// @Success      200 {array} dto.SaleResponse
// @Failure      400 {object} apierror.APIError
// @Router       /reports/sales [get]
func (h *ReportsHandler) Sales(c *gin.Context) {
	var filter dto.SalesReportFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	if err := validate.Struct(filter); err != nil {
		fields := make(map[string]string)
		for _, fe := range err.(validator.ValidationErrors) {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusBadRequest, apierror.NewValidation(fields))
		return
	}
	resp, err := h.svc.SalesReport(c.Request.Context(), filter)
	if err != nil {
		// Bad dates map to 400; anything else is a store failure.
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// WeeklyStats godoc
// @Summary      Totales semanales del mes en curso
// @Tags         reports
// @Produce      json
// @Success      200 {array} dto.WeeklyStatResponse
// @Router       /reports/weekly-stats [get]
func (h *ReportsHandler) WeeklyStats(c *gin.Context) {
	resp, err := h.svc.WeeklyStats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
