package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/venda-inc/venda/internal/application/report/dto"
	"github.com/venda-inc/venda/internal/application/report/usecases"
	"github.com/venda-inc/venda/internal/shared/logger"
	"github.com/venda-inc/venda/internal/shared/utils"
)

type ReportHandler struct {
	salesUC     *usecases.SalesReportUseCase
	inventoryUC *usecases.InventoryReportUseCase
	logger      logger.Interface
}

func NewReportHandler(
	salesUC *usecases.SalesReportUseCase,
	inventoryUC *usecases.InventoryReportUseCase,
	logger logger.Interface,
) *ReportHandler {
	return &ReportHandler{
		salesUC:     salesUC,
		inventoryUC: inventoryUC,
		logger:      logger,
	}
}

// Sales handles GET /reports/sales?from=YYYY-MM-DD&to=YYYY-MM-DD.
func (h *ReportHandler) Sales(c *gin.Context) {
	var req dto.SalesReportRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "from and to dates are required")
		return
	}

	resp, err := h.salesUC.Execute(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", resp)
}

// Inventory handles GET /reports/inventory.
func (h *ReportHandler) Inventory(c *gin.Context) {
	resp, err := h.inventoryUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", resp)
}
