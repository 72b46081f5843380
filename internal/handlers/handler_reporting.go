package handlers

import (
	"net/http"

	portssvc "github.com/finman-app/pfm_backend/internal/core/ports/services"
	"github.com/finman-app/pfm_backend/internal/dto"
	"github.com/gin-gonic/gin"
)

// reportingHandler composes the dashboard summary from the three managers.
// The managers never call each other; aggregation across them happens here
// at the boundary.
type reportingHandler struct {
	services *portssvc.ServiceContainer
}

// newReportingHandler creates a new reportingHandler.
func newReportingHandler(services *portssvc.ServiceContainer) *reportingHandler {
	return &reportingHandler{services: services}
}

// registerReportingRoutes registers routes related to reports.
func registerReportingRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := newReportingHandler(services)

	reports := rg.Group("/reports")
	{
		reports.GET("/summary", h.getSummary)
	}
}

// getSummary godoc
// @Summary Financial summary
// @Description Returns total active balance, total active budget amount and entity counts
// @Tags reports
// @Produce  json
// @Success 200 {object} dto.SummaryResponse
// @Router /reports/summary [get]
func (h *reportingHandler) getSummary(c *gin.Context) {
	c.JSON(http.StatusOK, dto.SummaryResponse{
		TotalBalance:      h.services.Account.GetTotalBalance(),
		TotalBudgetAmount: h.services.Budget.GetTotalBudgetAmount(),
		AccountCount:      len(h.services.Account.ListAccounts()),
		ActiveBudgetCount: len(h.services.Budget.GetActiveBudgets()),
		TransactionCount:  len(h.services.Transaction.ListTransactions()),
	})
}
