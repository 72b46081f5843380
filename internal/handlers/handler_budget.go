package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/finman-app/pfm_backend/internal/apperrors"
	"github.com/finman-app/pfm_backend/internal/core/domain"
	portssvc "github.com/finman-app/pfm_backend/internal/core/ports/services"
	"github.com/finman-app/pfm_backend/internal/dto"
	"github.com/finman-app/pfm_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// budgetHandler handles HTTP requests related to budgets.
type budgetHandler struct {
	budgetService portssvc.BudgetSvcFacade
}

// newBudgetHandler creates a new budgetHandler.
func newBudgetHandler(bs portssvc.BudgetSvcFacade) *budgetHandler {
	return &budgetHandler{
		budgetService: bs,
	}
}

// registerBudgetRoutes registers routes related to budgets.
func registerBudgetRoutes(rg *gin.RouterGroup, budgetService portssvc.BudgetSvcFacade) {
	h := newBudgetHandler(budgetService)

	budgets := rg.Group("/budgets")
	{
		budgets.POST("", h.createBudget)
		budgets.GET("", h.listActiveBudgets)
		budgets.GET("/:id", h.getBudget)
		budgets.POST("/:id/deactivate", h.deactivateBudget)
	}
}

// createBudget godoc
// @Summary Create a new budget
// @Description Creates an active budget; the name must be unique among active budgets
// @Tags budgets
// @Accept  json
// @Produce  json
// @Param   budget body dto.CreateBudgetRequest true "Budget details"
// @Success 201 {object} dto.BudgetResponse
// @Failure 400 {object} map[string]string "Invalid input, duplicate name or non-positive amount"
// @Failure 500 {object} map[string]string "Failed to create budget"
// @Router /budgets [post]
func (h *budgetHandler) createBudget(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createBudget", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	if req.Period == "" {
		req.Period = domain.Monthly
	}

	budget, err := h.budgetService.CreateBudget(req.Name, req.Category, req.Amount, req.Period)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidAmount) || errors.Is(err, apperrors.ErrDuplicateName) {
			logger.Warn("Budget rejected", slog.String("budget_name", req.Name), slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create budget in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create budget"})
		}
		return
	}

	logger.Info("Budget created successfully", slog.Int64("budget_id", budget.ID))
	c.JSON(http.StatusCreated, dto.ToBudgetResponse(budget))
}

// listActiveBudgets godoc
// @Summary List active budgets
// @Description Retrieves all active budgets in creation order
// @Tags budgets
// @Produce  json
// @Success 200 {array} dto.BudgetResponse
// @Router /budgets [get]
func (h *budgetHandler) listActiveBudgets(c *gin.Context) {
	budgets := h.budgetService.GetActiveBudgets()
	c.JSON(http.StatusOK, dto.ToListBudgetResponse(budgets))
}

// getBudget godoc
// @Summary Get a budget by ID
// @Description Retrieves details for a specific budget by its ID
// @Tags budgets
// @Produce  json
// @Param   id path int true "Budget ID"
// @Success 200 {object} dto.BudgetResponse
// @Failure 404 {object} map[string]string "Budget not found"
// @Router /budgets/{id} [get]
func (h *budgetHandler) getBudget(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	budget, err := h.budgetService.GetBudgetByID(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Budget not found"})
		} else {
			logger.Error("Failed to get budget from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve budget"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToBudgetResponse(budget))
}

// deactivateBudget godoc
// @Summary Deactivate a budget
// @Description Flips a budget to inactive, freeing its name for reuse
// @Tags budgets
// @Produce  json
// @Param   id path int true "Budget ID"
// @Success 200 {object} dto.BudgetResponse
// @Failure 404 {object} map[string]string "Budget not found"
// @Router /budgets/{id}/deactivate [post]
func (h *budgetHandler) deactivateBudget(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	budget, err := h.budgetService.DeactivateBudget(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Budget not found"})
		} else {
			logger.Error("Failed to deactivate budget in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to deactivate budget"})
		}
		return
	}

	logger.Info("Budget deactivated", slog.Int64("budget_id", id))
	c.JSON(http.StatusOK, dto.ToBudgetResponse(budget))
}
