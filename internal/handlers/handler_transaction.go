package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/finman-app/pfm_backend/internal/apperrors"
	portssvc "github.com/finman-app/pfm_backend/internal/core/ports/services"
	"github.com/finman-app/pfm_backend/internal/dto"
	"github.com/finman-app/pfm_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// transactionHandler handles HTTP requests related to the ledger.
type transactionHandler struct {
	transactionService portssvc.TransactionSvcFacade
	accountService     portssvc.AccountSvcFacade
}

// newTransactionHandler creates a new transactionHandler.
func newTransactionHandler(ts portssvc.TransactionSvcFacade, as portssvc.AccountSvcFacade) *transactionHandler {
	return &transactionHandler{
		transactionService: ts,
		accountService:     as,
	}
}

// registerTransactionRoutes registers routes related to transactions.
func registerTransactionRoutes(rg *gin.RouterGroup, transactionService portssvc.TransactionSvcFacade, accountService portssvc.AccountSvcFacade) {
	h := newTransactionHandler(transactionService, accountService)

	transactions := rg.Group("/transactions")
	{
		transactions.POST("", h.createTransaction)
		transactions.GET("", h.listRecentTransactions)
	}
}

// createTransaction godoc
// @Summary Record a transaction
// @Description Appends an income/expense/transfer record for an existing account
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   transaction body dto.CreateTransactionRequest true "Transaction details"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Invalid input, unknown account or non-positive amount"
// @Failure 500 {object} map[string]string "Failed to record transaction"
// @Router /transactions [post]
func (h *transactionHandler) createTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	// The ledger does not validate account references itself; that contract
	// lives here at the boundary.
	if _, err := h.accountService.GetAccountByID(req.AccountID); err != nil {
		logger.Warn("Transaction references unknown account", slog.Int64("account_id", req.AccountID))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Account not found"})
		return
	}

	txn, err := h.transactionService.AddTransaction(req.AccountID, req.Amount, req.TransactionType, req.Description)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidAmount) {
			logger.Warn("Transaction amount rejected", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to record transaction in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record transaction"})
		}
		return
	}

	logger.Info("Transaction recorded", slog.Int64("transaction_id", txn.ID), slog.Int64("account_id", txn.AccountID))
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}

// listRecentTransactions godoc
// @Summary List recent transactions
// @Description Retrieves the most recently dated transactions, newest first
// @Tags transactions
// @Produce  json
// @Param   limit query int false "Maximum records to return" default(10)
// @Success 200 {array} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Invalid limit"
// @Router /transactions [get]
func (h *transactionHandler) listRecentTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for listRecentTransactions", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query: " + err.Error()})
		return
	}

	txns := h.transactionService.GetRecentTransactions(params.Limit)
	c.JSON(http.StatusOK, dto.ToListTransactionResponse(txns))
}
