package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/finman-app/pfm_backend/internal/apperrors"
	portssvc "github.com/finman-app/pfm_backend/internal/core/ports/services"
	"github.com/finman-app/pfm_backend/internal/dto"
	"github.com/finman-app/pfm_backend/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// accountHandler handles HTTP requests related to accounts.
type accountHandler struct {
	accountService     portssvc.AccountSvcFacade
	transactionService portssvc.TransactionSvcFacade
}

// newAccountHandler creates a new accountHandler.
func newAccountHandler(as portssvc.AccountSvcFacade, ts portssvc.TransactionSvcFacade) *accountHandler {
	return &accountHandler{
		accountService:     as,
		transactionService: ts,
	}
}

// registerAccountRoutes registers routes related to accounts.
func registerAccountRoutes(rg *gin.RouterGroup, accountService portssvc.AccountSvcFacade, transactionService portssvc.TransactionSvcFacade) {
	h := newAccountHandler(accountService, transactionService)

	accounts := rg.Group("/accounts")
	{
		accounts.POST("", h.createAccount)
		accounts.GET("", h.listAccounts)
		accounts.GET("/:id", h.getAccount)
		accounts.DELETE("/:id", h.deleteAccount)
		accounts.POST("/:id/deactivate", h.deactivateAccount)
		accounts.POST("/:id/deposit", h.deposit)
		accounts.POST("/:id/withdraw", h.withdraw)
		accounts.GET("/:id/transactions", h.listAccountTransactions)
	}
}

// parseIDParam reads the numeric :id path parameter.
func parseIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id: " + c.Param("id")})
		return 0, false
	}
	return id, true
}

// createAccount godoc
// @Summary Create a new account
// @Description Creates a new account with a unique name and an optional initial balance
// @Tags accounts
// @Accept  json
// @Produce  json
// @Param   account body dto.CreateAccountRequest true "Account details"
// @Success 201 {object} dto.AccountResponse
// @Failure 400 {object} map[string]string "Invalid input format or duplicate name"
// @Failure 500 {object} map[string]string "Failed to create account"
// @Router /accounts [post]
func (h *accountHandler) createAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createAccount", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	newAccount, err := h.accountService.CreateAccount(req.Name, req.AccountType, req.InitialBalance)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicateName) {
			logger.Warn("Duplicate account name", slog.String("account_name", req.Name))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create account in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create account"})
		}
		return
	}

	logger.Info("Account created successfully", slog.Int64("account_id", newAccount.ID))
	c.JSON(http.StatusCreated, dto.ToAccountResponse(newAccount))
}

// listAccounts godoc
// @Summary List all accounts
// @Description Retrieves all accounts in creation order
// @Tags accounts
// @Produce  json
// @Success 200 {array} dto.AccountResponse
// @Router /accounts [get]
func (h *accountHandler) listAccounts(c *gin.Context) {
	accounts := h.accountService.ListAccounts()
	c.JSON(http.StatusOK, dto.ToListAccountResponse(accounts))
}

// getAccount godoc
// @Summary Get an account by ID
// @Description Retrieves details for a specific account by its ID
// @Tags accounts
// @Produce  json
// @Param   id path int true "Account ID"
// @Success 200 {object} dto.AccountResponse
// @Failure 404 {object} map[string]string "Account not found"
// @Router /accounts/{id} [get]
func (h *accountHandler) getAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	account, err := h.accountService.GetAccountByID(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
		} else {
			logger.Error("Failed to get account from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve account"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

// deleteAccount godoc
// @Summary Delete an account
// @Description Removes an account whose balance is exactly zero
// @Tags accounts
// @Produce  json
// @Param   id path int true "Account ID"
// @Success 200 {object} dto.DeleteAccountResponse
// @Failure 409 {object} map[string]string "Balance is not zero"
// @Router /accounts/{id} [delete]
func (h *accountHandler) deleteAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	deleted, err := h.accountService.DeleteAccount(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNonZeroBalance) {
			logger.Warn("Refused to delete account with non-zero balance", slog.Int64("account_id", id))
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to delete account in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete account"})
		}
		return
	}

	if deleted {
		logger.Info("Account deleted", slog.Int64("account_id", id))
	}
	c.JSON(http.StatusOK, dto.DeleteAccountResponse{Deleted: deleted})
}

// deactivateAccount godoc
// @Summary Deactivate an account
// @Description Flips an account to inactive, excluding it from the total balance
// @Tags accounts
// @Produce  json
// @Param   id path int true "Account ID"
// @Success 200 {object} dto.AccountResponse
// @Failure 404 {object} map[string]string "Account not found"
// @Router /accounts/{id}/deactivate [post]
func (h *accountHandler) deactivateAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	account, err := h.accountService.DeactivateAccount(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
		} else {
			logger.Error("Failed to deactivate account in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to deactivate account"})
		}
		return
	}

	logger.Info("Account deactivated", slog.Int64("account_id", id))
	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

// deposit godoc
// @Summary Deposit into an account
// @Description Adds a positive amount to the account's balance
// @Tags accounts
// @Accept  json
// @Produce  json
// @Param   id path int true "Account ID"
// @Param   amount body dto.AmountRequest true "Deposit amount"
// @Success 200 {object} dto.BalanceResponse
// @Failure 400 {object} map[string]string "Invalid amount"
// @Failure 404 {object} map[string]string "Account not found"
// @Router /accounts/{id}/deposit [post]
func (h *accountHandler) deposit(c *gin.Context) {
	h.applyBalanceChange(c, h.accountService.Deposit)
}

// withdraw godoc
// @Summary Withdraw from an account
// @Description Subtracts a positive amount not exceeding the current balance
// @Tags accounts
// @Accept  json
// @Produce  json
// @Param   id path int true "Account ID"
// @Param   amount body dto.AmountRequest true "Withdrawal amount"
// @Success 200 {object} dto.BalanceResponse
// @Failure 400 {object} map[string]string "Invalid amount or insufficient funds"
// @Failure 404 {object} map[string]string "Account not found"
// @Router /accounts/{id}/withdraw [post]
func (h *accountHandler) withdraw(c *gin.Context) {
	h.applyBalanceChange(c, h.accountService.Withdraw)
}

// applyBalanceChange binds an amount and runs the given balance mutator,
// mapping domain failures onto client errors.
func (h *accountHandler) applyBalanceChange(c *gin.Context, op func(int64, decimal.Decimal) (decimal.Decimal, error)) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.AmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for balance change", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	balance, err := op(id, req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
		case errors.Is(err, apperrors.ErrInvalidAmount), errors.Is(err, apperrors.ErrInsufficientFunds):
			logger.Warn("Balance change rejected", slog.Int64("account_id", id), slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to change balance in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update balance"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.BalanceResponse{AccountID: id, Balance: balance})
}

// listAccountTransactions godoc
// @Summary List an account's transactions
// @Description Retrieves the ledger records for one account in insertion order
// @Tags accounts
// @Produce  json
// @Param   id path int true "Account ID"
// @Success 200 {array} dto.TransactionResponse
// @Failure 404 {object} map[string]string "Account not found"
// @Router /accounts/{id}/transactions [get]
func (h *accountHandler) listAccountTransactions(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	// The ledger carries references only; confirm the account exists before
	// answering with its records.
	if _, err := h.accountService.GetAccountByID(id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
		return
	}

	txns := h.transactionService.GetTransactionsByAccount(id)
	c.JSON(http.StatusOK, dto.ToListTransactionResponse(txns))
}
