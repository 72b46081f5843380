package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/finman-app/pfm_backend/internal/apperrors"
	"github.com/finman-app/pfm_backend/internal/core/domain"
	"github.com/finman-app/pfm_backend/internal/dto"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type TransactionHandlerTestSuite struct {
	suite.Suite
	mockAccount     *MockAccountService
	mockTransaction *MockTransactionService
	mockBudget      *MockBudgetService
	router          *gin.Engine
}

func (suite *TransactionHandlerTestSuite) SetupTest() {
	suite.mockAccount = new(MockAccountService)
	suite.mockTransaction = new(MockTransactionService)
	suite.mockBudget = new(MockBudgetService)
	suite.router = newTestRouter(suite.mockAccount, suite.mockTransaction, suite.mockBudget)
}

func (suite *TransactionHandlerTestSuite) perform(method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *TransactionHandlerTestSuite) TestCreateTransaction_Success() {
	suite.mockAccount.On("GetAccountByID", int64(1)).
		Return(&domain.Account{ID: 1, Name: "Main Checking", IsActive: true}, nil).Once()
	created := &domain.Transaction{
		ID:              1,
		AccountID:       1,
		Amount:          decimal.RequireFromString("42.50"),
		TransactionType: domain.Expense,
		Description:     "Groceries",
		Date:            time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
	}
	suite.mockTransaction.On("AddTransaction", int64(1), matchDecimal("42.50"), domain.Expense, "Groceries").
		Return(created, nil).Once()

	w := suite.perform(http.MethodPost, "/api/v1/transactions",
		`{"accountId":1,"amount":"42.50","transactionType":"expense","description":"Groceries"}`)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.TransactionResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(int64(1), resp.ID)
	suite.Equal(domain.Expense, resp.TransactionType)
	suite.mockTransaction.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestCreateTransaction_UnknownAccount() {
	suite.mockAccount.On("GetAccountByID", int64(99)).Return(nil, apperrors.ErrNotFound).Once()

	w := suite.perform(http.MethodPost, "/api/v1/transactions",
		`{"accountId":99,"amount":"10","transactionType":"income"}`)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockTransaction.AssertNotCalled(suite.T(), "AddTransaction")
}

func (suite *TransactionHandlerTestSuite) TestCreateTransaction_InvalidAmount() {
	suite.mockAccount.On("GetAccountByID", int64(1)).
		Return(&domain.Account{ID: 1, Name: "Main Checking", IsActive: true}, nil).Once()
	suite.mockTransaction.On("AddTransaction", int64(1), mock.AnythingOfType("decimal.Decimal"), domain.Income, "").
		Return(nil, apperrors.ErrInvalidAmount).Once()

	w := suite.perform(http.MethodPost, "/api/v1/transactions",
		`{"accountId":1,"amount":"-5","transactionType":"income"}`)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *TransactionHandlerTestSuite) TestCreateTransaction_UnknownType() {
	w := suite.perform(http.MethodPost, "/api/v1/transactions",
		`{"accountId":1,"amount":"10","transactionType":"refund"}`)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockAccount.AssertNotCalled(suite.T(), "GetAccountByID")
}

func (suite *TransactionHandlerTestSuite) TestListRecentTransactions_DefaultLimit() {
	suite.mockTransaction.On("GetRecentTransactions", 10).Return([]domain.Transaction{
		{ID: 3, AccountID: 1, Amount: decimal.NewFromInt(30), TransactionType: domain.Income},
		{ID: 2, AccountID: 1, Amount: decimal.NewFromInt(20), TransactionType: domain.Income},
	}).Once()

	w := suite.perform(http.MethodGet, "/api/v1/transactions", "")

	suite.Equal(http.StatusOK, w.Code)
	var resp []dto.TransactionResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp, 2)
	suite.Equal(int64(3), resp[0].ID)
	suite.mockTransaction.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestListRecentTransactions_ExplicitLimit() {
	suite.mockTransaction.On("GetRecentTransactions", 3).Return([]domain.Transaction{}).Once()

	w := suite.perform(http.MethodGet, "/api/v1/transactions?limit=3", "")

	suite.Equal(http.StatusOK, w.Code)
	suite.mockTransaction.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestListRecentTransactions_NegativeLimit() {
	w := suite.perform(http.MethodGet, "/api/v1/transactions?limit=-1", "")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockTransaction.AssertNotCalled(suite.T(), "GetRecentTransactions")
}

func TestTransactionHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionHandlerTestSuite))
}
