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
	portssvc "github.com/finman-app/pfm_backend/internal/core/ports/services"
	"github.com/finman-app/pfm_backend/internal/dto"
	"github.com/finman-app/pfm_backend/internal/handlers"
	"github.com/finman-app/pfm_backend/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock AccountService ---
type MockAccountService struct {
	mock.Mock
}

func (m *MockAccountService) CreateAccount(name string, accountType domain.AccountType, initialBalance decimal.Decimal) (*domain.Account, error) {
	args := m.Called(name, accountType, initialBalance)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) GetAccountByID(id int64) (*domain.Account, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) ListAccounts() []domain.Account {
	args := m.Called()
	return args.Get(0).([]domain.Account)
}

func (m *MockAccountService) GetTotalBalance() decimal.Decimal {
	args := m.Called()
	return args.Get(0).(decimal.Decimal)
}

func (m *MockAccountService) Deposit(id int64, amount decimal.Decimal) (decimal.Decimal, error) {
	args := m.Called(id, amount)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockAccountService) Withdraw(id int64, amount decimal.Decimal) (decimal.Decimal, error) {
	args := m.Called(id, amount)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockAccountService) DeactivateAccount(id int64) (*domain.Account, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) DeleteAccount(id int64) (bool, error) {
	args := m.Called(id)
	return args.Bool(0), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.AccountSvcFacade = (*MockAccountService)(nil)

// --- Mock TransactionService ---
type MockTransactionService struct {
	mock.Mock
}

func (m *MockTransactionService) AddTransaction(accountID int64, amount decimal.Decimal, transactionType domain.TransactionType, description string) (*domain.Transaction, error) {
	args := m.Called(accountID, amount, transactionType, description)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) GetTransactionsByAccount(accountID int64) []domain.Transaction {
	args := m.Called(accountID)
	return args.Get(0).([]domain.Transaction)
}

func (m *MockTransactionService) GetRecentTransactions(limit int) []domain.Transaction {
	args := m.Called(limit)
	return args.Get(0).([]domain.Transaction)
}

func (m *MockTransactionService) ListTransactions() []domain.Transaction {
	args := m.Called()
	return args.Get(0).([]domain.Transaction)
}

var _ portssvc.TransactionSvcFacade = (*MockTransactionService)(nil)

// --- Mock BudgetService ---
type MockBudgetService struct {
	mock.Mock
}

func (m *MockBudgetService) CreateBudget(name, category string, amount decimal.Decimal, period domain.BudgetPeriod) (*domain.Budget, error) {
	args := m.Called(name, category, amount, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Budget), args.Error(1)
}

func (m *MockBudgetService) GetBudgetByID(id int64) (*domain.Budget, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Budget), args.Error(1)
}

func (m *MockBudgetService) GetActiveBudgets() []domain.Budget {
	args := m.Called()
	return args.Get(0).([]domain.Budget)
}

func (m *MockBudgetService) ListBudgets() []domain.Budget {
	args := m.Called()
	return args.Get(0).([]domain.Budget)
}

func (m *MockBudgetService) GetTotalBudgetAmount() decimal.Decimal {
	args := m.Called()
	return args.Get(0).(decimal.Decimal)
}

func (m *MockBudgetService) DeactivateBudget(id int64) (*domain.Budget, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Budget), args.Error(1)
}

var _ portssvc.BudgetSvcFacade = (*MockBudgetService)(nil)

// --- Test router setup ---

// newTestRouter wires a gin engine with the full route table over mocked services.
func newTestRouter(account *MockAccountService, transaction *MockTransactionService, budget *MockBudgetService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	cfg := &config.Config{Port: "8080", RateLimit: "1000-S"}
	handlers.RegisterRoutes(r, cfg, &portssvc.ServiceContainer{
		Account:     account,
		Transaction: transaction,
		Budget:      budget,
	})
	return r
}

// matchDecimal matches a decimal argument by value rather than representation.
func matchDecimal(want string) interface{} {
	return mock.MatchedBy(func(d decimal.Decimal) bool {
		return d.Equal(decimal.RequireFromString(want))
	})
}

// --- Account handler suite ---

type AccountHandlerTestSuite struct {
	suite.Suite
	mockAccount     *MockAccountService
	mockTransaction *MockTransactionService
	mockBudget      *MockBudgetService
	router          *gin.Engine
}

func (suite *AccountHandlerTestSuite) SetupTest() {
	suite.mockAccount = new(MockAccountService)
	suite.mockTransaction = new(MockTransactionService)
	suite.mockBudget = new(MockBudgetService)
	suite.router = newTestRouter(suite.mockAccount, suite.mockTransaction, suite.mockBudget)
}

func (suite *AccountHandlerTestSuite) perform(method, path, body string) *httptest.ResponseRecorder {
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

func (suite *AccountHandlerTestSuite) TestCreateAccount_Success() {
	created := &domain.Account{
		ID:          1,
		Name:        "Main Checking",
		AccountType: domain.Checking,
		Balance:     decimal.NewFromInt(5000),
		CreatedAt:   time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
		IsActive:    true,
	}
	suite.mockAccount.On("CreateAccount", "Main Checking", domain.Checking, matchDecimal("5000")).Return(created, nil).Once()

	w := suite.perform(http.MethodPost, "/api/v1/accounts",
		`{"name":"Main Checking","accountType":"checking","initialBalance":"5000"}`)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.AccountResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(int64(1), resp.ID)
	suite.Equal("Main Checking", resp.Name)
	suite.True(resp.Balance.Equal(decimal.NewFromInt(5000)))
	suite.mockAccount.AssertExpectations(suite.T())
}

func (suite *AccountHandlerTestSuite) TestCreateAccount_DuplicateName() {
	suite.mockAccount.On("CreateAccount", "Main Checking", domain.Checking, mock.AnythingOfType("decimal.Decimal")).
		Return(nil, apperrors.ErrDuplicateName).Once()

	w := suite.perform(http.MethodPost, "/api/v1/accounts",
		`{"name":"Main Checking","accountType":"checking"}`)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockAccount.AssertExpectations(suite.T())
}

func (suite *AccountHandlerTestSuite) TestCreateAccount_UnknownType() {
	// Rejected by binding; the service is never consulted.
	w := suite.perform(http.MethodPost, "/api/v1/accounts",
		`{"name":"Crypto","accountType":"bitcoin"}`)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockAccount.AssertNotCalled(suite.T(), "CreateAccount")
}

func (suite *AccountHandlerTestSuite) TestGetAccount_NotFound() {
	suite.mockAccount.On("GetAccountByID", int64(42)).Return(nil, apperrors.ErrNotFound).Once()

	w := suite.perform(http.MethodGet, "/api/v1/accounts/42", "")

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockAccount.AssertExpectations(suite.T())
}

func (suite *AccountHandlerTestSuite) TestGetAccount_BadID() {
	w := suite.perform(http.MethodGet, "/api/v1/accounts/abc", "")
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *AccountHandlerTestSuite) TestListAccounts() {
	suite.mockAccount.On("ListAccounts").Return([]domain.Account{
		{ID: 1, Name: "Main Checking", AccountType: domain.Checking, IsActive: true},
		{ID: 2, Name: "Savings", AccountType: domain.Savings, IsActive: true},
	}).Once()

	w := suite.perform(http.MethodGet, "/api/v1/accounts", "")

	suite.Equal(http.StatusOK, w.Code)
	var resp []dto.AccountResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp, 2)
	suite.Equal("Savings", resp[1].Name)
}

func (suite *AccountHandlerTestSuite) TestDeposit_Success() {
	suite.mockAccount.On("Deposit", int64(1), matchDecimal("1000")).
		Return(decimal.NewFromInt(6000), nil).Once()

	w := suite.perform(http.MethodPost, "/api/v1/accounts/1/deposit", `{"amount":"1000"}`)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.BalanceResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(int64(1), resp.AccountID)
	suite.True(resp.Balance.Equal(decimal.NewFromInt(6000)))
	suite.mockAccount.AssertExpectations(suite.T())
}

func (suite *AccountHandlerTestSuite) TestWithdraw_InsufficientFunds() {
	suite.mockAccount.On("Withdraw", int64(1), matchDecimal("500")).
		Return(decimal.Decimal{}, apperrors.ErrInsufficientFunds).Once()

	w := suite.perform(http.MethodPost, "/api/v1/accounts/1/withdraw", `{"amount":"500"}`)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockAccount.AssertExpectations(suite.T())
}

func (suite *AccountHandlerTestSuite) TestWithdraw_UnknownAccount() {
	suite.mockAccount.On("Withdraw", int64(7), mock.AnythingOfType("decimal.Decimal")).
		Return(decimal.Decimal{}, apperrors.ErrNotFound).Once()

	w := suite.perform(http.MethodPost, "/api/v1/accounts/7/withdraw", `{"amount":"5"}`)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *AccountHandlerTestSuite) TestDeleteAccount_Missing() {
	suite.mockAccount.On("DeleteAccount", int64(9)).Return(false, nil).Once()

	w := suite.perform(http.MethodDelete, "/api/v1/accounts/9", "")

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.DeleteAccountResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.False(resp.Deleted)
}

func (suite *AccountHandlerTestSuite) TestDeleteAccount_NonZeroBalance() {
	suite.mockAccount.On("DeleteAccount", int64(1)).Return(false, apperrors.ErrNonZeroBalance).Once()

	w := suite.perform(http.MethodDelete, "/api/v1/accounts/1", "")

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *AccountHandlerTestSuite) TestDeactivateAccount_Success() {
	suite.mockAccount.On("DeactivateAccount", int64(1)).
		Return(&domain.Account{ID: 1, Name: "Main Checking", IsActive: false}, nil).Once()

	w := suite.perform(http.MethodPost, "/api/v1/accounts/1/deactivate", "")

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.AccountResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.False(resp.IsActive)
}

func (suite *AccountHandlerTestSuite) TestListAccountTransactions() {
	suite.mockAccount.On("GetAccountByID", int64(1)).
		Return(&domain.Account{ID: 1, Name: "Main Checking", IsActive: true}, nil).Once()
	suite.mockTransaction.On("GetTransactionsByAccount", int64(1)).Return([]domain.Transaction{
		{ID: 1, AccountID: 1, Amount: decimal.NewFromInt(50), TransactionType: domain.Expense},
	}).Once()

	w := suite.perform(http.MethodGet, "/api/v1/accounts/1/transactions", "")

	suite.Equal(http.StatusOK, w.Code)
	var resp []dto.TransactionResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp, 1)
}

func (suite *AccountHandlerTestSuite) TestListAccountTransactions_UnknownAccount() {
	suite.mockAccount.On("GetAccountByID", int64(5)).Return(nil, apperrors.ErrNotFound).Once()

	w := suite.perform(http.MethodGet, "/api/v1/accounts/5/transactions", "")

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockTransaction.AssertNotCalled(suite.T(), "GetTransactionsByAccount")
}

func TestAccountHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AccountHandlerTestSuite))
}
