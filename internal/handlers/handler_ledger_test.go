package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/bsmapp/battery_shop_backend/internal/apperrors"
	"github.com/bsmapp/battery_shop_backend/internal/core/domain"
	portssvc "github.com/bsmapp/battery_shop_backend/internal/core/ports/services"
	"github.com/bsmapp/battery_shop_backend/internal/dto"
	"github.com/bsmapp/battery_shop_backend/internal/middleware"
	"github.com/bsmapp/battery_shop_backend/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock PartyService ---
type MockPartyService struct {
	mock.Mock
}

var _ portssvc.PartySvcFacade = (*MockPartyService)(nil)

func (m *MockPartyService) GetPartyByID(ctx context.Context, partyID string) (*domain.Party, error) {
	args := m.Called(ctx, partyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Party), args.Error(1)
}

func (m *MockPartyService) ListParties(ctx context.Context, kind domain.PartyKind, limit int, offset int) ([]domain.Party, error) {
	args := m.Called(ctx, kind, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Party), args.Error(1)
}

func (m *MockPartyService) CreateParty(ctx context.Context, req dto.CreatePartyRequest, userID string) (*domain.Party, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Party), args.Error(1)
}

func (m *MockPartyService) UpdateParty(ctx context.Context, partyID string, req dto.UpdatePartyRequest, userID string) (*domain.Party, error) {
	args := m.Called(ctx, partyID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Party), args.Error(1)
}

func (m *MockPartyService) DeactivateParty(ctx context.Context, partyID string, userID string) error {
	args := m.Called(ctx, partyID, userID)
	return args.Error(0)
}

// --- Mock LedgerService ---
type MockLedgerService struct {
	mock.Mock
}

var _ portssvc.LedgerSvcFacade = (*MockLedgerService)(nil)

func (m *MockLedgerService) GetAccount(ctx context.Context, kind domain.PartyKind, partyID string) (*domain.Account, error) {
	args := m.Called(ctx, kind, partyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockLedgerService) Statement(ctx context.Context, kind domain.PartyKind, partyID string, limit int, nextToken string) ([]domain.Transaction, string, error) {
	args := m.Called(ctx, kind, partyID, limit, nextToken)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).([]domain.Transaction), args.String(1), args.Error(2)
}

func (m *MockLedgerService) AggregateForPeriod(ctx context.Context, from, to time.Time) (*domain.TaxDeclaration, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TaxDeclaration), args.Error(1)
}

func (m *MockLedgerService) AppendTransaction(ctx context.Context, kind domain.PartyKind, partyID string, draft domain.TransactionDraft, userID string) (*domain.Transaction, error) {
	args := m.Called(ctx, kind, partyID, draft, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockLedgerService) RemoveTransaction(ctx context.Context, kind domain.PartyKind, partyID string, transactionID string) error {
	args := m.Called(ctx, kind, partyID, transactionID)
	return args.Error(0)
}

func (m *MockLedgerService) RemoveByInvoiceNo(ctx context.Context, kind domain.PartyKind, partyID string, invoiceNo string) error {
	args := m.Called(ctx, kind, partyID, invoiceNo)
	return args.Error(0)
}

func (m *MockLedgerService) RemoveByVoucherNo(ctx context.Context, kind domain.PartyKind, partyID string, voucherNo string) error {
	args := m.Called(ctx, kind, partyID, voucherNo)
	return args.Error(0)
}

// --- Test Suite ---
type LedgerHandlerTestSuite struct {
	suite.Suite
	router            *gin.Engine
	mockPartyService  *MockPartyService
	mockLedgerService *MockLedgerService
	jwtSecret         string
}

func (suite *LedgerHandlerTestSuite) generateTestToken(userID string) string {
	token, err := utils.GenerateJWT(userID, suite.jwtSecret, time.Hour, "bsb-test")
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return token
}

func (suite *LedgerHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		dto.RegisterCustomValidations(v)
	}
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockPartyService = new(MockPartyService)
	suite.mockLedgerService = new(MockLedgerService)

	v1 := suite.router.Group("/api/v1")
	registerLedgerRoutes(v1, suite.mockPartyService, suite.mockLedgerService)
}

func (suite *LedgerHandlerTestSuite) doRequest(method, url, userID string, body *strings.Reader) *httptest.ResponseRecorder {
	var req *http.Request
	if body != nil {
		req, _ = http.NewRequest(method, url, body)
		req.Header.Set("Content-Type", "application/json")
	} else {
		req, _ = http.NewRequest(method, url, nil)
	}
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *LedgerHandlerTestSuite) TestGetAccount_Success() {
	partyID := uuid.NewString()
	userID := uuid.NewString()
	party := &domain.Party{PartyID: partyID, Kind: domain.Customer, Name: "Al Noor Trading", IsActive: true}
	account := &domain.Account{
		PartyID:        partyID,
		Kind:           domain.Customer,
		CurrentBalance: decimal.NewFromInt(120),
		Transactions: []domain.Transaction{
			{
				TransactionID: uuid.NewString(),
				Date:          time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
				Type:          domain.Sale,
				Amount:        decimal.NewFromInt(120),
				Balance:       decimal.NewFromInt(120),
			},
		},
	}

	suite.mockPartyService.On("GetPartyByID", mock.Anything, partyID).Return(party, nil).Once()
	suite.mockLedgerService.On("GetAccount", mock.Anything, domain.Customer, partyID).Return(account, nil).Once()

	w := suite.doRequest(http.MethodGet, fmt.Sprintf("/api/v1/parties/%s/account", partyID), userID, nil)

	suite.Equal(http.StatusOK, w.Code)

	var body dto.AccountResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal(partyID, body.PartyID)
	suite.True(body.CurrentBalance.Equal(decimal.NewFromInt(120)))
	suite.True(body.TotalSales.Equal(decimal.NewFromInt(120)))
	suite.Len(body.Transactions, 1)

	suite.mockPartyService.AssertExpectations(suite.T())
	suite.mockLedgerService.AssertExpectations(suite.T())
}

func (suite *LedgerHandlerTestSuite) TestGetAccount_EmptyAccountIsOK() {
	partyID := uuid.NewString()
	userID := uuid.NewString()
	party := &domain.Party{PartyID: partyID, Kind: domain.Supplier, Name: "Battery Importers LLC", IsActive: true}

	suite.mockPartyService.On("GetPartyByID", mock.Anything, partyID).Return(party, nil).Once()
	suite.mockLedgerService.On("GetAccount", mock.Anything, domain.Supplier, partyID).Return(nil, apperrors.ErrNotFound).Once()

	w := suite.doRequest(http.MethodGet, fmt.Sprintf("/api/v1/parties/%s/account", partyID), userID, nil)

	// A party with no ledger history still has a (zero) account.
	suite.Equal(http.StatusOK, w.Code)

	var body dto.AccountResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal(partyID, body.PartyID)
	suite.True(body.CurrentBalance.IsZero())
	suite.Empty(body.Transactions)
}

func (suite *LedgerHandlerTestSuite) TestGetAccount_PartyNotFound() {
	partyID := uuid.NewString()
	userID := uuid.NewString()

	suite.mockPartyService.On("GetPartyByID", mock.Anything, partyID).Return(nil, apperrors.ErrNotFound).Once()

	w := suite.doRequest(http.MethodGet, fmt.Sprintf("/api/v1/parties/%s/account", partyID), userID, nil)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockLedgerService.AssertNotCalled(suite.T(), "GetAccount", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *LedgerHandlerTestSuite) TestGetAccount_Unauthorized() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/parties/any/account", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *LedgerHandlerTestSuite) TestCreateAdjustment_Success() {
	partyID := uuid.NewString()
	userID := uuid.NewString()
	party := &domain.Party{PartyID: partyID, Kind: domain.Customer, Name: "Al Noor Trading", IsActive: true}
	created := &domain.Transaction{
		TransactionID: uuid.NewString(),
		Date:          time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
		Type:          domain.Credit,
		Description:   "Goodwill discount",
		Amount:        decimal.NewFromInt(25),
		Balance:       decimal.NewFromInt(95),
	}

	suite.mockPartyService.On("GetPartyByID", mock.Anything, partyID).Return(party, nil).Once()
	suite.mockLedgerService.On("AppendTransaction", mock.Anything, domain.Customer, partyID, mock.MatchedBy(func(draft domain.TransactionDraft) bool {
		return draft.Type == domain.Credit &&
			draft.Amount.Equal(decimal.NewFromInt(25)) &&
			draft.Description == "Goodwill discount"
	}), userID).Return(created, nil).Once()

	body := strings.NewReader(`{"date":"2025-06-10","description":"Goodwill discount","amount":25}`)
	w := suite.doRequest(http.MethodPost, fmt.Sprintf("/api/v1/parties/%s/adjustments", partyID), userID, body)

	suite.Equal(http.StatusCreated, w.Code)

	var resp dto.TransactionResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(created.TransactionID, resp.TransactionID)
	suite.Equal(domain.Credit, resp.Type)

	suite.mockLedgerService.AssertExpectations(suite.T())
}

func (suite *LedgerHandlerTestSuite) TestCreateAdjustment_InvalidBody() {
	partyID := uuid.NewString()
	userID := uuid.NewString()
	party := &domain.Party{PartyID: partyID, Kind: domain.Customer, IsActive: true}

	suite.mockPartyService.On("GetPartyByID", mock.Anything, partyID).Return(party, nil).Once()

	body := strings.NewReader(`{"date":"2025-06-10"}`)
	w := suite.doRequest(http.MethodPost, fmt.Sprintf("/api/v1/parties/%s/adjustments", partyID), userID, body)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockLedgerService.AssertNotCalled(suite.T(), "AppendTransaction", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *LedgerHandlerTestSuite) TestRemoveTransaction_Success() {
	partyID := uuid.NewString()
	transactionID := uuid.NewString()
	userID := uuid.NewString()
	party := &domain.Party{PartyID: partyID, Kind: domain.Customer, IsActive: true}

	suite.mockPartyService.On("GetPartyByID", mock.Anything, partyID).Return(party, nil).Once()
	suite.mockLedgerService.On("RemoveTransaction", mock.Anything, domain.Customer, partyID, transactionID).Return(nil).Once()

	w := suite.doRequest(http.MethodDelete, fmt.Sprintf("/api/v1/parties/%s/transactions/%s", partyID, transactionID), userID, nil)

	suite.Equal(http.StatusNoContent, w.Code)
	suite.mockLedgerService.AssertExpectations(suite.T())
}

func (suite *LedgerHandlerTestSuite) TestRemoveTransaction_NotFound() {
	partyID := uuid.NewString()
	transactionID := uuid.NewString()
	userID := uuid.NewString()
	party := &domain.Party{PartyID: partyID, Kind: domain.Customer, IsActive: true}

	suite.mockPartyService.On("GetPartyByID", mock.Anything, partyID).Return(party, nil).Once()
	suite.mockLedgerService.On("RemoveTransaction", mock.Anything, domain.Customer, partyID, transactionID).Return(apperrors.ErrNotFound).Once()

	w := suite.doRequest(http.MethodDelete, fmt.Sprintf("/api/v1/parties/%s/transactions/%s", partyID, transactionID), userID, nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *LedgerHandlerTestSuite) TestGetStatement_Success() {
	partyID := uuid.NewString()
	userID := uuid.NewString()
	party := &domain.Party{PartyID: partyID, Kind: domain.Customer, IsActive: true}
	txns := []domain.Transaction{
		{
			TransactionID: uuid.NewString(),
			Date:          time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC),
			Type:          domain.Receipt,
			Amount:        decimal.NewFromInt(30),
			Balance:       decimal.NewFromInt(120),
		},
		{
			TransactionID: uuid.NewString(),
			Date:          time.Date(2025, 6, 8, 0, 0, 0, 0, time.UTC),
			Type:          domain.Sale,
			Amount:        decimal.NewFromInt(50),
			Balance:       decimal.NewFromInt(150),
		},
	}

	suite.mockPartyService.On("GetPartyByID", mock.Anything, partyID).Return(party, nil).Once()
	suite.mockLedgerService.On("Statement", mock.Anything, domain.Customer, partyID, 2, "").Return(txns, "next-token", nil).Once()

	w := suite.doRequest(http.MethodGet, fmt.Sprintf("/api/v1/parties/%s/statement?limit=2", partyID), userID, nil)

	suite.Equal(http.StatusOK, w.Code)

	var body dto.StatementResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Len(body.Transactions, 2)
	suite.Equal("next-token", body.NextToken)
	suite.Equal(txns[0].TransactionID, body.Transactions[0].TransactionID)

	suite.mockLedgerService.AssertExpectations(suite.T())
}

// --- Run Test Suite ---
func TestLedgerHandler(t *testing.T) {
	suite.Run(t, new(LedgerHandlerTestSuite))
}
