package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/bsmapp/battery_shop_backend/internal/apperrors"
	"github.com/bsmapp/battery_shop_backend/internal/core/domain"
	"github.com/bsmapp/battery_shop_backend/internal/core/services"
	"github.com/bsmapp/battery_shop_backend/internal/utils/accounting"
	"github.com/bsmapp/battery_shop_backend/internal/utils/pagination"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	portssvc "github.com/bsmapp/battery_shop_backend/internal/core/ports/services"
)

// MockLedgerRepository is a mock type for the LedgerRepositoryFacade interface
type MockLedgerRepository struct {
	mock.Mock
}

func (m *MockLedgerRepository) FindAccountByParty(ctx context.Context, kind domain.PartyKind, partyID string) (*domain.Account, error) {
	args := m.Called(ctx, kind, partyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockLedgerRepository) ListAccountsByKind(ctx context.Context, kind domain.PartyKind) ([]domain.Account, error) {
	args := m.Called(ctx, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockLedgerRepository) AppendTransaction(ctx context.Context, account domain.Account, txn domain.Transaction) error {
	args := m.Called(ctx, account, txn)
	return args.Error(0)
}

func (m *MockLedgerRepository) RemoveTransaction(ctx context.Context, account domain.Account, transactionID string, rebalanced []domain.Transaction) error {
	args := m.Called(ctx, account, transactionID, rebalanced)
	return args.Error(0)
}

// --- Test Suite Setup ---

type LedgerServiceTestSuite struct {
	suite.Suite
	mockRepo *MockLedgerRepository
	service  portssvc.LedgerSvcFacade
}

func (suite *LedgerServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockLedgerRepository)
	suite.service = services.NewLedgerServiceImpl(suite.mockRepo)
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// entry builds a ledger entry with a stored balance, for seeding mock accounts.
func entry(id string, txType domain.TransactionType, amount, balance string, d time.Time) domain.Transaction {
	return domain.Transaction{
		TransactionID: id,
		Date:          d,
		Type:          txType,
		Amount:        decimal.RequireFromString(amount),
		Balance:       decimal.RequireFromString(balance),
		AuditFields: domain.AuditFields{
			CreatedAt: time.Now().UTC(),
		},
	}
}

// --- AppendTransaction ---

func (suite *LedgerServiceTestSuite) TestAppendTransaction_FirstEntryCreatesAccount() {
	ctx := context.Background()
	partyID := uuid.NewString()
	userID := uuid.NewString()
	draft := domain.TransactionDraft{
		Date:        date(2025, 6, 10),
		Type:        domain.Sale,
		Description: "First sale",
		Amount:      decimal.RequireFromString("150.50"),
		VATAmount:   decimal.RequireFromString("22.58"),
		InvoiceNo:   "INV-0001",
	}

	suite.mockRepo.On("FindAccountByParty", ctx, domain.Customer, partyID).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("AppendTransaction", ctx, mock.MatchedBy(func(acc domain.Account) bool {
		return acc.PartyID == partyID &&
			acc.Kind == domain.Customer &&
			acc.CurrentBalance.Equal(decimal.RequireFromString("150.50")) &&
			acc.AccountID != ""
	}), mock.MatchedBy(func(txn domain.Transaction) bool {
		return txn.Balance.Equal(decimal.RequireFromString("150.50")) &&
			txn.InvoiceNo == "INV-0001" &&
			txn.CreatedBy == userID
	})).Return(nil).Once()

	txn, err := suite.service.AppendTransaction(ctx, domain.Customer, partyID, draft, userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(txn)
	suite.NotEmpty(txn.TransactionID)
	suite.True(txn.Balance.Equal(decimal.RequireFromString("150.50")))
	suite.Equal(date(2025, 6, 10), txn.Date)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestAppendTransaction_ReceiptLowersBalance() {
	ctx := context.Background()
	partyID := uuid.NewString()
	userID := uuid.NewString()
	existing := &domain.Account{
		AccountID:      uuid.NewString(),
		PartyID:        partyID,
		Kind:           domain.Customer,
		CurrentBalance: decimal.RequireFromString("200"),
		Transactions: []domain.Transaction{
			entry("t1", domain.Sale, "200", "200", date(2025, 6, 1)),
		},
	}
	draft := domain.TransactionDraft{
		Date:      date(2025, 6, 5),
		Type:      domain.Receipt,
		Amount:    decimal.RequireFromString("80"),
		VoucherNo: "RCV-0001",
	}

	suite.mockRepo.On("FindAccountByParty", ctx, domain.Customer, partyID).Return(existing, nil).Once()
	suite.mockRepo.On("AppendTransaction", ctx, mock.MatchedBy(func(acc domain.Account) bool {
		return acc.CurrentBalance.Equal(decimal.RequireFromString("120"))
	}), mock.AnythingOfType("domain.Transaction")).Return(nil).Once()

	txn, err := suite.service.AppendTransaction(ctx, domain.Customer, partyID, draft, userID)

	suite.Require().NoError(err)
	suite.True(txn.Balance.Equal(decimal.RequireFromString("120")))

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestAppendTransaction_NegativeAmount() {
	ctx := context.Background()
	draft := domain.TransactionDraft{
		Date:   date(2025, 6, 5),
		Type:   domain.Sale,
		Amount: decimal.RequireFromString("-10"),
	}

	txn, err := suite.service.AppendTransaction(ctx, domain.Customer, uuid.NewString(), draft, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "AppendTransaction", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestAppendTransaction_UnknownType() {
	ctx := context.Background()
	draft := domain.TransactionDraft{
		Date:   date(2025, 6, 5),
		Type:   "REFUND",
		Amount: decimal.RequireFromString("10"),
	}

	txn, err := suite.service.AppendTransaction(ctx, domain.Customer, uuid.NewString(), draft, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *LedgerServiceTestSuite) TestAppendTransaction_UnknownPartyKind() {
	ctx := context.Background()
	draft := domain.TransactionDraft{
		Date:   date(2025, 6, 5),
		Type:   domain.Sale,
		Amount: decimal.RequireFromString("10"),
	}

	txn, err := suite.service.AppendTransaction(ctx, "VENDOR", uuid.NewString(), draft, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *LedgerServiceTestSuite) TestAppendTransaction_RepoError() {
	ctx := context.Background()
	partyID := uuid.NewString()
	draft := domain.TransactionDraft{
		Date:   date(2025, 6, 5),
		Type:   domain.Sale,
		Amount: decimal.RequireFromString("10"),
	}
	expectedErr := assert.AnError

	suite.mockRepo.On("FindAccountByParty", ctx, domain.Customer, partyID).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("AppendTransaction", ctx, mock.AnythingOfType("domain.Account"), mock.AnythingOfType("domain.Transaction")).Return(expectedErr).Once()

	txn, err := suite.service.AppendTransaction(ctx, domain.Customer, partyID, draft, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, expectedErr)

	suite.mockRepo.AssertExpectations(suite.T())
}

// --- RemoveTransaction ---

// Account history (oldest first): sale 100, sale 50, receipt 30. Balances 100, 150, 120.
func removalFixture(partyID string) *domain.Account {
	return &domain.Account{
		AccountID:      uuid.NewString(),
		PartyID:        partyID,
		Kind:           domain.Customer,
		CurrentBalance: decimal.RequireFromString("120"),
		Transactions: []domain.Transaction{
			entry("t3", domain.Receipt, "30", "120", date(2025, 6, 12)),
			entry("t2", domain.Sale, "50", "150", date(2025, 6, 8)),
			entry("t1", domain.Sale, "100", "100", date(2025, 6, 1)),
		},
	}
}

func (suite *LedgerServiceTestSuite) TestRemoveTransaction_Newest() {
	ctx := context.Background()
	partyID := uuid.NewString()
	account := removalFixture(partyID)

	suite.mockRepo.On("FindAccountByParty", ctx, domain.Customer, partyID).Return(account, nil).Once()
	suite.mockRepo.On("RemoveTransaction", ctx, mock.MatchedBy(func(acc domain.Account) bool {
		// Removing the receipt restores its 30 to the balance.
		return acc.CurrentBalance.Equal(decimal.RequireFromString("150"))
	}), "t3", mock.MatchedBy(func(rebalanced []domain.Transaction) bool {
		return len(rebalanced) == 2 &&
			rebalanced[0].Balance.Equal(decimal.RequireFromString("150")) &&
			rebalanced[1].Balance.Equal(decimal.RequireFromString("100"))
	})).Return(nil).Once()

	err := suite.service.RemoveTransaction(ctx, domain.Customer, partyID, "t3")

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestRemoveTransaction_MidListShiftsNewerEntries() {
	ctx := context.Background()
	partyID := uuid.NewString()
	account := removalFixture(partyID)

	suite.mockRepo.On("FindAccountByParty", ctx, domain.Customer, partyID).Return(account, nil).Once()
	suite.mockRepo.On("RemoveTransaction", ctx, mock.MatchedBy(func(acc domain.Account) bool {
		return acc.CurrentBalance.Equal(decimal.RequireFromString("70"))
	}), "t2", mock.MatchedBy(func(rebalanced []domain.Transaction) bool {
		// The newer receipt shifts down by 50; the older sale keeps its value.
		if len(rebalanced) != 2 {
			return false
		}
		if !rebalanced[0].Balance.Equal(decimal.RequireFromString("70")) {
			return false
		}
		if !rebalanced[1].Balance.Equal(decimal.RequireFromString("100")) {
			return false
		}
		return accounting.VerifyInvariant(rebalanced, decimal.RequireFromString("70")) == nil
	})).Return(nil).Once()

	err := suite.service.RemoveTransaction(ctx, domain.Customer, partyID, "t2")

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestRemoveTransaction_Oldest() {
	ctx := context.Background()
	partyID := uuid.NewString()
	account := removalFixture(partyID)

	suite.mockRepo.On("FindAccountByParty", ctx, domain.Customer, partyID).Return(account, nil).Once()
	suite.mockRepo.On("RemoveTransaction", ctx, mock.MatchedBy(func(acc domain.Account) bool {
		return acc.CurrentBalance.Equal(decimal.RequireFromString("20"))
	}), "t1", mock.MatchedBy(func(rebalanced []domain.Transaction) bool {
		return len(rebalanced) == 2 &&
			rebalanced[0].Balance.Equal(decimal.RequireFromString("20")) &&
			rebalanced[1].Balance.Equal(decimal.RequireFromString("50"))
	})).Return(nil).Once()

	err := suite.service.RemoveTransaction(ctx, domain.Customer, partyID, "t1")

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestRemoveTransaction_NotFound() {
	ctx := context.Background()
	partyID := uuid.NewString()
	account := removalFixture(partyID)

	suite.mockRepo.On("FindAccountByParty", ctx, domain.Customer, partyID).Return(account, nil).Once()

	err := suite.service.RemoveTransaction(ctx, domain.Customer, partyID, "no-such-entry")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertNotCalled(suite.T(), "RemoveTransaction", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestRemoveTransaction_AccountNotFound() {
	ctx := context.Background()
	partyID := uuid.NewString()

	suite.mockRepo.On("FindAccountByParty", ctx, domain.Customer, partyID).Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.RemoveTransaction(ctx, domain.Customer, partyID, "t1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *LedgerServiceTestSuite) TestRemoveByInvoiceNo() {
	ctx := context.Background()
	partyID := uuid.NewString()
	account := removalFixture(partyID)
	account.Transactions[1].InvoiceNo = "INV-0042"

	suite.mockRepo.On("FindAccountByParty", ctx, domain.Customer, partyID).Return(account, nil).Once()
	suite.mockRepo.On("RemoveTransaction", ctx, mock.AnythingOfType("domain.Account"), "t2", mock.AnythingOfType("[]domain.Transaction")).Return(nil).Once()

	err := suite.service.RemoveByInvoiceNo(ctx, domain.Customer, partyID, "INV-0042")

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestRemoveByInvoiceNo_EmptyNoNeverMatches() {
	ctx := context.Background()
	partyID := uuid.NewString()
	account := removalFixture(partyID)

	suite.mockRepo.On("FindAccountByParty", ctx, domain.Customer, partyID).Return(account, nil).Once()

	// None of the fixture entries carries an invoice number; an empty key must
	// not match them either.
	err := suite.service.RemoveByInvoiceNo(ctx, domain.Customer, partyID, "")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *LedgerServiceTestSuite) TestRemoveByVoucherNo() {
	ctx := context.Background()
	partyID := uuid.NewString()
	account := removalFixture(partyID)
	account.Transactions[0].VoucherNo = "RCV-0007"

	suite.mockRepo.On("FindAccountByParty", ctx, domain.Customer, partyID).Return(account, nil).Once()
	suite.mockRepo.On("RemoveTransaction", ctx, mock.AnythingOfType("domain.Account"), "t3", mock.AnythingOfType("[]domain.Transaction")).Return(nil).Once()

	err := suite.service.RemoveByVoucherNo(ctx, domain.Customer, partyID, "RCV-0007")

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

// --- Statement ---

func (suite *LedgerServiceTestSuite) TestStatement_FirstPage() {
	ctx := context.Background()
	partyID := uuid.NewString()
	account := removalFixture(partyID)

	suite.mockRepo.On("FindAccountByParty", ctx, domain.Customer, partyID).Return(account, nil).Once()

	page, token, err := suite.service.Statement(ctx, domain.Customer, partyID, 2, "")

	suite.Require().NoError(err)
	suite.Len(page, 2)
	suite.Equal("t3", page[0].TransactionID)
	suite.Equal("t2", page[1].TransactionID)
	suite.NotEmpty(token, "A further page remains, so a token is expected")
}

func (suite *LedgerServiceTestSuite) TestStatement_SecondPage() {
	ctx := context.Background()
	partyID := uuid.NewString()
	account := removalFixture(partyID)
	token := pagination.EncodeToken(account.Transactions[1].CreatedAt, "t2")

	suite.mockRepo.On("FindAccountByParty", ctx, domain.Customer, partyID).Return(account, nil).Once()

	page, nextToken, err := suite.service.Statement(ctx, domain.Customer, partyID, 2, token)

	suite.Require().NoError(err)
	suite.Len(page, 1)
	suite.Equal("t1", page[0].TransactionID)
	suite.Empty(nextToken, "Last page should carry no token")
}

func (suite *LedgerServiceTestSuite) TestStatement_InvalidToken() {
	ctx := context.Background()
	partyID := uuid.NewString()
	account := removalFixture(partyID)

	suite.mockRepo.On("FindAccountByParty", ctx, domain.Customer, partyID).Return(account, nil).Once()

	_, _, err := suite.service.Statement(ctx, domain.Customer, partyID, 2, "not-a-token!!")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

// --- AggregateForPeriod ---

func (suite *LedgerServiceTestSuite) TestAggregateForPeriod() {
	ctx := context.Background()

	saleIn := entry("c1", domain.Sale, "100", "100", date(2025, 6, 10))
	saleIn.VATAmount = decimal.RequireFromString("15")
	saleBoundary := entry("c2", domain.Sale, "200", "300", date(2025, 6, 30))
	saleBoundary.VATAmount = decimal.RequireFromString("30")
	saleOut := entry("c3", domain.Sale, "999", "1299", date(2025, 7, 1))
	saleOut.VATAmount = decimal.RequireFromString("149.85")
	receiptIn := entry("c4", domain.Receipt, "50", "1249", date(2025, 6, 15))

	customers := []domain.Account{{
		Kind:         domain.Customer,
		Transactions: []domain.Transaction{saleOut, receiptIn, saleBoundary, saleIn},
	}}

	purchaseIn := entry("s1", domain.Purchase, "80", "80", date(2025, 6, 1))
	purchaseIn.VATAmount = decimal.RequireFromString("12")
	purchaseBefore := entry("s2", domain.Purchase, "70", "150", date(2025, 5, 31))
	purchaseBefore.VATAmount = decimal.RequireFromString("10.50")

	suppliers := []domain.Account{{
		Kind:         domain.Supplier,
		Transactions: []domain.Transaction{purchaseIn, purchaseBefore},
	}}

	suite.mockRepo.On("ListAccountsByKind", ctx, domain.Customer).Return(customers, nil).Once()
	suite.mockRepo.On("ListAccountsByKind", ctx, domain.Supplier).Return(suppliers, nil).Once()

	decl, err := suite.service.AggregateForPeriod(ctx, date(2025, 6, 1), date(2025, 6, 30))

	suite.Require().NoError(err)
	// Both period boundaries are inclusive: the June 1 purchase and the June 30
	// sale count, the May 31 purchase and the July 1 sale do not. Receipts
	// never contribute.
	suite.True(decl.SalesAmount.Equal(decimal.RequireFromString("300")), "sales amount %s", decl.SalesAmount)
	suite.True(decl.SalesVAT.Equal(decimal.RequireFromString("45")), "sales VAT %s", decl.SalesVAT)
	suite.True(decl.PurchaseAmount.Equal(decimal.RequireFromString("80")), "purchase amount %s", decl.PurchaseAmount)
	suite.True(decl.PurchaseVAT.Equal(decimal.RequireFromString("12")), "purchase VAT %s", decl.PurchaseVAT)
	suite.True(decl.NetVAT.Equal(decimal.RequireFromString("33")), "net VAT %s", decl.NetVAT)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestAggregateForPeriod_SingleDay() {
	ctx := context.Background()

	sale := entry("c1", domain.Sale, "100", "100", date(2025, 6, 10))
	sale.VATAmount = decimal.RequireFromString("15")
	customers := []domain.Account{{Kind: domain.Customer, Transactions: []domain.Transaction{sale}}}

	suite.mockRepo.On("ListAccountsByKind", ctx, domain.Customer).Return(customers, nil).Once()
	suite.mockRepo.On("ListAccountsByKind", ctx, domain.Supplier).Return([]domain.Account{}, nil).Once()

	decl, err := suite.service.AggregateForPeriod(ctx, date(2025, 6, 10), date(2025, 6, 10))

	suite.Require().NoError(err)
	suite.True(decl.SalesAmount.Equal(decimal.RequireFromString("100")))
	suite.True(decl.NetVAT.Equal(decimal.RequireFromString("15")))
}

func (suite *LedgerServiceTestSuite) TestAggregateForPeriod_EndBeforeStart() {
	ctx := context.Background()

	decl, err := suite.service.AggregateForPeriod(ctx, date(2025, 6, 30), date(2025, 6, 1))

	suite.Require().Error(err)
	suite.Nil(decl)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "ListAccountsByKind", mock.Anything, mock.Anything)
}

// --- Run Test Suite ---

func TestLedgerService(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}
