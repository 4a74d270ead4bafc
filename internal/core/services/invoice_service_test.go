package services_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/bsmapp/battery_shop_backend/internal/apperrors"
	"github.com/bsmapp/battery_shop_backend/internal/core/domain"
	portsrepo "github.com/bsmapp/battery_shop_backend/internal/core/ports/repositories"
	portssvc "github.com/bsmapp/battery_shop_backend/internal/core/ports/services"
	"github.com/bsmapp/battery_shop_backend/internal/core/services"
	"github.com/bsmapp/battery_shop_backend/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockInvoiceRepository is a mock type for the InvoiceRepositoryFacade interface
type MockInvoiceRepository struct {
	mock.Mock
}

func (m *MockInvoiceRepository) FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	args := m.Called(ctx, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) ListInvoices(ctx context.Context, filter portsrepo.InvoiceListFilter, limit int, offset int) ([]domain.Invoice, error) {
	args := m.Called(ctx, filter, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) SaveInvoice(ctx context.Context, invoice domain.Invoice) error {
	args := m.Called(ctx, invoice)
	return args.Error(0)
}

func (m *MockInvoiceRepository) UpdateInvoice(ctx context.Context, invoice domain.Invoice) error {
	args := m.Called(ctx, invoice)
	return args.Error(0)
}

func (m *MockInvoiceRepository) DeleteInvoice(ctx context.Context, invoiceID string) error {
	args := m.Called(ctx, invoiceID)
	return args.Error(0)
}

// MockPartyReader is a mock type for the PartyReader interface
type MockPartyReader struct {
	mock.Mock
}

func (m *MockPartyReader) FindPartyByID(ctx context.Context, partyID string) (*domain.Party, error) {
	args := m.Called(ctx, partyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Party), args.Error(1)
}

func (m *MockPartyReader) ListParties(ctx context.Context, kind domain.PartyKind, limit int, offset int) ([]domain.Party, error) {
	args := m.Called(ctx, kind, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Party), args.Error(1)
}

// MockProductRepository is a mock type for the ProductRepositoryFacade interface
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockProductRepository) ListProducts(ctx context.Context, limit int, offset int) ([]domain.Product, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *MockProductRepository) SaveProduct(ctx context.Context, product domain.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) UpdateProduct(ctx context.Context, product domain.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) AdjustStock(ctx context.Context, productID string, delta int, userID string, now time.Time) error {
	args := m.Called(ctx, productID, delta, userID, now)
	return args.Error(0)
}

// MockLedgerWriterSvc is a mock type for the LedgerWriterSvc interface
type MockLedgerWriterSvc struct {
	mock.Mock
}

func (m *MockLedgerWriterSvc) AppendTransaction(ctx context.Context, kind domain.PartyKind, partyID string, draft domain.TransactionDraft, userID string) (*domain.Transaction, error) {
	args := m.Called(ctx, kind, partyID, draft, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockLedgerWriterSvc) RemoveTransaction(ctx context.Context, kind domain.PartyKind, partyID string, transactionID string) error {
	args := m.Called(ctx, kind, partyID, transactionID)
	return args.Error(0)
}

func (m *MockLedgerWriterSvc) RemoveByInvoiceNo(ctx context.Context, kind domain.PartyKind, partyID string, invoiceNo string) error {
	args := m.Called(ctx, kind, partyID, invoiceNo)
	return args.Error(0)
}

func (m *MockLedgerWriterSvc) RemoveByVoucherNo(ctx context.Context, kind domain.PartyKind, partyID string, voucherNo string) error {
	args := m.Called(ctx, kind, partyID, voucherNo)
	return args.Error(0)
}

// --- Test Suite Setup ---

type InvoiceServiceTestSuite struct {
	suite.Suite
	mockInvoiceRepo *MockInvoiceRepository
	mockPartyRepo   *MockPartyReader
	mockProductRepo *MockProductRepository
	mockLedger      *MockLedgerWriterSvc
	service         portssvc.InvoiceSvcFacade
}

func (suite *InvoiceServiceTestSuite) SetupTest() {
	suite.mockInvoiceRepo = new(MockInvoiceRepository)
	suite.mockPartyRepo = new(MockPartyReader)
	suite.mockProductRepo = new(MockProductRepository)
	suite.mockLedger = new(MockLedgerWriterSvc)
	suite.service = services.NewInvoiceServiceImpl(
		suite.mockInvoiceRepo,
		suite.mockPartyRepo,
		suite.mockProductRepo,
		suite.mockLedger,
		services.WithDefaultVATRate(decimal.RequireFromString("0.15")),
	)
}

func activeCustomer(partyID string) *domain.Party {
	return &domain.Party{PartyID: partyID, Kind: domain.Customer, Name: "Al Noor Trading", IsActive: true}
}

func activeSupplier(partyID string) *domain.Party {
	return &domain.Party{PartyID: partyID, Kind: domain.Supplier, Name: "Battery Importers LLC", IsActive: true}
}

func catalogProduct(productID, price string) *domain.Product {
	return &domain.Product{
		ProductID: productID,
		Name:      "NS70 MF",
		UnitPrice: decimal.RequireFromString(price),
		StockQty:  20,
		IsActive:  true,
	}
}

// --- CreateInvoice ---

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_Success() {
	ctx := context.Background()
	partyID := uuid.NewString()
	productID := uuid.NewString()
	userID := uuid.NewString()
	req := dto.CreateInvoiceRequest{
		Kind:    domain.SalesInvoice,
		PartyID: partyID,
		Date:    "2025-06-10",
		Items: []dto.CreateInvoiceItemRequest{
			{ProductID: productID, Quantity: 2},
		},
	}

	suite.mockPartyRepo.On("FindPartyByID", ctx, partyID).Return(activeCustomer(partyID), nil).Once()
	suite.mockProductRepo.On("FindProductByID", ctx, productID).Return(catalogProduct(productID, "100"), nil).Once()
	suite.mockInvoiceRepo.On("SaveInvoice", ctx, mock.MatchedBy(func(inv domain.Invoice) bool {
		return inv.SubTotal.Equal(decimal.RequireFromString("200")) &&
			inv.VATAmount.Equal(decimal.RequireFromString("30")) &&
			inv.GrandTotal.Equal(decimal.RequireFromString("230")) &&
			strings.HasPrefix(inv.InvoiceNo, "INV-")
	})).Return(nil).Once()
	// A sale ships two batteries out.
	suite.mockProductRepo.On("AdjustStock", ctx, productID, -2, userID, mock.AnythingOfType("time.Time")).Return(nil).Once()
	suite.mockLedger.On("AppendTransaction", ctx, domain.Customer, partyID, mock.MatchedBy(func(draft domain.TransactionDraft) bool {
		return draft.Type == domain.Sale &&
			draft.Amount.Equal(decimal.RequireFromString("230")) &&
			draft.VATAmount.Equal(decimal.RequireFromString("30")) &&
			draft.InvoiceNo != ""
	}), userID).Return(&domain.Transaction{}, nil).Once()

	invoice, err := suite.service.CreateInvoice(ctx, req, userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(invoice)
	suite.Len(invoice.Items, 1)
	suite.True(invoice.Items[0].UnitPrice.Equal(decimal.RequireFromString("100")), "catalog price should be snapshotted")
	suite.True(invoice.Items[0].LineTotal.Equal(decimal.RequireFromString("200")))
	suite.Equal(userID, invoice.CreatedBy)

	suite.mockInvoiceRepo.AssertExpectations(suite.T())
	suite.mockProductRepo.AssertExpectations(suite.T())
	suite.mockLedger.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_PurchaseAddsStock() {
	ctx := context.Background()
	partyID := uuid.NewString()
	productID := uuid.NewString()
	userID := uuid.NewString()
	req := dto.CreateInvoiceRequest{
		Kind:    domain.PurchaseInvoice,
		PartyID: partyID,
		Date:    "2025-06-10",
		Items: []dto.CreateInvoiceItemRequest{
			{ProductID: productID, Quantity: 5},
		},
	}

	suite.mockPartyRepo.On("FindPartyByID", ctx, partyID).Return(activeSupplier(partyID), nil).Once()
	suite.mockProductRepo.On("FindProductByID", ctx, productID).Return(catalogProduct(productID, "80"), nil).Once()
	suite.mockInvoiceRepo.On("SaveInvoice", ctx, mock.MatchedBy(func(inv domain.Invoice) bool {
		return strings.HasPrefix(inv.InvoiceNo, "PIN-")
	})).Return(nil).Once()
	suite.mockProductRepo.On("AdjustStock", ctx, productID, 5, userID, mock.AnythingOfType("time.Time")).Return(nil).Once()
	suite.mockLedger.On("AppendTransaction", ctx, domain.Supplier, partyID, mock.MatchedBy(func(draft domain.TransactionDraft) bool {
		return draft.Type == domain.Purchase
	}), userID).Return(&domain.Transaction{}, nil).Once()

	invoice, err := suite.service.CreateInvoice(ctx, req, userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(invoice)
	suite.mockProductRepo.AssertExpectations(suite.T())
	suite.mockLedger.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_UnitPriceOverride() {
	ctx := context.Background()
	partyID := uuid.NewString()
	productID := uuid.NewString()
	userID := uuid.NewString()
	override := decimal.RequireFromString("90")
	req := dto.CreateInvoiceRequest{
		Kind:    domain.SalesInvoice,
		PartyID: partyID,
		Date:    "2025-06-10",
		Items: []dto.CreateInvoiceItemRequest{
			{ProductID: productID, Quantity: 1, UnitPrice: &override},
		},
	}

	suite.mockPartyRepo.On("FindPartyByID", ctx, partyID).Return(activeCustomer(partyID), nil).Once()
	suite.mockProductRepo.On("FindProductByID", ctx, productID).Return(catalogProduct(productID, "100"), nil).Once()
	suite.mockInvoiceRepo.On("SaveInvoice", ctx, mock.AnythingOfType("domain.Invoice")).Return(nil).Once()
	suite.mockProductRepo.On("AdjustStock", ctx, productID, -1, userID, mock.AnythingOfType("time.Time")).Return(nil).Once()
	suite.mockLedger.On("AppendTransaction", ctx, domain.Customer, partyID, mock.AnythingOfType("domain.TransactionDraft"), userID).Return(&domain.Transaction{}, nil).Once()

	invoice, err := suite.service.CreateInvoice(ctx, req, userID)

	suite.Require().NoError(err)
	suite.True(invoice.Items[0].UnitPrice.Equal(override))
	suite.True(invoice.SubTotal.Equal(override))
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_PartyKindMismatch() {
	ctx := context.Background()
	partyID := uuid.NewString()
	req := dto.CreateInvoiceRequest{
		Kind:    domain.SalesInvoice,
		PartyID: partyID,
		Date:    "2025-06-10",
		Items:   []dto.CreateInvoiceItemRequest{{ProductID: uuid.NewString(), Quantity: 1}},
	}

	// A sales invoice must target a customer, not a supplier.
	suite.mockPartyRepo.On("FindPartyByID", ctx, partyID).Return(activeSupplier(partyID), nil).Once()

	invoice, err := suite.service.CreateInvoice(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(invoice)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockInvoiceRepo.AssertNotCalled(suite.T(), "SaveInvoice", mock.Anything, mock.Anything)
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_InactiveParty() {
	ctx := context.Background()
	partyID := uuid.NewString()
	party := activeCustomer(partyID)
	party.IsActive = false
	req := dto.CreateInvoiceRequest{
		Kind:    domain.SalesInvoice,
		PartyID: partyID,
		Date:    "2025-06-10",
		Items:   []dto.CreateInvoiceItemRequest{{ProductID: uuid.NewString(), Quantity: 1}},
	}

	suite.mockPartyRepo.On("FindPartyByID", ctx, partyID).Return(party, nil).Once()

	invoice, err := suite.service.CreateInvoice(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(invoice)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_PartyNotFound() {
	ctx := context.Background()
	partyID := uuid.NewString()
	req := dto.CreateInvoiceRequest{
		Kind:    domain.SalesInvoice,
		PartyID: partyID,
		Date:    "2025-06-10",
		Items:   []dto.CreateInvoiceItemRequest{{ProductID: uuid.NewString(), Quantity: 1}},
	}

	suite.mockPartyRepo.On("FindPartyByID", ctx, partyID).Return(nil, apperrors.ErrNotFound).Once()

	invoice, err := suite.service.CreateInvoice(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(invoice)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_InvalidDate() {
	ctx := context.Background()
	req := dto.CreateInvoiceRequest{
		Kind:    domain.SalesInvoice,
		PartyID: uuid.NewString(),
		Date:    "10/06/2025",
		Items:   []dto.CreateInvoiceItemRequest{{ProductID: uuid.NewString(), Quantity: 1}},
	}

	invoice, err := suite.service.CreateInvoice(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(invoice)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockPartyRepo.AssertNotCalled(suite.T(), "FindPartyByID", mock.Anything, mock.Anything)
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_InactiveProduct() {
	ctx := context.Background()
	partyID := uuid.NewString()
	productID := uuid.NewString()
	product := catalogProduct(productID, "100")
	product.IsActive = false
	req := dto.CreateInvoiceRequest{
		Kind:    domain.SalesInvoice,
		PartyID: partyID,
		Date:    "2025-06-10",
		Items:   []dto.CreateInvoiceItemRequest{{ProductID: productID, Quantity: 1}},
	}

	suite.mockPartyRepo.On("FindPartyByID", ctx, partyID).Return(activeCustomer(partyID), nil).Once()
	suite.mockProductRepo.On("FindProductByID", ctx, productID).Return(product, nil).Once()

	invoice, err := suite.service.CreateInvoice(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(invoice)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_LedgerError() {
	ctx := context.Background()
	partyID := uuid.NewString()
	productID := uuid.NewString()
	userID := uuid.NewString()
	req := dto.CreateInvoiceRequest{
		Kind:    domain.SalesInvoice,
		PartyID: partyID,
		Date:    "2025-06-10",
		Items:   []dto.CreateInvoiceItemRequest{{ProductID: productID, Quantity: 1}},
	}
	expectedErr := assert.AnError

	suite.mockPartyRepo.On("FindPartyByID", ctx, partyID).Return(activeCustomer(partyID), nil).Once()
	suite.mockProductRepo.On("FindProductByID", ctx, productID).Return(catalogProduct(productID, "100"), nil).Once()
	suite.mockInvoiceRepo.On("SaveInvoice", ctx, mock.AnythingOfType("domain.Invoice")).Return(nil).Once()
	suite.mockProductRepo.On("AdjustStock", ctx, productID, -1, userID, mock.AnythingOfType("time.Time")).Return(nil).Once()
	suite.mockLedger.On("AppendTransaction", ctx, domain.Customer, partyID, mock.AnythingOfType("domain.TransactionDraft"), userID).Return(nil, expectedErr).Once()

	invoice, err := suite.service.CreateInvoice(ctx, req, userID)

	suite.Require().Error(err)
	suite.Nil(invoice)
	suite.ErrorIs(err, expectedErr)
}

// --- UpdateInvoice ---

func (suite *InvoiceServiceTestSuite) TestUpdateInvoice_RepostsLedgerEntry() {
	ctx := context.Background()
	invoiceID := uuid.NewString()
	partyID := uuid.NewString()
	productID := uuid.NewString()
	userID := uuid.NewString()
	existing := &domain.Invoice{
		InvoiceID: invoiceID,
		InvoiceNo: "INV-AB12",
		Kind:      domain.SalesInvoice,
		PartyID:   partyID,
		Date:      time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		Items: []domain.InvoiceItem{
			{ItemID: uuid.NewString(), ProductID: productID, Quantity: 2, UnitPrice: decimal.RequireFromString("100"), LineTotal: decimal.RequireFromString("200")},
		},
		SubTotal:   decimal.RequireFromString("200"),
		VATRate:    decimal.RequireFromString("0.15"),
		VATAmount:  decimal.RequireFromString("30"),
		GrandTotal: decimal.RequireFromString("230"),
	}
	req := dto.UpdateInvoiceRequest{
		Date: "2025-06-12",
		Items: []dto.CreateInvoiceItemRequest{
			{ProductID: productID, Quantity: 3},
		},
	}

	suite.mockInvoiceRepo.On("FindInvoiceByID", ctx, invoiceID).Return(existing, nil).Once()
	suite.mockProductRepo.On("FindProductByID", ctx, productID).Return(catalogProduct(productID, "100"), nil).Once()
	// Old sale of 2 is returned to stock, then the new sale of 3 ships out.
	suite.mockProductRepo.On("AdjustStock", ctx, productID, 2, userID, mock.AnythingOfType("time.Time")).Return(nil).Once()
	suite.mockProductRepo.On("AdjustStock", ctx, productID, -3, userID, mock.AnythingOfType("time.Time")).Return(nil).Once()
	suite.mockInvoiceRepo.On("UpdateInvoice", ctx, mock.MatchedBy(func(inv domain.Invoice) bool {
		return inv.InvoiceNo == "INV-AB12" &&
			inv.SubTotal.Equal(decimal.RequireFromString("300")) &&
			inv.GrandTotal.Equal(decimal.RequireFromString("345"))
	})).Return(nil).Once()
	suite.mockLedger.On("RemoveByInvoiceNo", ctx, domain.Customer, partyID, "INV-AB12").Return(nil).Once()
	suite.mockLedger.On("AppendTransaction", ctx, domain.Customer, partyID, mock.MatchedBy(func(draft domain.TransactionDraft) bool {
		return draft.InvoiceNo == "INV-AB12" && draft.Amount.Equal(decimal.RequireFromString("345"))
	}), userID).Return(&domain.Transaction{}, nil).Once()

	invoice, err := suite.service.UpdateInvoice(ctx, invoiceID, req, userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(invoice)
	suite.Equal("INV-AB12", invoice.InvoiceNo, "invoice number must survive updates")

	suite.mockInvoiceRepo.AssertExpectations(suite.T())
	suite.mockProductRepo.AssertExpectations(suite.T())
	suite.mockLedger.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestUpdateInvoice_MissingLedgerEntryTolerated() {
	ctx := context.Background()
	invoiceID := uuid.NewString()
	partyID := uuid.NewString()
	productID := uuid.NewString()
	userID := uuid.NewString()
	existing := &domain.Invoice{
		InvoiceID: invoiceID,
		InvoiceNo: "INV-CD34",
		Kind:      domain.SalesInvoice,
		PartyID:   partyID,
		VATRate:   decimal.RequireFromString("0.15"),
	}
	req := dto.UpdateInvoiceRequest{
		Date:  "2025-06-12",
		Items: []dto.CreateInvoiceItemRequest{{ProductID: productID, Quantity: 1}},
	}

	suite.mockInvoiceRepo.On("FindInvoiceByID", ctx, invoiceID).Return(existing, nil).Once()
	suite.mockProductRepo.On("FindProductByID", ctx, productID).Return(catalogProduct(productID, "100"), nil).Once()
	suite.mockProductRepo.On("AdjustStock", ctx, productID, -1, userID, mock.AnythingOfType("time.Time")).Return(nil).Once()
	suite.mockInvoiceRepo.On("UpdateInvoice", ctx, mock.AnythingOfType("domain.Invoice")).Return(nil).Once()
	// The old ledger entry was already removed out of band; that must not fail the update.
	suite.mockLedger.On("RemoveByInvoiceNo", ctx, domain.Customer, partyID, "INV-CD34").Return(apperrors.ErrNotFound).Once()
	suite.mockLedger.On("AppendTransaction", ctx, domain.Customer, partyID, mock.AnythingOfType("domain.TransactionDraft"), userID).Return(&domain.Transaction{}, nil).Once()

	invoice, err := suite.service.UpdateInvoice(ctx, invoiceID, req, userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(invoice)
	suite.mockLedger.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestUpdateInvoice_NotFound() {
	ctx := context.Background()
	invoiceID := uuid.NewString()
	req := dto.UpdateInvoiceRequest{
		Date:  "2025-06-12",
		Items: []dto.CreateInvoiceItemRequest{{ProductID: uuid.NewString(), Quantity: 1}},
	}

	suite.mockInvoiceRepo.On("FindInvoiceByID", ctx, invoiceID).Return(nil, apperrors.ErrNotFound).Once()

	invoice, err := suite.service.UpdateInvoice(ctx, invoiceID, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(invoice)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

// --- DeleteInvoice ---

func (suite *InvoiceServiceTestSuite) TestDeleteInvoice_RestoresStockAndReversesLedger() {
	ctx := context.Background()
	invoiceID := uuid.NewString()
	partyID := uuid.NewString()
	productID := uuid.NewString()
	userID := uuid.NewString()
	existing := &domain.Invoice{
		InvoiceID: invoiceID,
		InvoiceNo: "INV-EF56",
		Kind:      domain.SalesInvoice,
		PartyID:   partyID,
		Items: []domain.InvoiceItem{
			{ItemID: uuid.NewString(), ProductID: productID, Quantity: 4},
		},
	}

	suite.mockInvoiceRepo.On("FindInvoiceByID", ctx, invoiceID).Return(existing, nil).Once()
	suite.mockInvoiceRepo.On("DeleteInvoice", ctx, invoiceID).Return(nil).Once()
	// Deleting a sale puts the four batteries back.
	suite.mockProductRepo.On("AdjustStock", ctx, productID, 4, userID, mock.AnythingOfType("time.Time")).Return(nil).Once()
	suite.mockLedger.On("RemoveByInvoiceNo", ctx, domain.Customer, partyID, "INV-EF56").Return(nil).Once()

	err := suite.service.DeleteInvoice(ctx, invoiceID, userID)

	suite.Require().NoError(err)
	suite.mockInvoiceRepo.AssertExpectations(suite.T())
	suite.mockProductRepo.AssertExpectations(suite.T())
	suite.mockLedger.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestDeleteInvoice_NotFound() {
	ctx := context.Background()
	invoiceID := uuid.NewString()

	suite.mockInvoiceRepo.On("FindInvoiceByID", ctx, invoiceID).Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.DeleteInvoice(ctx, invoiceID, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockInvoiceRepo.AssertNotCalled(suite.T(), "DeleteInvoice", mock.Anything, mock.Anything)
}

// --- Run Test Suite ---

func TestInvoiceService(t *testing.T) {
	suite.Run(t, new(InvoiceServiceTestSuite))
}
