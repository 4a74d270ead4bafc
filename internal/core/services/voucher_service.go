package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/bsmapp/battery_shop_backend/internal/apperrors"
	"github.com/bsmapp/battery_shop_backend/internal/core/domain"
	portsrepo "github.com/bsmapp/battery_shop_backend/internal/core/ports/repositories"
	portssvc "github.com/bsmapp/battery_shop_backend/internal/core/ports/services"
	"github.com/bsmapp/battery_shop_backend/internal/dto"
	"github.com/bsmapp/battery_shop_backend/internal/utils"
	"github.com/google/uuid"
)

// voucherServiceImpl implements the VoucherSvcFacade interface. Vouchers are
// the money side of the book: a receipt settles a customer balance, a payment
// settles a supplier balance. Each voucher owns exactly one ledger entry,
// correlated by voucher number.
type voucherServiceImpl struct {
	BaseService
	voucherRepo   portsrepo.VoucherRepositoryFacade
	partyRepo     portsrepo.PartyReader
	ledgerService portssvc.LedgerWriterSvc
}

// NewVoucherServiceImpl creates a new voucher service.
func NewVoucherServiceImpl(
	voucherRepo portsrepo.VoucherRepositoryFacade,
	partyRepo portsrepo.PartyReader,
	ledgerService portssvc.LedgerWriterSvc,
) portssvc.VoucherSvcFacade {
	return &voucherServiceImpl{
		voucherRepo:   voucherRepo,
		partyRepo:     partyRepo,
		ledgerService: ledgerService,
	}
}

var _ portssvc.VoucherSvcFacade = (*voucherServiceImpl)(nil)

func (s *voucherServiceImpl) CreateVoucher(ctx context.Context, req dto.CreateVoucherRequest, userID string) (*domain.Voucher, error) {
	date, err := domain.ParseDate(req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid date: %s", apperrors.ErrValidation, req.Date)
	}

	party, err := s.partyRepo.FindPartyByID(ctx, req.PartyID)
	if err != nil {
		return nil, fmt.Errorf("failed to find party %s: %w", req.PartyID, err)
	}
	if party.Kind != req.Kind.PartyKind() {
		return nil, fmt.Errorf("%w: %s voucher for %s party", apperrors.ErrValidation, req.Kind, party.Kind)
	}
	if !party.IsActive {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrPartyInactive)
	}

	now := time.Now().UTC()
	voucher := domain.Voucher{
		VoucherID: uuid.NewString(),
		VoucherNo: newVoucherNo(req.Kind),
		Kind:      req.Kind,
		PartyID:   req.PartyID,
		Date:      date,
		Amount:    req.Amount,
		Method:    req.Method,
		Reference: req.Reference,
		Notes:     req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.voucherRepo.SaveVoucher(ctx, voucher); err != nil {
		s.LogError(ctx, err, "Failed to save voucher", slog.String("voucher_id", voucher.VoucherID))
		return nil, err
	}

	if _, err := s.ledgerService.AppendTransaction(ctx, party.Kind, party.PartyID, s.ledgerDraft(voucher), userID); err != nil {
		s.LogError(ctx, err, "Failed to post voucher to ledger", slog.String("voucher_no", voucher.VoucherNo))
		return nil, fmt.Errorf("failed to post voucher to ledger: %w", err)
	}

	s.LogInfo(ctx, "Voucher created",
		slog.String("voucher_no", voucher.VoucherNo),
		slog.String("party_id", party.PartyID),
		slog.String("amount", voucher.Amount.String()))
	return &voucher, nil
}

func (s *voucherServiceImpl) GetVoucherByID(ctx context.Context, voucherID string) (*domain.Voucher, error) {
	return s.voucherRepo.FindVoucherByID(ctx, voucherID)
}

func (s *voucherServiceImpl) ListVouchers(ctx context.Context, filter portsrepo.VoucherListFilter, limit int, offset int) ([]domain.Voucher, error) {
	return s.voucherRepo.ListVouchers(ctx, filter, limit, offset)
}

// UpdateVoucher replaces the voucher's mutable fields and swaps its ledger
// entry for one reflecting the new amount and date.
func (s *voucherServiceImpl) UpdateVoucher(ctx context.Context, voucherID string, req dto.UpdateVoucherRequest, userID string) (*domain.Voucher, error) {
	voucher, err := s.voucherRepo.FindVoucherByID(ctx, voucherID)
	if err != nil {
		return nil, fmt.Errorf("failed to find voucher %s: %w", voucherID, err)
	}

	date, err := domain.ParseDate(req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid date: %s", apperrors.ErrValidation, req.Date)
	}

	voucher.Date = date
	voucher.Amount = req.Amount
	voucher.Method = req.Method
	voucher.Reference = req.Reference
	voucher.Notes = req.Notes
	voucher.LastUpdatedAt = time.Now().UTC()
	voucher.LastUpdatedBy = userID

	if err := s.voucherRepo.UpdateVoucher(ctx, *voucher); err != nil {
		s.LogError(ctx, err, "Failed to update voucher", slog.String("voucher_id", voucherID))
		return nil, err
	}

	partyKind := voucher.Kind.PartyKind()
	if err := s.ledgerService.RemoveByVoucherNo(ctx, partyKind, voucher.PartyID, voucher.VoucherNo); err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to reverse ledger entry for %s: %w", voucher.VoucherNo, err)
	}
	if _, err := s.ledgerService.AppendTransaction(ctx, partyKind, voucher.PartyID, s.ledgerDraft(*voucher), userID); err != nil {
		return nil, fmt.Errorf("failed to post voucher to ledger: %w", err)
	}

	s.LogInfo(ctx, "Voucher updated", slog.String("voucher_no", voucher.VoucherNo))
	return voucher, nil
}

func (s *voucherServiceImpl) DeleteVoucher(ctx context.Context, voucherID string, userID string) error {
	voucher, err := s.voucherRepo.FindVoucherByID(ctx, voucherID)
	if err != nil {
		return fmt.Errorf("failed to find voucher %s: %w", voucherID, err)
	}

	if err := s.voucherRepo.DeleteVoucher(ctx, voucherID); err != nil {
		s.LogError(ctx, err, "Failed to delete voucher", slog.String("voucher_id", voucherID))
		return err
	}

	if err := s.ledgerService.RemoveByVoucherNo(ctx, voucher.Kind.PartyKind(), voucher.PartyID, voucher.VoucherNo); err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return fmt.Errorf("failed to reverse ledger entry for %s: %w", voucher.VoucherNo, err)
	}

	s.LogInfo(ctx, "Voucher deleted", slog.String("voucher_no", voucher.VoucherNo))
	return nil
}

func (s *voucherServiceImpl) ledgerDraft(voucher domain.Voucher) domain.TransactionDraft {
	return domain.TransactionDraft{
		Date:        voucher.Date,
		Type:        voucher.Kind.TransactionType(),
		Description: fmt.Sprintf("Voucher %s (%s)", voucher.VoucherNo, voucher.Method),
		Amount:      voucher.Amount,
		VoucherNo:   voucher.VoucherNo,
	}
}

// newVoucherNo builds a human-facing voucher number: RCV- for receipts,
// PAY- for payments.
func newVoucherNo(kind domain.VoucherKind) string {
	prefix := "RCV"
	if kind == domain.PaymentVoucher {
		prefix = "PAY"
	}
	suffix, err := utils.GenerateSecureRandomString(4)
	if err != nil {
		suffix = strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	}
	return fmt.Sprintf("%s-%s", prefix, strings.ToUpper(suffix))
}
