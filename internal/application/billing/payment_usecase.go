package billing

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Facturacion-api/internal/application/dto"
	"github.com/jhoicas/Facturacion-api/internal/domain"
	"github.com/jhoicas/Facturacion-api/internal/domain/entity"
	"github.com/jhoicas/Facturacion-api/internal/domain/repository"
)

// PaymentUseCase registra abonos contra facturas. Cuando la suma de abonos
// alcanza el total de la factura, la marca como pagada en la misma
// transacción.
type PaymentUseCase struct {
	txRunner    BillingTxRunner
	invoiceRepo repository.InvoiceRepository
	paymentRepo repository.PaymentRepository
}

// NewPaymentUseCase construye el caso de uso.
func NewPaymentUseCase(
	txRunner BillingTxRunner,
	invoiceRepo repository.InvoiceRepository,
	paymentRepo repository.PaymentRepository,
) *PaymentUseCase {
	return &PaymentUseCase{txRunner: txRunner, invoiceRepo: invoiceRepo, paymentRepo: paymentRepo}
}

// RegisterPayment crea el abono y actualiza el estado de la factura si quedó
// saldada. Solo acepta abonos sobre facturas emitidas o ya pagadas: un
// borrador no es exigible y una factura anulada no admite cobros.
func (uc *PaymentUseCase) RegisterPayment(ctx context.Context, companyID string, in dto.CreatePaymentRequest) (*dto.PaymentResponse, error) {
	if in.InvoiceID == "" || !in.Amount.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	paidAt, err := time.Parse(dateLayout, in.PaidAt)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}

	inv, err := uc.invoiceRepo.GetByID(in.InvoiceID)
	if err != nil || inv == nil {
		return nil, domain.ErrNotFound
	}
	if inv.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	if inv.Status == entity.InvoiceStatusDraft || inv.Status == entity.InvoiceStatusCancelled {
		return nil, domain.ErrConflict
	}

	payment := &entity.Payment{
		ID:        uuid.New().String(),
		InvoiceID: in.InvoiceID,
		Amount:    in.Amount,
		Method:    in.Method,
		PaidAt:    paidAt,
		Reference: in.Reference,
	}

	finalStatus := inv.Status
	err = uc.txRunner.RunPayment(ctx, func(
		invoiceRepo repository.InvoiceRepository,
		paymentRepo repository.PaymentRepository,
	) error {
		if err := paymentRepo.Create(payment); err != nil {
			return err
		}
		paid, err := paymentRepo.SumByInvoice(inv.ID)
		if err != nil {
			return err
		}
		if inv.Status == entity.InvoiceStatusIssued && paid.GreaterThanOrEqual(inv.Total) {
			if err := invoiceRepo.UpdateStatus(inv.ID, entity.InvoiceStatusPaid); err != nil {
				return err
			}
			finalStatus = entity.InvoiceStatusPaid
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &dto.PaymentResponse{
		ID:            payment.ID,
		InvoiceID:     payment.InvoiceID,
		Amount:        payment.Amount,
		Method:        payment.Method,
		PaidAt:        payment.PaidAt.Format(dateLayout),
		Reference:     payment.Reference,
		InvoiceStatus: finalStatus,
	}, nil
}

// ListPayments lista los abonos de una factura de la empresa.
func (uc *PaymentUseCase) ListPayments(ctx context.Context, companyID, invoiceID string) ([]*dto.PaymentResponse, error) {
	inv, err := uc.invoiceRepo.GetByID(invoiceID)
	if err != nil || inv == nil {
		return nil, domain.ErrNotFound
	}
	if inv.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	payments, err := uc.paymentRepo.ListByInvoice(invoiceID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.PaymentResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, &dto.PaymentResponse{
			ID:            p.ID,
			InvoiceID:     p.InvoiceID,
			Amount:        p.Amount,
			Method:        p.Method,
			PaidAt:        p.PaidAt.Format(dateLayout),
			Reference:     p.Reference,
			InvoiceStatus: inv.Status,
		})
	}
	return out, nil
}
