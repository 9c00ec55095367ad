package billing

import (
	"context"
	"time"

	"github.com/jhoicas/Facturacion-api/internal/application/dto"
	"github.com/jhoicas/Facturacion-api/internal/application/inventory"
	"github.com/jhoicas/Facturacion-api/internal/domain"
	"github.com/jhoicas/Facturacion-api/internal/domain/entity"
	"github.com/jhoicas/Facturacion-api/internal/domain/repository"
)

// UpdateInvoiceUseCase actualiza la cabecera de una factura y aplica las
// transiciones de estado con su efecto sobre el inventario.
//
// Transiciones válidas:
//
//	draft  -> issued     (descuenta stock)
//	draft  -> cancelled  (sin efecto en stock)
//	issued -> paid       (sin efecto en stock; normalmente lo hace el pago)
//	issued -> cancelled  (repone stock)
//
// paid y cancelled son estados terminales. Cualquier otra transición
// retorna ErrConflict.
type UpdateInvoiceUseCase struct {
	txRunner    BillingTxRunner
	stockLedger StockLedger
	companyRepo repository.CompanyRepository
	invoiceRepo repository.InvoiceRepository
}

// NewUpdateInvoiceUseCase construye el caso de uso.
func NewUpdateInvoiceUseCase(
	txRunner BillingTxRunner,
	stockLedger StockLedger,
	companyRepo repository.CompanyRepository,
	invoiceRepo repository.InvoiceRepository,
) *UpdateInvoiceUseCase {
	return &UpdateInvoiceUseCase{
		txRunner:    txRunner,
		stockLedger: stockLedger,
		companyRepo: companyRepo,
		invoiceRepo: invoiceRepo,
	}
}

// UpdateInvoice aplica una actualización parcial de cabecera. Las líneas y
// los totales son inmutables; date y due_date solo se pueden mover mientras
// la factura sigue en borrador.
func (uc *UpdateInvoiceUseCase) UpdateInvoice(ctx context.Context, companyID, id string, in dto.UpdateInvoiceRequest) (*dto.InvoiceResponse, error) {
	inv, err := uc.invoiceRepo.GetByID(id)
	if err != nil || inv == nil {
		return nil, domain.ErrNotFound
	}
	if inv.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}

	if in.Notes != nil {
		inv.Notes = *in.Notes
	}
	if in.Date != nil || in.DueDate != nil {
		if inv.Status != entity.InvoiceStatusDraft {
			return nil, domain.ErrConflict
		}
		if in.Date != nil {
			d, err := time.Parse(dateLayout, *in.Date)
			if err != nil {
				return nil, domain.ErrInvalidInput
			}
			inv.Date = d
		}
		if in.DueDate != nil {
			d, err := time.Parse(dateLayout, *in.DueDate)
			if err != nil {
				return nil, domain.ErrInvalidInput
			}
			inv.DueDate = d
		}
	}

	if in.Status != nil && *in.Status != inv.Status {
		if err := uc.transition(ctx, inv, *in.Status); err != nil {
			return nil, err
		}
	} else {
		inv.UpdatedAt = time.Now()
		if err := uc.invoiceRepo.UpdateHeader(inv); err != nil {
			return nil, err
		}
	}

	items, err := uc.invoiceRepo.GetItemsByInvoiceID(id)
	if err != nil {
		return nil, err
	}
	return toInvoiceResponse(inv, "", items), nil
}

// transition valida el cambio de estado y lo persiste junto con la mutación
// de stock correspondiente, todo en una transacción.
func (uc *UpdateInvoiceUseCase) transition(ctx context.Context, inv *entity.Invoice, newStatus string) error {
	if !entity.ValidInvoiceStatus(newStatus) {
		return domain.ErrInvalidInput
	}

	var stockOp string // "deduct" | "restore" | ""
	switch {
	case inv.Status == entity.InvoiceStatusDraft && newStatus == entity.InvoiceStatusIssued:
		stockOp = "deduct"
	case inv.Status == entity.InvoiceStatusDraft && newStatus == entity.InvoiceStatusCancelled:
	case inv.Status == entity.InvoiceStatusIssued && newStatus == entity.InvoiceStatusPaid:
	case inv.Status == entity.InvoiceStatusIssued && newStatus == entity.InvoiceStatusCancelled:
		stockOp = "restore"
	default:
		return domain.ErrConflict
	}

	company, err := uc.companyRepo.GetByID(inv.CompanyID)
	if err != nil || company == nil {
		return domain.ErrNotFound
	}
	items, err := uc.invoiceRepo.GetItemsByInvoiceID(inv.ID)
	if err != nil {
		return err
	}
	qtys := make([]inventory.ItemQty, len(items))
	for i, it := range items {
		qtys[i] = inventory.ItemQty{ProductID: it.ProductID, Qty: it.Qty}
	}

	err = uc.txRunner.RunInvoice(ctx, func(
		productRepo repository.ProductRepository,
		_ repository.CounterRepository,
		invoiceRepo repository.InvoiceRepository,
	) error {
		inv.Status = newStatus
		inv.UpdatedAt = time.Now()
		if err := invoiceRepo.UpdateHeader(inv); err != nil {
			return err
		}
		switch stockOp {
		case "deduct":
			return uc.stockLedger.DeductInTx(productRepo, company.AllowNegativeStock, qtys)
		case "restore":
			return uc.stockLedger.RestoreInTx(productRepo, qtys)
		}
		return nil
	})
	return err
}
