package billing

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Facturacion-api/internal/application/dto"
	"github.com/jhoicas/Facturacion-api/internal/application/inventory"
	"github.com/jhoicas/Facturacion-api/internal/domain"
	"github.com/jhoicas/Facturacion-api/internal/domain/entity"
	"github.com/jhoicas/Facturacion-api/internal/domain/money"
	"github.com/jhoicas/Facturacion-api/internal/domain/repository"
)

// dateLayout formato de fechas en los bodies y respuestas de la API.
const dateLayout = "2006-01-02"

// CreateInvoiceUseCase crea una factura, reserva su consecutivo y descuenta
// el inventario en una sola transacción.
type CreateInvoiceUseCase struct {
	txRunner     BillingTxRunner
	stockLedger  StockLedger
	customerRepo repository.CustomerRepository
	companyRepo  repository.CompanyRepository
	productRepo  repository.ProductRepository
	invoiceRepo  repository.InvoiceRepository
}

// NewCreateInvoiceUseCase construye el caso de uso.
func NewCreateInvoiceUseCase(
	txRunner BillingTxRunner,
	stockLedger StockLedger,
	customerRepo repository.CustomerRepository,
	companyRepo repository.CompanyRepository,
	productRepo repository.ProductRepository,
	invoiceRepo repository.InvoiceRepository,
) *CreateInvoiceUseCase {
	return &CreateInvoiceUseCase{
		txRunner:     txRunner,
		stockLedger:  stockLedger,
		customerRepo: customerRepo,
		companyRepo:  companyRepo,
		productRepo:  productRepo,
		invoiceRepo:  invoiceRepo,
	}
}

// CreateInvoice valida el borrador, calcula los totales línea por línea,
// reserva el consecutivo y persiste cabecera + líneas; si el estado inicial
// es "issued" descuenta además el stock de cada producto. Todo dentro de una
// transacción: si algo falla no sobrevive factura, línea ni mutación de stock.
func (uc *CreateInvoiceUseCase) CreateInvoice(ctx context.Context, companyID string, in dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	if in.CustomerID == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	status := in.Status
	if status == "" {
		status = entity.InvoiceStatusDraft
	}
	// Una factura nace en borrador o emitida; nunca pagada ni anulada.
	if status != entity.InvoiceStatusDraft && status != entity.InvoiceStatusIssued {
		return nil, domain.ErrInvalidInput
	}
	date, err := time.Parse(dateLayout, in.Date)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	dueDate, err := time.Parse(dateLayout, in.DueDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}

	// Empresa (para allow_negative_stock) y cliente, fuera de la tx (solo lectura).
	company, err := uc.companyRepo.GetByID(companyID)
	if err != nil || company == nil {
		return nil, domain.ErrNotFound
	}
	customer, err := uc.customerRepo.GetByID(in.CustomerID)
	if err != nil || customer == nil {
		return nil, domain.ErrNotFound
	}
	if customer.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}

	// Validar productos y completar precio/descripción desde el catálogo.
	productsByID := make(map[string]*entity.Product)
	for i := range in.Items {
		item := &in.Items[i]
		if item.ProductID == "" || item.Qty < 1 {
			return nil, domain.ErrInvalidInput
		}
		product, err := uc.productRepo.GetByID(item.ProductID)
		if err != nil || product == nil {
			return nil, domain.ErrNotFound
		}
		if product.CompanyID != companyID {
			return nil, domain.ErrForbidden
		}
		productsByID[item.ProductID] = product
		if item.UnitPrice.IsZero() {
			item.UnitPrice = product.Price
		}
		if item.Description == "" {
			item.Description = product.Name
		}
	}

	// Calcular montos por línea (redondeo half-up a 2 decimales) y agregados
	// sumando líneas ya redondeadas: el total de la factura es exactamente la
	// suma de los totales de línea mostrados.
	lines := make([]money.LineAmounts, len(in.Items))
	for i, item := range in.Items {
		amounts, err := money.ComputeLine(item.Qty, item.UnitPrice, item.TaxRate)
		if err != nil {
			return nil, err
		}
		lines[i] = amounts
	}
	subTotal, taxTotal, total := money.SumLines(lines)

	now := time.Now()
	inv := &entity.Invoice{
		ID:         uuid.New().String(),
		CompanyID:  companyID,
		CustomerID: in.CustomerID,
		Date:       date,
		DueDate:    dueDate,
		Status:     status,
		SubTotal:   subTotal,
		TaxTotal:   taxTotal,
		Total:      total,
		Notes:      in.Notes,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	items := make([]*entity.InvoiceItem, len(in.Items))
	deductions := make([]inventory.ItemQty, len(in.Items))
	for i, item := range in.Items {
		items[i] = &entity.InvoiceItem{
			ID:          uuid.New().String(),
			InvoiceID:   inv.ID,
			ProductID:   item.ProductID,
			Description: item.Description,
			Qty:         item.Qty,
			UnitPrice:   item.UnitPrice,
			TaxRate:     item.TaxRate,
			LineTotal:   lines[i].Total,
		}
		deductions[i] = inventory.ItemQty{ProductID: item.ProductID, Qty: item.Qty}
	}

	// Unidad de trabajo atómica: consecutivo + cabecera + líneas + stock.
	err = uc.txRunner.RunInvoice(ctx, func(
		productRepo repository.ProductRepository,
		counterRepo repository.CounterRepository,
		invoiceRepo repository.InvoiceRepository,
	) error {
		number, err := NextInvoiceNumber(counterRepo, companyID, date)
		if err != nil {
			return err
		}
		inv.InvoiceNo = number

		if err := invoiceRepo.Create(inv); err != nil {
			return err
		}
		for _, it := range items {
			if err := invoiceRepo.CreateItem(it); err != nil {
				return err
			}
		}
		if status == entity.InvoiceStatusIssued {
			return uc.stockLedger.DeductInTx(productRepo, company.AllowNegativeStock, deductions)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return toInvoiceResponse(inv, customer.Name, items), nil
}

// GetInvoice obtiene una factura por ID con su detalle completo.
func (uc *CreateInvoiceUseCase) GetInvoice(ctx context.Context, companyID, id string) (*dto.InvoiceResponse, error) {
	inv, err := uc.invoiceRepo.GetByID(id)
	if err != nil || inv == nil {
		return nil, domain.ErrNotFound
	}
	if inv.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	items, err := uc.invoiceRepo.GetItemsByInvoiceID(id)
	if err != nil {
		return nil, err
	}
	customerName := ""
	if customer, _ := uc.customerRepo.GetByID(inv.CustomerID); customer != nil {
		customerName = customer.Name
	}
	return toInvoiceResponse(inv, customerName, items), nil
}

// ListInvoices lista las facturas de la empresa (solo cabeceras).
func (uc *CreateInvoiceUseCase) ListInvoices(ctx context.Context, companyID string) ([]*dto.InvoiceResponse, error) {
	list, err := uc.invoiceRepo.ListByCompany(companyID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.InvoiceResponse, 0, len(list))
	for _, inv := range list {
		out = append(out, toInvoiceResponse(inv, "", nil))
	}
	return out, nil
}

func toInvoiceResponse(inv *entity.Invoice, customerName string, items []*entity.InvoiceItem) *dto.InvoiceResponse {
	resp := &dto.InvoiceResponse{
		ID:           inv.ID,
		CompanyID:    inv.CompanyID,
		CustomerID:   inv.CustomerID,
		CustomerName: customerName,
		InvoiceNo:    inv.InvoiceNo,
		Date:         inv.Date.Format(dateLayout),
		DueDate:      inv.DueDate.Format(dateLayout),
		Status:       inv.Status,
		SubTotal:     inv.SubTotal,
		TaxTotal:     inv.TaxTotal,
		Total:        inv.Total,
		Notes:        inv.Notes,
		Items:        make([]dto.InvoiceItemResponse, 0, len(items)),
	}
	for _, it := range items {
		resp.Items = append(resp.Items, dto.InvoiceItemResponse{
			ID:          it.ID,
			ProductID:   it.ProductID,
			Description: it.Description,
			Qty:         it.Qty,
			UnitPrice:   it.UnitPrice,
			TaxRate:     it.TaxRate,
			LineTotal:   it.LineTotal,
		})
	}
	return resp
}
