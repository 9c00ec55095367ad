package billing

import (
	"context"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Facturacion-api/internal/domain"
	"github.com/jhoicas/Facturacion-api/internal/domain/entity"
	"github.com/jhoicas/Facturacion-api/internal/domain/repository"
)

// Fakes en memoria para los casos de uso de facturación. El fakeTxRunner
// imita la semántica transaccional real: toma un snapshot antes de ejecutar
// fn y lo restaura si fn retorna error (rollback).

type fakeCounterRepo struct {
	byKey  map[string]*entity.Counter
	nextID int
}

func newFakeCounterRepo() *fakeCounterRepo {
	return &fakeCounterRepo{byKey: make(map[string]*entity.Counter)}
}

func counterKey(companyID, name string, year, month int) string {
	return fmt.Sprintf("%s/%s/%d/%d", companyID, name, year, month)
}

func (r *fakeCounterRepo) GetOrCreateForUpdate(companyID, name string, year, month int) (*entity.Counter, error) {
	key := counterKey(companyID, name, year, month)
	if c, ok := r.byKey[key]; ok {
		return c, nil
	}
	r.nextID++
	c := &entity.Counter{
		ID:        fmt.Sprintf("counter-%d", r.nextID),
		CompanyID: companyID,
		Name:      name,
		Year:      year,
		Month:     month,
		Sequence:  0,
	}
	r.byKey[key] = c
	return c, nil
}

func (r *fakeCounterRepo) Increment(id string) (int64, error) {
	for _, c := range r.byKey {
		if c.ID == id {
			c.Sequence++
			return c.Sequence, nil
		}
	}
	return 0, domain.ErrNotFound
}

func (r *fakeCounterRepo) snapshot() map[string]entity.Counter {
	out := make(map[string]entity.Counter, len(r.byKey))
	for k, c := range r.byKey {
		out[k] = *c
	}
	return out
}

func (r *fakeCounterRepo) restore(snap map[string]entity.Counter) {
	r.byKey = make(map[string]*entity.Counter, len(snap))
	for k, c := range snap {
		cc := c
		r.byKey[k] = &cc
	}
}

type fakeProductRepo struct {
	byID map[string]*entity.Product
}

func newFakeProductRepo(products ...*entity.Product) *fakeProductRepo {
	r := &fakeProductRepo{byID: make(map[string]*entity.Product)}
	for _, p := range products {
		r.byID[p.ID] = p
	}
	return r
}

func (r *fakeProductRepo) Create(p *entity.Product) error {
	r.byID[p.ID] = p
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	return p, nil
}

func (r *fakeProductRepo) GetByCompanyAndSKU(companyID, sku string) (*entity.Product, error) {
	for _, p := range r.byID {
		if p.CompanyID == companyID && p.SKU == sku {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	return r.GetByID(id)
}

func (r *fakeProductRepo) UpdateStock(id string, stockQty int64) error {
	p, ok := r.byID[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.StockQty = stockQty
	return nil
}

func (r *fakeProductRepo) Update(p *entity.Product) error {
	r.byID[p.ID] = p
	return nil
}

func (r *fakeProductRepo) ListByCompany(companyID string) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.byID {
		if p.CompanyID == companyID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeProductRepo) LowStock(companyID string, threshold int64) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.byID {
		if p.CompanyID == companyID && p.StockQty <= threshold {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StockQty < out[j].StockQty })
	return out, nil
}

func (r *fakeProductRepo) Delete(id string) error {
	delete(r.byID, id)
	return nil
}

func (r *fakeProductRepo) snapshot() map[string]entity.Product {
	out := make(map[string]entity.Product, len(r.byID))
	for k, p := range r.byID {
		out[k] = *p
	}
	return out
}

func (r *fakeProductRepo) restore(snap map[string]entity.Product) {
	r.byID = make(map[string]*entity.Product, len(snap))
	for k, p := range snap {
		pp := p
		r.byID[k] = &pp
	}
}

type fakeInvoiceRepo struct {
	byID  map[string]*entity.Invoice
	items map[string][]*entity.InvoiceItem // invoiceID -> líneas
}

func newFakeInvoiceRepo() *fakeInvoiceRepo {
	return &fakeInvoiceRepo{
		byID:  make(map[string]*entity.Invoice),
		items: make(map[string][]*entity.InvoiceItem),
	}
}

func (r *fakeInvoiceRepo) Create(inv *entity.Invoice) error {
	r.byID[inv.ID] = inv
	return nil
}

func (r *fakeInvoiceRepo) CreateItem(item *entity.InvoiceItem) error {
	r.items[item.InvoiceID] = append(r.items[item.InvoiceID], item)
	return nil
}

func (r *fakeInvoiceRepo) GetByID(id string) (*entity.Invoice, error) {
	inv, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	return inv, nil
}

func (r *fakeInvoiceRepo) GetItemsByInvoiceID(invoiceID string) ([]*entity.InvoiceItem, error) {
	return r.items[invoiceID], nil
}

func (r *fakeInvoiceRepo) ListByCompany(companyID string) ([]*entity.Invoice, error) {
	var out []*entity.Invoice
	for _, inv := range r.byID {
		if inv.CompanyID == companyID {
			out = append(out, inv)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].InvoiceNo < out[j].InvoiceNo })
	return out, nil
}

func (r *fakeInvoiceRepo) UpdateHeader(inv *entity.Invoice) error {
	if _, ok := r.byID[inv.ID]; !ok {
		return domain.ErrNotFound
	}
	r.byID[inv.ID] = inv
	return nil
}

func (r *fakeInvoiceRepo) UpdateStatus(id, status string) error {
	inv, ok := r.byID[id]
	if !ok {
		return domain.ErrNotFound
	}
	inv.Status = status
	return nil
}

func (r *fakeInvoiceRepo) snapshot() (map[string]entity.Invoice, map[string][]*entity.InvoiceItem) {
	invs := make(map[string]entity.Invoice, len(r.byID))
	for k, inv := range r.byID {
		invs[k] = *inv
	}
	items := make(map[string][]*entity.InvoiceItem, len(r.items))
	for k, list := range r.items {
		items[k] = append([]*entity.InvoiceItem(nil), list...)
	}
	return invs, items
}

func (r *fakeInvoiceRepo) restore(invs map[string]entity.Invoice, items map[string][]*entity.InvoiceItem) {
	r.byID = make(map[string]*entity.Invoice, len(invs))
	for k, inv := range invs {
		ii := inv
		r.byID[k] = &ii
	}
	r.items = items
}

type fakePaymentRepo struct {
	payments []*entity.Payment
}

func newFakePaymentRepo() *fakePaymentRepo { return &fakePaymentRepo{} }

func (r *fakePaymentRepo) Create(p *entity.Payment) error {
	r.payments = append(r.payments, p)
	return nil
}

func (r *fakePaymentRepo) ListByInvoice(invoiceID string) ([]*entity.Payment, error) {
	var out []*entity.Payment
	for _, p := range r.payments {
		if p.InvoiceID == invoiceID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakePaymentRepo) SumByInvoice(invoiceID string) (decimal.Decimal, error) {
	sum := decimal.Zero
	for _, p := range r.payments {
		if p.InvoiceID == invoiceID {
			sum = sum.Add(p.Amount)
		}
	}
	return sum, nil
}

type fakeCustomerRepo struct {
	byID map[string]*entity.Customer
}

func newFakeCustomerRepo(customers ...*entity.Customer) *fakeCustomerRepo {
	r := &fakeCustomerRepo{byID: make(map[string]*entity.Customer)}
	for _, c := range customers {
		r.byID[c.ID] = c
	}
	return r
}

func (r *fakeCustomerRepo) Create(c *entity.Customer) error {
	r.byID[c.ID] = c
	return nil
}

func (r *fakeCustomerRepo) GetByID(id string) (*entity.Customer, error) {
	c, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	return c, nil
}

func (r *fakeCustomerRepo) Update(c *entity.Customer) error {
	r.byID[c.ID] = c
	return nil
}

func (r *fakeCustomerRepo) ListByCompany(companyID string) ([]*entity.Customer, error) {
	var out []*entity.Customer
	for _, c := range r.byID {
		if c.CompanyID == companyID {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeCustomerRepo) Delete(id string) error {
	delete(r.byID, id)
	return nil
}

type fakeCompanyRepo struct {
	byID map[string]*entity.Company
}

func newFakeCompanyRepo(companies ...*entity.Company) *fakeCompanyRepo {
	r := &fakeCompanyRepo{byID: make(map[string]*entity.Company)}
	for _, c := range companies {
		r.byID[c.ID] = c
	}
	return r
}

func (r *fakeCompanyRepo) Create(c *entity.Company) error {
	r.byID[c.ID] = c
	return nil
}

func (r *fakeCompanyRepo) GetByID(id string) (*entity.Company, error) {
	c, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	return c, nil
}

func (r *fakeCompanyRepo) GetByUserID(userID string) (*entity.Company, error) {
	for _, c := range r.byID {
		if c.UserID == userID {
			return c, nil
		}
	}
	return nil, nil
}

func (r *fakeCompanyRepo) Update(c *entity.Company) error {
	r.byID[c.ID] = c
	return nil
}

// fakeTxRunner ejecuta fn contra los fakes compartidos, con rollback real:
// si fn retorna error se restaura el estado previo de productos, facturas
// y contadores.
type fakeTxRunner struct {
	products *fakeProductRepo
	counters *fakeCounterRepo
	invoices *fakeInvoiceRepo
	payments *fakePaymentRepo
}

func (t *fakeTxRunner) RunInvoice(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	counterRepo repository.CounterRepository,
	invoiceRepo repository.InvoiceRepository,
) error) error {
	prodSnap := t.products.snapshot()
	counterSnap := t.counters.snapshot()
	invSnap, itemSnap := t.invoices.snapshot()
	if err := fn(t.products, t.counters, t.invoices); err != nil {
		t.products.restore(prodSnap)
		t.counters.restore(counterSnap)
		t.invoices.restore(invSnap, itemSnap)
		return err
	}
	return nil
}

func (t *fakeTxRunner) RunPayment(ctx context.Context, fn func(
	invoiceRepo repository.InvoiceRepository,
	paymentRepo repository.PaymentRepository,
) error) error {
	invSnap, itemSnap := t.invoices.snapshot()
	paySnap := append([]*entity.Payment(nil), t.payments.payments...)
	if err := fn(t.invoices, t.payments); err != nil {
		t.invoices.restore(invSnap, itemSnap)
		t.payments.payments = paySnap
		return err
	}
	return nil
}
