package entity

// Ámbitos de contador.
const (
	CounterScopeInvoice = "invoice"
)

// Counter es la secuencia monotónica por (empresa, ámbito, año, mes) que
// alimenta la numeración de facturas. Se crea perezosamente con el primer
// consecutivo del período; la fila vive en la DB y se incrementa bajo
// bloqueo de fila, nunca en memoria (sobrevive reinicios y múltiples
// instancias). Los valores nunca se reutilizan dentro del período; un
// rollback deja huecos, jamás duplicados.
type Counter struct {
	ID        string
	CompanyID string
	Name      string // ver constantes CounterScope*
	Year      int
	Month     int // 1–12
	Sequence  int64
}
