package billing

import (
	"fmt"
	"time"

	"github.com/jhoicas/Facturacion-api/internal/domain/entity"
	"github.com/jhoicas/Facturacion-api/internal/domain/repository"
)

// NextInvoiceNumber reserva el siguiente consecutivo del período (empresa,
// año, mes) y devuelve el número formateado. DEBE llamarse con un counterRepo
// atado a la transacción que crea la factura: el contador se bloquea con la
// fila (FOR UPDATE) y el incremento solo queda firme con el commit. Si la
// transacción aborta después de reservar, ese consecutivo se pierde para
// siempre (huecos aceptables, duplicados no).
func NextInvoiceNumber(counterRepo repository.CounterRepository, companyID string, at time.Time) (string, error) {
	year, month := at.Year(), int(at.Month())
	counter, err := counterRepo.GetOrCreateForUpdate(companyID, entity.CounterScopeInvoice, year, month)
	if err != nil {
		return "", fmt.Errorf("obtener contador de facturas: %w", err)
	}
	seq, err := counterRepo.Increment(counter.ID)
	if err != nil {
		return "", fmt.Errorf("incrementar contador de facturas: %w", err)
	}
	return FormatInvoiceNumber(year, month, seq), nil
}

// FormatInvoiceNumber arma el número visible: INV-AAAAMM-NNN, con NNN en
// mínimo 3 dígitos. La secuencia no se trunca en 999: a partir de 1000 el
// campo simplemente se ensancha (INV-202501-1000).
func FormatInvoiceNumber(year, month int, seq int64) string {
	return fmt.Sprintf("INV-%04d%02d-%03d", year, month, seq)
}
