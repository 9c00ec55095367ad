package repository

import "github.com/jhoicas/Facturacion-api/internal/domain/entity"

// CounterRepository define el puerto del contador de numeración.
// Ambos métodos deben invocarse dentro de la transacción que crea la factura:
// el bloqueo de fila garantiza que dos peticiones concurrentes del mismo
// período nunca reciban el mismo consecutivo.
type CounterRepository interface {
	// GetOrCreateForUpdate obtiene (o crea con sequence=0) el contador del
	// período y bloquea su fila hasta el commit.
	GetOrCreateForUpdate(companyID, name string, year, month int) (*entity.Counter, error)
	// Increment suma 1 a la secuencia y devuelve el nuevo valor.
	Increment(id string) (int64, error)
}
