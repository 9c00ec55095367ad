package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jhoicas/Facturacion-api/internal/domain/entity"
	"github.com/jhoicas/Facturacion-api/internal/domain/repository"
)

var _ repository.CounterRepository = (*CounterRepo)(nil)

// CounterRepo implementación de CounterRepository. Solo tiene sentido dentro
// de una transacción: el FOR UPDATE serializa los incrementos del período.
type CounterRepo struct {
	q Querier
}

// NewCounterRepository construye el adaptador. Pasar la tx (Querier).
func NewCounterRepository(q Querier) *CounterRepo {
	return &CounterRepo{q: q}
}

// GetOrCreateForUpdate obtiene el contador del período bloqueando su fila, o
// lo crea con sequence=0 si es el primero del período. El INSERT ... ON
// CONFLICT DO NOTHING seguido del SELECT ... FOR UPDATE tolera la carrera de
// dos transacciones creando el mismo período a la vez.
func (r *CounterRepo) GetOrCreateForUpdate(companyID, name string, year, month int) (*entity.Counter, error) {
	insert := `
		INSERT INTO counters (id, company_id, name, year, month, sequence)
		VALUES ($1, $2, $3, $4, $5, 0)
		ON CONFLICT (company_id, name, year, month) DO NOTHING`
	if _, err := r.q.Exec(context.Background(), insert,
		uuid.New().String(), companyID, name, year, month); err != nil {
		return nil, fmt.Errorf("insert counter: %w", err)
	}

	query := `
		SELECT id, company_id, name, year, month, sequence
		FROM counters
		WHERE company_id = $1 AND name = $2 AND year = $3 AND month = $4
		FOR UPDATE`
	var c entity.Counter
	err := r.q.QueryRow(context.Background(), query, companyID, name, year, month).Scan(
		&c.ID, &c.CompanyID, &c.Name, &c.Year, &c.Month, &c.Sequence,
	)
	if err != nil {
		return nil, fmt.Errorf("lock counter: %w", err)
	}
	return &c, nil
}

// Increment suma 1 a la secuencia y devuelve el nuevo valor. La fila ya está
// bloqueada por GetOrCreateForUpdate en esta misma transacción.
func (r *CounterRepo) Increment(id string) (int64, error) {
	query := `UPDATE counters SET sequence = sequence + 1 WHERE id = $1 RETURNING sequence`
	var seq int64
	if err := r.q.QueryRow(context.Background(), query, id).Scan(&seq); err != nil {
		return 0, fmt.Errorf("increment counter: %w", err)
	}
	return seq, nil
}
