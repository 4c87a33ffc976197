package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Interiores-api/internal/domain/entity"
	"github.com/jhoicas/Interiores-api/internal/domain/repository"
)

var _ repository.ConsultationRepository = (*ConsultationRepo)(nil)

const consultationColumns = `id, user_id, date, time, type, status, notes, phone, created_at, updated_at`

// ConsultationRepo reservas de asesoría sobre PostgreSQL (usable con pool o tx).
type ConsultationRepo struct {
	q Querier
}

// NewConsultationRepository construye el adaptador. Pasar pool o tx (Querier).
func NewConsultationRepository(q Querier) *ConsultationRepo {
	return &ConsultationRepo{q: q}
}

func (r *ConsultationRepo) Create(ctx context.Context, c *entity.Consultation) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO consultations (`+consultationColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		c.ID, c.UserID, c.Date, c.Time, string(c.Type), string(c.Status), c.Notes, c.Phone, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert consultation: %w", err)
	}
	return nil
}

func (r *ConsultationRepo) GetByID(ctx context.Context, id string) (*entity.Consultation, error) {
	c, err := scanConsultation(r.q.QueryRow(ctx, `SELECT `+consultationColumns+` FROM consultations WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get consultation: %w", err)
	}
	return c, nil
}

func (r *ConsultationRepo) Update(ctx context.Context, c *entity.Consultation) error {
	_, err := r.q.Exec(ctx, `
		UPDATE consultations SET date = $2, time = $3, type = $4, status = $5, notes = $6, phone = $7, updated_at = $8
		WHERE id = $1`,
		c.ID, c.Date, c.Time, string(c.Type), string(c.Status), c.Notes, c.Phone, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update consultation: %w", err)
	}
	return nil
}

func (r *ConsultationRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM consultations WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete consultation: %w", err)
	}
	return nil
}

// List próximas primero (fecha y hora ascendentes).
func (r *ConsultationRepo) List(ctx context.Context, f repository.ConsultationFilter) ([]*entity.Consultation, int, error) {
	var w where
	if f.UserID != "" {
		w.add("user_id = " + w.arg(f.UserID))
	}
	if f.Status != nil {
		w.add("status = " + w.arg(string(*f.Status)))
	}
	if f.Type != nil {
		w.add("type = " + w.arg(string(*f.Type)))
	}

	var total int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM consultations`+w.sql(), w.args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count consultations: %w", err)
	}
	rows, err := r.q.Query(ctx, `SELECT `+consultationColumns+` FROM consultations`+w.sql()+` ORDER BY date, time`+w.page(f.Page), w.args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list consultations: %w", err)
	}
	defer rows.Close()
	var list []*entity.Consultation
	for rows.Next() {
		c, err := scanConsultation(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan consultation: %w", err)
		}
		list = append(list, c)
	}
	return list, total, rows.Err()
}

// CountSlot reservas activas en [DayStart, DayEnd) para la hora y modalidad dadas.
func (r *ConsultationRepo) CountSlot(ctx context.Context, q repository.SlotQuery) (int, error) {
	var n int
	err := r.q.QueryRow(ctx, `
		SELECT COUNT(*) FROM consultations
		WHERE date >= $1 AND date < $2 AND time = $3 AND type = $4 AND status <> $5
		  AND ($6 = '' OR id::text <> $6)`,
		q.DayStart, q.DayEnd, q.Time, string(q.Type), string(entity.ConsultationCancelled), q.ExcludeID,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count slot: %w", err)
	}
	return n, nil
}

// CountByDay reservas activas por hora en el día para una modalidad.
func (r *ConsultationRepo) CountByDay(ctx context.Context, dayStart, dayEnd time.Time, typ entity.ConsultationType) (map[string]int, error) {
	rows, err := r.q.Query(ctx, `
		SELECT time, COUNT(*) FROM consultations
		WHERE date >= $1 AND date < $2 AND type = $3 AND status <> $4
		GROUP BY time`,
		dayStart, dayEnd, string(typ), string(entity.ConsultationCancelled),
	)
	if err != nil {
		return nil, fmt.Errorf("count by day: %w", err)
	}
	defer rows.Close()
	out := map[string]int{}
	for rows.Next() {
		var (
			hhmm string
			n    int
		)
		if err := rows.Scan(&hhmm, &n); err != nil {
			return nil, fmt.Errorf("scan slot count: %w", err)
		}
		out[hhmm] = n
	}
	return out, rows.Err()
}

// LockSlot toma un advisory lock transaccional sobre la franja: dos reservas de la
// misma franja se serializan y la segunda ve el conteo actualizado.
func (r *ConsultationRepo) LockSlot(ctx context.Context, key string) error {
	if _, err := r.q.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, key); err != nil {
		return fmt.Errorf("lock slot: %w", err)
	}
	return nil
}

func (r *ConsultationRepo) CountByStatus(ctx context.Context, status entity.ConsultationStatus) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM consultations WHERE status = $1`, string(status)).Scan(&n); err != nil {
		return 0, fmt.Errorf("count consultations by status: %w", err)
	}
	return n, nil
}

func scanConsultation(row pgx.Row) (*entity.Consultation, error) {
	var (
		c           entity.Consultation
		typ, status string
	)
	if err := row.Scan(&c.ID, &c.UserID, &c.Date, &c.Time, &typ, &status, &c.Notes, &c.Phone, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	c.Type = entity.ConsultationType(typ)
	c.Status = entity.ConsultationStatus(status)
	c.Date = c.Date.UTC()
	return &c, nil
}
