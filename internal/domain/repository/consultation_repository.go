package repository

import (
	"context"
	"time"

	"github.com/jhoicas/Interiores-api/internal/domain/entity"
)

// ConsultationFilter filtros del listado de asesorías.
type ConsultationFilter struct {
	UserID string
	Status *entity.ConsultationStatus
	Type   *entity.ConsultationType
	Page   Page
}

// SlotQuery franja a contar: día calendario [DayStart, DayEnd), hora exacta y modalidad.
type SlotQuery struct {
	DayStart  time.Time
	DayEnd    time.Time
	Time      string
	Type      entity.ConsultationType
	ExcludeID string // reserva que se está actualizando
}

// ConsultationRepository puerto de persistencia para asesorías.
type ConsultationRepository interface {
	Create(ctx context.Context, c *entity.Consultation) error
	GetByID(ctx context.Context, id string) (*entity.Consultation, error)
	Update(ctx context.Context, c *entity.Consultation) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, f ConsultationFilter) ([]*entity.Consultation, int, error)
	// CountSlot cuenta reservas no canceladas en la franja.
	CountSlot(ctx context.Context, q SlotQuery) (int, error)
	// CountByDay cuenta reservas no canceladas por hora en el día, para una modalidad.
	CountByDay(ctx context.Context, dayStart, dayEnd time.Time, typ entity.ConsultationType) (map[string]int, error)
	// LockSlot serializa escrituras sobre la misma franja hasta el fin de la transacción.
	LockSlot(ctx context.Context, key string) error
	CountByStatus(ctx context.Context, status entity.ConsultationStatus) (int, error)
}
