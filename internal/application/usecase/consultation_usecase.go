package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Interiores-api/internal/application/auth"
	"github.com/jhoicas/Interiores-api/internal/application/dto"
	"github.com/jhoicas/Interiores-api/internal/application/validation"
	"github.com/jhoicas/Interiores-api/internal/domain"
	"github.com/jhoicas/Interiores-api/internal/domain/booking"
	"github.com/jhoicas/Interiores-api/internal/domain/entity"
	"github.com/jhoicas/Interiores-api/internal/domain/repository"
)

// ConsultationUseCase reservas de asesoría con cupo por franja (fecha + hora + modalidad).
type ConsultationUseCase struct {
	repo repository.ConsultationRepository
	tx   TxRunner
	now  func() time.Time
}

// NewConsultationUseCase construye el caso de uso.
func NewConsultationUseCase(repo repository.ConsultationRepository, tx TxRunner) *ConsultationUseCase {
	return &ConsultationUseCase{repo: repo, tx: tx, now: time.Now}
}

// WithClock reemplaza el reloj (pruebas).
func (uc *ConsultationUseCase) WithClock(now func() time.Time) *ConsultationUseCase {
	uc.now = now
	return uc
}

// Create reserva una consulta. La verificación de cupo y la escritura ocurren bajo el lock
// de la franja, dentro de una transacción.
func (uc *ConsultationUseCase) Create(ctx context.Context, p auth.Principal, in dto.CreateConsultationRequest) (*dto.ConsultationResponse, error) {
	if err := booking.EnsureFuture(in.Date, uc.now()); err != nil {
		return nil, err
	}
	now := uc.now().UTC()
	c := &entity.Consultation{
		ID:        uuid.New().String(),
		UserID:    p.UserID,
		Date:      in.Date.UTC(),
		Time:      in.Time,
		Type:      entity.ConsultationType(in.Type),
		Status:    entity.ConsultationPending,
		Notes:     in.Notes,
		Phone:     in.Phone,
		CreatedAt: now,
		UpdatedAt: now,
	}
	err := uc.tx.Run(ctx, func(r TxRepos) error {
		if err := reserveSlot(ctx, r.Consultations, c, ""); err != nil {
			return err
		}
		return r.Consultations.Create(ctx, c)
	})
	if err != nil {
		return nil, err
	}
	out := toConsultationResponse(c)
	return &out, nil
}

// List: un ADMIN ve todas; el resto solo las propias.
func (uc *ConsultationUseCase) List(ctx context.Context, p auth.Principal, q dto.ConsultationListQuery) (*dto.ListResponse[dto.ConsultationResponse], error) {
	q.Normalize()
	f := repository.ConsultationFilter{Page: q.ToPage()}
	if !p.IsAdmin() {
		f.UserID = p.UserID
	}
	if q.Status != "" {
		s := entity.ConsultationStatus(q.Status)
		f.Status = &s
	}
	if q.Type != "" {
		t := entity.ConsultationType(q.Type)
		f.Type = &t
	}
	list, total, err := uc.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ConsultationResponse, 0, len(list))
	for _, c := range list {
		items = append(items, toConsultationResponse(c))
	}
	return &dto.ListResponse[dto.ConsultationResponse]{Items: items, Pagination: dto.NewPagination(q.PageQuery, total)}, nil
}

// GetByID obtiene una consulta propia (o cualquiera si es ADMIN).
func (uc *ConsultationUseCase) GetByID(ctx context.Context, p auth.Principal, id string) (*dto.ConsultationResponse, error) {
	c, err := uc.get(ctx, uc.repo, p, id)
	if err != nil {
		return nil, err
	}
	out := toConsultationResponse(c)
	return &out, nil
}

// Update reprograma, cancela o cambia el estado. Si cambia la franja se vuelve a verificar
// el cupo excluyendo la propia reserva. Solo un ADMIN confirma o completa.
func (uc *ConsultationUseCase) Update(ctx context.Context, p auth.Principal, id string, in dto.UpdateConsultationRequest) (*dto.ConsultationResponse, error) {
	var c *entity.Consultation
	err := uc.tx.Run(ctx, func(r TxRepos) error {
		var err error
		c, err = uc.get(ctx, r.Consultations, p, id)
		if err != nil {
			return err
		}

		if in.Status != nil {
			next := entity.ConsultationStatus(*in.Status)
			if next != entity.ConsultationCancelled && !p.IsAdmin() {
				return domain.ErrForbidden
			}
			if next != c.Status && c.Status.Terminal() {
				return domain.ErrInvalidTransition
			}
		}
		reschedule := in.Date != nil || in.Time != nil || in.Type != nil
		if reschedule && c.Status.Terminal() {
			return domain.ErrInvalidTransition
		}

		if in.Date != nil {
			c.Date = in.Date.UTC()
		}
		if in.Time != nil {
			c.Time = *in.Time
		}
		if in.Type != nil {
			c.Type = entity.ConsultationType(*in.Type)
		}
		if in.Notes != nil {
			c.Notes = *in.Notes
		}
		if in.Phone != nil {
			c.Phone = *in.Phone
		}
		if in.Status != nil {
			c.Status = entity.ConsultationStatus(*in.Status)
		}

		// La fecha final (nueva o la ya guardada) debe seguir en el futuro.
		active := c.Status != entity.ConsultationCancelled
		if in.Date != nil || (reschedule && active) {
			if err := booking.EnsureFuture(c.Date, uc.now()); err != nil {
				return err
			}
		}
		if reschedule && active {
			if err := reserveSlot(ctx, r.Consultations, c, c.ID); err != nil {
				return err
			}
		}
		c.UpdatedAt = uc.now().UTC()
		return r.Consultations.Update(ctx, c)
	})
	if err != nil {
		return nil, err
	}
	out := toConsultationResponse(c)
	return &out, nil
}

// Delete elimina una consulta propia (o cualquiera si es ADMIN).
func (uc *ConsultationUseCase) Delete(ctx context.Context, p auth.Principal, id string) error {
	if _, err := uc.get(ctx, uc.repo, p, id); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, id)
}

// Availability cupo restante de cada franja de atención del día para una modalidad.
func (uc *ConsultationUseCase) Availability(ctx context.Context, q dto.AvailabilityQuery) (*dto.AvailabilityResponse, error) {
	day, err := time.Parse("2006-01-02", q.Date)
	if err != nil {
		return nil, validation.FieldErr("date", "debe tener el formato 2006-01-02")
	}
	start, end := booking.DayRange(day)
	counts, err := uc.repo.CountByDay(ctx, start, end, entity.ConsultationType(q.Type))
	if err != nil {
		return nil, err
	}
	now := uc.now()
	slots := make([]dto.SlotAvailability, 0, len(booking.BusinessSlots))
	for _, hhmm := range booking.BusinessSlots {
		booked := counts[hhmm]
		remaining := booking.SlotCapacity - booked
		if remaining < 0 {
			remaining = 0
		}
		slots = append(slots, dto.SlotAvailability{
			Time:      hhmm,
			Booked:    booked,
			Remaining: remaining,
			Available: remaining > 0 && start.After(now),
		})
	}
	return &dto.AvailabilityResponse{
		Date:     start.Format("2006-01-02"),
		Type:     q.Type,
		Capacity: booking.SlotCapacity,
		Slots:    slots,
	}, nil
}

func (uc *ConsultationUseCase) get(ctx context.Context, repo repository.ConsultationRepository, p auth.Principal, id string) (*entity.Consultation, error) {
	c, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	if !p.CanAccess(c.UserID) {
		return nil, domain.ErrForbidden
	}
	return c, nil
}

// reserveSlot toma el lock de la franja y rechaza si ya tiene SlotCapacity reservas activas.
func reserveSlot(ctx context.Context, repo repository.ConsultationRepository, c *entity.Consultation, excludeID string) error {
	if err := repo.LockSlot(ctx, booking.SlotKey(c.Date, c.Time, c.Type)); err != nil {
		return err
	}
	start, end := booking.DayRange(c.Date)
	n, err := repo.CountSlot(ctx, repository.SlotQuery{
		DayStart:  start,
		DayEnd:    end,
		Time:      c.Time,
		Type:      c.Type,
		ExcludeID: excludeID,
	})
	if err != nil {
		return err
	}
	return booking.CheckCapacity(n)
}
