package booking_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Interiores-api/internal/domain"
	"github.com/jhoicas/Interiores-api/internal/domain/booking"
	"github.com/jhoicas/Interiores-api/internal/domain/entity"
)

func TestCheckCapacity(t *testing.T) {
	for n := 0; n < booking.SlotCapacity; n++ {
		assert.NoError(t, booking.CheckCapacity(n), "con %d reservas aún hay cupo", n)
	}
	assert.ErrorIs(t, booking.CheckCapacity(3), domain.ErrSlotFull)
	assert.ErrorIs(t, booking.CheckCapacity(7), domain.ErrSlotFull)
}

func TestValidTime(t *testing.T) {
	assert.True(t, booking.ValidTime("10:00"))
	assert.True(t, booking.ValidTime("23:59"))
	assert.False(t, booking.ValidTime("24:00"))
	assert.False(t, booking.ValidTime("9:00"))
	assert.False(t, booking.ValidTime("10:60"))
	assert.False(t, booking.ValidTime(""))
}

func TestSlotKey_SameCalendarDay(t *testing.T) {
	morning := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	evening := time.Date(2030, 1, 1, 22, 30, 0, 0, time.UTC)
	assert.Equal(t,
		booking.SlotKey(morning, "10:00", entity.ConsultationVirtual),
		booking.SlotKey(evening, "10:00", entity.ConsultationVirtual))
	assert.NotEqual(t,
		booking.SlotKey(morning, "10:00", entity.ConsultationVirtual),
		booking.SlotKey(morning, "10:00", entity.ConsultationInPerson))
	assert.Equal(t, "consultation:2030-01-01|10:00|VIRTUAL", booking.SlotKey(morning, "10:00", entity.ConsultationVirtual))
}

func TestDayRange(t *testing.T) {
	start, end := booking.DayRange(time.Date(2030, 5, 17, 15, 4, 5, 0, time.UTC))
	assert.Equal(t, time.Date(2030, 5, 17, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2030, 5, 18, 0, 0, 0, 0, time.UTC), end)
}

func TestEnsureFuture(t *testing.T) {
	now := time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)
	assert.NoError(t, booking.EnsureFuture(now.Add(time.Minute), now))
	assert.ErrorIs(t, booking.EnsureFuture(now, now), domain.ErrPastDate)
	assert.ErrorIs(t, booking.EnsureFuture(now.Add(-time.Hour), now), domain.ErrValidation)
}
