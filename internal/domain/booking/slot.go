// Package booking contiene la política de capacidad de las reservas de asesoría.
package booking

import (
	"fmt"
	"regexp"
	"time"

	"github.com/jhoicas/Interiores-api/internal/domain"
	"github.com/jhoicas/Interiores-api/internal/domain/entity"
)

// SlotCapacity máximo de reservas que comparten fecha + hora + modalidad.
const SlotCapacity = 3

// BusinessSlots franjas que se ofrecen en el calendario de disponibilidad.
var BusinessSlots = []string{"09:00", "10:00", "11:00", "12:00", "13:00", "14:00", "15:00", "16:00", "17:00"}

var timePattern = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

// ValidTime indica si s tiene el formato HH:MM (24h).
func ValidTime(s string) bool {
	return timePattern.MatchString(s)
}

// DayRange devuelve el inicio (incluido) y fin (excluido) del día calendario UTC de t.
func DayRange(t time.Time) (time.Time, time.Time) {
	u := t.UTC()
	start := time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 0, 1)
}

// SlotKey identifica una franja; se usa como clave del lock de serialización.
func SlotKey(date time.Time, hhmm string, typ entity.ConsultationType) string {
	day, _ := DayRange(date)
	return fmt.Sprintf("consultation:%s|%s|%s", day.Format("2006-01-02"), hhmm, typ)
}

// CheckCapacity rechaza la escritura si la franja ya tiene SlotCapacity reservas.
func CheckCapacity(existing int) error {
	if existing >= SlotCapacity {
		return domain.ErrSlotFull
	}
	return nil
}

// EnsureFuture exige que la fecha sea estrictamente posterior a now.
func EnsureFuture(date, now time.Time) error {
	if !date.After(now) {
		return domain.ErrPastDate
	}
	return nil
}
