package entity

import "time"

// ConsultationType modalidad de la asesoría.
type ConsultationType string

const (
	ConsultationVirtual  ConsultationType = "VIRTUAL"
	ConsultationInPerson ConsultationType = "IN_PERSON"
)

// ConsultationStatus estado de la reserva.
type ConsultationStatus string

const (
	ConsultationPending   ConsultationStatus = "PENDING"
	ConsultationConfirmed ConsultationStatus = "CONFIRMED"
	ConsultationCompleted ConsultationStatus = "COMPLETED"
	ConsultationCancelled ConsultationStatus = "CANCELLED"
)

// Terminal indica si la reserva ya no admite cambios.
func (s ConsultationStatus) Terminal() bool {
	return s == ConsultationCompleted || s == ConsultationCancelled
}

// Consultation reserva de asesoría de diseño. Time es "HH:MM".
type Consultation struct {
	ID        string
	UserID    string
	Date      time.Time
	Time      string
	Type      ConsultationType
	Status    ConsultationStatus
	Notes     string
	Phone     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
