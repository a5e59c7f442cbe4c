package rules

import (
	"time"

	"github.com/m04kA/SMC-VaccinationService/internal/domain"
)

// RegistrationRequest данные для регистрации получателя
type RegistrationRequest struct {
	SSN   string
	Name  string
	DOB   time.Time
	Phone string
}

// BookingRequest данные для записи на дозу
type BookingRequest struct {
	BeneficiaryID int64
	Date          time.Time
	TimeSlot      string
	Dose          int
	Center        domain.Center
}
