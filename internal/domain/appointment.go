package domain

import "time"

// Appointment represents one scheduled dose for one beneficiary
type Appointment struct {
	ID            int64
	BeneficiaryID int64
	Date          time.Time // только дата, время обнулено
	TimeSlot      string
	Dose          int
	Center        Center
	CreatedAt     time.Time
}

// IsFirstDose returns true for a first-dose appointment
func (a *Appointment) IsFirstDose() bool {
	return a.Dose == FirstDose
}

// DaysSince возвращает число календарных дней от other до даты записи
func (a *Appointment) DaysSince(other *Appointment) int {
	return DaysBetween(other.Date, a.Date)
}

// AppointmentsFilter фильтр для получения списка записей
type AppointmentsFilter struct {
	BeneficiaryID *int64  // Фильтр по получателю (опционально)
	Center        *Center // Фильтр по центру (опционально)
	Date          *time.Time
}
