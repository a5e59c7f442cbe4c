package models

import (
	"github.com/m04kA/SMC-VaccinationService/internal/domain"
)

// ListRequest запрос на получение списка записей
type ListRequest struct {
	BeneficiaryID *int64
	Center        *string
	Date          *string // DD-MM-YYYY
}

// AppointmentResponse ответ с данными записи
type AppointmentResponse struct {
	ID            int64  `json:"id"`
	BeneficiaryID int64  `json:"beneficiary_id"`
	Date          string `json:"date"` // "20-10-2026"
	TimeSlot      string `json:"time_slot"`
	Dose          int    `json:"dose"`
	Center        string `json:"center"`
}

// FromDomainAppointment конвертирует domain модель в response
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	return &AppointmentResponse{
		ID:            a.ID,
		BeneficiaryID: a.BeneficiaryID,
		Date:          a.Date.Format(domain.DateFormat),
		TimeSlot:      a.TimeSlot,
		Dose:          a.Dose,
		Center:        string(a.Center),
	}
}

// FromDomainAppointmentList конвертирует список записей
func FromDomainAppointmentList(list []*domain.Appointment) []*AppointmentResponse {
	result := make([]*AppointmentResponse, 0, len(list))
	for _, a := range list {
		result = append(result, FromDomainAppointment(a))
	}
	return result
}
