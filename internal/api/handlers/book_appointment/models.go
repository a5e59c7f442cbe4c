package book_appointment

import (
	"time"

	"github.com/m04kA/SMC-VaccinationService/internal/domain"
	bookAppointment "github.com/m04kA/SMC-VaccinationService/internal/usecase/book_appointment"
)

// BookAppointmentRequest HTTP request model
type BookAppointmentRequest struct {
	BeneficiaryID int64  `json:"beneficiary_id"`
	Date          string `json:"date"`      // "20-10-2026"
	TimeSlot      string `json:"time_slot"` // "10:00-11:00"
	Dose          int    `json:"dose"`
	Center        string `json:"center"`
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID            int64  `json:"id"`
	BeneficiaryID int64  `json:"beneficiary_id"`
	Date          string `json:"date"`
	TimeSlot      string `json:"time_slot"`
	Dose          int    `json:"dose"`
	Center        string `json:"center"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// Центр не проверяется здесь: неизвестный центр отклоняется правилами записи
func (r *BookAppointmentRequest) ToUseCaseRequest() (*bookAppointment.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	return &bookAppointment.Request{
		BeneficiaryID: r.BeneficiaryID,
		Date:          date,
		TimeSlot:      r.TimeSlot,
		Dose:          r.Dose,
		Center:        domain.Center(r.Center),
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP ответ
func FromUseCaseResponse(resp *bookAppointment.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:            resp.ID,
		BeneficiaryID: resp.BeneficiaryID,
		Date:          resp.Date.Format(domain.DateFormat),
		TimeSlot:      resp.TimeSlot,
		Dose:          resp.Dose,
		Center:        string(resp.Center),
	}
}
