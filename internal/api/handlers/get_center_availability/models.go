package get_center_availability

import (
	"time"

	"github.com/m04kA/SMC-VaccinationService/internal/domain"
	getCenterAvailability "github.com/m04kA/SMC-VaccinationService/internal/usecase/get_center_availability"
)

// CenterAvailabilityResponse HTTP response model
type CenterAvailabilityResponse struct {
	Center    string             `json:"center"`
	Date      string             `json:"date"`
	Total     int                `json:"total"`
	Booked    int                `json:"booked"`
	Available int                `json:"available"`
	Doses     []DoseAvailability `json:"doses"`
	Slots     []SlotAvailability `json:"slots"`
}

// DoseAvailability занятость по дозе
type DoseAvailability struct {
	Dose      int `json:"dose"`
	Total     int `json:"total"`
	Booked    int `json:"booked"`
	Available int `json:"available"`
}

// SlotAvailability занятость слота
type SlotAvailability struct {
	TimeSlot  string `json:"time_slot"`
	Total     int    `json:"total"`
	Booked    int    `json:"booked"`
	Available int    `json:"available"`
}

// ToUseCaseRequest создает запрос use case из параметров пути и query
func ToUseCaseRequest(center, dateStr string) (*getCenterAvailability.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getCenterAvailability.Request{
		Center: domain.Center(center),
		Date:   date,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getCenterAvailability.Response) *CenterAvailabilityResponse {
	doses := make([]DoseAvailability, len(resp.Doses))
	for i, d := range resp.Doses {
		doses[i] = DoseAvailability{
			Dose:      d.Dose,
			Total:     d.Total,
			Booked:    d.Booked,
			Available: d.Available,
		}
	}

	slots := make([]SlotAvailability, len(resp.Slots))
	for i, s := range resp.Slots {
		slots[i] = SlotAvailability{
			TimeSlot:  s.TimeSlot,
			Total:     s.Total,
			Booked:    s.Booked,
			Available: s.Available,
		}
	}

	return &CenterAvailabilityResponse{
		Center:    string(resp.Center),
		Date:      resp.Date.Format(domain.DateFormat),
		Total:     resp.Capacity.Total,
		Booked:    resp.Capacity.Booked,
		Available: resp.Capacity.Available,
		Doses:     doses,
		Slots:     slots,
	}
}
