package get_center_availability

import (
	"time"

	"github.com/m04kA/SMC-VaccinationService/internal/domain"
)

// Request модель запроса свободных мест центра на дату
type Request struct {
	Center domain.Center
	Date   time.Time // без времени
}

// Response модель ответа с занятостью центра
type Response struct {
	Center   domain.Center
	Date     time.Time
	Capacity Capacity       // центр на дату, по всем дозам
	Doses    []DoseCapacity // по дозам 1 и 2
	Slots    []SlotCapacity // только слоты, в которых уже есть записи
}

// Capacity занято и свободно относительно лимита
type Capacity struct {
	Total     int
	Booked    int
	Available int
}

// DoseCapacity занятость по дозе
type DoseCapacity struct {
	Dose int
	Capacity
}

// SlotCapacity занятость слота
type SlotCapacity struct {
	TimeSlot string
	Capacity
}
