package get_center_availability

import (
	"sort"

	"github.com/m04kA/SMC-VaccinationService/internal/domain"
)

func newCapacity(total, booked int) Capacity {
	available := total - booked
	if available < 0 {
		available = 0
	}
	return Capacity{Total: total, Booked: booked, Available: available}
}

// calculateAvailability считает занятость центра, доз и слотов по записям на дату
func calculateAvailability(appointments []*domain.Appointment) (Capacity, []DoseCapacity, []SlotCapacity) {
	perDose := make(map[int]int, 2)
	perSlot := make(map[string]int)

	for _, a := range appointments {
		perDose[a.Dose]++
		perSlot[a.TimeSlot]++
	}

	doses := []DoseCapacity{
		{Dose: domain.FirstDose, Capacity: newCapacity(domain.MaxAppointmentsPerDose, perDose[domain.FirstDose])},
		{Dose: domain.SecondDose, Capacity: newCapacity(domain.MaxAppointmentsPerDose, perDose[domain.SecondDose])},
	}

	slots := make([]SlotCapacity, 0, len(perSlot))
	for slot, booked := range perSlot {
		slots = append(slots, SlotCapacity{
			TimeSlot: slot,
			Capacity: newCapacity(domain.MaxAppointmentsPerSlot, booked),
		})
	}
	sort.Slice(slots, func(i, j int) bool { return slots[i].TimeSlot < slots[j].TimeSlot })

	return newCapacity(domain.MaxAppointmentsPerCenterDay, len(appointments)), doses, slots
}
