package rules

import (
	"context"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/m04kA/SMC-VaccinationService/internal/domain"
)

// EvaluateBooking проверяет запись на дозу по существующим записям
// Правила проверяются по порядку, первое нарушенное определяет ошибку:
//  1. доза и центр (ErrInvalidInput)
//  2. окно записи [сегодня, сегодня+90] (ErrInvalidDate)
//  3. слот центра, 10 мест (ErrSlotFull)
//  4. центр на дату, 30 мест (ErrCenterFull)
//  5. не больше двух записей на получателя (ErrBeneficiaryLimitReached)
//  6. вторая доза не раньше 15 дней после первой (ErrDoseIntervalViolation)
//  7. доза в центре на дату, 15 мест (ErrDoseCapacityFull)
//
// Ошибка lookup оборачивается в ErrInternal. Сохранение выполняет вызывающий.
func EvaluateBooking(ctx context.Context, req BookingRequest, now time.Time, lookup Lookup) (*domain.Appointment, error) {
	if err := validateBookingInput(req); err != nil {
		return nil, err
	}

	date := domain.DateOnly(req.Date)

	if err := validateBookingWindow(date, now); err != nil {
		return nil, err
	}

	slotCount, err := lookup.CountBySlot(ctx, date, req.TimeSlot, req.Center)
	if err != nil {
		return nil, fmt.Errorf("%w: count by slot: %w", ErrInternal, err)
	}
	if slotCount >= domain.MaxAppointmentsPerSlot {
		return nil, fmt.Errorf("%w: %d/%d taken", ErrSlotFull, slotCount, domain.MaxAppointmentsPerSlot)
	}

	centerCount, err := lookup.CountByCenter(ctx, date, req.Center)
	if err != nil {
		return nil, fmt.Errorf("%w: count by center: %w", ErrInternal, err)
	}
	if centerCount >= domain.MaxAppointmentsPerCenterDay {
		return nil, fmt.Errorf("%w: %d/%d taken", ErrCenterFull, centerCount, domain.MaxAppointmentsPerCenterDay)
	}

	personCount, err := lookup.CountByBeneficiary(ctx, req.BeneficiaryID)
	if err != nil {
		return nil, fmt.Errorf("%w: count by beneficiary: %w", ErrInternal, err)
	}
	if personCount >= domain.MaxAppointmentsPerPerson {
		return nil, ErrBeneficiaryLimitReached
	}

	draft := &domain.Appointment{
		BeneficiaryID: req.BeneficiaryID,
		Date:          date,
		TimeSlot:      req.TimeSlot,
		Dose:          req.Dose,
		Center:        req.Center,
	}

	if req.Dose == domain.SecondDose {
		first, err := lookup.GetFirstDose(ctx, req.BeneficiaryID)
		if err != nil {
			return nil, fmt.Errorf("%w: get first dose: %w", ErrInternal, err)
		}
		if first == nil {
			return nil, fmt.Errorf("%w: no first dose appointment", ErrDoseIntervalViolation)
		}
		if days := draft.DaysSince(first); days < domain.MinDaysBetweenDoses {
			return nil, fmt.Errorf("%w: %d days after first dose", ErrDoseIntervalViolation, days)
		}
	}

	doseCount, err := lookup.CountByDose(ctx, date, req.Center, req.Dose)
	if err != nil {
		return nil, fmt.Errorf("%w: count by dose: %w", ErrInternal, err)
	}
	if doseCount >= domain.MaxAppointmentsPerDose {
		return nil, fmt.Errorf("%w: %d/%d taken", ErrDoseCapacityFull, doseCount, domain.MaxAppointmentsPerDose)
	}

	return draft, nil
}

func validateBookingInput(req BookingRequest) error {
	if req.Dose != domain.FirstDose && req.Dose != domain.SecondDose {
		return fmt.Errorf("%w: dose must be 1 or 2", ErrInvalidInput)
	}

	if !req.Center.IsValid() {
		return fmt.Errorf("%w: unknown center %q", ErrInvalidInput, req.Center)
	}

	if req.BeneficiaryID <= 0 {
		return fmt.Errorf("%w: beneficiaryID must be positive", ErrInvalidInput)
	}

	if req.TimeSlot == "" || utf8.RuneCountInString(req.TimeSlot) > domain.MaxTimeSlotLength {
		return fmt.Errorf("%w: time slot must be 1..%d characters", ErrInvalidInput, domain.MaxTimeSlotLength)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	return nil
}

// validateBookingWindow проверяет, что дата в пределах [сегодня, сегодня+90], обе границы включительно
func validateBookingWindow(date, now time.Time) error {
	days := domain.DaysBetween(now, date)
	if days < 0 {
		return fmt.Errorf("%w: date is in the past", ErrInvalidDate)
	}
	if days > domain.BookingWindowDays {
		return fmt.Errorf("%w: can only book %d days in advance", ErrInvalidDate, domain.BookingWindowDays)
	}
	return nil
}
