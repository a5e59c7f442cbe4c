package rules

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VaccinationService/internal/domain"
)

var now = time.Date(2026, 10, 19, 14, 30, 0, 0, time.UTC)

func day(offset int) time.Time {
	return domain.DateOnly(now).AddDate(0, 0, offset)
}

// fakeLookup возвращает заранее заданные счётчики
type fakeLookup struct {
	slot, center, person, dose int
	firstDose                  *domain.Appointment
	err                        error
	failOn                     string
	calls                      []string
}

func (f *fakeLookup) fail(name string) error {
	f.calls = append(f.calls, name)
	if f.failOn == name {
		return f.err
	}
	return nil
}

func (f *fakeLookup) CountBySlot(_ context.Context, _ time.Time, _ string, _ domain.Center) (int, error) {
	return f.slot, f.fail("slot")
}

func (f *fakeLookup) CountByCenter(_ context.Context, _ time.Time, _ domain.Center) (int, error) {
	return f.center, f.fail("center")
}

func (f *fakeLookup) CountByBeneficiary(_ context.Context, _ int64) (int, error) {
	return f.person, f.fail("person")
}

func (f *fakeLookup) GetFirstDose(_ context.Context, _ int64) (*domain.Appointment, error) {
	return f.firstDose, f.fail("first_dose")
}

func (f *fakeLookup) CountByDose(_ context.Context, _ time.Time, _ domain.Center, _ int) (int, error) {
	return f.dose, f.fail("dose")
}

func validBooking() BookingRequest {
	return BookingRequest{
		BeneficiaryID: 1,
		Date:          day(20),
		TimeSlot:      "10:00-11:00",
		Dose:          domain.FirstDose,
		Center:        domain.CenterA,
	}
}

func TestEvaluateRegistration(t *testing.T) {
	dob := time.Date(1970, 5, 17, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		req     RegistrationRequest
		wantErr error
	}{
		{
			name: "valid",
			req:  RegistrationRequest{SSN: "123456789", Name: "Asha Rao", DOB: dob, Phone: "9876543210"},
		},
		{
			name:    "ssn too short",
			req:     RegistrationRequest{SSN: "12345678", Name: "A", DOB: dob, Phone: "9876543210"},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "ssn too long",
			req:     RegistrationRequest{SSN: "1234567890", Name: "A", DOB: dob, Phone: "9876543210"},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "ssn with letters",
			req:     RegistrationRequest{SSN: "12345678a", Name: "A", DOB: dob, Phone: "9876543210"},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "ssn with non-ascii digits",
			req:     RegistrationRequest{SSN: "١٢٣٤٥٦٧٨٩", Name: "A", DOB: dob, Phone: "9876543210"},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "phone too short",
			req:     RegistrationRequest{SSN: "123456789", Name: "A", DOB: dob, Phone: "987654321"},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "phone with dash",
			req:     RegistrationRequest{SSN: "123456789", Name: "A", DOB: dob, Phone: "98765-3210"},
			wantErr: ErrInvalidInput,
		},
		{
			name: "padded name kept as given",
			req:  RegistrationRequest{SSN: "123456789", Name: "  Ann Lee ", DOB: dob, Phone: "9876543210"},
		},
		{
			name: "blank name",
			req:  RegistrationRequest{SSN: "123456789", Name: "  ", DOB: dob, Phone: "9876543210"},
		},
		{
			name: "name of 50 multibyte characters",
			req:  RegistrationRequest{SSN: "123456789", Name: strings.Repeat("я", 50), DOB: dob, Phone: "9876543210"},
		},
		{
			name:    "name too long",
			req:     RegistrationRequest{SSN: "123456789", Name: strings.Repeat("я", 51), DOB: dob, Phone: "9876543210"},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "missing dob",
			req:     RegistrationRequest{SSN: "123456789", Name: "A", Phone: "9876543210"},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "age 44 by year",
			req:     RegistrationRequest{SSN: "123456789", Name: "A", DOB: time.Date(1982, 1, 1, 0, 0, 0, 0, time.UTC), Phone: "9876543210"},
			wantErr: ErrUnderAge,
		},
		{
			// 2026 - 1981 = 45, хотя фактически ещё 44
			name: "age 45 by year subtraction",
			req:  RegistrationRequest{SSN: "123456789", Name: "A", DOB: time.Date(1981, 12, 31, 0, 0, 0, 0, time.UTC), Phone: "9876543210"},
		},
		{
			name:    "born in the future",
			req:     RegistrationRequest{SSN: "123456789", Name: "A", DOB: time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC), Phone: "9876543210"},
			wantErr: ErrUnderAge,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EvaluateRegistration(tt.req, now)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.req.SSN, got.SSN)
			assert.Equal(t, tt.req.Name, got.Name)
			assert.Equal(t, tt.req.Phone, got.Phone)
			assert.True(t, tt.req.DOB.Equal(got.DOB))
			assert.Zero(t, got.ID)
		})
	}
}

func TestEvaluateRegistration_FormatCheckedBeforeAge(t *testing.T) {
	req := RegistrationRequest{SSN: "bad", DOB: time.Date(2010, 1, 1, 0, 0, 0, 0, time.UTC), Phone: "9876543210"}

	_, err := EvaluateRegistration(req, now)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestEvaluateBooking_Success(t *testing.T) {
	lookup := &fakeLookup{slot: 9, center: 29, person: 1, dose: 14}

	got, err := EvaluateBooking(context.Background(), validBooking(), now, lookup)

	require.NoError(t, err)
	assert.Equal(t, int64(1), got.BeneficiaryID)
	assert.Equal(t, day(20), got.Date)
	assert.Equal(t, "10:00-11:00", got.TimeSlot)
	assert.Equal(t, domain.FirstDose, got.Dose)
	assert.Equal(t, domain.CenterA, got.Center)
	assert.NotContains(t, lookup.calls, "first_dose")
}

func TestEvaluateBooking_InvalidInput(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *BookingRequest)
	}{
		{name: "dose 0", mutate: func(r *BookingRequest) { r.Dose = 0 }},
		{name: "dose 3", mutate: func(r *BookingRequest) { r.Dose = 3 }},
		{name: "unknown center", mutate: func(r *BookingRequest) { r.Center = "CenterZ" }},
		{name: "empty time slot", mutate: func(r *BookingRequest) { r.TimeSlot = "" }},
		{name: "long time slot", mutate: func(r *BookingRequest) { r.TimeSlot = strings.Repeat("x", 21) }},
		{name: "zero beneficiary", mutate: func(r *BookingRequest) { r.BeneficiaryID = 0 }},
		{name: "zero date", mutate: func(r *BookingRequest) { r.Date = time.Time{} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validBooking()
			tt.mutate(&req)
			lookup := &fakeLookup{}

			_, err := EvaluateBooking(context.Background(), req, now, lookup)

			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Empty(t, lookup.calls)
		})
	}
}

func TestEvaluateBooking_TimeSlotLengthInCharacters(t *testing.T) {
	req := validBooking()
	req.TimeSlot = strings.Repeat("ч", 20)

	got, err := EvaluateBooking(context.Background(), req, now, &fakeLookup{})

	require.NoError(t, err)
	assert.Equal(t, req.TimeSlot, got.TimeSlot)

	req.TimeSlot = strings.Repeat("ч", 21)
	_, err = EvaluateBooking(context.Background(), req, now, &fakeLookup{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestEvaluateBooking_BookingWindow(t *testing.T) {
	tests := []struct {
		name    string
		date    time.Time
		wantErr error
	}{
		{name: "yesterday", date: day(-1), wantErr: ErrInvalidDate},
		{name: "today", date: day(0)},
		{name: "today late evening", date: day(0).Add(23 * time.Hour)},
		{name: "today+90", date: day(90)},
		{name: "today+91", date: day(91), wantErr: ErrInvalidDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validBooking()
			req.Date = tt.date

			_, err := EvaluateBooking(context.Background(), req, now, &fakeLookup{})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestEvaluateBooking_Capacity(t *testing.T) {
	tests := []struct {
		name    string
		lookup  *fakeLookup
		wantErr error
	}{
		{name: "slot at 10", lookup: &fakeLookup{slot: 10}, wantErr: ErrSlotFull},
		{name: "center at 30 with free slot and dose", lookup: &fakeLookup{slot: 0, center: 30, dose: 0}, wantErr: ErrCenterFull},
		{name: "beneficiary has two", lookup: &fakeLookup{person: 2}, wantErr: ErrBeneficiaryLimitReached},
		{name: "dose at 15", lookup: &fakeLookup{dose: 15}, wantErr: ErrDoseCapacityFull},
		{name: "dose at 14", lookup: &fakeLookup{dose: 14}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := EvaluateBooking(context.Background(), validBooking(), now, tt.lookup)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestEvaluateBooking_FirstFailingRuleWins(t *testing.T) {
	lookup := &fakeLookup{slot: 10, center: 30, person: 2, dose: 15}

	req := validBooking()
	req.Date = day(91)
	_, err := EvaluateBooking(context.Background(), req, now, lookup)
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = EvaluateBooking(context.Background(), validBooking(), now, lookup)
	assert.ErrorIs(t, err, ErrSlotFull)

	lookup.slot = 0
	_, err = EvaluateBooking(context.Background(), validBooking(), now, lookup)
	assert.ErrorIs(t, err, ErrCenterFull)

	lookup.center = 0
	_, err = EvaluateBooking(context.Background(), validBooking(), now, lookup)
	assert.ErrorIs(t, err, ErrBeneficiaryLimitReached)

	// интервал между дозами проверяется раньше лимита по дозе
	lookup.person = 1
	req = validBooking()
	req.Dose = domain.SecondDose
	_, err = EvaluateBooking(context.Background(), req, now, lookup)
	assert.ErrorIs(t, err, ErrDoseIntervalViolation)
}

func TestEvaluateBooking_SecondDoseInterval(t *testing.T) {
	first := &domain.Appointment{ID: 5, BeneficiaryID: 1, Date: day(10), Dose: domain.FirstDose, Center: domain.CenterB}

	tests := []struct {
		name      string
		firstDose *domain.Appointment
		date      time.Time
		wantErr   error
	}{
		{name: "no first dose", firstDose: nil, date: day(40), wantErr: ErrDoseIntervalViolation},
		{name: "14 days after", firstDose: first, date: day(24), wantErr: ErrDoseIntervalViolation},
		{name: "15 days after", firstDose: first, date: day(25)},
		{name: "before first dose", firstDose: first, date: day(5), wantErr: ErrDoseIntervalViolation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validBooking()
			req.Dose = domain.SecondDose
			req.Date = tt.date

			got, err := EvaluateBooking(context.Background(), req, now, &fakeLookup{person: 1, firstDose: tt.firstDose})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, domain.SecondDose, got.Dose)
		})
	}
}

func TestEvaluateBooking_LookupFailureIsInternal(t *testing.T) {
	storeErr := errors.New("connection reset")

	for _, step := range []string{"slot", "center", "person", "first_dose", "dose"} {
		t.Run(step, func(t *testing.T) {
			req := validBooking()
			req.Dose = domain.SecondDose
			lookup := &fakeLookup{
				firstDose: &domain.Appointment{Date: day(0), Dose: domain.FirstDose},
				failOn:    step,
				err:       storeErr,
			}

			_, err := EvaluateBooking(context.Background(), req, now, lookup)

			assert.ErrorIs(t, err, ErrInternal)
			assert.ErrorIs(t, err, storeErr)
			assert.Equal(t, ReasonInternalFault, Reason(err))
			assert.False(t, IsRejection(err))
		})
	}
}

func TestReason(t *testing.T) {
	assert.Equal(t, ReasonSlotFull, Reason(ErrSlotFull))
	assert.Equal(t, ReasonUnderAge, Reason(ErrUnderAge))
	assert.Equal(t, ReasonDoseIntervalViolation, Reason(errors.Join(errors.New("ctx"), ErrDoseIntervalViolation)))
	assert.Equal(t, ReasonInternalFault, Reason(errors.New("unexpected")))
	assert.True(t, IsRejection(ErrCenterFull))
	assert.False(t, IsRejection(nil))
}
