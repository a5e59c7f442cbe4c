package get_center_availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VaccinationService/internal/domain"
	"github.com/m04kA/SMC-VaccinationService/pkg/logger"
)

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

type directTx struct{}

func (directTx) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type stubRepo struct {
	list   []*domain.Appointment
	err    error
	filter domain.AppointmentsFilter
}

func (s *stubRepo) List(_ context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	s.filter = filter
	return s.list, s.err
}

var (
	now  = time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	date = time.Date(2026, 11, 2, 0, 0, 0, 0, time.UTC)
)

func newUseCase(repo AppointmentRepository) *UseCase {
	return NewUseCase(repo, directTx{}, logger.Discard()).WithTimeProvider(fixedTime{t: now})
}

func appt(slot string, dose int) *domain.Appointment {
	return &domain.Appointment{Date: date, TimeSlot: slot, Dose: dose, Center: domain.CenterA}
}

func TestExecute_CountsBookedPlaces(t *testing.T) {
	repo := &stubRepo{list: []*domain.Appointment{
		appt("11:00-12:00", domain.FirstDose),
		appt("10:00-11:00", domain.FirstDose),
		appt("10:00-11:00", domain.SecondDose),
	}}

	resp, err := newUseCase(repo).Execute(context.Background(), &Request{Center: domain.CenterA, Date: date})

	require.NoError(t, err)
	assert.Equal(t, Capacity{Total: 30, Booked: 3, Available: 27}, resp.Capacity)

	require.Len(t, resp.Doses, 2)
	assert.Equal(t, Capacity{Total: 15, Booked: 2, Available: 13}, resp.Doses[0].Capacity)
	assert.Equal(t, Capacity{Total: 15, Booked: 1, Available: 14}, resp.Doses[1].Capacity)

	require.Len(t, resp.Slots, 2)
	assert.Equal(t, "10:00-11:00", resp.Slots[0].TimeSlot)
	assert.Equal(t, 2, resp.Slots[0].Booked)
	assert.Equal(t, 8, resp.Slots[0].Available)
	assert.Equal(t, "11:00-12:00", resp.Slots[1].TimeSlot)

	require.NotNil(t, repo.filter.Center)
	assert.Equal(t, domain.CenterA, *repo.filter.Center)
}

func TestExecute_Validation(t *testing.T) {
	uc := newUseCase(&stubRepo{})

	_, err := uc.Execute(context.Background(), &Request{Center: domain.Center("Z"), Date: date})
	assert.ErrorIs(t, err, ErrInvalidCenter)

	_, err = uc.Execute(context.Background(), &Request{Center: domain.CenterA, Date: now.AddDate(0, 0, -1)})
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = uc.Execute(context.Background(), &Request{Center: domain.CenterA, Date: now.AddDate(0, 0, 91)})
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = uc.Execute(context.Background(), &Request{Center: domain.CenterA, Date: now.AddDate(0, 0, 90)})
	assert.NoError(t, err)
}

func TestExecute_RepositoryError(t *testing.T) {
	repoErr := errors.New("timeout")

	_, err := newUseCase(&stubRepo{err: repoErr}).Execute(context.Background(), &Request{Center: domain.CenterA, Date: date})

	assert.ErrorIs(t, err, ErrInternal)
	assert.ErrorIs(t, err, repoErr)
}
