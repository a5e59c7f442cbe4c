package appointments

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VaccinationService/internal/domain"
	"github.com/m04kA/SMC-VaccinationService/internal/service/appointments/models"
	"github.com/m04kA/SMC-VaccinationService/pkg/logger"
)

type stubRepo struct {
	list       []*domain.Appointment
	err        error
	lastFilter domain.AppointmentsFilter
}

func (r *stubRepo) List(_ context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	r.lastFilter = filter
	return r.list, r.err
}

func ptr[T any](v T) *T { return &v }

func TestList_ConvertsAndFilters(t *testing.T) {
	repo := &stubRepo{list: []*domain.Appointment{{
		ID:            3,
		BeneficiaryID: 1,
		Date:          time.Date(2026, 11, 2, 0, 0, 0, 0, time.UTC),
		TimeSlot:      "10:00-11:00",
		Dose:          1,
		Center:        domain.CenterB,
	}}}
	svc := NewService(repo, logger.Discard())

	got, err := svc.List(context.Background(), &models.ListRequest{
		Center: ptr("CenterB"),
		Date:   ptr("02-11-2026"),
	})

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "02-11-2026", got[0].Date)
	assert.Equal(t, "CenterB", got[0].Center)
	require.NotNil(t, repo.lastFilter.Center)
	assert.Equal(t, domain.CenterB, *repo.lastFilter.Center)
	require.NotNil(t, repo.lastFilter.Date)
	assert.Equal(t, time.November, repo.lastFilter.Date.Month())
}

func TestList_InvalidFilter(t *testing.T) {
	svc := NewService(&stubRepo{}, logger.Discard())

	_, err := svc.List(context.Background(), &models.ListRequest{Center: ptr("Nowhere")})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.List(context.Background(), &models.ListRequest{Date: ptr("2026-11-02")})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestList_RepositoryError(t *testing.T) {
	svc := NewService(&stubRepo{err: errors.New("db down")}, logger.Discard())

	_, err := svc.List(context.Background(), &models.ListRequest{})
	assert.ErrorIs(t, err, ErrInternal)
}
