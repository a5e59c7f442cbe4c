package get_appointments

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VaccinationService/internal/service/appointments"
	"github.com/m04kA/SMC-VaccinationService/internal/service/appointments/models"
	"github.com/m04kA/SMC-VaccinationService/pkg/logger"
)

type stubService struct {
	got *models.ListRequest
	err error
}

func (s *stubService) List(_ context.Context, req *models.ListRequest) ([]*models.AppointmentResponse, error) {
	s.got = req
	if s.err != nil {
		return nil, s.err
	}
	return []*models.AppointmentResponse{}, nil
}

func serve(svc AppointmentService, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	NewHandler(svc, logger.Discard()).Handle(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandle_PassesFilter(t *testing.T) {
	svc := &stubService{}

	rec := serve(svc, "/api/v1/appointments?beneficiaryId=4&center=CenterB&date=02-11-2026")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
	require.NotNil(t, svc.got.BeneficiaryID)
	assert.Equal(t, int64(4), *svc.got.BeneficiaryID)
	assert.Equal(t, "CenterB", *svc.got.Center)
	assert.Equal(t, "02-11-2026", *svc.got.Date)
}

func TestHandle_NoFilter(t *testing.T) {
	svc := &stubService{}

	rec := serve(svc, "/api/v1/appointments")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, svc.got.BeneficiaryID)
	assert.Nil(t, svc.got.Center)
	assert.Nil(t, svc.got.Date)
}

func TestHandle_BadParams(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, serve(&stubService{}, "/api/v1/appointments?beneficiaryId=x").Code)

	svc := &stubService{err: fmt.Errorf("%w: unknown center %q", appointments.ErrInvalidInput, "Z")}
	assert.Equal(t, http.StatusBadRequest, serve(svc, "/api/v1/appointments?center=Z").Code)
}
