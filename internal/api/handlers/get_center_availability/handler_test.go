package get_center_availability

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VaccinationService/internal/domain"
	getCenterAvailability "github.com/m04kA/SMC-VaccinationService/internal/usecase/get_center_availability"
	"github.com/m04kA/SMC-VaccinationService/pkg/logger"
)

type stubUseCase struct {
	err error
}

func (s stubUseCase) Execute(_ context.Context, req *getCenterAvailability.Request) (*getCenterAvailability.Response, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &getCenterAvailability.Response{
		Center:   req.Center,
		Date:     req.Date,
		Capacity: getCenterAvailability.Capacity{Total: 30, Booked: 1, Available: 29},
		Doses: []getCenterAvailability.DoseCapacity{
			{Dose: 1, Capacity: getCenterAvailability.Capacity{Total: 15, Booked: 1, Available: 14}},
			{Dose: 2, Capacity: getCenterAvailability.Capacity{Total: 15, Booked: 0, Available: 15}},
		},
		Slots: []getCenterAvailability.SlotCapacity{
			{TimeSlot: "10:00-11:00", Capacity: getCenterAvailability.Capacity{Total: 10, Booked: 1, Available: 9}},
		},
	}, nil
}

func serve(uc GetCenterAvailabilityUseCase, target string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/centers/{center}/availability", NewHandler(uc, logger.Discard()).Handle)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandle_OK(t *testing.T) {
	rec := serve(stubUseCase{}, "/api/v1/centers/CenterA/availability?date=02-11-2026")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"center":"CenterA","date":"02-11-2026","total":30,"booked":1,"available":29,
		"doses":[{"dose":1,"total":15,"booked":1,"available":14},{"dose":2,"total":15,"booked":0,"available":15}],
		"slots":[{"time_slot":"10:00-11:00","total":10,"booked":1,"available":9}]
	}`, rec.Body.String())
}

func TestHandle_Errors(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, serve(stubUseCase{}, "/api/v1/centers/CenterA/availability").Code)
	assert.Equal(t, http.StatusBadRequest,
		serve(stubUseCase{err: getCenterAvailability.ErrInvalidDate}, "/api/v1/centers/CenterA/availability?date=02-11-2030").Code)
	assert.Equal(t, http.StatusBadRequest,
		serve(stubUseCase{err: getCenterAvailability.ErrInvalidCenter}, "/api/v1/centers/Z/availability?date=02-11-2026").Code)
}

func TestToUseCaseRequest(t *testing.T) {
	req, err := ToUseCaseRequest("CenterB", "02-11-2026")

	require.NoError(t, err)
	assert.Equal(t, domain.CenterB, req.Center)
	assert.Equal(t, time.Date(2026, 11, 2, 0, 0, 0, 0, time.UTC), req.Date)
}
