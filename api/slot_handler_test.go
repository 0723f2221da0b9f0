package api_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hanksha/tennis-booking-backend/api"
	mock_api "github.com/hanksha/tennis-booking-backend/api/mocks"
	"github.com/hanksha/tennis-booking-backend/court"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func setupSlotRouter(t *testing.T) (*gin.Engine, *mock_api.MockSlotProber, *mock_api.MockCourtLister, *time.Location) {
	t.Helper()
	ctrl := gomock.NewController(t)

	la, err := time.LoadLocation("America/Los_Angeles")
	assert.NoError(t, err)

	gin.SetMode(gin.TestMode)
	router := gin.Default()
	prober := mock_api.NewMockSlotProber(ctrl)
	courts := mock_api.NewMockCourtLister(ctrl)
	handler := api.NewSlotHandler(prober, courts, la)
	handler.RegisterSlots(router.Group("/api/v1/slots"))
	handler.RegisterCourts(router.Group("/api/v1/courts"))

	return router, prober, courts, la
}

func TestGetSlots(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		router, prober, _, la := setupSlotRouter(t)

		date := time.Date(2026, time.October, 19, 0, 0, 0, 0, la)
		prober.EXPECT().Probe(gomock.Any(), "Alice Marble", date).Return([]string{"09:00", "13:00"}, nil).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/slots?court=Alice+Marble&date=2026-10-19", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"court":"Alice Marble","date":"2026-10-19","slots":["09:00","13:00"]}`, w.Body.String())
	})

	t.Run("no slots is an empty list", func(t *testing.T) {
		router, prober, _, _ := setupSlotRouter(t)

		prober.EXPECT().Probe(gomock.Any(), "Balboa", gomock.Any()).Return([]string{}, nil).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/slots?court=Balboa&date=2026-10-19", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"court":"Balboa","date":"2026-10-19","slots":[]}`, w.Body.String())
	})

	t.Run("bad date", func(t *testing.T) {
		router, prober, _, _ := setupSlotRouter(t)

		prober.EXPECT().Probe(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/slots?court=Balboa&date=19/10/2026", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":"failed to parse date"}`, w.Body.String())
	})

	t.Run("missing court", func(t *testing.T) {
		router, _, _, _ := setupSlotRouter(t)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/slots?date=2026-10-19", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("browser failure", func(t *testing.T) {
		router, prober, _, _ := setupSlotRouter(t)

		prober.EXPECT().Probe(gomock.Any(), "Balboa", gomock.Any()).Return(nil, assert.AnError).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/slots?court=Balboa&date=2026-10-19", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"error":"failed to probe slots"}`, w.Body.String())
	})
}

func TestListCourts(t *testing.T) {
	router, _, courts, _ := setupSlotRouter(t)

	list := []court.Court{{Name: "Alice Marble", Active: true}, {Name: "Balboa", Active: true}}
	courts.EXPECT().ListCourts(gomock.Any()).Return(list).Times(1)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/v1/courts", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Alice Marble")
	assert.Contains(t, w.Body.String(), "Balboa")
}
