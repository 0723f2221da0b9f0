package api_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hanksha/tennis-booking-backend/api"
	mock_api "github.com/hanksha/tennis-booking-backend/api/mocks"
	bk "github.com/hanksha/tennis-booking-backend/booking"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

var targetTime = time.Date(2026, time.October, 19, 20, 0, 0, 0, time.UTC)

func setupAttemptRouter(t *testing.T) (*gin.Engine, *mock_api.MockAttemptService) {
	t.Helper()
	ctrl := gomock.NewController(t)

	gin.SetMode(gin.TestMode)
	router := gin.Default()
	mockService := mock_api.NewMockAttemptService(ctrl)
	handler := api.NewAttemptHandler(mockService)
	handler.Register(router.Group("/api/v1/attempts"))
	handler.RegisterJobs(router.Group("/api/v1/jobs"))

	return router, mockService
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	assert.NoError(t, err)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(method, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	return w
}

func TestCreateAttempt(t *testing.T) {
	in := bk.NewAttempt{
		Court:      "Alice Marble",
		TargetTime: targetTime,
		Owner:      "player@example.com",
	}

	t.Run("immediate success", func(t *testing.T) {
		router, mockService := setupAttemptRouter(t)

		outcome := bk.Outcome{
			Attempt:   bk.Attempt{ID: "a1", Court: in.Court, TargetTime: targetTime, Owner: in.Owner, Status: bk.StatusCompleted},
			Immediate: true,
		}
		mockService.EXPECT().CreateAttempt(gomock.Any(), in).Return(outcome, nil).Times(1)

		w := doJSON(t, router, http.MethodPost, "/api/v1/attempts", in)

		expected, _ := json.Marshal(outcome)
		assert.Equal(t, http.StatusCreated, w.Code)
		assert.JSONEq(t, string(expected), w.Body.String())
	})

	t.Run("failed then deferred is accepted with a note", func(t *testing.T) {
		router, mockService := setupAttemptRouter(t)

		reason := "time slot not found"
		outcome := bk.Outcome{
			Attempt:   bk.Attempt{ID: "a1", Status: bk.StatusScheduled, ErrorMessage: &reason},
			Immediate: true,
			Deferred:  true,
			Note:      "immediate reservation failed (time slot not found), will retry at 2026-10-19 13:00:00",
		}
		mockService.EXPECT().CreateAttempt(gomock.Any(), in).Return(outcome, nil).Times(1)

		w := doJSON(t, router, http.MethodPost, "/api/v1/attempts", in)

		var got bk.Outcome
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, got.Note, "will retry")
		assert.Equal(t, bk.StatusScheduled, got.Attempt.Status)
	})

	t.Run("validation error", func(t *testing.T) {
		router, mockService := setupAttemptRouter(t)

		mockService.EXPECT().
			CreateAttempt(gomock.Any(), in).
			Return(bk.Outcome{}, fmt.Errorf("%w: targetTime must be on a future date", bk.ErrValidation)).
			Times(1)

		w := doJSON(t, router, http.MethodPost, "/api/v1/attempts", in)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "targetTime must be on a future date")
	})

	t.Run("scheduling infrastructure failure", func(t *testing.T) {
		router, mockService := setupAttemptRouter(t)

		msg := "court not found; scheduling fallback failed: db down"
		outcome := bk.Outcome{Attempt: bk.Attempt{ID: "a1", Status: bk.StatusFailed, ErrorMessage: &msg}}
		mockService.EXPECT().
			CreateAttempt(gomock.Any(), in).
			Return(outcome, fmt.Errorf("%w: db down", bk.ErrSchedulingInfra)).
			Times(1)

		w := doJSON(t, router, http.MethodPost, "/api/v1/attempts", in)

		var body struct {
			Error   string     `json:"error"`
			Attempt bk.Attempt `json:"attempt"`
		}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "failed to schedule attempt", body.Error)
		assert.Equal(t, msg, *body.Attempt.ErrorMessage)
	})

	t.Run("attempt in progress", func(t *testing.T) {
		router, mockService := setupAttemptRouter(t)

		mockService.EXPECT().CreateAttempt(gomock.Any(), in).Return(bk.Outcome{}, bk.ErrAttemptInProgress).Times(1)

		w := doJSON(t, router, http.MethodPost, "/api/v1/attempts", in)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("missing fields are rejected before the service", func(t *testing.T) {
		router, mockService := setupAttemptRouter(t)

		mockService.EXPECT().CreateAttempt(gomock.Any(), gomock.Any()).Times(0)

		w := doJSON(t, router, http.MethodPost, "/api/v1/attempts", map[string]string{"court": "Alice Marble"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":"failed to parse JSON body"}`, w.Body.String())
	})
}

func TestGetAttemptByID(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		router, mockService := setupAttemptRouter(t)

		a := bk.Attempt{ID: "123", Court: "Alice Marble", Status: bk.StatusScheduled}
		aJson, _ := json.MarshalIndent(a, "", "    ")
		mockService.EXPECT().FindAttemptByID(gomock.Any(), "123").Return(a, nil).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/attempts/123", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, string(aJson), w.Body.String())
	})

	t.Run("not found", func(t *testing.T) {
		router, mockService := setupAttemptRouter(t)

		mockService.EXPECT().FindAttemptByID(gomock.Any(), "404").Return(bk.Attempt{}, bk.ErrAttemptNotFound).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/attempts/404", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error":"attempt not found"}`, w.Body.String())
	})

	t.Run("error", func(t *testing.T) {
		router, mockService := setupAttemptRouter(t)

		mockService.EXPECT().FindAttemptByID(gomock.Any(), "123").Return(bk.Attempt{}, errors.New("db down")).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/attempts/123", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"error":"failed to fetch attempt"}`, w.Body.String())
	})
}

func TestListAttemptsByOwner(t *testing.T) {
	t.Run("owner is lowercased", func(t *testing.T) {
		router, mockService := setupAttemptRouter(t)

		attempts := []bk.Attempt{{ID: "1", Owner: "player@example.com"}}
		mockService.EXPECT().FindAttemptsByOwner(gomock.Any(), "player@example.com").Return(attempts, nil).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/attempts?owner=Player@Example.com", nil)
		router.ServeHTTP(w, req)

		expected, _ := json.Marshal(attempts)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, string(expected), w.Body.String())
	})

	t.Run("owner is required", func(t *testing.T) {
		router, _ := setupAttemptRouter(t)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/attempts", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("error", func(t *testing.T) {
		router, mockService := setupAttemptRouter(t)

		mockService.EXPECT().FindAttemptsByOwner(gomock.Any(), "player@example.com").Return(nil, assert.AnError).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/attempts?owner=player@example.com", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"error":"failed to get attempts"}`, w.Body.String())
	})
}

func TestListJobs(t *testing.T) {
	router, mockService := setupAttemptRouter(t)

	jobs := []bk.Job{{ID: bk.JobID("a1", targetTime), AttemptID: "a1", FiresAt: targetTime}}
	mockService.EXPECT().PendingJobs().Return(jobs).Times(1)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/v1/jobs", nil)
	router.ServeHTTP(w, req)

	expected, _ := json.Marshal(jobs)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, string(expected), w.Body.String())
}
