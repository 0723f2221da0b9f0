package cmd

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hanksha/tennis-booking-backend/api"
	mock_api "github.com/hanksha/tennis-booking-backend/api/mocks"
	"github.com/hanksha/tennis-booking-backend/court"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestVersionCmd(t *testing.T) {
	var out bytes.Buffer

	root := NewRootCmd()
	root.SetOut(&out)
	root.SetArgs([]string{"version"})

	require.NoError(t, root.Execute())
	require.Equal(t, "tennis-booking dev (commit=none, built=unknown)\n", out.String())
}

func TestProbeCmdRequiresFlags(t *testing.T) {
	root := NewRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"probe", "--court", "Alice Marble"})

	require.ErrorContains(t, root.Execute(), "date")
}

func TestRouter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)

	courts := mock_api.NewMockCourtLister(ctrl)
	mailbox := mock_api.NewMockCodeMailbox(ctrl)

	router := newRouter(routes{
		attempts:      mock_api.NewMockAttemptService(ctrl),
		prober:        mock_api.NewMockSlotProber(ctrl),
		courts:        courts,
		credentials:   mock_api.NewMockCredentialStore(ctrl),
		mailbox:       mailbox,
		location:      time.UTC,
		webhookSecret: "s3cret",
		apiKey:        "k3y",
	})

	t.Run("health", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/health", nil)
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		require.JSONEq(t, `{"status":"ok"}`, w.Body.String())
	})

	t.Run("courts are mounted under v1", func(t *testing.T) {
		courts.EXPECT().ListCourts(gomock.Any()).Return([]court.Court{{Name: "Alice Marble", Active: true}}).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/courts", nil)
		req.Header.Set(api.APIKeyHeader, "k3y")
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		require.Contains(t, w.Body.String(), "Alice Marble")
	})

	t.Run("sms webhook requires the secret", func(t *testing.T) {
		mailbox.EXPECT().Deposit(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/v1/verification/sms", bytes.NewBufferString(`{"email":"a@b.c","code_text":"123456"}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("client routes require the api key", func(t *testing.T) {
		mailbox.EXPECT().Await(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		for _, r := range []struct{ method, path string }{
			{"GET", "/api/v1/verification/code?email=a@b.c"},
			{"PUT", "/api/v1/credentials"},
			{"POST", "/api/v1/attempts"},
			{"GET", "/api/v1/attempts?owner=a@b.c"},
			{"GET", "/api/v1/jobs"},
			{"GET", "/api/v1/courts"},
		} {
			w := httptest.NewRecorder()
			req, _ := http.NewRequest(r.method, r.path, bytes.NewBufferString(`{}`))
			req.Header.Set("Content-Type", "application/json")
			router.ServeHTTP(w, req)

			require.Equal(t, http.StatusUnauthorized, w.Code, r.path)
		}
	})

	t.Run("webhook secret does not open client routes", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/verification/code?email=a@b.c", nil)
		req.Header.Set(api.WebhookSecretHeader, "s3cret")
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
