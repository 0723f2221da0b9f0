package api_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/hanksha/tennis-booking-backend/api"
	mock_api "github.com/hanksha/tennis-booking-backend/api/mocks"
	"github.com/hanksha/tennis-booking-backend/credential"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func setupCredentialRouter(t *testing.T) (*gin.Engine, *mock_api.MockCredentialStore) {
	t.Helper()
	ctrl := gomock.NewController(t)

	gin.SetMode(gin.TestMode)
	router := gin.Default()
	store := mock_api.NewMockCredentialStore(ctrl)
	api.NewCredentialHandler(store).Register(router.Group("/api/v1/credentials"))

	return router, store
}

func TestSaveCredential(t *testing.T) {
	cred := credential.Credential{
		Email:                   "player@example.com",
		Password:                "hunter2",
		PhoneNumber:             "+1 415 555 0100",
		PlaytimeDurationMinutes: 90,
	}

	t.Run("success does not echo the password", func(t *testing.T) {
		router, store := setupCredentialRouter(t)

		store.EXPECT().Save(gomock.Any(), cred).Return(nil).Times(1)

		w := doJSON(t, router, http.MethodPut, "/api/v1/credentials", cred)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.NotContains(t, w.Body.String(), "hunter2")
	})

	t.Run("invalid credential", func(t *testing.T) {
		router, store := setupCredentialRouter(t)

		store.EXPECT().
			Save(gomock.Any(), gomock.Any()).
			Return(fmt.Errorf("%w: playtime duration must be 60 or 90 minutes, got 45", credential.ErrInvalidCredential)).
			Times(1)

		w := doJSON(t, router, http.MethodPut, "/api/v1/credentials", cred)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "60 or 90")
	})

	t.Run("store failure", func(t *testing.T) {
		router, store := setupCredentialRouter(t)

		store.EXPECT().Save(gomock.Any(), gomock.Any()).Return(assert.AnError).Times(1)

		w := doJSON(t, router, http.MethodPut, "/api/v1/credentials", cred)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"error":"failed to save credential"}`, w.Body.String())
	})
}
