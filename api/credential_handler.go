package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hanksha/tennis-booking-backend/credential"
)

type CredentialStore interface {
	GetByPhone(ctx context.Context, phone string) (credential.Credential, error)
	Save(ctx context.Context, cred credential.Credential) error
}

type CredentialHandler struct {
	store CredentialStore
}

func NewCredentialHandler(store CredentialStore) *CredentialHandler {
	return &CredentialHandler{store: store}
}

func (h *CredentialHandler) Register(rg *gin.RouterGroup) {
	rg.PUT("", h.Save)
}

func (h *CredentialHandler) Save(c *gin.Context) {
	var cred credential.Credential

	if err := c.ShouldBindJSON(&cred); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "failed to parse JSON body",
		})
		return
	}

	if err := h.store.Save(c.Request.Context(), cred); err != nil {
		c.Error(err)
		if errors.Is(err, credential.ErrInvalidCredential) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save credential"})
		return
	}

	c.IndentedJSON(http.StatusOK, gin.H{"message": "credential saved"})
}
