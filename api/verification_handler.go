package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hanksha/tennis-booking-backend/credential"
	"github.com/hanksha/tennis-booking-backend/verification"
)

type CodeMailbox interface {
	Deposit(ctx context.Context, identity, code string) error
	Await(ctx context.Context, identity string, maxAttempts int, pollInterval time.Duration) (string, bool)
}

// SMSMessage is the inbound webhook body. The identity is Email when set,
// otherwise it is looked up from PhoneNumber.
type SMSMessage struct {
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	CodeText    string `json:"code_text"`
}

type VerificationHandler struct {
	mailbox     CodeMailbox
	credentials CredentialStore
	logger      *slog.Logger
}

func NewVerificationHandler(mailbox CodeMailbox, credentials CredentialStore) *VerificationHandler {
	return &VerificationHandler{
		mailbox:     mailbox,
		credentials: credentials,
		logger:      slog.Default().With("component", "verification-api"),
	}
}

// Register mounts the SMS webhook behind webhookAuth and the code poll
// behind clientAuth. Polling consumes the code.
func (h *VerificationHandler) Register(rg *gin.RouterGroup, webhookAuth, clientAuth gin.HandlerFunc) {
	rg.POST("/sms", webhookAuth, h.ReceiveSMS)
	rg.GET("/code", clientAuth, h.GetCode)
}

// ReceiveSMS answers 200 for every parsable message so that SMS providers do
// not retry. The status string says what happened to it.
func (h *VerificationHandler) ReceiveSMS(c *gin.Context) {
	var msg SMSMessage

	if err := c.ShouldBindJSON(&msg); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse JSON body"})
		return
	}

	email := strings.TrimSpace(msg.Email)
	phone := strings.TrimSpace(msg.PhoneNumber)

	if strings.TrimSpace(msg.CodeText) == "" || (email == "" && phone == "") {
		h.logger.Warn("sms webhook received incomplete data")
		c.JSON(http.StatusBadRequest, gin.H{"error": "code_text and one of email or phone_number are required"})
		return
	}

	ctx := c.Request.Context()

	if email == "" {
		cred, err := h.credentials.GetByPhone(ctx, phone)

		if errors.Is(err, credential.ErrCredentialNotFound) {
			h.logger.Warn("sms received for unknown phone number")
			c.JSON(http.StatusOK, gin.H{"status": "received, user not found"})
			return
		}

		if err != nil {
			c.Error(err)
			h.logger.Error("failed to resolve phone number", "err", err)
			c.JSON(http.StatusOK, gin.H{"status": "received, failed to resolve user"})
			return
		}

		email = cred.Email
	}

	code, ok := verification.ExtractCode(msg.CodeText)
	if !ok {
		h.logger.Warn("no code found in sms", "identity", email)
		c.JSON(http.StatusOK, gin.H{"status": "received, no code found"})
		return
	}

	if err := h.mailbox.Deposit(ctx, email, code); err != nil {
		c.Error(err)
		h.logger.Error("failed to store verification code", "identity", email, "err", err)
		c.JSON(http.StatusOK, gin.H{"status": "received, failed to store code"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "received and processed"})
}

// GetCode takes the pending code for email, if any, in a single poll.
func (h *VerificationHandler) GetCode(c *gin.Context) {
	email := strings.TrimSpace(c.Query("email"))

	if email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "email query parameter is required"})
		return
	}

	code, ok := h.mailbox.Await(c.Request.Context(), email, 1, 0)
	if !ok {
		c.JSON(http.StatusOK, gin.H{"status": "not_available"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "available", "code": code})
}
