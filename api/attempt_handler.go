package api

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	bk "github.com/hanksha/tennis-booking-backend/booking"
)

type AttemptService interface {
	CreateAttempt(ctx context.Context, in bk.NewAttempt) (bk.Outcome, error)
	FindAttemptByID(ctx context.Context, id string) (bk.Attempt, error)
	FindAttemptsByOwner(ctx context.Context, owner string) ([]bk.Attempt, error)
	PendingJobs() []bk.Job
}

type AttemptHandler struct {
	service AttemptService
}

func NewAttemptHandler(service AttemptService) *AttemptHandler {
	return &AttemptHandler{service: service}
}

func (h *AttemptHandler) Register(rg *gin.RouterGroup) {
	rg.POST("", h.Create)
	rg.GET("", h.ListByOwner)
	rg.GET("/:id", h.GetByID)
}

func (h *AttemptHandler) RegisterJobs(rg *gin.RouterGroup) {
	rg.GET("", h.ListJobs)
}

func (h *AttemptHandler) Create(c *gin.Context) {
	var in bk.NewAttempt

	if err := c.ShouldBindJSON(&in); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "failed to parse JSON body",
		})
		return
	}

	outcome, err := h.service.CreateAttempt(c.Request.Context(), in)

	if err != nil {
		c.Error(err)

		switch {
		case errors.Is(err, bk.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, bk.ErrAttemptInProgress):
			c.JSON(http.StatusConflict, gin.H{"error": "attempt already in progress"})
		default:
			body := gin.H{"error": "failed to schedule attempt"}
			if outcome.Attempt.ID != "" {
				body["attempt"] = outcome.Attempt
			}
			c.JSON(http.StatusInternalServerError, body)
		}

		return
	}

	c.JSON(http.StatusCreated, outcome)
}

func (h *AttemptHandler) GetByID(c *gin.Context) {
	id := c.Param("id")
	attempt, err := h.service.FindAttemptByID(c.Request.Context(), id)

	if err != nil {
		c.Error(err)
		if errors.Is(err, bk.ErrAttemptNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "attempt not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "failed to fetch attempt",
		})
		return
	}

	c.IndentedJSON(http.StatusOK, attempt)
}

func (h *AttemptHandler) ListByOwner(c *gin.Context) {
	owner := strings.ToLower(strings.TrimSpace(c.Query("owner")))

	if owner == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "owner query parameter is required"})
		return
	}

	attempts, err := h.service.FindAttemptsByOwner(c.Request.Context(), owner)

	if err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "failed to get attempts",
		})
		return
	}

	c.IndentedJSON(http.StatusOK, attempts)
}

func (h *AttemptHandler) ListJobs(c *gin.Context) {
	c.IndentedJSON(http.StatusOK, h.service.PendingJobs())
}
