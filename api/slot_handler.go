package api

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hanksha/tennis-booking-backend/court"
)

type SlotProber interface {
	Probe(ctx context.Context, court string, date time.Time) ([]string, error)
}

type CourtLister interface {
	ListCourts(ctx context.Context) []court.Court
}

type SlotHandler struct {
	prober   SlotProber
	courts   CourtLister
	location *time.Location
}

func NewSlotHandler(prober SlotProber, courts CourtLister, location *time.Location) *SlotHandler {
	if location == nil {
		location = time.UTC
	}
	return &SlotHandler{prober: prober, courts: courts, location: location}
}

func (h *SlotHandler) RegisterSlots(rg *gin.RouterGroup) {
	rg.GET("", h.GetSlots)
}

func (h *SlotHandler) RegisterCourts(rg *gin.RouterGroup) {
	rg.GET("", h.ListCourts)
}

// GetSlots lists the open start times for a court on a date. An empty list
// means either no slots or a page that could not be read.
func (h *SlotHandler) GetSlots(c *gin.Context) {
	courtName := strings.TrimSpace(c.Query("court"))

	if courtName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "court query parameter is required"})
		return
	}

	date, err := time.ParseInLocation(time.DateOnly, c.Query("date"), h.location)

	if err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse date"})
		return
	}

	slots, err := h.prober.Probe(c.Request.Context(), courtName, date)

	if err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to probe slots"})
		return
	}

	c.IndentedJSON(http.StatusOK, gin.H{
		"court": courtName,
		"date":  date.Format(time.DateOnly),
		"slots": slots,
	})
}

func (h *SlotHandler) ListCourts(c *gin.Context) {
	c.IndentedJSON(http.StatusOK, h.courts.ListCourts(c.Request.Context()))
}
