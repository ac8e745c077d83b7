package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ibomair/appcore/internal/bookingflow"
	"github.com/ibomair/appcore/internal/service/checkin"
)

type CheckinHandler struct {
	service checkin.CheckinUseCase
}

type checkinRequest struct {
	PNR          string   `json:"pnr"`
	LastName     string   `json:"last_name"`
	PassengerIDs []string `json:"passenger_ids"`
}

func NewCheckinHandler(service checkin.CheckinUseCase) *CheckinHandler {
	return &CheckinHandler{service: service}
}

func (h *CheckinHandler) Register(router *gin.RouterGroup) {
	router.POST("/availability", h.availability)
	router.POST("/", h.checkIn)
}

func (h *CheckinHandler) availability(c *gin.Context) {
	var req checkinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	booking, err := h.service.Available(c.Request.Context(), req.PNR, req.LastName)
	if err != nil {
		if errors.Is(err, bookingflow.ErrBookingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"pnr": booking.PNR, "check_in_available": booking.CheckInAvailable})
}

func (h *CheckinHandler) checkIn(c *gin.Context) {
	var req checkinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	booking, err := h.service.CheckIn(c.Request.Context(), req.PNR, req.LastName, req.PassengerIDs)
	if err != nil {
		switch {
		case errors.Is(err, bookingflow.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, checkin.ErrCheckInClosed), errors.Is(err, checkin.ErrAlreadyCheckedIn):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, booking)
}
