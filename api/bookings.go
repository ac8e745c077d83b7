package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ibomair/appcore/internal/bookingflow"
	"github.com/ibomair/appcore/internal/service/payment"
)

type BookingHandler struct {
	flow    bookingflow.UseCase
	payment payment.PaymentUseCase
}

type retrieveBookingRequest struct {
	PNR      string `json:"pnr"`
	LastName string `json:"last_name"`
}

func NewBookingHandler(flow bookingflow.UseCase, paymentSvc payment.PaymentUseCase) *BookingHandler {
	return &BookingHandler{flow: flow, payment: paymentSvc}
}

func (h *BookingHandler) Register(router *gin.RouterGroup) {
	router.POST("/", h.create)
	router.GET("/", h.list)
	router.GET("/current", h.current)
	router.POST("/retrieve", h.retrieve)
	router.DELETE("/selection", h.clearSelection)
}

// create runs the simulated payment; the booking exists only if the whole
// pipeline succeeded.
func (h *BookingHandler) create(c *gin.Context) {
	var input payment.PaymentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	booking, err := h.payment.Pay(c.Request.Context(), input)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, bookingflow.ErrDuplicateBooking) {
			status = http.StatusConflict
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, booking)
}

func (h *BookingHandler) list(c *gin.Context) {
	c.JSON(http.StatusOK, h.flow.Snapshot().Bookings)
}

func (h *BookingHandler) current(c *gin.Context) {
	snap := h.flow.Snapshot()
	if snap.CurrentBooking == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no current booking"})
		return
	}
	c.JSON(http.StatusOK, snap.CurrentBooking)
}

func (h *BookingHandler) retrieve(c *gin.Context) {
	var req retrieveBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.PNR == "" || req.LastName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "pnr and last_name are required"})
		return
	}

	booking, err := h.flow.LoadBooking(c.Request.Context(), req.PNR, req.LastName)
	if err != nil {
		if errors.Is(err, bookingflow.ErrBookingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, booking)
}

func (h *BookingHandler) clearSelection(c *gin.Context) {
	h.flow.ClearSelection()
	c.Status(http.StatusNoContent)
}
