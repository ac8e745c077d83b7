package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ibomair/appcore/internal/bookingflow"
	"github.com/ibomair/appcore/internal/domain"
	"github.com/ibomair/appcore/internal/service/search"
)

type FlightHandler struct {
	service search.SearchUseCase
	flow    bookingflow.UseCase
}

type selectFlightRequest struct {
	Flight   domain.Flight `json:"flight"`
	IsReturn bool          `json:"is_return"`
}

type selectFareRequest struct {
	ID       string `json:"id"`
	Currency string `json:"currency"`
}

func NewFlightHandler(service search.SearchUseCase, flow bookingflow.UseCase) *FlightHandler {
	return &FlightHandler{service: service, flow: flow}
}

func (h *FlightHandler) Register(router *gin.RouterGroup) {
	router.POST("/search", h.search)
	router.POST("/select", h.selectFlight)
	router.GET("/:number/status", h.status)
	router.GET("/fares", h.fares)
	router.POST("/fares/select", h.selectFare)
}

// search returns matching flights and records the params in the booking
// flow (discarding any stale selection). A rejected search leaves the
// flow untouched, so the params are recorded only after success.
func (h *FlightHandler) search(c *gin.Context) {
	var params domain.SearchParams
	if err := c.ShouldBindJSON(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	flights, err := h.service.Search(c.Request.Context(), params)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, search.ErrUnknownAirport) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	h.flow.SetSearchParams(params)
	c.JSON(http.StatusOK, flights)
}

func (h *FlightHandler) selectFlight(c *gin.Context) {
	var req selectFlightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.flow.SelectFlight(req.Flight, req.IsReturn)
	c.Status(http.StatusNoContent)
}

func (h *FlightHandler) status(c *gin.Context) {
	number := c.Param("number")
	day := time.Now()
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date"})
			return
		}
		day = parsed
	}

	flight, err := h.service.Status(c.Request.Context(), number, day)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, flight)
}

func (h *FlightHandler) fares(c *gin.Context) {
	currency := c.DefaultQuery("currency", "NGN")
	fares, err := h.service.Fares(c.Request.Context(), currency)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, fares)
}

func (h *FlightHandler) selectFare(c *gin.Context) {
	var req selectFareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Currency == "" {
		req.Currency = "NGN"
	}

	fare, err := h.service.FareByID(c.Request.Context(), req.ID, req.Currency)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.flow.SelectFare(*fare); err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, fare)
}
