package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ibomair/appcore/internal/fixture"
)

// ContentHandler serves the static reference tables the home, explore and
// news screens render.
type ContentHandler struct{}

func NewContentHandler() *ContentHandler {
	return &ContentHandler{}
}

func (h *ContentHandler) Register(router *gin.RouterGroup) {
	router.GET("/airports", h.airports)
	router.GET("/destinations", h.destinations)
	router.GET("/news", h.news)
	router.GET("/advisories", h.advisories)
}

func (h *ContentHandler) airports(c *gin.Context) {
	c.JSON(http.StatusOK, fixture.Airports)
}

func (h *ContentHandler) destinations(c *gin.Context) {
	c.JSON(http.StatusOK, fixture.Destinations)
}

func (h *ContentHandler) news(c *gin.Context) {
	c.JSON(http.StatusOK, fixture.News)
}

func (h *ContentHandler) advisories(c *gin.Context) {
	c.JSON(http.StatusOK, fixture.Advisories)
}
