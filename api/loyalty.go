package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ibomair/appcore/internal/session"
)

// LoyaltyHandler serves the signed-in member's profile. Its routes are
// mounted behind the JWT middleware.
type LoyaltyHandler struct {
	store session.UseCase
}

func NewLoyaltyHandler(store session.UseCase) *LoyaltyHandler {
	return &LoyaltyHandler{store: store}
}

func (h *LoyaltyHandler) Register(router *gin.RouterGroup) {
	router.GET("/", h.profile)
	router.GET("/transactions", h.transactions)
}

func (h *LoyaltyHandler) profile(c *gin.Context) {
	user, authenticated := h.store.Current()
	if !authenticated {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not signed in"})
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *LoyaltyHandler) transactions(c *gin.Context) {
	user, authenticated := h.store.Current()
	if !authenticated {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not signed in"})
		return
	}
	c.JSON(http.StatusOK, user.Transactions)
}
