package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ibomair/appcore/config"
	"github.com/ibomair/appcore/internal/auth"
	"github.com/ibomair/appcore/internal/session"
)

type AuthHandler struct {
	store   session.UseCase
	authCfg config.AuthConfig
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type sessionResponse struct {
	Authenticated bool        `json:"authenticated"`
	Loading       bool        `json:"loading"`
	User          interface{} `json:"user,omitempty"`
	Token         string      `json:"token,omitempty"`
}

func NewAuthHandler(store session.UseCase, authCfg config.AuthConfig) *AuthHandler {
	return &AuthHandler{store: store, authCfg: authCfg}
}

func (h *AuthHandler) Register(router *gin.RouterGroup) {
	router.POST("/login", h.login)
	router.POST("/register", h.register)
	router.POST("/logout", h.logout)
	router.GET("/session", h.session)
}

func (h *AuthHandler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email is required"})
		return
	}

	user, err := h.store.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := auth.GenerateToken(user.MemberID, user.Email, h.authCfg)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, sessionResponse{Authenticated: true, User: user, Token: token})
}

func (h *AuthHandler) register(c *gin.Context) {
	var req session.RegisterInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email is required"})
		return
	}

	user, err := h.store.Register(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := auth.GenerateToken(user.MemberID, user.Email, h.authCfg)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, sessionResponse{Authenticated: true, User: user, Token: token})
}

func (h *AuthHandler) logout(c *gin.Context) {
	if err := h.store.Logout(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *AuthHandler) session(c *gin.Context) {
	user, authenticated := h.store.Current()
	resp := sessionResponse{Authenticated: authenticated, Loading: h.store.Loading()}
	if authenticated {
		resp.User = user
	}
	c.JSON(http.StatusOK, resp)
}
