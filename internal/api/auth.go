package api

import (
	"errors"
	"net/http"

	"agriquest/internal/model"
	"agriquest/internal/service"
	"agriquest/pkg/auth"
	"agriquest/pkg/logger"
	"go.uber.org/zap"

	"github.com/gin-gonic/gin"
)

type authRoutes struct {
	us service.UserServiceI
	a  *auth.JWTAuth
}

func NewAuthRoutes(handler *gin.RouterGroup, us service.UserServiceI, a *auth.JWTAuth) {
	r := &authRoutes{us: us, a: a}
	h := handler.Group("/auth")
	{
		h.POST("/demo-login", r.DemoLogin)
		h.POST("/register", r.Register)
	}

	protected := handler.Group("/auth")
	protected.Use(a.AuthMiddleware())
	{
		protected.POST("/logout", r.Logout)
		protected.GET("/me", r.Me)
	}
}

type DemoLoginRequest struct {
	Role model.Role `json:"role"`
}

type SessionResponse struct {
	Token string     `json:"token"`
	User  model.User `json:"user"`
}

func (r *authRoutes) DemoLogin(c *gin.Context) {
	log := logger.Logger()

	var req DemoLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("failed to bind request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	user, err := r.us.DemoLogin(req.Role)
	if err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.Error("failed to log in demo user", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to log in"})
		return
	}

	token, err := r.a.GenerateToken(user)
	if err != nil {
		log.Error("failed to issue session token", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to log in"})
		return
	}

	c.JSON(http.StatusOK, SessionResponse{Token: token, User: *user})
}

type RegisterRequest struct {
	Name     string     `json:"name"`
	Email    string     `json:"email"`
	Role     model.Role `json:"role"`
	Location string     `json:"location"`
}

func (r *authRoutes) Register(c *gin.Context) {
	log := logger.Logger()

	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("failed to bind request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	user, err := r.us.Register(service.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Role:     req.Role,
		Location: req.Location,
	})
	if err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.Error("failed to register user", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to register user"})
		return
	}

	token, err := r.a.GenerateToken(user)
	if err != nil {
		log.Error("failed to issue session token", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to register user"})
		return
	}

	c.JSON(http.StatusCreated, SessionResponse{Token: token, User: *user})
}

func (r *authRoutes) Logout(c *gin.Context) {
	log := logger.Logger()

	if err := r.us.Logout(); err != nil {
		log.Error("failed to log out", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to log out"})
		return
	}

	c.Status(http.StatusNoContent)
}

func (r *authRoutes) Me(c *gin.Context) {
	user, err := r.us.CurrentUser()
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no active session"})
		return
	}

	c.JSON(http.StatusOK, user)
}
