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

type userRoutes struct {
	us service.UserServiceI
}

func NewUserRoutes(handler *gin.RouterGroup, us service.UserServiceI, a *auth.JWTAuth) {
	r := &userRoutes{us: us}

	handler.GET("/leaderboard", r.Leaderboard)

	h := handler.Group("/users")
	h.Use(a.AuthMiddleware())
	{
		h.GET("/", r.AllUsers)
		h.GET("/:id", r.GetUserByID)
		h.PATCH("/:id", r.UpdateProfile)
		h.PUT("/:id/farm-profile", r.SaveFarmProfile)
	}
}

func (r *userRoutes) AllUsers(c *gin.Context) {
	users, err := r.us.AllUsers()
	if err != nil {
		logger.Logger().Error("failed to list users", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list users"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"users": users})
}

func (r *userRoutes) GetUserByID(c *gin.Context) {
	user, err := r.us.GetUserByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no user with the provided id"})
		return
	}

	c.JSON(http.StatusOK, user)
}

type UpdateProfileRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Location *string `json:"location"`
	Level    *string `json:"level"`
}

// UpdateProfile accepts the caller-editable subset of user fields.
// Progression counters are owned by the submission workflow and cannot
// be set here.
func (r *userRoutes) UpdateProfile(c *gin.Context) {
	log := logger.Logger()

	claims, ok := auth.SessionFromContext(c)
	if !ok || claims.UserID != c.Param("id") {
		c.JSON(http.StatusForbidden, gin.H{"error": "cannot edit another user's profile"})
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("failed to bind request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	patch := model.UserPatch{
		Name:     req.Name,
		Email:    req.Email,
		Location: req.Location,
		Level:    req.Level,
	}

	user, err := r.us.UpdateProfile(c.Param("id"), patch)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no user with the provided id"})
			return
		}
		log.Error("failed to update profile", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update profile"})
		return
	}

	c.JSON(http.StatusOK, user)
}

func (r *userRoutes) SaveFarmProfile(c *gin.Context) {
	log := logger.Logger()

	claims, ok := auth.SessionFromContext(c)
	if !ok || claims.UserID != c.Param("id") {
		c.JSON(http.StatusForbidden, gin.H{"error": "cannot edit another user's farm profile"})
		return
	}

	var profile model.FarmProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
		log.Error("failed to bind request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	user, err := r.us.SaveFarmProfile(c.Param("id"), profile)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "no user with the provided id"})
		case errors.Is(err, service.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			log.Error("failed to save farm profile", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save farm profile"})
		}
		return
	}

	c.JSON(http.StatusOK, user)
}

func (r *userRoutes) Leaderboard(c *gin.Context) {
	entries, err := r.us.Leaderboard()
	if err != nil {
		logger.Logger().Error("failed to build leaderboard", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build leaderboard"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"leaderboard": entries})
}
