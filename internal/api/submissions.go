package api

import (
	"errors"
	"net/http"

	"agriquest/internal/middleware"
	"agriquest/internal/model"
	"agriquest/internal/service"
	"agriquest/pkg/auth"
	"agriquest/pkg/logger"
	"go.uber.org/zap"

	"github.com/gin-gonic/gin"
)

type submissionRoutes struct {
	ss service.SubmissionServiceI
}

func NewSubmissionRoutes(handler *gin.RouterGroup, ss service.SubmissionServiceI, a *auth.JWTAuth) {
	r := &submissionRoutes{ss: ss}

	h := handler.Group("/submissions")
	h.Use(a.AuthMiddleware())
	{
		h.GET("/", r.ListSubmissions)
		h.POST("/", r.Submit)
		h.GET("/pending", middleware.RequireRoles(model.RoleAEO, model.RoleAdmin), r.PendingReview)
		h.POST("/:id/review", middleware.RequireRoles(model.RoleAEO, model.RoleAdmin), r.Review)
	}
}

// ListSubmissions returns the caller's own submissions. Reviewer roles
// may pass ?all=true for the full collection.
func (r *submissionRoutes) ListSubmissions(c *gin.Context) {
	claims, ok := auth.SessionFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var (
		subs []model.Submission
		err  error
	)
	if c.Query("all") == "true" && claims.Role.CanReview() {
		subs, err = r.ss.All()
	} else {
		subs, err = r.ss.ForUser(claims.UserID)
	}
	if err != nil {
		logger.Logger().Error("failed to list submissions", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list submissions"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"submissions": subs})
}

type SubmitRequest struct {
	QuestID     string            `json:"questId"`
	Photos      []string          `json:"photos"`
	Location    model.Coordinates `json:"location"`
	Description string            `json:"description"`
}

func (r *submissionRoutes) Submit(c *gin.Context) {
	log := logger.Logger()

	claims, ok := auth.SessionFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("failed to bind request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	sub, err := r.ss.Submit(claims.UserID, service.SubmitInput{
		QuestID:     req.QuestID,
		Photos:      req.Photos,
		Location:    req.Location,
		Description: req.Description,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrQuestNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "no quest with the provided id"})
		case errors.Is(err, service.ErrQuestNotActive):
			c.JSON(http.StatusConflict, gin.H{"error": "quest is not accepting submissions"})
		case errors.Is(err, service.ErrAlreadySubmitted):
			c.JSON(http.StatusConflict, gin.H{"error": "an active submission already exists for this quest"})
		default:
			log.Error("failed to add submission", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to add submission"})
		}
		return
	}

	c.JSON(http.StatusCreated, sub)
}

func (r *submissionRoutes) PendingReview(c *gin.Context) {
	subs, err := r.ss.PendingReview()
	if err != nil {
		logger.Logger().Error("failed to list pending submissions", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list pending submissions"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"submissions": subs})
}

type ReviewRequest struct {
	Approve  bool   `json:"approve"`
	Comments string `json:"comments"`
	Points   int    `json:"points"`
}

func (r *submissionRoutes) Review(c *gin.Context) {
	log := logger.Logger()

	claims, ok := auth.SessionFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("failed to bind request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	sub, err := r.ss.Review(c.Param("id"), claims.UserID, service.ReviewInput{
		Approve:  req.Approve,
		Comments: req.Comments,
		Points:   req.Points,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSubmissionNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "no submission with the provided id"})
		case errors.Is(err, service.ErrAlreadyReviewed):
			c.JSON(http.StatusConflict, gin.H{"error": "submission has already been reviewed"})
		default:
			log.Error("failed to review submission", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to review submission"})
		}
		return
	}

	c.JSON(http.StatusOK, sub)
}
