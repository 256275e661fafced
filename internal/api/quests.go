package api

import (
	"errors"
	"net/http"

	"agriquest/internal/middleware"
	"agriquest/internal/model"
	"agriquest/internal/repository"
	"agriquest/internal/service"
	"agriquest/pkg/auth"
	"agriquest/pkg/logger"
	"go.uber.org/zap"

	"github.com/gin-gonic/gin"
)

type questRoutes struct {
	qs service.QuestServiceI
	us service.UserServiceI
	ss service.SettingsServiceI
}

func NewQuestRoutes(handler *gin.RouterGroup, qs service.QuestServiceI, us service.UserServiceI,
	ss service.SettingsServiceI, a *auth.JWTAuth) {
	r := &questRoutes{qs: qs, us: us, ss: ss}

	h := handler.Group("/quests")
	h.Use(a.AuthMiddleware())
	{
		h.GET("/", r.ListQuests)
		h.GET("/:id", r.GetQuestByID)
		h.POST("/", middleware.RequireRoles(model.RoleAdmin, model.RoleAEO, model.RoleNGO), r.CreateQuest)
		h.PATCH("/:id", middleware.RequireRoles(model.RoleAdmin, model.RoleAEO), r.UpdateQuest)
		h.DELETE("/:id", middleware.RequireRoles(model.RoleAdmin), r.DeleteQuest)
		h.POST("/:id/moderate", middleware.RequireRoles(model.RoleAdmin), r.ModerateQuest)
	}
}

// QuestView is a quest with its title and description resolved to the
// requested language.
type QuestView struct {
	model.Quest
	LocalizedTitle       string `json:"localizedTitle"`
	LocalizedDescription string `json:"localizedDescription"`
}

func (r *questRoutes) localize(quests []model.Quest, lang model.Language) []QuestView {
	if !lang.Valid() {
		lang = r.ss.Language()
	}

	views := make([]QuestView, len(quests))
	for i, q := range quests {
		views[i] = QuestView{
			Quest:                q,
			LocalizedTitle:       q.Title.Resolve(lang),
			LocalizedDescription: q.Description.Resolve(lang),
		}
	}
	return views
}

func (r *questRoutes) ListQuests(c *gin.Context) {
	status := model.QuestStatus(c.Query("status"))
	if status != "" && !status.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown status filter"})
		return
	}

	quests, err := r.qs.Quests(status)
	if err != nil {
		logger.Logger().Error("failed to list quests", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list quests"})
		return
	}

	lang := model.Language(c.Query("lang"))
	c.JSON(http.StatusOK, gin.H{"quests": r.localize(quests, lang)})
}

func (r *questRoutes) GetQuestByID(c *gin.Context) {
	quest, err := r.qs.GetQuestByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no quest with the provided id"})
		return
	}

	views := r.localize([]model.Quest{*quest}, model.Language(c.Query("lang")))
	c.JSON(http.StatusOK, views[0])
}

type CreateQuestRequest struct {
	Title        model.LocalizedText   `json:"title"`
	Description  model.LocalizedText   `json:"description"`
	Points       int                   `json:"points"`
	Difficulty   model.QuestDifficulty `json:"difficulty"`
	Category     string                `json:"category"`
	Requirements []string              `json:"requirements"`
	Deadline     string                `json:"deadline"`
}

func (r *questRoutes) CreateQuest(c *gin.Context) {
	log := logger.Logger()

	claims, ok := auth.SessionFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req CreateQuestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("failed to bind request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	// Demo sessions are not in the roster, so fall back to the claims.
	creator, err := r.us.GetUserByID(claims.UserID)
	if err != nil {
		creator = &model.User{ID: claims.UserID, Role: claims.Role}
	}

	quest, err := r.qs.Create(creator, service.CreateQuestInput{
		Title:        req.Title,
		Description:  req.Description,
		Points:       req.Points,
		Difficulty:   req.Difficulty,
		Category:     req.Category,
		Requirements: req.Requirements,
		Deadline:     req.Deadline,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPermissionDenied):
			c.JSON(http.StatusForbidden, gin.H{"error": "role is not allowed to create quests"})
		case errors.Is(err, service.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			log.Error("failed to create quest", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create quest"})
		}
		return
	}

	c.JSON(http.StatusCreated, quest)
}

type UpdateQuestRequest struct {
	Title        *model.LocalizedText   `json:"title"`
	Description  *model.LocalizedText   `json:"description"`
	Points       *int                   `json:"points"`
	Difficulty   *model.QuestDifficulty `json:"difficulty"`
	Category     *string                `json:"category"`
	Requirements *[]string              `json:"requirements"`
	Deadline     *string                `json:"deadline"`
	Status       *model.QuestStatus     `json:"status"`
}

func (r *questRoutes) UpdateQuest(c *gin.Context) {
	log := logger.Logger()

	var req UpdateQuestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("failed to bind request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if req.Status != nil && !req.Status.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown quest status"})
		return
	}

	quest, err := r.qs.Update(c.Param("id"), model.QuestPatch{
		Title:        req.Title,
		Description:  req.Description,
		Points:       req.Points,
		Difficulty:   req.Difficulty,
		Category:     req.Category,
		Requirements: req.Requirements,
		Deadline:     req.Deadline,
		Status:       req.Status,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrQuestNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "no quest with the provided id"})
		case errors.Is(err, repository.ErrInvalidTransition):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			log.Error("failed to update quest", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update quest"})
		}
		return
	}

	c.JSON(http.StatusOK, quest)
}

func (r *questRoutes) DeleteQuest(c *gin.Context) {
	if err := r.qs.Delete(c.Param("id")); err != nil {
		logger.Logger().Error("failed to delete quest", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete quest"})
		return
	}

	c.Status(http.StatusNoContent)
}

type ModerateQuestRequest struct {
	Approve bool `json:"approve"`
}

func (r *questRoutes) ModerateQuest(c *gin.Context) {
	log := logger.Logger()

	var req ModerateQuestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("failed to bind request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	quest, err := r.qs.Moderate(c.Param("id"), req.Approve)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrQuestNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "no quest with the provided id"})
		case errors.Is(err, repository.ErrInvalidTransition):
			c.JSON(http.StatusConflict, gin.H{"error": "quest is not awaiting approval"})
		default:
			log.Error("failed to moderate quest", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to moderate quest"})
		}
		return
	}

	c.JSON(http.StatusOK, quest)
}
