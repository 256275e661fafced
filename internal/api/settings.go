package api

import (
	"net/http"

	"agriquest/internal/model"
	"agriquest/internal/service"
	"agriquest/pkg/logger"
	"go.uber.org/zap"

	"github.com/gin-gonic/gin"
)

type settingsRoutes struct {
	ss service.SettingsServiceI
}

func NewSettingsRoutes(handler *gin.RouterGroup, ss service.SettingsServiceI) {
	r := &settingsRoutes{ss: ss}

	h := handler.Group("/settings")
	{
		h.GET("/language", r.GetLanguage)
		h.PUT("/language", r.SetLanguage)
	}
}

func (r *settingsRoutes) GetLanguage(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"language": r.ss.Language()})
}

type SetLanguageRequest struct {
	Language model.Language `json:"language"`
}

func (r *settingsRoutes) SetLanguage(c *gin.Context) {
	log := logger.Logger()

	var req SetLanguageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("failed to bind request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if err := r.ss.SetLanguage(req.Language); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported language"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"language": req.Language})
}
