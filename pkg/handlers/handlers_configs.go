package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rmoralesj29-maker/Green-Blue-Team/pkg/database"
	"github.com/rmoralesj29-maker/Green-Blue-Team/pkg/models"
	"gorm.io/gorm/clause"
)

// SaveConfig stores a named day configuration so the operator's input
// lists survive across sessions. Saving an existing name overwrites it.
func (h *Handler) SaveConfig(c *gin.Context) {
	var req struct {
		Name  string               `json:"name"`
		Input models.ScheduleInput `json:"input"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}

	payload, err := json.Marshal(req.Input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Could not encode input"})
		return
	}

	cfg := database.DayConfig{Name: req.Name, Payload: string(payload)}
	err = h.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
	}).Create(&cfg).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not save config"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": cfg.ID, "name": cfg.Name})
}

// ListConfigs returns all saved configurations without their payloads
func (h *Handler) ListConfigs(c *gin.Context) {
	var configs []database.DayConfig
	h.DB.Select("id", "name", "created_at", "updated_at").Order("updated_at desc").Find(&configs)
	c.JSON(http.StatusOK, gin.H{"configs": configs})
}

// GetConfig returns one saved configuration with its decoded input
func (h *Handler) GetConfig(c *gin.Context) {
	id := c.Param("id")
	var cfg database.DayConfig
	if err := h.DB.First(&cfg, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Config not found"})
		return
	}

	var input models.ScheduleInput
	if err := json.Unmarshal([]byte(cfg.Payload), &input); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Stored payload is corrupt"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": cfg.ID, "name": cfg.Name, "input": input})
}

// DeleteConfig removes a saved configuration
func (h *Handler) DeleteConfig(c *gin.Context) {
	id := c.Param("id")
	if err := h.DB.Delete(&database.DayConfig{}, id).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not delete config"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Config deleted"})
}
