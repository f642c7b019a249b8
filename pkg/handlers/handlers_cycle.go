package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rmoralesj29-maker/Green-Blue-Team/pkg/cycle"
	"github.com/rmoralesj29-maker/Green-Blue-Team/pkg/models"
	"github.com/rmoralesj29-maker/Green-Blue-Team/pkg/rotation"
)

// CycleJSON returns the green team's staggered grid for a calendar.
// No solving, no seed: the same request always yields the same grid.
func (h *Handler) CycleJSON(c *gin.Context) {
	var input struct {
		TeamSize int               `json:"team_size"`
		Calendar []models.Rotation `json:"calendar,omitempty"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	calendar := input.Calendar
	if len(calendar) == 0 {
		calendar = rotation.DefaultCalendar()
	}

	assignments := cycle.Generate(input.TeamSize, calendar)

	h.RecordUsage(c, len(assignments), input.TeamSize)

	c.JSON(http.StatusOK, gin.H{"assignments": assignments})
}
