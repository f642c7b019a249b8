package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rmoralesj29-maker/Green-Blue-Team/pkg/models"
	"github.com/rmoralesj29-maker/Green-Blue-Team/pkg/rotation"
)

var validStations = map[models.Station]bool{
	models.StationTicket:      true,
	models.StationGreeter:     true,
	models.StationPlanetarium: true,
	models.StationMuseum:      true,
}

// ValidateInput checks a ScheduleInput structurally before it is run or
// saved. The planner itself assumes well-formed input, so this is where
// malformed times, inverted windows and dangling references get caught.
func (h *Handler) ValidateInput(c *gin.Context) {
	var input models.ScheduleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"valid": false,
			"error": err.Error(),
		})
		return
	}

	if err := validateInput(input); err != nil {
		c.JSON(http.StatusOK, gin.H{"valid": false, "error": err.Error()})
		return
	}

	calendar := input.Calendar
	if len(calendar) == 0 {
		calendar = rotation.DefaultCalendar()
	}

	c.JSON(http.StatusOK, gin.H{
		"valid": true,
		"stats": gin.H{
			"team_size":      input.TeamSize,
			"rotation_count": len(calendar),
			"pin_count":      len(input.Forces),
		},
	})
}

func validateInput(input models.ScheduleInput) error {
	if input.TeamSize < 0 {
		return fmt.Errorf("team_size cannot be negative")
	}

	calendar := input.Calendar
	if len(calendar) == 0 {
		calendar = rotation.DefaultCalendar()
	}

	rotationIDs := make(map[int]bool)
	for _, rot := range calendar {
		if rotationIDs[rot.ID] {
			return fmt.Errorf("duplicate rotation id: %d", rot.ID)
		}
		rotationIDs[rot.ID] = true
		if err := validateWindow(rot.Start, rot.End); err != nil {
			return fmt.Errorf("rotation %d: %w", rot.ID, err)
		}
	}

	roster := make(map[string]bool)
	for _, person := range rotation.Roster(input.TeamSize) {
		roster[person] = true
	}

	seen := make(map[string]bool)
	for _, exc := range input.Exceptions {
		if !roster[exc.Person] {
			return fmt.Errorf("shift exception for unknown slot: %s", exc.Person)
		}
		if seen[exc.Person] {
			return fmt.Errorf("multiple shift exceptions for %s", exc.Person)
		}
		seen[exc.Person] = true
		if err := validateWindow(exc.Start, exc.End); err != nil {
			return fmt.Errorf("shift exception for %s: %w", exc.Person, err)
		}
	}

	for _, rule := range input.SideTasks {
		if !roster[rule.Person] {
			return fmt.Errorf("side task for unknown slot: %s", rule.Person)
		}
		if !rotationIDs[rule.RotationID] {
			return fmt.Errorf("side task for unknown rotation: %d", rule.RotationID)
		}
	}

	for _, force := range input.Forces {
		if !roster[force.Person] {
			return fmt.Errorf("pin for unknown slot: %s", force.Person)
		}
		if !rotationIDs[force.RotationID] {
			return fmt.Errorf("pin for unknown rotation: %d", force.RotationID)
		}
		if !validStations[force.Station] {
			return fmt.Errorf("pin to unknown station: %s", force.Station)
		}
	}

	return nil
}

func validateWindow(start, end string) error {
	s, err := time.Parse("15:04", start)
	if err != nil {
		return fmt.Errorf("bad start time %q", start)
	}
	e, err := time.Parse("15:04", end)
	if err != nil {
		return fmt.Errorf("bad end time %q", end)
	}
	if !s.Before(e) {
		return fmt.Errorf("window %s-%s is empty or inverted", start, end)
	}
	return nil
}
