package rotation

import (
	"fmt"
	"time"

	"github.com/rmoralesj29-maker/Green-Blue-Team/pkg/models"
)

// DefaultCalendar returns the standard five-rotation day used when the
// caller does not supply one.
func DefaultCalendar() []models.Rotation {
	return []models.Rotation{
		{ID: 1, Start: "10:00", End: "11:00"},
		{ID: 2, Start: "11:00", End: "12:00"},
		{ID: 3, Start: "12:00", End: "13:00"},
		{ID: 4, Start: "13:00", End: "14:00"},
		{ID: 5, Start: "14:00", End: "15:00"},
	}
}

// Roster derives the stable slot ids B1..Bn for a team of the given size.
// Slot ids, not display names, are the identity that history keys on.
func Roster(teamSize int) []string {
	roster := make([]string, 0, teamSize)
	for i := 1; i <= teamSize; i++ {
		roster = append(roster, fmt.Sprintf("B%d", i))
	}
	return roster
}

// ParseClock parses an HH:mm wall-clock string. Inputs are validated
// before the planner runs, so parse errors are ignored here.
func ParseClock(s string) time.Time {
	t, _ := time.Parse("15:04", s)
	return t
}

// Overlaps checks if two HH:mm time ranges overlap. Touching endpoints do
// not count: a person whose exception ends exactly when a rotation starts
// is off shift for it.
func Overlaps(aStart, aEnd, bStart, bEnd string) bool {
	as, ae := ParseClock(aStart), ParseClock(aEnd)
	bs, be := ParseClock(bStart), ParseClock(bEnd)
	return as.Before(be) && bs.Before(ae)
}
