// Package cycle generates the green team's staggered station grid. Unlike
// the blue team's rotation planner it does no constraint solving: every
// person walks the same fixed station cycle, offset by their slot index,
// so the output is fully determined by team size and calendar length.
package cycle

import (
	"fmt"

	"github.com/rmoralesj29-maker/Green-Blue-Team/pkg/models"
)

// stationCycle is the fixed pattern each person walks, one step per rotation.
var stationCycle = []models.Station{
	models.StationTicket,
	models.StationGreeter,
	models.StationMuseum,
	models.StationPlanetarium,
}

// Roster derives the green team slot ids G1..Gn.
func Roster(teamSize int) []string {
	roster := make([]string, 0, teamSize)
	for i := 1; i <= teamSize; i++ {
		roster = append(roster, fmt.Sprintf("G%d", i))
	}
	return roster
}

// Generate expands the staggered pattern across the calendar. Person i
// starts i steps into the cycle, so consecutive slots never share a
// station until the team outgrows the cycle length.
func Generate(teamSize int, calendar []models.Rotation) []models.RotationAssignment {
	roster := Roster(teamSize)
	assignments := make([]models.RotationAssignment, 0, len(calendar))

	for step, rot := range calendar {
		stations := make(map[models.Station][]string)
		for slot, person := range roster {
			st := stationCycle[(slot+step)%len(stationCycle)]
			stations[st] = append(stations[st], person)
		}
		assignments = append(assignments, models.RotationAssignment{
			RotationID: rot.ID,
			Stations:   stations,
		})
	}
	return assignments
}
