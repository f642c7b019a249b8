package rotation

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/rmoralesj29-maker/Green-Blue-Team/pkg/models"
	"github.com/stretchr/testify/require"
)

func singleRotation() []models.Rotation {
	return []models.Rotation{{ID: 1, Start: "10:00", End: "11:00"}}
}

func run(t *testing.T, input models.ScheduleInput, seed int64) (*Planner, []models.RotationAssignment) {
	t.Helper()
	p := NewPlanner(input, rand.New(rand.NewSource(seed)))
	return p, p.Run()
}

func bySeverity(notes []models.Notification, severity string) []models.Notification {
	var out []models.Notification
	for _, n := range notes {
		if n.Severity == severity {
			out = append(out, n)
		}
	}
	return out
}

// buckets holding real work for one rotation, pseudo-stations excluded
func workStations(asgn models.RotationAssignment) map[models.Station][]string {
	out := make(map[models.Station][]string)
	for _, st := range []models.Station{
		models.StationTicket, models.StationGreeter,
		models.StationPlanetarium, models.StationMuseum,
	} {
		out[st] = asgn.Stations[st]
	}
	return out
}

func TestSingleRotationFullRoster(t *testing.T) {
	p, assignments := run(t, models.ScheduleInput{
		TeamSize: 4,
		Calendar: singleRotation(),
	}, 42)

	require.Len(t, assignments, 1)
	stations := assignments[0].Stations

	require.Len(t, stations[models.StationTicket], 2)
	require.Len(t, stations[models.StationGreeter], 1)
	require.Len(t, stations[models.StationPlanetarium], 1)
	require.Empty(t, stations[models.StationMuseum])
	require.Empty(t, bySeverity(p.Notifications, models.SeverityCritical))
}

func TestShortRosterReportsShortages(t *testing.T) {
	p, assignments := run(t, models.ScheduleInput{
		TeamSize: 2,
		Calendar: singleRotation(),
	}, 42)

	// with two people the first ticket slot and the greeter consume the
	// whole pool, leaving the planetarium and the second ticket slot short
	criticals := bySeverity(p.Notifications, models.SeverityCritical)
	require.Len(t, criticals, 2)
	for _, n := range criticals {
		require.Equal(t, 1, n.RotationID)
		require.Contains(t, n.Message, "shortage")
	}

	// nobody is dropped: both people land in a real station
	placed := 0
	for _, people := range workStations(assignments[0]) {
		placed += len(people)
	}
	require.Equal(t, 2, placed)
}

func TestEveryPersonInExactlyOneBucket(t *testing.T) {
	p, assignments := run(t, models.ScheduleInput{TeamSize: 6}, 7)

	require.Len(t, assignments, len(DefaultCalendar()))
	for _, asgn := range assignments {
		counts := make(map[string]int)
		for _, people := range asgn.Stations {
			for _, person := range people {
				counts[person]++
			}
		}
		for _, person := range p.Roster {
			require.Equal(t, 1, counts[person], "rotation %d person %s", asgn.RotationID, person)
		}
	}

	for _, person := range p.Roster {
		require.Len(t, p.History[person], len(DefaultCalendar()))
	}
}

func TestForcedAssignmentAlwaysWins(t *testing.T) {
	input := models.ScheduleInput{
		TeamSize: 6,
		Forces: []models.ForcedAssignment{
			{RotationID: 2, Station: models.StationGreeter, Person: "B3"},
		},
	}

	for _, seed := range []int64{1, 2, 99} {
		_, assignments := run(t, input, seed)
		require.Contains(t, assignments[1].Stations[models.StationGreeter], "B3",
			"seed %d", seed)
	}
}

func TestForcedAssignmentIgnoredWhenOffShift(t *testing.T) {
	_, assignments := run(t, models.ScheduleInput{
		TeamSize: 4,
		Calendar: singleRotation(),
		Exceptions: []models.ShiftException{
			{Person: "B1", Start: "13:00", End: "15:00"},
		},
		Forces: []models.ForcedAssignment{
			{RotationID: 1, Station: models.StationTicket, Person: "B1"},
		},
	}, 42)

	stations := assignments[0].Stations
	require.Contains(t, stations[models.StationOffShift], "B1")
	require.NotContains(t, stations[models.StationTicket], "B1")
}

func TestRepeatedPinEmitsWarning(t *testing.T) {
	p, assignments := run(t, models.ScheduleInput{
		TeamSize: 4,
		Calendar: []models.Rotation{
			{ID: 1, Start: "10:00", End: "11:00"},
			{ID: 2, Start: "11:00", End: "12:00"},
		},
		Forces: []models.ForcedAssignment{
			{RotationID: 1, Station: models.StationTicket, Person: "B1"},
			{RotationID: 2, Station: models.StationTicket, Person: "B1"},
		},
	}, 42)

	// the pin is applied despite the rule break
	require.Contains(t, assignments[1].Stations[models.StationTicket], "B1")

	var pinWarnings []models.Notification
	for _, n := range bySeverity(p.Notifications, models.SeverityWarning) {
		if strings.Contains(n.Message, "operator pin") {
			pinWarnings = append(pinWarnings, n)
		}
	}
	require.Len(t, pinWarnings, 1)
	require.Equal(t, 2, pinWarnings[0].RotationID)
	require.Contains(t, pinWarnings[0].Message, "back-to-back")
}

func TestPinOverridesSideTask(t *testing.T) {
	p, assignments := run(t, models.ScheduleInput{
		TeamSize: 4,
		Calendar: singleRotation(),
		SideTasks: []models.SideTaskRule{
			{RotationID: 1, Person: "B2"},
		},
		Forces: []models.ForcedAssignment{
			{RotationID: 1, Station: models.StationGreeter, Person: "B2"},
		},
	}, 42)

	stations := assignments[0].Stations
	require.Contains(t, stations[models.StationGreeter], "B2")
	require.NotContains(t, stations[models.StationSideTask], "B2")
	require.Equal(t, []models.Station{models.StationGreeter}, p.History["B2"])
}

func TestSideTaskRecordedInHistory(t *testing.T) {
	p, assignments := run(t, models.ScheduleInput{
		TeamSize: 5,
		Calendar: singleRotation(),
		SideTasks: []models.SideTaskRule{
			{RotationID: 1, Person: "B4"},
		},
	}, 42)

	require.Contains(t, assignments[0].Stations[models.StationSideTask], "B4")
	require.Equal(t, []models.Station{models.StationSideTask}, p.History["B4"])

	infos := bySeverity(p.Notifications, models.SeverityInfo)
	require.Len(t, infos, 1)
	require.Contains(t, infos[0].Message, "side task")
}

func TestPlanetariumAtMostOncePerDay(t *testing.T) {
	for _, seed := range []int64{1, 17, 300} {
		p, _ := run(t, models.ScheduleInput{TeamSize: 8}, seed)
		for _, person := range p.Roster {
			require.LessOrEqual(t, p.timesDone(person, models.StationPlanetarium), 1,
				"seed %d person %s", seed, person)
		}
	}
}

func TestSameSeedSameAssignment(t *testing.T) {
	input := models.ScheduleInput{
		TeamSize: 6,
		Exceptions: []models.ShiftException{
			{Person: "B5", Start: "10:00", End: "12:30"},
		},
		SideTasks: []models.SideTaskRule{
			{RotationID: 2, Person: "B1"},
		},
	}

	_, first := run(t, input, 1234)
	_, second := run(t, input, 1234)
	require.Equal(t, first, second)
}

func TestShiftExceptionWindowBoundary(t *testing.T) {
	// exception ends exactly at rotation 3's start, so B1 is present for
	// rotations 1-2 and off shift from rotation 3 on
	_, assignments := run(t, models.ScheduleInput{
		TeamSize: 4,
		Exceptions: []models.ShiftException{
			{Person: "B1", Start: "10:00", End: "12:00"},
		},
	}, 42)

	for _, asgn := range assignments {
		off := contains(asgn.Stations[models.StationOffShift], "B1")
		if asgn.RotationID <= 2 {
			require.False(t, off, "rotation %d", asgn.RotationID)
		} else {
			require.True(t, off, "rotation %d", asgn.RotationID)
		}
	}
}

func TestPartialOverlapCountsAsPresent(t *testing.T) {
	_, assignments := run(t, models.ScheduleInput{
		TeamSize: 4,
		Calendar: singleRotation(),
		Exceptions: []models.ShiftException{
			{Person: "B1", Start: "10:30", End: "14:00"},
		},
	}, 42)

	require.NotContains(t, assignments[0].Stations[models.StationOffShift], "B1")
}

func TestExceptionNotificationEmittedOncePerRun(t *testing.T) {
	p, _ := run(t, models.ScheduleInput{
		TeamSize: 4,
		Exceptions: []models.ShiftException{
			{Person: "B2", Start: "11:00", End: "15:00"},
		},
	}, 42)

	count := 0
	for _, n := range bySeverity(p.Notifications, models.SeverityInfo) {
		if n.RotationID == 0 {
			count++
		}
	}
	require.Equal(t, 1, count)
}

func TestEmptyRoster(t *testing.T) {
	p, assignments := run(t, models.ScheduleInput{TeamSize: 0}, 42)

	require.Len(t, assignments, len(DefaultCalendar()))
	for _, asgn := range assignments {
		for st, people := range asgn.Stations {
			require.Empty(t, people, "station %s", st)
		}
	}
	require.Empty(t, p.Notifications)
}
