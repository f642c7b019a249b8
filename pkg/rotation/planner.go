package rotation

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/rmoralesj29-maker/Green-Blue-Team/pkg/models"
)

// Planner handles the logic of assigning the team to stations across the
// day's rotation calendar. Each run builds a fresh Planner; history and
// notifications accumulate on it and are returned with the result, so there
// is no shared state between runs.
type Planner struct {
	Calendar      []models.Rotation
	Roster        []string
	Exceptions    []models.ShiftException
	SideTasks     []models.SideTaskRule
	Forces        []models.ForcedAssignment
	History       map[string][]models.Station
	Notifications []models.Notification

	rng *rand.Rand

	// appended tracks who already got a history entry this rotation, so a
	// pin that re-enters after availability resolution cannot double-append.
	appended map[string]bool
}

// NewPlanner creates a planner for one day's input. The random source is
// injected so a reshuffle is a fresh seed and a replay is a fixed one; a
// nil rng falls back to wall-clock entropy.
func NewPlanner(input models.ScheduleInput, rng *rand.Rand) *Planner {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	calendar := input.Calendar
	if len(calendar) == 0 {
		calendar = DefaultCalendar()
	}
	return &Planner{
		Calendar:   calendar,
		Roster:     Roster(input.TeamSize),
		Exceptions: input.Exceptions,
		SideTasks:  input.SideTasks,
		Forces:     input.Forces,
		History:    make(map[string][]models.Station),
		rng:        rng,
	}
}

// Run processes the calendar strictly in order and returns one assignment
// per rotation. Later rotations score against history written by earlier
// ones, so the loop must not be reordered.
func (p *Planner) Run() []models.RotationAssignment {
	for _, exc := range p.Exceptions {
		p.notify(models.SeverityInfo, 0, "shift exception: %s is present %s-%s", exc.Person, exc.Start, exc.End)
	}

	assignments := make([]models.RotationAssignment, 0, len(p.Calendar))
	for _, rot := range p.Calendar {
		p.appended = make(map[string]bool)
		buckets := newBuckets()

		pool := p.resolveAvailability(rot, buckets)
		pool = p.applyForces(rot, buckets, pool)
		p.fillRotation(rot, buckets, pool)

		assignments = append(assignments, models.RotationAssignment{
			RotationID: rot.ID,
			Stations:   buckets,
		})
	}
	return assignments
}

func newBuckets() map[models.Station][]string {
	return map[models.Station][]string{
		models.StationTicket:      {},
		models.StationGreeter:     {},
		models.StationPlanetarium: {},
		models.StationMuseum:      {},
		models.StationSideTask:    {},
		models.StationOffShift:    {},
	}
}

// resolveAvailability sorts every roster member into OffShift, SideTask or
// the available pool for one rotation. Presence is binary: any overlap with
// the rotation window, however partial, counts as present for all of it.
func (p *Planner) resolveAvailability(rot models.Rotation, buckets map[models.Station][]string) []string {
	pool := make([]string, 0, len(p.Roster))
	for _, person := range p.Roster {
		if exc, ok := p.exceptionFor(person); ok && !Overlaps(exc.Start, exc.End, rot.Start, rot.End) {
			buckets[models.StationOffShift] = append(buckets[models.StationOffShift], person)
			p.recordHistory(person, models.StationOffShift)
			continue
		}
		if p.sideTasked(rot.ID, person) {
			buckets[models.StationSideTask] = append(buckets[models.StationSideTask], person)
			p.recordHistory(person, models.StationSideTask)
			p.notify(models.SeverityInfo, rot.ID, "%s is on a side task this rotation", person)
			continue
		}
		pool = append(pool, person)
	}
	return pool
}

// applyForces places operator pins before any scoring happens. Pins are
// never rejected: a pin that bends a rule gets a warning and is applied
// anyway. The only pin with no effect is one for a person who is off shift.
func (p *Planner) applyForces(rot models.Rotation, buckets map[models.Station][]string, pool []string) []string {
	for _, force := range p.Forces {
		if force.RotationID != rot.ID {
			continue
		}
		if contains(buckets[models.StationOffShift], force.Person) {
			continue
		}
		if contains(buckets[force.Station], force.Person) {
			// re-pinning the same person to the same station is a no-op
			continue
		}

		// pull the person out of wherever this rotation already put them:
		// the side-task bucket, the pool, or the target of an earlier pin
		for st := range buckets {
			if st == models.StationOffShift {
				continue
			}
			buckets[st] = removePerson(buckets[st], force.Person)
		}
		pool = removePerson(pool, force.Person)

		p.checkRuleBreak(rot.ID, force.Person, force.Station, "operator pin")
		buckets[force.Station] = append(buckets[force.Station], force.Person)

		if p.appended[force.Person] {
			// the classification the pin overrides already wrote a history
			// entry for this rotation; rewrite it instead of appending twice
			hist := p.History[force.Person]
			hist[len(hist)-1] = force.Station
		} else {
			p.recordHistory(force.Person, force.Station)
		}
	}
	return pool
}

// fillRotation executes the fill priority order, scoring candidates for
// each deficit and letting the museum absorb whoever remains.
func (p *Planner) fillRotation(rot models.Rotation, buckets map[models.Station][]string, pool []string) {
	if len(p.Roster) == 0 {
		return
	}

	steps := []struct {
		station models.Station
		target  int
	}{
		{models.StationTicket, 1},
		{models.StationGreeter, 1},
		{models.StationPlanetarium, 1},
		{models.StationTicket, 2},
	}

	for _, step := range steps {
		for len(buckets[step.station]) < step.target {
			if len(pool) == 0 {
				p.notify(models.SeverityCritical, rot.ID,
					"staffing shortage at %s: needed %d, have %d",
					step.station, step.target, len(buckets[step.station]))
				break
			}
			pool = p.assignBest(rot, step.station, buckets, pool)
		}
	}

	// museum drains the pool exactly: everyone still available goes there
	for len(pool) > 0 {
		pool = p.assignBest(rot, models.StationMuseum, buckets, pool)
	}
}

// assignBest moves the lowest-scoring candidate from the pool into the
// station bucket and records history, flagging any rule the pick bends.
func (p *Planner) assignBest(rot models.Rotation, station models.Station, buckets map[models.Station][]string, pool []string) []string {
	ranked := p.Rank(station, pool)
	pick := ranked[0].Person

	p.checkRuleBreak(rot.ID, pick, station, "no better candidate available")
	buckets[station] = append(buckets[station], pick)
	p.recordHistory(pick, station)
	return removePerson(pool, pick)
}

// checkRuleBreak inspects a person's history before their entry for the
// current rotation is written, and reports any rule the placement bends.
// Cause distinguishes operator pins from scoring fallback.
func (p *Planner) checkRuleBreak(rotationID int, person string, station models.Station, cause string) {
	hist := p.History[person]
	if n := len(hist); n > 0 && hist[n-1] == station {
		p.notify(models.SeverityWarning, rotationID,
			"%s repeats %s back-to-back (%s)", person, station, cause)
	}
	if station == models.StationPlanetarium && p.timesDone(person, models.StationPlanetarium) > 0 {
		p.notify(models.SeverityWarning, rotationID,
			"%s already covered %s today (%s)", person, models.StationPlanetarium, cause)
	}
}

// recordHistory appends at most one entry per person per rotation.
func (p *Planner) recordHistory(person string, station models.Station) {
	if p.appended[person] {
		return
	}
	p.History[person] = append(p.History[person], station)
	p.appended[person] = true
}

func (p *Planner) notify(severity string, rotationID int, format string, args ...any) {
	p.Notifications = append(p.Notifications, models.Notification{
		ID:         uuid.NewString(),
		Severity:   severity,
		Message:    fmt.Sprintf(format, args...),
		RotationID: rotationID,
	})
}

// exceptionFor returns the person's shift exception, first match wins.
func (p *Planner) exceptionFor(person string) (models.ShiftException, bool) {
	for _, exc := range p.Exceptions {
		if exc.Person == person {
			return exc, true
		}
	}
	return models.ShiftException{}, false
}

func (p *Planner) sideTasked(rotationID int, person string) bool {
	for _, rule := range p.SideTasks {
		if rule.RotationID == rotationID && rule.Person == person {
			return true
		}
	}
	return false
}

func (p *Planner) timesDone(person string, station models.Station) int {
	count := 0
	for _, st := range p.History[person] {
		if st == station {
			count++
		}
	}
	return count
}

func contains(list []string, person string) bool {
	for _, id := range list {
		if id == person {
			return true
		}
	}
	return false
}

func removePerson(list []string, person string) []string {
	for i, id := range list {
		if id == person {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}
