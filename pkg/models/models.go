package models

// Station identifies a staffed work area. SideTask and OffShift are
// pseudo-stations: people placed there are out of the rotation pool for
// that window but still counted in the day's history.
type Station string

const (
	StationTicket      Station = "ticket"
	StationGreeter     Station = "greeter"
	StationPlanetarium Station = "planetarium"
	StationMuseum      Station = "museum"
	StationSideTask    Station = "side_task"
	StationOffShift    Station = "off_shift"
)

// Severity levels for notifications
const (
	SeverityInfo     = "info"
	SeverityWarning  = "warning"
	SeverityCritical = "critical"
)

// Person is one roster member. The slot id is the stable identity that
// history keys on; Name is a cosmetic label and may be reassigned without
// resetting history.
type Person struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

// Rotation is one fixed time window of the day's calendar.
// Start and End are wall-clock strings in HH:mm.
type Rotation struct {
	ID    int    `json:"id"`
	Start string `json:"start"`
	End   string `json:"end"`
}

// ShiftException records a person's actual present window for the day.
// A person with no exception is present the whole day.
type ShiftException struct {
	Person string `json:"person"`
	Start  string `json:"start"`
	End    string `json:"end"`
}

// SideTaskRule removes a person from the rotation pool for one rotation.
type SideTaskRule struct {
	RotationID int    `json:"rotation_id"`
	Person     string `json:"person"`
}

// ForcedAssignment is an operator pin: the person occupies the station in
// that rotation regardless of what the scorer would have chosen.
type ForcedAssignment struct {
	RotationID int     `json:"rotation_id"`
	Station    Station `json:"station"`
	Person     string  `json:"person"`
}

// Notification is one entry of the run's diagnostic log.
// RotationID is 0 for day-level context entries.
type Notification struct {
	ID         string `json:"id"`
	Severity   string `json:"severity"`
	Message    string `json:"message"`
	RotationID int    `json:"rotation_id,omitempty"`
}

// RotationAssignment maps each station to the people occupying it for one
// rotation. Order within a station is insertion order and carries no meaning.
type RotationAssignment struct {
	RotationID int                  `json:"rotation_id"`
	Stations   map[Station][]string `json:"stations"`
}

// ScheduleInput is the data structure for the scheduling endpoint.
// TeamSize derives the slot ids B1..Bn; Names is cosmetic labeling only
// and never affects history or scoring.
type ScheduleInput struct {
	TeamSize   int                `json:"team_size"`
	Calendar   []Rotation         `json:"calendar,omitempty"`
	Exceptions []ShiftException   `json:"exceptions,omitempty"`
	SideTasks  []SideTaskRule     `json:"side_tasks,omitempty"`
	Forces     []ForcedAssignment `json:"forces,omitempty"`
	Names      map[string]string  `json:"names,omitempty"`
	Seed       int64              `json:"seed,omitempty"`
}

// ScheduleResponse is the data structure for the scheduling result.
type ScheduleResponse struct {
	People        []Person             `json:"people"`
	Assignments   []RotationAssignment `json:"assignments"`
	Notifications []Notification       `json:"notifications"`
	History       map[string][]Station `json:"history"`
	Seed          int64                `json:"seed"`
}
