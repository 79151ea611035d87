package entity

import (
	"time"

	"github.com/google/uuid"
)

// MissionStatus is a stage of the mission lifecycle:
//
//	CREATED --start--> STARTED --complete--> COMPLETED
//	CREATED --cancel--> CANCELED
//	STARTED --cancel--> CANCELED
//
// COMPLETED and CANCELED are terminal.
type MissionStatus string

const (
	MissionStatusCreated   MissionStatus = "CREATED"
	MissionStatusStarted   MissionStatus = "STARTED"
	MissionStatusCompleted MissionStatus = "COMPLETED"
	MissionStatusCanceled  MissionStatus = "CANCELED"
)

// MissionEvent is a request to move a mission along its lifecycle.
type MissionEvent string

const (
	MissionEventStart    MissionEvent = "start"
	MissionEventCancel   MissionEvent = "cancel"
	MissionEventComplete MissionEvent = "complete"
)

// String returns the string representation of the MissionStatus.
func (s MissionStatus) String() string {
	return string(s)
}

// IsValid checks if the MissionStatus is a valid value.
func (s MissionStatus) IsValid() bool {
	switch s {
	case MissionStatusCreated, MissionStatusStarted, MissionStatusCompleted, MissionStatusCanceled:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no event can move the mission anymore.
func (s MissionStatus) IsTerminal() bool {
	return s == MissionStatusCompleted || s == MissionStatusCanceled
}

// Transition returns the status reached by applying event to s.
// ok is false when the event is not allowed from s.
func (s MissionStatus) Transition(event MissionEvent) (next MissionStatus, ok bool) {
	switch {
	case event == MissionEventStart && s == MissionStatusCreated:
		return MissionStatusStarted, true
	case event == MissionEventCancel && (s == MissionStatusCreated || s == MissionStatusStarted):
		return MissionStatusCanceled, true
	case event == MissionEventComplete && s == MissionStatusStarted:
		return MissionStatusCompleted, true
	default:
		return s, false
	}
}

// Mission is a cargo transport task between two planets performed by one ship.
type Mission struct {
	ID                uuid.UUID
	OwnerID           uuid.UUID     // GameProfile (user) that owns the mission.
	OwnerUsername     string        // Resolved from the owner, read-only.
	Ship              *SpaceShip    // Ship performing the transport.
	StartPlanet       *Planet       // Departure planet.
	DestinationPlanet *Planet       // Arrival planet, never at the start coordinates.
	Payload           float64       // Cargo mass, 0 < payload <= Ship.MaxCargoCapacity.
	RegistrationTime  time.Time     // Moment the mission was constructed.
	StartTime         *time.Time    // Set when the mission is started.
	FinishTime        *time.Time    // Set when the mission is completed or canceled.
	Duration          int64         // Flight time in seconds.
	Status            MissionStatus // Lifecycle stage.
}

// OwnedBy reports whether username is the stored owner of the mission.
func (m *Mission) OwnedBy(username string) bool {
	return m.OwnerUsername == username
}

// ArrivalTime is StartTime plus Duration. ok is false for a mission that was never started.
func (m *Mission) ArrivalTime() (arrival time.Time, ok bool) {
	if m.StartTime == nil {
		return time.Time{}, false
	}

	return m.StartTime.Add(time.Duration(m.Duration) * time.Second), true
}

// MissionPatch carries optional replacements for the mutable fields of a Mission.
type MissionPatch struct {
	Status     *MissionStatus
	StartTime  *time.Time
	FinishTime *time.Time
	Payload    *float64
	Duration   *int64
}

// Apply returns a copy of m with every non-nil patch field merged in.
// The receiver and m are left untouched.
func (p MissionPatch) Apply(m Mission) Mission {
	if p.Status != nil {
		m.Status = *p.Status
	}
	if p.StartTime != nil {
		t := *p.StartTime
		m.StartTime = &t
	}
	if p.FinishTime != nil {
		t := *p.FinishTime
		m.FinishTime = &t
	}
	if p.Payload != nil {
		m.Payload = *p.Payload
	}
	if p.Duration != nil {
		m.Duration = *p.Duration
	}

	return m
}
