package domain

import "time"

// TransitionReason records what caused a cursor move.
type TransitionReason string

const (
	ReasonManual             TransitionReason = "manual"
	ReasonCheckpointAccepted TransitionReason = "checkpoint_accepted"
	ReasonCheckpointRejected TransitionReason = "checkpoint_rejected"
)

// CheckpointStatus is the staff decision on a checkpoint step.
type CheckpointStatus string

const (
	CheckpointAccepted CheckpointStatus = "accepted"
	CheckpointRejected CheckpointStatus = "rejected"
)

// Valid reports whether s is a known decision.
func (s CheckpointStatus) Valid() bool {
	return s == CheckpointAccepted || s == CheckpointRejected
}

// TransitionEntry is one audit record of a cursor move.
type TransitionEntry struct {
	ID            int64            `json:"id"`
	ApplicationID int64            `json:"applicationId"`
	From          string           `json:"from"`
	To            string           `json:"to"`
	Reason        TransitionReason `json:"reason"`
	Actor         string           `json:"actor"`
	OccurredAt    time.Time        `json:"occurredAt"`
}

// RemarkEntry is one line of a case's remarks history.
type RemarkEntry struct {
	ID            int64     `json:"id"`
	ApplicationID int64     `json:"applicationId"`
	Remarks       string    `json:"remarks"`
	Actor         string    `json:"actor"`
	CreatedAt     time.Time `json:"createdAt"`
}

// Destinations groups the legal cursor targets relative to the current step.
// Both groups are equally legal; the split is informational.
type Destinations struct {
	CurrentStep string           `json:"currentStep"`
	Version     int64            `json:"version"`
	Backward    []StepDefinition `json:"backward"`
	Forward     []StepDefinition `json:"forward"`
}

// Empty reports whether no legal destination exists.
func (d Destinations) Empty() bool {
	return len(d.Backward) == 0 && len(d.Forward) == 0
}
