package history

import "time"

// Trigger identifies what caused a time block activation.
type Trigger string

const (
	TriggerStartup Trigger = "STARTUP"
	TriggerPoll    Trigger = "POLL"
	TriggerReload  Trigger = "RELOAD"
	TriggerResume  Trigger = "RESUME"
)

// Activation records a single time block activation.
type Activation struct {
	ID          int64
	BlockName   string
	Trigger     Trigger
	ActivatedAt time.Time
}
