package game

// Phase is the round lifecycle state.
type Phase string

const (
	PhaseRunning             Phase = "running"
	PhaseDeadPendingDecision Phase = "dead_pending_decision"
	PhaseResetting           Phase = "resetting"
	PhaseTerminated          Phase = "terminated"
)

func (p Phase) String() string { return string(p) }
