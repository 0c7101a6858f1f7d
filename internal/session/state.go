package session

// Phase is the navigation state of a diagnostic session.
type Phase int

const (
	PhaseAsking    Phase = iota // Waiting for an answer to the current question
	PhaseCompleted              // Last question answered; result computed
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseAsking:
		return "asking"
	case PhaseCompleted:
		return "completed"
	default:
		return "unknown"
	}
}
