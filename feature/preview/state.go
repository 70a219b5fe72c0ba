package preview

// State is a step in the preview server lifecycle:
// INIT → BOUND → SERVING → (STOPPED | FAILED).
type State int32

const (
	StateInit State = iota
	StateBound
	StateServing
	StateStopped
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateInit:
		return "INIT"
	case StateBound:
		return "BOUND"
	case StateServing:
		return "SERVING"
	case StateStopped:
		return "STOPPED"
	case StateFailed:
		return "FAILED"
	default:
		return "UNKNOWN"
	}
}
