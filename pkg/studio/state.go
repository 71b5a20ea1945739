package studio

// FlowState は生成フローの状態です。
type FlowState int

const (
	StateIdle FlowState = iota
	StateGenerating
	StateReady
	StateFailed
)

func (s FlowState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateGenerating:
		return "generating"
	case StateReady:
		return "ready"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}
