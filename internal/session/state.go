package session

// State 会话状态。
type State int

const (
	// StateAwaitingAddress 等待初始地址输入。
	StateAwaitingAddress State = iota

	// StateReady 持有一个地址，等待命令。
	StateReady

	// StateTerminated 会话结束，不再读取输入。
	StateTerminated
)

// String 返回状态名称。
func (s State) String() string {
	switch s {
	case StateAwaitingAddress:
		return "awaiting-address"
	case StateReady:
		return "ready"
	case StateTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}
